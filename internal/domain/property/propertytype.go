package property

import (
	"fmt"
	"strings"
)

// Validate trims the names and checks that every translation is present.
func (t *Type) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	t.NameFR = strings.TrimSpace(t.NameFR)
	t.NameAR = strings.TrimSpace(t.NameAR)

	for label, v := range map[string]string{"name": t.Name, "name_fr": t.NameFR, "name_ar": t.NameAR} {
		if v == "" {
			return fmt.Errorf("%s is required", label)
		}
		if len(v) > 100 {
			return fmt.Errorf("%s too long (max 100 characters)", label)
		}
	}
	if t.ParentID != nil && *t.ParentID == t.ID && t.ID != 0 {
		return fmt.Errorf("a type cannot be its own parent")
	}
	return nil
}

// NormalizeTags trims names and drops blanks and repeats, keeping the
// first spelling of each tag.
func NormalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
