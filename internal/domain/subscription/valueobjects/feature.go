package valueobjects

import (
	"encoding/json"
	"fmt"
)

// FeatureTag is a capability a plan may grant.
type FeatureTag string

const (
	FeatureProperties FeatureTag = "properties"
	FeatureTickets    FeatureTag = "tickets"
	FeatureFAQs       FeatureTag = "faqs"
	FeatureChat       FeatureTag = "chat"
	FeatureFavorite   FeatureTag = "favorite"
)

// AllFeatures lists every known tag in evaluation order.
var AllFeatures = []FeatureTag{
	FeatureProperties,
	FeatureTickets,
	FeatureFAQs,
	FeatureChat,
	FeatureFavorite,
}

func (f FeatureTag) String() string {
	return string(f)
}

func (f FeatureTag) IsValid() bool {
	for _, known := range AllFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// FeatureSet is an immutable set of feature tags. It keeps insertion order
// so that it serializes deterministically.
type FeatureSet struct {
	tags []FeatureTag
}

// NewFeatureSet validates tags: each must be known and appear once.
func NewFeatureSet(tags ...string) (*FeatureSet, error) {
	seen := make(map[FeatureTag]bool, len(tags))
	set := &FeatureSet{tags: make([]FeatureTag, 0, len(tags))}

	for _, raw := range tags {
		tag := FeatureTag(raw)
		if !tag.IsValid() {
			return nil, fmt.Errorf("unknown feature: %q", raw)
		}
		if seen[tag] {
			return nil, fmt.Errorf("duplicate feature: %q", raw)
		}
		seen[tag] = true
		set.tags = append(set.tags, tag)
	}

	return set, nil
}

// Has reports whether tag is in the set. A nil set has no features.
func (s *FeatureSet) Has(tag FeatureTag) bool {
	if s == nil {
		return false
	}
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *FeatureSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tags)
}

// Strings returns the tags as plain strings.
func (s *FeatureSet) Strings() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = string(t)
	}
	return out
}

func (s *FeatureSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// ParseFeatureSetJSON decodes a stored JSON array. A JSON null or empty input
// yields a nil set. Unlike NewFeatureSet it tolerates unknown and repeated
// tags: they are left out of the set and returned in skipped.
func ParseFeatureSetJSON(data []byte) (set *FeatureSet, skipped []string, err error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil, nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("invalid feature list: %w", err)
	}

	seen := make(map[FeatureTag]bool, len(raw))
	set = &FeatureSet{tags: make([]FeatureTag, 0, len(raw))}
	for _, r := range raw {
		tag := FeatureTag(r)
		if !tag.IsValid() || seen[tag] {
			skipped = append(skipped, r)
			continue
		}
		seen[tag] = true
		set.tags = append(set.tags, tag)
	}
	return set, skipped, nil
}
