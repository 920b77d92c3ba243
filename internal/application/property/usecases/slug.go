package usecases

import (
	"strings"

	"github.com/google/uuid"

	"github.com/darna-inc/darna/internal/domain/property"
)

// uniqueSlug appends a short random suffix so that listings with the same
// title get distinct slugs.
func uniqueSlug(title string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return property.MakeSlug(title) + "-" + suffix
}
