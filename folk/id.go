// ABOUTME: Folk identifier validation (short type prefix + lowercase UUID)
// ABOUTME: Malformed IDs are rejected before they can reach a URL path
package folk

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Folk IDs look like per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f: a 2-4 letter
// lowercase type prefix, an underscore, and a lowercase hyphenated UUID.
var idPattern = regexp.MustCompile(`^[a-z]{2,4}_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateID checks that id is a well-formed Folk identifier. what names the
// offending parameter in the error message ("person_id", "group_id", ...).
func ValidateID(id, what string) error {
	if idPattern.MatchString(id) {
		_, rest, _ := strings.Cut(id, "_")
		if _, err := uuid.Parse(rest); err == nil {
			return nil
		}
	}
	return validationf(
		"invalid %s %q: Folk IDs look like per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f (prefix + UUID); use find_person or find_company to look up real IDs",
		what, id)
}
