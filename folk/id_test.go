// ABOUTME: Folk ID grammar tests: prefix shape, UUID segment, case sensitivity
package folk

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	valid := []string{
		"per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"com_0e7558de-8d8c-442a-99ca-e2c8f5500172",
		"grp_12345678-1234-1234-1234-123456789abc",
		"usr_abcdef01-2345-6789-abcd-ef0123456789",
		"rem_00000000-0000-0000-0000-000000000000",
		fmt.Sprintf("per_%s", uuid.NewString()),
	}
	for _, id := range valid {
		assert.NoError(t, ValidateID(id, "entity_id"), "id %q should be accepted", id)
	}

	invalid := []string{
		"",
		"John Smith",
		"per_123",
		"per_9B0E10BA-6CF3-4A39-A319-D4A00EC3A72F",
		"PER_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"p_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"perso_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"per-9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
		"per_9b0e10ba6cf34a39a319d4a00ec3a72f",
		"per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f ",
		"per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f/notes",
	}
	for _, id := range invalid {
		err := ValidateID(id, "person_id")
		require.Error(t, err, "id %q should be rejected", id)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "person_id")
		assert.Contains(t, vErr.Message, "find_person", "rejection should steer toward the lookup tools")
	}
}
