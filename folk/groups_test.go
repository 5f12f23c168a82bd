// ABOUTME: Group resolution tests: exact-before-substring matching and the
// ABOUTME: soft not-found result with capped suggestions
package folk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupListClient(t *testing.T, names ...string) *Client {
	t.Helper()
	return testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]string, 0, len(names))
		for i, name := range names {
			items = append(items, map[string]string{
				"id":   fmt.Sprintf("grp_%08d-0000-0000-0000-000000000000", i),
				"name": name,
			})
		}
		payload := map[string]any{"data": map[string]any{"items": items, "pagination": map[string]any{}}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
}

func TestResolveGroupExactMatch(t *testing.T) {
	client := groupListClient(t, "Investors", "Invest")

	res, err := client.ResolveGroup(context.Background(), "invest")
	require.NoError(t, err)

	require.True(t, res.Found())
	assert.Equal(t, "Invest", res.Group.Name, "exact match wins over an earlier substring match")
}

func TestResolveGroupSubstringFallback(t *testing.T) {
	client := groupListClient(t, "Friends", "Angel Investors", "Investors")

	res, err := client.ResolveGroup(context.Background(), "investor")
	require.NoError(t, err)

	require.True(t, res.Found())
	assert.Equal(t, "Angel Investors", res.Group.Name, "first substring match in listing order")
}

func TestResolveGroupCaseInsensitive(t *testing.T) {
	client := groupListClient(t, "VIP Customers")

	res, err := client.ResolveGroup(context.Background(), "vip customers")
	require.NoError(t, err)

	require.True(t, res.Found())
	assert.Equal(t, "VIP Customers", res.Group.Name)
}

func TestResolveGroupNotFound(t *testing.T) {
	names := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		names = append(names, fmt.Sprintf("Segment %02d", i))
	}
	client := groupListClient(t, names...)

	res, err := client.ResolveGroup(context.Background(), "does not exist")
	require.NoError(t, err, "a missing group is not an error")

	assert.False(t, res.Found())
	assert.Nil(t, res.Group)
	assert.Len(t, res.Suggestions, 10, "suggestions cap at ten")
	assert.Equal(t, "Segment 00", res.Suggestions[0])
}

func TestResolveGroupUpstreamFailure(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"error":{"message":"API key lacks groups:read"}}`)
	}))

	res, err := client.ResolveGroup(context.Background(), "Investors")
	require.Error(t, err)
	assert.Nil(t, res)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
