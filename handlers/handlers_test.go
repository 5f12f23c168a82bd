// ABOUTME: Shared fixtures for the handler tests
// ABOUTME: httptest-backed folk clients and canned API envelopes
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperreed/folk-mcp/folk"
)

const (
	personID = "per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f"
	person2  = "per_1db2d6f4-6d53-4fcb-8be1-5161f6e15cd7"
	groupID  = "grp_1af10382-26a1-4eb5-9b35-b24fa4f5e8e0"
	noteID   = "not_7c20a587-44ab-4f5e-8a13-2f55ab9ddbc2"
)

// testClient points a folk client at an httptest server owned by the test.
func testClient(t *testing.T, handler http.Handler) *folk.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return folk.New(folk.Options{APIKey: "test-key", BaseURL: srv.URL})
}

// noNetworkClient fails the test if any request reaches the server;
// validation has to reject bad input before transport.
func noNetworkClient(t *testing.T) *folk.Client {
	t.Helper()
	return testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.Error(w, "unreachable", http.StatusInternalServerError)
	}))
}

func writeList(t *testing.T, w http.ResponseWriter, items any) {
	t.Helper()
	writeJSON(t, w, map[string]any{
		"data": map[string]any{"items": items},
	})
}

func writeItem(t *testing.T, w http.ResponseWriter, item any) {
	t.Helper()
	writeJSON(t, w, map[string]any{"data": item})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, 20},
		{"negative floors at one", -5, 1},
		{"in range passes through", 30, 30},
		{"over max caps", 200, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampLimit(tt.limit, 20, 50))
		})
	}
}

func TestGroupFieldsMissingGroupStaysEmpty(t *testing.T) {
	fields := groupFields(map[string]any{"other": map[string]any{"Status": "x"}}, groupID)

	assert.NotNil(t, fields, "custom_fields must encode as {} rather than null")
	assert.Empty(t, fields)
}
