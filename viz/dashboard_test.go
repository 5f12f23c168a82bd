// ABOUTME: Dashboard tests: stat collection over a stub API and rendering
package viz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/folk-mcp/folk"
)

func stubWorkspace(t *testing.T) *folk.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		switch r.URL.Path {
		case "/people":
			payload = listPayload([]map[string]any{
				{"id": "per_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f", "firstName": "Ada"},
				{"id": "per_1db2d6f4-6d53-4fcb-8be1-5161f6e15cd7", "firstName": "Grace"},
			}, "next-cursor")
		case "/companies":
			payload = listPayload([]map[string]any{
				{"id": "com_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f", "name": "Analytical Engines"},
			}, "")
		case "/groups":
			payload = listPayload([]map[string]any{
				{"id": "grp_1af10382-26a1-4eb5-9b35-b24fa4f5e8e0", "name": "Investors"},
				{"id": "grp_2af10382-26a1-4eb5-9b35-b24fa4f5e8e0", "name": "Partners"},
			}, "")
		case "/reminders":
			payload = listPayload([]map[string]any{
				{"id": "rem_1", "name": "Way overdue", "nextTriggerTime": "2020-01-01T00:00:00Z"},
				{"id": "rem_2", "name": "Later", "nextTriggerTime": "2031-01-01T00:00:00Z"},
				{"id": "rem_3", "name": "Sooner", "nextTriggerTime": "2030-01-01T00:00:00Z"},
				{"id": "rem_4", "name": "No trigger"},
			}, "")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(srv.Close)
	return folk.New(folk.Options{APIKey: "test-key", BaseURL: srv.URL})
}

func listPayload(items []map[string]any, nextLink string) map[string]any {
	data := map[string]any{"items": items}
	if nextLink != "" {
		data["pagination"] = map[string]any{"nextLink": nextLink}
	}
	return map[string]any{"data": data}
}

func TestGenerateDashboardStats(t *testing.T) {
	stats, err := GenerateDashboardStats(context.Background(), stubWorkspace(t))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPeople)
	assert.True(t, stats.MorePeople, "a next cursor marks the count as a floor")
	assert.Equal(t, 1, stats.TotalCompanies)
	assert.False(t, stats.MoreCompanies)
	assert.Equal(t, []string{"Investors", "Partners"}, stats.Groups)

	require.Len(t, stats.OverdueReminders, 1)
	assert.Equal(t, "Way overdue", stats.OverdueReminders[0].Name)

	require.Len(t, stats.UpcomingReminders, 2, "triggerless reminders are skipped")
	assert.Equal(t, "Sooner", stats.UpcomingReminders[0].Name, "upcoming sorts soonest first")
	assert.Equal(t, "Later", stats.UpcomingReminders[1].Name)
}

func TestRenderDashboard(t *testing.T) {
	stats := &DashboardStats{
		TotalPeople:    100,
		MorePeople:     true,
		TotalCompanies: 7,
		Groups:         []string{"Investors"},
		UpcomingReminders: []ReminderItem{
			{Name: "Intro call", Entity: "Ada Lovelace", Trigger: time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC)},
		},
		OverdueReminders: []ReminderItem{
			{Name: "Send deck", Trigger: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	out := RenderDashboard(stats)

	assert.Contains(t, out, "FOLK WORKSPACE DASHBOARD")
	assert.Contains(t, out, "100+ people")
	assert.Contains(t, out, "7 companies")
	assert.Contains(t, out, "• Investors")
	assert.Contains(t, out, "Intro call (Ada Lovelace)")
	assert.Contains(t, out, "1 reminders overdue")
	assert.Contains(t, out, "Send deck")
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "42", countLabel(42, false))
	assert.Equal(t, "100+", countLabel(100, true))
}

func TestFormatMapping(t *testing.T) {
	_, err := Format("png").graphvizFormat()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid formats: dot, svg")

	for _, f := range []Format{FormatDOT, FormatSVG, ""} {
		_, err := f.graphvizFormat()
		assert.NoError(t, err, "format %q", f)
	}
}
