// ABOUTME: Group handler tests: soft not-found payloads, suggestion caps,
// ABOUTME: group-scoped member filters, and custom-field projection
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroups(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/groups", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		writeList(t, w, []map[string]any{
			{"id": groupID, "name": "Investors"},
		})
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.ListGroups(context.Background(), nil, ListGroupsInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total)
	assert.Equal(t, []GroupSummary{{ID: groupID, Name: "Investors"}}, out.Groups)
}

func TestFindPeopleInGroupMissIsSoft(t *testing.T) {
	groups := make([]map[string]any, 0, 12)
	for i := 0; i < 12; i++ {
		groups = append(groups, map[string]any{
			"id":   fmt.Sprintf("grp_%08d-26a1-4eb5-9b35-b24fa4f5e8e0", i),
			"name": fmt.Sprintf("Pipeline %02d", i),
		})
	}

	peopleHits := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups":
			writeList(t, w, groups)
		case "/people":
			peopleHits++
			writeList(t, w, []map[string]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.FindPeopleInGroup(context.Background(), nil, FindPeopleInGroupInput{GroupName: "Investors"})
	require.NoError(t, err, "a failed resolution is a payload, not an error")

	assert.False(t, out.Found)
	assert.NotNil(t, out.People, "people must encode as [] rather than null")
	assert.Empty(t, out.People)
	assert.Equal(t, "Group 'Investors' not found", out.Error)
	assert.Len(t, out.AvailableGroups, 10, "suggestions cap at ten")
	assert.Equal(t, "Pipeline 00", out.AvailableGroups[0])
	assert.Equal(t, "Check the group name or use list_groups to see all available groups", out.Hint)
	assert.Zero(t, peopleHits, "no member query after a failed resolution")
}

func TestFindPeopleInGroupAppliesFilters(t *testing.T) {
	var peopleQuery url.Values
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups":
			writeList(t, w, []map[string]any{{"id": groupID, "name": "Investors"}})
		case "/people":
			peopleQuery = r.URL.Query()
			writeList(t, w, []map[string]any{
				{
					"id":        personID,
					"firstName": "Ada",
					"lastName":  "Lovelace",
					"emails":    []string{"ada@example.com"},
					"customFieldValues": map[string]any{
						groupID: map[string]any{"Status": "Active", "Check Size": "1M"},
					},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.FindPeopleInGroup(context.Background(), nil, FindPeopleInGroupInput{
		GroupName: "investors",
		Status:    "Active",
		Limit:     5,
	})
	require.NoError(t, err)

	assert.Equal(t, groupID, peopleQuery.Get("filter[groups][in]"))
	assert.Equal(t, "Active", peopleQuery.Get("filter[customFieldValues."+groupID+".Status][in]"))
	assert.Equal(t, "5", peopleQuery.Get("limit"))

	assert.True(t, out.Found)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Investors", out.GroupName, "resolved name is echoed, not the query")
	require.Len(t, out.People, 1)
	row := out.People[0]
	assert.Equal(t, "Ada Lovelace", row.Name)
	assert.Equal(t, "Active", row.Status)
	assert.Equal(t, "1M", row.CustomFields["Check Size"])
}

func TestFindPeopleInGroupCustomFieldFilter(t *testing.T) {
	var peopleQuery url.Values
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups":
			writeList(t, w, []map[string]any{{"id": groupID, "name": "Investors"}})
		case "/people":
			peopleQuery = r.URL.Query()
			writeList(t, w, []map[string]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.FindPeopleInGroup(context.Background(), nil, FindPeopleInGroupInput{
		GroupName:   "Investors",
		CustomField: "Stage",
		CustomValue: "Seed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Seed", peopleQuery.Get("filter[customFieldValues."+groupID+".Stage][in]"))
	assert.False(t, out.Found, "a resolved group with no matching members is still found=false")
	assert.Equal(t, "Investors", out.GroupName)
	assert.Empty(t, out.Error)
}

func TestFindCompaniesInGroupMissIsSoft(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups":
			writeList(t, w, []map[string]any{{"id": groupID, "name": "Partners"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.FindCompaniesInGroup(context.Background(), nil, FindCompaniesInGroupInput{GroupName: "Vendors"})
	require.NoError(t, err)

	assert.False(t, out.Found)
	assert.NotNil(t, out.Companies)
	assert.Empty(t, out.Companies)
	assert.Equal(t, "Group 'Vendors' not found", out.Error)
	assert.Equal(t, []string{"Partners"}, out.AvailableGroups)
}

func TestFindCompaniesInGroupProjection(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups":
			writeList(t, w, []map[string]any{{"id": groupID, "name": "Target Accounts"}})
		case "/companies":
			assert.Equal(t, groupID, r.URL.Query().Get("filter[groups][in]"))
			writeList(t, w, []map[string]any{
				{
					"id":       "com_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f",
					"name":     "Analytical Engines",
					"industry": "Computing",
					"customFieldValues": map[string]any{
						groupID: map[string]any{"Status": "Qualified"},
					},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	h := NewGroupHandlers(client, zerolog.Nop())

	_, out, err := h.FindCompaniesInGroup(context.Background(), nil, FindCompaniesInGroupInput{GroupName: "Target Accounts"})
	require.NoError(t, err)

	assert.True(t, out.Found)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "Analytical Engines", out.Companies[0].Name)
	assert.Equal(t, "Computing", out.Companies[0].Industry)
	assert.Equal(t, "Qualified", out.Companies[0].Status)
}
