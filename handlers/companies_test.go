// ABOUTME: Company handler tests: search and detail projection, write
// ABOUTME: shapes, and the empty-update guard
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/folk-mcp/folk"
)

const companyID = "com_9b0e10ba-6cf3-4a39-a319-d4a00ec3a72f"

func TestFindCompanyProjectsMatches(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/companies", r.URL.Path)
		gotQuery = r.URL.Query()
		writeList(t, w, []map[string]any{
			{"id": companyID, "name": "Analytical Engines", "industry": "Computing"},
		})
	}))
	h := NewCompanyHandlers(client, zerolog.Nop())

	_, out, err := h.FindCompany(context.Background(), nil, FindCompanyInput{Name: "Analytical"})
	require.NoError(t, err)

	assert.Equal(t, "Analytical", gotQuery.Get("filter[name][like]"))
	assert.Equal(t, "10", gotQuery.Get("limit"))

	assert.True(t, out.Found)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, CompanyMatch{ID: companyID, Name: "Analytical Engines", Industry: "Computing"}, out.Matches[0])
}

func TestGetCompanyDetailsProjection(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/companies/"+companyID, r.URL.Path)
		writeItem(t, w, map[string]any{
			"id":             companyID,
			"name":           "Analytical Engines",
			"emails":         []string{"hello@engines.example"},
			"urls":           []string{"https://engines.example"},
			"industry":       "Computing",
			"employeeRange":  "11-50",
			"foundationYear": 1837,
			"groups":         []map[string]any{{"id": groupID, "name": "Investors"}},
			"createdAt":      "2025-01-02T03:04:05Z",
		})
	}))
	h := NewCompanyHandlers(client, zerolog.Nop())

	_, out, err := h.GetCompanyDetails(context.Background(), nil, GetCompanyDetailsInput{CompanyID: companyID})
	require.NoError(t, err)

	assert.Equal(t, "Analytical Engines", out.Name)
	assert.Equal(t, []string{"hello@engines.example"}, out.Emails)
	assert.NotNil(t, out.Phones, "absent upstream lists still project as []")
	assert.Equal(t, "11-50", out.EmployeeRange)
	assert.Equal(t, 1837, out.FoundationYear)
	assert.Equal(t, []GroupSummary{{ID: groupID, Name: "Investors"}}, out.Groups)

	// snake_case on the wire
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"employee_range":"11-50"`)
	assert.Contains(t, string(encoded), `"foundation_year":1837`)
	assert.Contains(t, string(encoded), `"phones":[]`)
}

func TestGetCompanyDetailsRejectsMalformedIDBeforeNetwork(t *testing.T) {
	h := NewCompanyHandlers(noNetworkClient(t), zerolog.Nop())

	_, _, err := h.GetCompanyDetails(context.Background(), nil, GetCompanyDetailsInput{CompanyID: "acme corp"})

	var verr *folk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "company_id")
}

func TestAddCompanyRequiresName(t *testing.T) {
	h := NewCompanyHandlers(noNetworkClient(t), zerolog.Nop())

	_, _, err := h.AddCompany(context.Background(), nil, AddCompanyInput{Industry: "Computing"})

	var verr *folk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "name is required")
}

func TestAddCompanyBuildsWriteShape(t *testing.T) {
	var gotBody map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/companies", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeItem(t, w, map[string]any{"id": companyID, "name": "Analytical Engines"})
	}))
	h := NewCompanyHandlers(client, zerolog.Nop())

	_, out, err := h.AddCompany(context.Background(), nil, AddCompanyInput{
		Name:  "Analytical Engines",
		Email: "hello@engines.example",
		URL:   "https://engines.example",
		Notes: "Met at the exhibition",
	})
	require.NoError(t, err)

	assert.Equal(t, "Analytical Engines", gotBody["name"])
	assert.Equal(t, []any{"hello@engines.example"}, gotBody["emails"])
	assert.Equal(t, []any{"https://engines.example"}, gotBody["urls"])
	assert.Equal(t, "Met at the exhibition", gotBody["description"])
	assert.NotContains(t, gotBody, "phones", "unset contact fields stay off the wire")

	assert.Equal(t, MutationOutput{ID: companyID, Name: "Analytical Engines", Created: true}, out)
}

func TestUpdateCompanyRejectsEmptyUpdate(t *testing.T) {
	h := NewCompanyHandlers(noNetworkClient(t), zerolog.Nop())

	_, _, err := h.UpdateCompany(context.Background(), nil, UpdateCompanyInput{CompanyID: companyID})

	var verr *folk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "nothing to update")
}

func TestDeleteCompany(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/companies/"+companyID, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	h := NewCompanyHandlers(client, zerolog.Nop())

	_, out, err := h.DeleteCompany(context.Background(), nil, DeleteCompanyInput{CompanyID: companyID})
	require.NoError(t, err)

	assert.Equal(t, MutationOutput{ID: companyID, Deleted: true}, out)
}
