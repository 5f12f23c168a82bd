// ABOUTME: Update-loop tests for the browse TUI: tab cycling, search mode,
// ABOUTME: cursor clamping, and fetch message handling
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/folk-mcp/folk"
)

func key(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabKeyCyclesTabsAndResetsCursor(t *testing.T) {
	m := NewModel(nil)
	m.selectedRow = 4

	next, cmd := m.Update(key("tab"))
	model := next.(Model)

	assert.Equal(t, TabCompanies, model.tab)
	assert.Equal(t, 0, model.selectedRow)
	assert.NotNil(t, cmd, "switching tabs triggers a fetch")

	next, _ = model.Update(key("tab"))
	model = next.(Model)
	assert.Equal(t, TabGroups, model.tab)

	next, _ = model.Update(key("tab"))
	model = next.(Model)
	assert.Equal(t, TabPeople, model.tab, "tab wraps around")
}

func TestSlashEntersSearchMode(t *testing.T) {
	m := NewModel(nil)

	next, _ := m.Update(key("/"))
	model := next.(Model)

	assert.True(t, model.searching)

	// Keys go to the search input, not navigation.
	next, _ = model.Update(key("q"))
	model = next.(Model)
	assert.True(t, model.searching, "q types into the search box instead of quitting")
	assert.Equal(t, "q", model.searchInput.Value())
}

func TestSearchCommitAndCancel(t *testing.T) {
	m := NewModel(nil)
	m.searching = true
	m.searchInput.SetValue("ada")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := next.(Model)

	assert.False(t, model.searching)
	assert.Equal(t, "ada", model.searchQuery)
	assert.NotNil(t, cmd, "committing a search triggers a fetch")

	model.searching = true
	model.searchInput.SetValue("something else")
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = next.(Model)

	assert.False(t, model.searching)
	assert.Equal(t, "ada", model.searchQuery, "esc keeps the committed query")
}

func TestPeopleMsgPopulatesRowsAndClampsCursor(t *testing.T) {
	m := NewModel(nil)
	m.selectedRow = 10

	next, _ := m.Update(peopleMsg{people: []folk.Person{
		{FirstName: "Ada", LastName: "Lovelace", Emails: []string{"ada@example.com"}},
		{FullName: "Grace Hopper"},
	}})
	model := next.(Model)

	require.Len(t, model.people, 2)
	assert.False(t, model.loading)
	assert.Equal(t, "2 people loaded", model.status)
	assert.Equal(t, 1, model.selectedRow, "cursor clamps to the last row")

	rows := model.peopleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada Lovelace", rows[0][0])
	assert.Equal(t, "ada@example.com", rows[0][1])
}

func TestFetchErrMsgRendersInStatusLine(t *testing.T) {
	m := NewModel(nil)
	m.loading = true

	next, _ := m.Update(fetchErrMsg{err: assert.AnError})
	model := next.(Model)

	assert.False(t, model.loading)
	assert.Contains(t, model.status, "Error:")
	assert.Contains(t, model.View(), "Error:")
}

func TestGroupRowsFilterClientSide(t *testing.T) {
	m := NewModel(nil)
	m.tab = TabGroups
	m.groups = []folk.Group{
		{ID: "grp_1", Name: "Investors"},
		{ID: "grp_2", Name: "Sales Pipeline"},
		{ID: "grp_3", Name: "Angel investors"},
	}
	m.searchQuery = "investor"

	rows := m.groupRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Investors", rows[0][0])
	assert.Equal(t, "Angel investors", rows[1][0])
	assert.Equal(t, 2, m.rowCount(), "cursor range follows the filtered rows")
}
