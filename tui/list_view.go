package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var s strings.Builder

	// Title
	s.WriteString(titleStyle.Render("FOLK WORKSPACE"))
	s.WriteString("\n\n")

	// Tabs
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	// Search bar
	if m.searching {
		s.WriteString(m.searchInput.View())
		s.WriteString("\n\n")
	} else if m.searchQuery != "" {
		s.WriteString(statusStyle.Render("filter: " + m.searchQuery))
		s.WriteString("\n\n")
	}

	// Table
	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	// Status
	s.WriteString(m.renderStatus())
	s.WriteString("\n")

	// Help
	s.WriteString(m.renderHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"People", "Companies", "Groups"}
	var rendered []string

	for i, tab := range tabs {
		if Tab(i) == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.tab {
	case TabPeople:
		return m.renderRows(
			[]table.Column{
				{Title: "Name", Width: 30},
				{Title: "Email", Width: 30},
				{Title: "Job Title", Width: 20},
			},
			m.peopleRows(),
		)
	case TabCompanies:
		return m.renderRows(
			[]table.Column{
				{Title: "Name", Width: 30},
				{Title: "Industry", Width: 20},
				{Title: "Email", Width: 30},
			},
			m.companyRows(),
		)
	case TabGroups:
		return m.renderRows(
			[]table.Column{
				{Title: "Name", Width: 30},
				{Title: "ID", Width: 44},
			},
			m.groupRows(),
		)
	}
	return ""
}

func (m Model) renderRows(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) peopleRows() []table.Row {
	var rows []table.Row
	for i := range m.people {
		p := &m.people[i]
		rows = append(rows, table.Row{p.DisplayName(), p.PrimaryEmail(), p.JobTitle})
	}
	return rows
}

func (m Model) companyRows() []table.Row {
	var rows []table.Row
	for i := range m.companies {
		c := &m.companies[i]
		rows = append(rows, table.Row{c.DisplayName(), c.Industry, c.PrimaryEmail()})
	}
	return rows
}

// groupRows filters client side; the groups endpoint has no name filter.
func (m Model) groupRows() []table.Row {
	needle := strings.ToLower(m.searchQuery)
	var rows []table.Row
	for _, g := range m.groups {
		if needle != "" && !strings.Contains(strings.ToLower(g.Name), needle) {
			continue
		}
		rows = append(rows, table.Row{g.Name, g.ID})
	}
	return rows
}

func (m Model) rowCount() int {
	switch m.tab {
	case TabPeople:
		return len(m.people)
	case TabCompanies:
		return len(m.companies)
	case TabGroups:
		return len(m.groupRows())
	}
	return 0
}

func (m Model) tableHeight() int {
	h := m.height - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) renderStatus() string {
	if m.loading {
		return statusStyle.Render("Loading...")
	}
	return statusStyle.Render(m.status)
}

func (m Model) renderHelp() string {
	if m.searching {
		return helpStyle.Render("Enter: Apply • Esc: Cancel")
	}
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"/: Search",
		"r: Refresh",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}
