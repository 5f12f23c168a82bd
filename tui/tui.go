// ABOUTME: Terminal user interface for browsing the Folk workspace
// ABOUTME: bubbletea model with People, Companies, and Groups tabs over live data
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/folk-mcp/folk"
)

const (
	// fetchTimeout bounds every API call made from the TUI.
	fetchTimeout = 10 * time.Second
	// fetchLimit is the page size for each tab.
	fetchLimit = 50
	// maxGroupFetch matches the page cap used by group resolution.
	maxGroupFetch = 100
)

// Tab selects which entity list is shown.
type Tab int

const (
	TabPeople Tab = iota
	TabCompanies
	TabGroups
)

// Messages delivered by the fetch commands.
type (
	peopleMsg    struct{ people []folk.Person }
	companiesMsg struct{ companies []folk.Company }
	groupsMsg    struct{ groups []folk.Group }
	fetchErrMsg  struct{ err error }
)

// Model is the main bubbletea model.
type Model struct {
	client *folk.Client

	tab       Tab
	people    []folk.Person
	companies []folk.Company
	groups    []folk.Group

	selectedRow int
	searching   bool
	searchInput textinput.Model
	searchQuery string

	loading bool
	status  string

	width  int
	height int
}

// NewModel creates a new TUI model backed by the given API client.
func NewModel(client *folk.Client) Model {
	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 80
	input.Width = 40

	return Model{
		client:      client,
		tab:         TabPeople,
		searchInput: input,
		loading:     true,
		status:      "Loading...",
		width:       80,
		height:      24,
	}
}

// Run starts the browse TUI and blocks until the user quits.
func Run(client *folk.Client) error {
	p := tea.NewProgram(NewModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.fetchTab()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case peopleMsg:
		m.people = msg.people
		m.loading = false
		m.status = fmt.Sprintf("%d people loaded", len(msg.people))
		m.clampCursor()
		return m, nil
	case companiesMsg:
		m.companies = msg.companies
		m.loading = false
		m.status = fmt.Sprintf("%d companies loaded", len(msg.companies))
		m.clampCursor()
		return m, nil
	case groupsMsg:
		m.groups = msg.groups
		m.loading = false
		m.status = fmt.Sprintf("%d groups loaded", len(msg.groups))
		m.clampCursor()
		return m, nil
	case fetchErrMsg:
		m.loading = false
		m.status = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.tab = (m.tab + 1) % 3
		m.selectedRow = 0
		m.searchQuery = ""
		m.searchInput.SetValue("")
		return m.startFetch()
	case "shift+tab":
		m.tab = (m.tab + 2) % 3
		m.selectedRow = 0
		m.searchQuery = ""
		m.searchInput.SetValue("")
		return m.startFetch()
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink
	case "r":
		return m.startFetch()
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.searchQuery = m.searchInput.Value()
		m.selectedRow = 0
		return m.startFetch()
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.searchQuery)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) startFetch() (tea.Model, tea.Cmd) {
	m.loading = true
	m.status = "Loading..."
	return m, m.fetchTab()
}

func (m Model) fetchTab() tea.Cmd {
	switch m.tab {
	case TabPeople:
		return fetchPeople(m.client, m.searchQuery)
	case TabCompanies:
		return fetchCompanies(m.client, m.searchQuery)
	case TabGroups:
		return fetchGroups(m.client)
	}
	return nil
}

func fetchPeople(client *folk.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		opts := folk.ListOptions{Limit: fetchLimit}
		if query != "" {
			opts.Filters = folk.Filters{"fullName": folk.Op("like", query)}
		}
		page, err := client.ListPeople(ctx, opts)
		if err != nil {
			return fetchErrMsg{err}
		}
		return peopleMsg{people: page.Items}
	}
}

func fetchCompanies(client *folk.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		opts := folk.ListOptions{Limit: fetchLimit}
		if query != "" {
			opts.Filters = folk.Filters{"name": folk.Op("like", query)}
		}
		page, err := client.ListCompanies(ctx, opts)
		if err != nil {
			return fetchErrMsg{err}
		}
		return companiesMsg{companies: page.Items}
	}
}

func fetchGroups(client *folk.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := client.ListGroups(ctx, folk.ListOptions{Limit: maxGroupFetch})
		if err != nil {
			return fetchErrMsg{err}
		}
		return groupsMsg{groups: page.Items}
	}
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.selectedRow >= n {
		if n == 0 {
			m.selectedRow = 0
		} else {
			m.selectedRow = n - 1
		}
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
