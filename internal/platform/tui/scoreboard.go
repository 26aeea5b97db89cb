package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show page list sidebar
	sidebarWidth       = 22  // Width of page list sidebar
	tableMinWidth      = 50  // Minimum table width
	maxScores          = 100 // Max scores to load
)

// hangarPage is the page id of the ship catalog.
const hangarPage = "hangar"

// scorePage is one tab of the scoreboard: a mode's scores or the hangar.
type scorePage struct {
	ID    string
	Title string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev page"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scores and hangar screen.
type ScoreboardModel struct {
	pages       []scorePage
	pageCursor  int            // Currently selected page index
	store       *storage.Store // Score storage
	scores      []storage.ScoreEntry
	ships       []catalog.ShipConfig
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show page list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	modes := registry.List()
	pages := make([]scorePage, 0, len(modes)+1)
	for _, mode := range modes {
		pages = append(pages, scorePage{ID: mode.ID, Title: mode.Title})
	}
	pages = append(pages, scorePage{ID: hangarPage, Title: "Hangar"})

	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		pages:       pages,
		pageCursor:  0,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadPage()

	return m
}

func (m *ScoreboardModel) onHangar() bool {
	return len(m.pages) > 0 && m.pages[m.pageCursor].ID == hangarPage
}

// columns returns the table layout for the current page.
func (m *ScoreboardModel) columns() []table.Column {
	if m.onHangar() {
		return []table.Column{
			{Title: "Name", Width: 16},
			{Title: "Model", Width: 12},
			{Title: "Thrust", Width: 7},
			{Title: "HP", Width: 5},
			{Title: "Def", Width: 5},
			{Title: "Atk", Width: 5},
			{Title: "", Width: 6},
		}
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Dist", Width: 8},
		{Title: "Hull", Width: 12},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 60; extra > 0 {
		columns[3].Width += min(extra, 8)
	}
	return columns
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := m.columns()

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPage loads scores or ships for the selected page.
func (m *ScoreboardModel) loadPage() {
	m.scores, m.ships = nil, nil
	if len(m.pages) == 0 {
		m.updateTableRows()
		return
	}

	if m.onHangar() {
		m.ships = catalog.DefaultShips()
		if m.store != nil {
			if ships, err := m.store.Ships(); err == nil {
				m.ships = ships
			}
		}
	} else if m.store != nil {
		if scores, err := m.store.TopScores(m.pages[m.pageCursor].ID, maxScores); err == nil {
			m.scores = scores
		}
	}

	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.updateTableRows()
}

// updateTableRows updates the table with the current page.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.onHangar() {
		rows = make([]table.Row, len(m.ships))
		for i, s := range m.ships {
			tag := ""
			if s.IsCustom {
				tag = "custom"
			}
			rows[i] = table.Row{
				s.Name,
				string(s.Model),
				fmt.Sprintf("%.1f", s.Thrust),
				fmt.Sprintf("%+.0f", s.HealthBonus),
				fmt.Sprintf("%.1f", s.Defense),
				fmt.Sprintf("%.1f", s.AttackPower),
				tag,
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%.0f", s.Distance),
				s.Hull,
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.Right):
			if len(m.pages) > 0 {
				m.pageCursor = (m.pageCursor + 1) % len(m.pages)
				m.loadPage()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.Left):
			if len(m.pages) > 0 {
				m.pageCursor--
				if m.pageCursor < 0 {
					m.pageCursor = len(m.pages) - 1
				}
				m.loadPage()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.onHangar() {
		title = "HANGAR"
	} else if len(m.pages) > 0 {
		title = "HIGH SCORES - " + m.pages[m.pageCursor].Title
	}

	var b strings.Builder
	b.WriteString(boardTitle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(boardMuted.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	body := boardBorder.Render(m.renderTableContent())
	if m.showSidebar {
		sidebar := boardBorder.Width(sidebarWidth).Render(m.pageList())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body))
	} else {
		b.WriteString(centerText(m.pageTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(boardMuted.Render(m.help.View(m.keys)))
	return b.String()
}

// summary is the one-line digest under the title.
func (m ScoreboardModel) summary() string {
	if m.onHangar() {
		custom := 0
		for _, s := range m.ships {
			if s.IsCustom {
				custom++
			}
		}
		return fmt.Sprintf("%d hulls, %d custom", len(m.ships), custom)
	}
	if len(m.scores) == 0 {
		return "no runs yet"
	}
	var dist float64
	for _, s := range m.scores {
		dist = max(dist, s.Distance)
	}
	return fmt.Sprintf("best %d  |  farthest %.0f  |  %d runs shown", m.scores[0].Score, dist, len(m.scores))
}

// pageList renders the sidebar of the wide layout.
func (m ScoreboardModel) pageList() string {
	var b strings.Builder
	b.WriteString("Pages\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	maxLen := sidebarWidth - 6
	for i, p := range m.pages {
		name := truncate(p.Title, maxLen)
		if i == m.pageCursor {
			b.WriteString(boardTitle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pageTabs renders the tab row of the narrow layout. When the tabs do not
// fit only the current page is shown.
func (m ScoreboardModel) pageTabs() string {
	if len(m.pages) == 0 {
		return ""
	}
	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		name := truncate(p.Title, 10)
		if i == m.pageCursor {
			tabs[i] = boardActive.Padding(0, 1).Render(name)
		} else {
			tabs[i] = boardMuted.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.pages[m.pageCursor].Title)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 && len(m.ships) == 0 {
		return boardEmpty.Render("No runs recorded yet.\nLaunch a run to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scores and hangar screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
