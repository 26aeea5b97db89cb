package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

// MenuModel is the Bubble Tea model for the mode and hull picker.
type MenuModel struct {
	modes          []registry.ModeInfo
	hulls          []catalog.ShipConfig
	cursor         int
	hullCursor     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *registry.ModeInfo // Set when user selects a mode
	openScoreboard bool               // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Hulls come from the ship catalog
// when a store is available, otherwise from the built-in table.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		modes:     registry.List(),
		hulls:     loadHulls(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func loadHulls(store *storage.Store) []catalog.ShipConfig {
	if store != nil {
		if ships, err := store.Ships(); err == nil && len(ships) > 0 {
			return ships
		}
	}
	return catalog.DefaultShips()
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if n := len(m.hulls); n > 0 {
			m.hullCursor = (m.hullCursor + n - 1) % n
		}

	case MenuActionRight:
		if n := len(m.hulls); n > 0 {
			m.hullCursor = (m.hullCursor + 1) % n
		}

	case MenuActionSelect:
		if len(m.modes) > 0 {
			selected := m.modes[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuHullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  Q U A S A R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode.Title, m.width))
		b.WriteString("\n")
	}

	if len(m.modes) > 0 {
		b.WriteString("\n")
		b.WriteString(menuDimStyle.Render(centerText(m.modes[m.cursor].Description, m.width)))
		b.WriteString("\n")
	}

	if h, ok := m.Hull(); ok {
		line := fmt.Sprintf("< %s  THR %.1f  HP %+.0f  DEF %.1f  ATK %.1f >",
			h.Name, h.Thrust, h.HealthBonus, h.Defense, h.AttackPower)
		b.WriteString("\n")
		b.WriteString(menuHullStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Mode  |  Left/Right: Hull  |  Enter: Launch  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected mode, or nil if none selected.
func (m MenuModel) Selected() *registry.ModeInfo {
	return m.selected
}

// Hull returns the hull currently shown in the picker.
func (m MenuModel) Hull() (catalog.ShipConfig, bool) {
	if len(m.hulls) == 0 {
		return catalog.ShipConfig{}, false
	}
	return m.hulls[m.hullCursor], true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ModeID          string
	Hull            catalog.ShipConfig
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		r.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		r.Quit = true
	default:
		r.ModeID = m.Selected().ID
		r.Hull, _ = m.Hull()
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
