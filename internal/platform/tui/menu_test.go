package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/core"
	"github.com/jakobmina/quasar-pro/internal/registry"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return out
}

func TestMenuHullPicker(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	defaults := catalog.DefaultShips()

	if h, ok := m.Hull(); !ok || h.Model != defaults[0].Model {
		t.Fatalf("Hull() = %v, expected %v", h.Model, defaults[0].Model)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if h, _ := m.Hull(); h.Model != defaults[1].Model {
		t.Errorf("after right Hull() = %v, expected %v", h.Model, defaults[1].Model)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if h, _ := m.Hull(); h.Model != defaults[len(defaults)-1].Model {
		t.Errorf("left should wrap, Hull() = %v, expected %v", h.Model, defaults[len(defaults)-1].Model)
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m.modes = []registry.ModeInfo{{ID: "story", Title: "Story"}, {ID: "openworld", Title: "Open"}}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	r := m.result()
	if r.Quit || r.ModeID != "openworld" {
		t.Errorf("result() = %+v, expected openworld", r)
	}
	if r.Hull.Model != catalog.DefaultShips()[1].Model {
		t.Errorf("result().Hull = %v, expected second default hull", r.Hull.Model)
	}

	sb := menuKey(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if r := sb.result(); !r.WantsScoreboard {
		t.Error("tab should request the scoreboard")
	}
}
