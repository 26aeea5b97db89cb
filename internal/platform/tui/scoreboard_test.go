package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

func boardKey(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	b, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ScoreboardModel", next)
	}
	return b
}

func TestScoreboardHangarIsLastPage(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.pages) == 0 || m.pages[len(m.pages)-1].ID != hangarPage {
		t.Fatalf("pages = %v, expected hangar last", m.pages)
	}
}

func TestScoreboardPages(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.ScoreEntry{Mode: "story", Score: 900, Distance: 1200, Hull: "Titan"}); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	m.pages = []scorePage{{ID: "story", Title: "Story"}, {ID: hangarPage, Title: "Hangar"}}
	m.loadPage()

	if len(m.scores) != 1 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %v, expected the saved run", m.scores)
	}
	if got := m.summary(); !strings.Contains(got, "best 900") || !strings.Contains(got, "farthest 1200") {
		t.Errorf("summary() = %q, expected best and farthest", got)
	}

	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.onHangar() {
		t.Fatal("tab should move to the hangar")
	}
	if len(m.ships) != len(catalog.DefaultShips()) {
		t.Errorf("len(ships) = %d, expected %d", len(m.ships), len(catalog.DefaultShips()))
	}
	if got := m.summary(); got != "7 hulls, 0 custom" {
		t.Errorf("summary() = %q, expected %q", got, "7 hulls, 0 custom")
	}

	// Wraps back to the first page
	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.pageCursor != 0 {
		t.Errorf("pageCursor = %d, expected 0", m.pageCursor)
	}
	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.pageCursor != 1 {
		t.Errorf("pageCursor = %d after shift+tab, expected 1", m.pageCursor)
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	m = boardKey(t, m, runeKey('b'))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back without quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty once leaving")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Hangar", 10, "Hangar"},
		{"Quasar: Open World", 10, "Quasar: O."},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.expected)
		}
	}
}
