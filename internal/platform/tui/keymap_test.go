package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakobmina/quasar-pro/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w thrust", runeKey('w'), core.ActionThrust, false},
		{"up thrust", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"s reverse", runeKey('s'), core.ActionReverse, false},
		{"left turn", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft, false},
		{"d turn", runeKey('d'), core.ActionTurnRight, false},
		{"space fire", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"e special", runeKey('e'), core.ActionSpecial, false},
		{"tab weapon", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextWeapon, false},
		{"x advise", runeKey('x'), core.ActionAdvise, false},
		{"enter confirm", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc pause", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restart", runeKey('r'), core.ActionRestart, false},
		{"q quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHeldInputHoldsFlightKeys(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionThrust)

	for i := 0; i < HoldTicks; i++ {
		if !h.Frame().Has(core.ActionThrust) {
			t.Fatalf("thrust released after %d ticks, expected %d", i, HoldTicks)
		}
		h.Advance()
	}
	if h.Frame().Has(core.ActionThrust) {
		t.Error("thrust should expire after HoldTicks without a repeat")
	}
}

func TestHeldInputPulsesToggles(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionNextWeapon)
	h.Press(core.ActionSpecial)

	f := h.Frame()
	if !f.Has(core.ActionNextWeapon) || !f.Has(core.ActionSpecial) {
		t.Fatal("toggles should be present for one tick")
	}
	h.Advance()
	if h.Frame().Has(core.ActionNextWeapon) || h.Frame().Has(core.ActionSpecial) {
		t.Error("toggles should last exactly one tick")
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionTurnLeft)
	h.Press(core.ActionTurnRight)

	f := h.Frame()
	if f.Has(core.ActionTurnLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionTurnRight) {
		t.Error("right should be held")
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionFire)
	h.Press(core.ActionPause)
	h.Release()

	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("Frame() after Release = %v, expected empty", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
