package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// HoldTicks is how many ticks a flight key stays held after one key event.
// Terminals only report presses; auto-repeat refreshes the hold.
const HoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionThrust, false
	case "s", "down":
		return core.ActionReverse, false
	case "a", "left":
		return core.ActionTurnLeft, false
	case "d", "right":
		return core.ActionTurnRight, false
	case " ":
		return core.ActionFire, false
	case "e":
		return core.ActionSpecial, false
	case "tab":
		return core.ActionNextWeapon, false
	case "x":
		return core.ActionAdvise, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Continuous reports whether an action is a flight control that should be
// held between key events rather than pulsed for one tick.
func Continuous(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionReverse, core.ActionTurnLeft, core.ActionTurnRight, core.ActionFire:
		return true
	}
	return false
}

var opposite = map[core.Action]core.Action{
	core.ActionThrust:    core.ActionReverse,
	core.ActionReverse:   core.ActionThrust,
	core.ActionTurnLeft:  core.ActionTurnRight,
	core.ActionTurnRight: core.ActionTurnLeft,
}

// HeldInput turns discrete key presses into per-tick input frames.
// Flight controls stay held for HoldTicks; everything else fires once.
type HeldInput struct {
	hold  map[core.Action]int
	pulse core.InputFrame
}

// NewHeldInput creates an empty input tracker.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		hold:  make(map[core.Action]int),
		pulse: core.NewInputFrame(),
	}
}

// Press registers one key event.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !Continuous(a) {
		h.pulse.Set(a)
		return
	}
	// Pressing the opposite direction cancels the current hold.
	if o, ok := opposite[a]; ok {
		delete(h.hold, o)
	}
	h.hold[a] = HoldTicks
	// Fire also pulses so launch and confirm screens react to space.
	if a == core.ActionFire {
		h.pulse.Set(a)
	}
}

// Frame returns the input for the current tick.
func (h *HeldInput) Frame() core.InputFrame {
	f := h.pulse.Clone()
	for a := range h.hold {
		f.Set(a)
	}
	return f
}

// Advance ages held keys and drops pulses after a tick.
func (h *HeldInput) Advance() {
	for a, n := range h.hold {
		if n <= 1 {
			delete(h.hold, a)
			continue
		}
		h.hold[a] = n - 1
	}
	h.pulse.Clear()
}

// Release drops everything, e.g. after a pause or a reset.
func (h *HeldInput) Release() {
	for a := range h.hold {
		delete(h.hold, a)
	}
	h.pulse.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
