package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionThrust            // W, Up arrow
	ActionReverse           // S, Down arrow
	ActionTurnLeft          // A, Left arrow
	ActionTurnRight         // D, Right arrow
	ActionFire              // Space
	ActionSpecial           // E - quantum purge
	ActionNextWeapon        // Tab
	ActionAdvise            // X - ask the advisory service
	ActionConfirm           // Enter
	ActionBack              // B
	ActionRestart           // R
	ActionQuit              // Q, Ctrl+C
	ActionPause             // P, Escape
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionThrust:     "Thrust",
	ActionReverse:    "Reverse",
	ActionTurnLeft:   "TurnLeft",
	ActionTurnRight:  "TurnRight",
	ActionFire:       "Fire",
	ActionSpecial:    "Special",
	ActionNextWeapon: "NextWeapon",
	ActionAdvise:     "Advise",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionRestart:    "Restart",
	ActionQuit:       "Quit",
	ActionPause:      "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Joystick is the virtual stick state for one frame.
// Thrust is the normalized stick magnitude in [0, 1].
type Joystick struct {
	Active bool
	Angle  float64
	Thrust float64
}

// StickFromOffset builds a Joystick from a knob offset (dx, dy in screen
// coordinates) and the stick radius. Magnitude saturates at the radius.
func StickFromOffset(dx, dy, radius float64) Joystick {
	if radius <= 0 {
		return Joystick{}
	}
	mag := Vec2{X: dx, Y: dy}.Len()
	if mag == 0 {
		return Joystick{Active: true}
	}
	return Joystick{
		Active: true,
		Angle:  Vec2{}.Bearing(Vec2{X: dx, Y: dy}),
		Thrust: ClampF(mag/radius, 0, 1),
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
	Stick   Joystick
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the stick for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Stick = Joystick{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Stick = f.Stick
	return clone
}
