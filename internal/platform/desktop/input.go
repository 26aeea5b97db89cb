package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jakobmina/quasar-pro/internal/core"
)

// stickRadius is the travel of the on-screen touch stick in pixels.
const stickRadius = 70.0

var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionThrust:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionReverse:   {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionTurnLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionTurnRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:      {ebiten.KeySpace},
}

var toggleKeys = map[core.Action][]ebiten.Key{
	core.ActionSpecial:    {ebiten.KeyE},
	core.ActionNextWeapon: {ebiten.KeyTab},
	core.ActionAdvise:     {ebiten.KeyX},
	core.ActionConfirm:    {ebiten.KeyEnter},
	core.ActionPause:      {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart:    {ebiten.KeyR},
}

var toggleButtons = map[core.Action]ebiten.StandardGamepadButton{
	core.ActionSpecial:    ebiten.StandardGamepadButtonRightRight,
	core.ActionNextWeapon: ebiten.StandardGamepadButtonRightTop,
	core.ActionAdvise:     ebiten.StandardGamepadButtonRightLeft,
	core.ActionPause:      ebiten.StandardGamepadButtonCenterRight,
}

// touchStick is the virtual joystick of a touch screen. The first touch on
// the left half anchors the stick; touches on the right half fire.
type touchStick struct {
	id     ebiten.TouchID
	active bool
	anchor core.Vec2
}

// input polls keyboard, gamepads and touches into one frame per tick.
type input struct {
	stick   touchStick
	touches []ebiten.TouchID
	pads    []ebiten.GamepadID
}

func (in *input) poll(width int) core.InputFrame {
	f := core.NewInputFrame()

	for a, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(a)
			}
		}
	}
	for a, keys := range toggleKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Set(a)
			}
		}
	}

	in.pollGamepads(&f)
	in.pollTouches(&f, width)
	return f
}

func (in *input) pollGamepads(f *core.InputFrame) {
	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for _, id := range in.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if s := core.StickFromOffset(x, y, 1); s.Thrust > f.Stick.Thrust {
			f.Stick = s
		}

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			f.Set(core.ActionFire)
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			f.Set(core.ActionConfirm)
		}
		for a, b := range toggleButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				f.Set(a)
			}
		}
	}
}

func (in *input) pollTouches(f *core.InputFrame, width int) {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if x < width/2 && !in.stick.active {
			in.stick = touchStick{id: id, active: true, anchor: core.V(float64(x), float64(y))}
		} else {
			f.Set(core.ActionConfirm)
		}
	}
	if in.stick.active && inpututil.IsTouchJustReleased(in.stick.id) {
		in.stick.active = false
	}

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		if in.stick.active && id == in.stick.id {
			f.Stick = core.StickFromOffset(float64(x)-in.stick.anchor.X, float64(y)-in.stick.anchor.Y, stickRadius)
			continue
		}
		if x >= width/2 {
			f.Set(core.ActionFire)
		}
	}
}
