package core

// Control is one of the physical buttons of the device, abstracted from
// whatever the front-end actually reads (terminal keys, window keys, pins).
type Control int

const (
	ControlLeft  Control = iota // Move ship left
	ControlRight                // Move ship right
	ControlFire                 // Fire

	controlCount
)

// Controls lists every control in a stable order.
var Controls = [...]Control{ControlLeft, ControlRight, ControlFire}

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// InputState reports which controls are held down. Answers must be stable
// for the duration of one tick.
type InputState interface {
	Pressed(c Control) bool
	AnyPressed() bool
}

// InputFrame is a snapshot of the held controls for a single tick.
type InputFrame struct {
	held [controlCount]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputFrameOf creates a frame with the given controls held.
func InputFrameOf(controls ...Control) InputFrame {
	var f InputFrame
	for _, c := range controls {
		f.Set(c)
	}
	return f
}

// Set marks a control as held for this frame.
func (f *InputFrame) Set(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	f.held[c] = true
}

// Pressed returns true if the given control is held this frame.
func (f InputFrame) Pressed(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return f.held[c]
}

// AnyPressed returns true if at least one control is held.
func (f InputFrame) AnyPressed() bool {
	for _, h := range f.held {
		if h {
			return true
		}
	}
	return false
}

// Clear releases all controls.
func (f *InputFrame) Clear() {
	f.held = [controlCount]bool{}
}

// Snapshot copies the current answers of any InputState into a frame.
func Snapshot(in InputState) InputFrame {
	var f InputFrame
	for _, c := range Controls {
		if in.Pressed(c) {
			f.Set(c)
		}
	}
	return f
}

// HeldInput turns discrete key events into held-button state.
// Terminals only report presses (and auto-repeats), never releases, so a
// control counts as held for a few ticks after its last event.
type HeldInput struct {
	until [controlCount]int
	tick  int
	hold  int
}

// NewHeldInput creates a tracker where each event holds its control for
// holdTicks ticks. Values below 1 are treated as 1.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{hold: Max(holdTicks, 1)}
}

// Press records an event for c during the current tick.
func (h *HeldInput) Press(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	h.until[c] = h.tick + h.hold
}

// Pressed reports whether c is still considered held.
func (h *HeldInput) Pressed(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return h.tick < h.until[c]
}

// AnyPressed reports whether any control is still held.
func (h *HeldInput) AnyPressed() bool {
	for _, c := range Controls {
		if h.Pressed(c) {
			return true
		}
	}
	return false
}

// Advance moves to the next tick; holds expire as ticks pass.
func (h *HeldInput) Advance() {
	h.tick++
}

// Release drops every held control immediately.
func (h *HeldInput) Release() {
	h.until = [controlCount]int{}
}

var (
	_ InputState = InputFrame{}
	_ InputState = (*HeldInput)(nil)
)
