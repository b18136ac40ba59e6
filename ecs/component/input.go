package component

// Action is a logical input the simulation understands. Hosts map keys to actions.
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionCollect
	ActionQuickReset

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBack:
		return "back"
	case ActionStrafeLeft:
		return "strafe_left"
	case ActionStrafeRight:
		return "strafe_right"
	case ActionCollect:
		return "collect"
	case ActionQuickReset:
		return "quick_reset"
	default:
		return "unknown"
	}
}

func (a Action) Valid() bool {
	return a < actionCount
}

// Held is the directional subset of the input for one frame.
type Held struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

func (h Held) Any() bool {
	return h.Forward || h.Back || h.Left || h.Right
}

// Input stores the held keys plus the edges and pointer deltas gathered since
// the last EndFrame.
type Input struct {
	held    [actionCount]bool
	pressed [actionCount]bool

	DragX  float64
	DragY  float64
	Scroll float64
}

func (in *Input) Press(a Action) {
	if in == nil || !a.Valid() {
		return
	}
	if !in.held[a] {
		in.pressed[a] = true
	}
	in.held[a] = true
}

func (in *Input) Release(a Action) {
	if in == nil || !a.Valid() {
		return
	}
	in.held[a] = false
}

// Set presses or releases a depending on down.
func (in *Input) Set(a Action, down bool) {
	if down {
		in.Press(a)
		return
	}
	in.Release(a)
}

func (in *Input) IsHeld(a Action) bool {
	if in == nil || !a.Valid() {
		return false
	}
	return in.held[a]
}

// JustPressed reports whether a went down during the current frame.
func (in *Input) JustPressed(a Action) bool {
	if in == nil || !a.Valid() {
		return false
	}
	return in.pressed[a]
}

func (in *Input) Directional() Held {
	if in == nil {
		return Held{}
	}
	return Held{
		Forward: in.held[ActionForward],
		Back:    in.held[ActionBack],
		Left:    in.held[ActionStrafeLeft],
		Right:   in.held[ActionStrafeRight],
	}
}

func (in *Input) AddDrag(dx, dy float64) {
	if in == nil {
		return
	}
	in.DragX += dx
	in.DragY += dy
}

func (in *Input) AddScroll(delta float64) {
	if in == nil {
		return
	}
	in.Scroll += delta
}

// EndFrame clears edges and pointer deltas. Held keys persist.
func (in *Input) EndFrame() {
	if in == nil {
		return
	}
	in.pressed = [actionCount]bool{}
	in.DragX, in.DragY, in.Scroll = 0, 0, 0
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (in *Input) ReleaseAll() {
	if in == nil {
		return
	}
	in.held = [actionCount]bool{}
}
