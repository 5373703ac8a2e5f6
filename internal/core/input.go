package core

// Action represents a semantic session action, abstracted from physical input.
// This allows sessions to work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionPress          // control pressed (Cosmic Balance hold)
	ActionRelease        // control released
	ActionTap            // tap carried in InputFrame.Taps
	ActionStart          // leave Ready / restart after results
	ActionExit           // end the session (terminal for endless games)
	ActionPause          // toggle pause
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // menu selection
	ActionBack           // leave a sub-screen
	ActionQuit           // leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	case ActionTap:
		return "Tap"
	case ActionStart:
		return "Start"
	case ActionExit:
		return "Exit"
	case ActionPause:
		return "Pause"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// TapKind discriminates the payload of a Tap.
type TapKind int

const (
	TapPoint  TapKind = iota // a coordinate in play-area units
	TapCell                  // a grid cell index
	TapObject                // a live object identifier
)

// Tap is a single tap event. The payload used depends on Kind.
type Tap struct {
	Kind   TapKind
	At     Point
	Cell   int
	Object uint64
}

// TapAt creates a coordinate tap.
func TapAt(x, y float64) Tap {
	return Tap{Kind: TapPoint, At: Point{X: x, Y: y}}
}

// TapCellIndex creates a grid cell tap.
func TapCellIndex(i int) Tap {
	return Tap{Kind: TapCell, Cell: i}
}

// TapObjectID creates an object tap.
func TapObjectID(id uint64) Tap {
	return Tap{Kind: TapObject, Object: id}
}

// InputFrame represents the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Taps are applied in arrival order.
	Taps []Tap
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

// AddTap queues a tap for this frame and marks ActionTap.
func (f *InputFrame) AddTap(t Tap) {
	f.Set(ActionTap)
	f.Taps = append(f.Taps, t)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether the frame carries no input.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Taps) == 0
}

// Merge folds another frame into this one, keeping tap order.
func (f *InputFrame) Merge(o InputFrame) {
	for a, on := range o.Actions {
		if on {
			f.Set(a)
		}
	}
	f.Taps = append(f.Taps, o.Taps...)
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Merge(f)
	return clone
}
