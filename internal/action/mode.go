package action

// Mode is an enable gate. Current 0 means disabled; any other value enables.
type Mode struct {
	Current int
}

// NewMode returns a mode in the given state.
func NewMode(enabled bool) *Mode {
	m := &Mode{}
	m.Set(enabled)
	return m
}

// Enabled reports whether the mode is on.
func (m *Mode) Enabled() bool {
	return m != nil && m.Current != 0
}

// Set switches the mode on or off.
func (m *Mode) Set(enabled bool) {
	if enabled {
		m.Current = 1
	} else {
		m.Current = 0
	}
}

// Toggle flips the mode.
func (m *Mode) Toggle() {
	m.Set(!m.Enabled())
}

// Toggle is an action that flips a Mode each time it is entered.
type Toggle struct {
	Mode *Mode
}

func (t *Toggle) Enter(_ float64, _ bool) {
	t.Mode.Toggle()
}

func (t *Toggle) Update(float64) {}
func (t *Toggle) Leave()         {}
