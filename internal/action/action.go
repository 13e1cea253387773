// Package action implements the discrete effects driven by roomscale axes.
//
// An Action has a three-step lifecycle: Enter when its direction becomes
// active, Update on every following frame while it stays active, and Leave
// when the direction ends. Times are seconds on the caller's frame clock.
package action

// Action is a discrete effect with an enter/update/leave lifecycle.
type Action interface {
	// Enter starts the action. retrigger restarts an action that is already running.
	Enter(now float64, retrigger bool)

	// Update is called every frame while the action stays entered.
	Update(now float64)

	// Leave ends the action.
	Leave()
}

// Nop is an action that does nothing.
type Nop struct{}

func (Nop) Enter(float64, bool) {}
func (Nop) Update(float64)      {}
func (Nop) Leave()              {}

// Multi runs several actions as one, in order.
type Multi []Action

// Enter enters every action.
func (m Multi) Enter(now float64, retrigger bool) {
	for _, a := range m {
		a.Enter(now, retrigger)
	}
}

// Update updates every action.
func (m Multi) Update(now float64) {
	for _, a := range m {
		a.Update(now)
	}
}

// Leave leaves every action in reverse order, so modifier keys release last.
func (m Multi) Leave() {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].Leave()
	}
}
