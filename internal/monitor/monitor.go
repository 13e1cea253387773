// Package monitor shows a trace replay in the terminal.
package monitor

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/replay"
	"github.com/Faultbox/roomscale/internal/roomscale"
)

// minTick keeps zero-length frames from spinning the event loop.
const minTick = time.Millisecond

type tickMsg struct{}

// Model is the bubbletea model of the replay monitor.
type Model struct {
	player *replay.Player
	keys   *action.Recorder
	speed  float64
	paused bool
}

// New creates a monitor for player. keys must be the sink the translator was bound to.
func New(player *replay.Player, keys *action.Recorder, speed float64) Model {
	if speed <= 0 {
		speed = 1
	}
	return Model{player: player, keys: keys, speed: speed}
}

// Init implements tea.Model interface.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	d := time.Duration(float64(m.player.NextDelta()) / m.speed * float64(time.Second))
	return tea.Tick(max(d, minTick), func(time.Time) tea.Msg { return tickMsg{} })
}

// Update implements tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.player.Finish()
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		case "r":
			m.player.Recenter()
		case "home":
			m.player.Rewind()
			if m.paused {
				return m, nil
			}
			return m, m.tick()
		case "right":
			// Single-step while paused
			if m.paused {
				m.player.Step()
			}
		}

	case tickMsg:
		if m.paused {
			return m, nil
		}
		if !m.player.Step() {
			m.player.Finish()
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model interface.
func (m Model) View() string {
	var b strings.Builder

	state := "playing"
	switch {
	case m.player.Done():
		state = "finished"
	case m.paused:
		state = "paused"
	}

	b.WriteString("roomscale replay\n")
	b.WriteString("================\n\n")
	fmt.Fprintf(&b, "frame %d/%d  t=%.2fs  %s\n\n",
		m.player.Index(), len(m.player.Steps), m.player.Current().Time, state)

	for _, a := range m.player.Translator.Axes() {
		enabled := " "
		if a.Enabled() {
			enabled = "*"
		}
		fmt.Fprintf(&b, "%s %-10s current %+7.3f  target %+7.3f  center %+7.3f  %-8s %s\n",
			enabled, a.Name, a.Current, a.Target, a.Center, a.Direction, bar(a))
	}

	b.WriteString("\nheld: ")
	b.WriteString(m.heldKeys())
	b.WriteString("\n\n(space pause, → step, r recenter, home rewind, q quit)")

	return b.String()
}

// heldKeys lists the keys that are down, in the order they were pressed.
func (m Model) heldKeys() string {
	var held []string
	seen := map[string]bool{}
	for _, e := range m.keys.Events {
		if e.Down && m.keys.Held(e.Key) && !seen[e.Key] {
			held = append(held, e.Key)
			seen[e.Key] = true
		}
	}
	if len(held) == 0 {
		return "-"
	}
	return strings.Join(held, " ")
}

// bar renders the offset of Current from Center as a 21-cell gauge.
func bar(a *roomscale.Axis) string {
	const half = 10
	cells := []rune(strings.Repeat("·", 2*half+1))
	cells[half] = '|'

	n := int((a.Current - a.Center) * 4)
	n = max(-half, min(n, half))
	mark := '#'
	switch a.Direction {
	case roomscale.DirectionPositive:
		mark = '>'
	case roomscale.DirectionNegative:
		mark = '<'
	case roomscale.DirectionCenter:
		mark = 'o'
	}
	cells[half+n] = mark
	return string(cells)
}
