// Package replay plays recorded head motion through a translator.
package replay

import (
	"github.com/Faultbox/roomscale/internal/pose"
	"github.com/Faultbox/roomscale/internal/roomscale"
)

// Player steps a translator through a trace, one frame per Step.
type Player struct {
	Translator *roomscale.Translator
	Steps      []pose.Step

	index int
}

// NewPlayer creates a player and anchors the translator at the first frame.
func NewPlayer(tr *roomscale.Translator, steps []pose.Step) *Player {
	p := &Player{Translator: tr, Steps: steps}
	p.Rewind()
	return p
}

// Rewind resets the translator to the first frame.
func (p *Player) Rewind() {
	p.index = 0
	if len(p.Steps) > 0 {
		p.Translator.Reset(p.Steps[0].Pose)
	}
}

// Recenter makes the pose of the last played frame the neutral pose.
func (p *Player) Recenter() {
	if len(p.Steps) == 0 {
		return
	}
	i := max(p.index-1, 0)
	p.Translator.Reset(p.Steps[i].Pose)
}

// Step plays the next frame. It returns false once the trace is exhausted.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	s := p.Steps[p.index]
	p.Translator.Update(s.Time, s.Delta, s.Pose)
	p.index++
	return true
}

// Run plays every remaining frame and releases held actions at the end.
func (p *Player) Run() {
	for p.Step() {
	}
	p.Finish()
}

// Finish leaves every entered action.
func (p *Player) Finish() {
	for _, a := range p.Translator.Axes() {
		a.ForceStop()
	}
}

// Done reports whether all frames have been played.
func (p *Player) Done() bool {
	return p.index >= len(p.Steps)
}

// Index returns the number of frames played.
func (p *Player) Index() int {
	return p.index
}

// Current returns the last played frame, or the first frame before playback.
// An empty player returns the zero step.
func (p *Player) Current() pose.Step {
	if len(p.Steps) == 0 {
		return pose.Step{}
	}
	return p.Steps[max(p.index-1, 0)]
}

// NextDelta returns the frame time of the next step, or 0 when done.
func (p *Player) NextDelta() float32 {
	if p.Done() {
		return 0
	}
	return p.Steps[p.index].Delta
}
