package pose

import (
	"fmt"
	gomath "math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/roomscale/pkg/math"
)

// Frame is one recorded headset sample. Angles are in radians.
type Frame struct {
	Time     float64    `yaml:"t"`
	Position [3]float32 `yaml:"position"`
	Yaw      float32    `yaml:"yaw"`
	Pitch    float32    `yaml:"pitch"`
}

// Pose converts the frame into a HeadPose.
func (f Frame) Pose() HeadPose {
	pos := math.Vec3{X: f.Position[0], Y: f.Position[1], Z: f.Position[2]}
	return FromYawPitch(pos, f.Yaw, f.Pitch)
}

// Trace is a recorded head motion, as written by the simulator or a capture tool.
type Trace struct {
	Name   string  `yaml:"name"`
	Frames []Frame `yaml:"frames"`
}

// LoadTrace reads and validates a YAML trace file.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parsing trace %s: %w", path, err)
	}
	if err := tr.Validate(); err != nil {
		return nil, fmt.Errorf("trace %s: %w", path, err)
	}
	return &tr, nil
}

// Save writes the trace as YAML.
func (tr *Trace) Save(path string) error {
	data, err := yaml.Marshal(tr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the trace has frames with strictly increasing times.
func (tr *Trace) Validate() error {
	if len(tr.Frames) == 0 {
		return fmt.Errorf("no frames")
	}
	for i := 1; i < len(tr.Frames); i++ {
		if tr.Frames[i].Time <= tr.Frames[i-1].Time {
			return fmt.Errorf("frame %d: time %v does not follow %v", i, tr.Frames[i].Time, tr.Frames[i-1].Time)
		}
	}
	return nil
}

// Duration returns the time between the first and last frame.
func (tr *Trace) Duration() float64 {
	return tr.Frames[len(tr.Frames)-1].Time - tr.Frames[0].Time
}

// At returns the pose at time t, interpolating between neighbouring frames.
// Times outside the trace clamp to the first or last frame.
func (tr *Trace) At(t float64) HeadPose {
	first, last := tr.Frames[0], tr.Frames[len(tr.Frames)-1]
	if t <= first.Time {
		return first.Pose()
	}
	if t >= last.Time {
		return last.Pose()
	}

	// Binary search for the first frame after t
	lo, hi := 0, len(tr.Frames)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if tr.Frames[mid].Time <= t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	a, b := tr.Frames[lo-1], tr.Frames[lo]
	k := float32((t - a.Time) / (b.Time - a.Time))
	return a.Pose().Lerp(b.Pose(), k)
}

// Step is one frame of playback.
type Step struct {
	Time  float64
	Delta float32
	Pose  HeadPose
}

// Steps resamples the trace at fps frames per second. With fps 0 the
// recorded frames are returned as they are.
func (tr *Trace) Steps(fps int) []Step {
	start := tr.Frames[0].Time

	if fps <= 0 {
		steps := make([]Step, len(tr.Frames))
		for i, f := range tr.Frames {
			steps[i] = Step{Time: f.Time - start, Pose: f.Pose()}
			if i > 0 {
				steps[i].Delta = float32(f.Time - tr.Frames[i-1].Time)
			}
		}
		return steps
	}

	dt := 1.0 / float64(fps)
	// The epsilon keeps a final frame that lands exactly on the end time
	n := int(gomath.Floor(tr.Duration()/dt+1e-9)) + 1
	steps := make([]Step, n)
	for i := range steps {
		t := float64(i) * dt
		steps[i] = Step{Time: t, Pose: tr.At(start + t)}
		if i > 0 {
			steps[i].Delta = float32(dt)
		}
	}
	return steps
}

// Recorder appends poses to a trace, e.g. from the simulator.
type Recorder struct {
	Trace Trace
}

// Record appends a sample taken at time t.
func (r *Recorder) Record(t float64, p HeadPose) {
	yaw, pitch := p.YawPitch()
	r.Trace.Frames = append(r.Trace.Frames, Frame{
		Time:     t,
		Position: [3]float32{p.Position.X, p.Position.Y, p.Position.Z},
		Yaw:      yaw,
		Pitch:    pitch,
	})
}
