package roomscale

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/logger"
)

// callLog is shared by the spies of one or more axes so tests can check ordering
// and how many actions are entered at once.
type callLog struct {
	calls   []string
	entered int
	maxOpen int
}

// spy is an action that records its lifecycle calls.
type spy struct {
	name    string
	log     *callLog
	enters  int
	updates int
	leaves  int
	open    bool
}

func newSpy(name string, log *callLog) *spy {
	return &spy{name: name, log: log}
}

func (p *spy) Enter(now float64, retrigger bool) {
	p.enters++
	p.open = true
	p.log.entered++
	p.log.maxOpen = max(p.log.maxOpen, p.log.entered)
	p.log.calls = append(p.log.calls, fmt.Sprintf("%s.enter(%v)", p.name, retrigger))
}

func (p *spy) Update(now float64) {
	p.updates++
	p.log.calls = append(p.log.calls, p.name+".update")
}

func (p *spy) Leave() {
	p.leaves++
	p.open = false
	p.log.entered--
	p.log.calls = append(p.log.calls, p.name+".leave")
}

type axisFixture struct {
	axis             *Axis
	mode             *action.Mode
	neg, pos, center *spy
	log              *callLog
}

func newAxisFixture(withCenter bool) *axisFixture {
	f := &axisFixture{log: &callLog{}, mode: action.NewMode(true)}
	f.neg = newSpy("neg", f.log)
	f.pos = newSpy("pos", f.log)
	f.axis = NewAxis("test", f.mode)
	f.axis.Sensitivity = 1
	f.axis.Negative = f.neg
	f.axis.Positive = f.pos
	if withCenter {
		f.center = newSpy("center", f.log)
		f.axis.CenterAction = f.center
	}
	return f
}

func TestNewAxisDefaults(t *testing.T) {
	a := NewAxis("yaw", action.NewMode(true))

	assert.Equal(t, float32(1.25), a.Sensitivity)
	assert.Equal(t, float32(0.05), a.CenterEpsilon)
	assert.Equal(t, float32(100000), a.HoldThreshold)
	assert.True(t, a.Centered)
	assert.Equal(t, DirectionNone, a.Direction)
	assert.Nil(t, a.CenterAction)
}

func TestAxisDisabledIsNoop(t *testing.T) {
	f := newAxisFixture(true)
	f.mode.Set(false)

	f.axis.Update(0, 1, 5)
	f.axis.StopMovement()

	assert.Equal(t, float32(0), f.axis.Current)
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Empty(t, f.log.calls)

	var nilGate *action.Mode
	a := NewAxis("nil gate", nilGate)
	a.Update(0, 1, 5)
	assert.Equal(t, float32(0), a.Current)
}

func TestAxisEntersPositive(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.5, 0.5)

	assert.Equal(t, float32(0.5), f.axis.Current)
	assert.Equal(t, DirectionPositive, f.axis.Direction)
	assert.False(t, f.axis.Centered)
	assert.Equal(t, 1, f.pos.enters)
	assert.Equal(t, []string{"pos.enter(false)"}, f.log.calls)
}

func TestAxisRateLimitsAndUpdates(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.25, 1)
	assert.Equal(t, float32(0.25), f.axis.Current)

	f.axis.Update(0.25, 0.25, 1)
	assert.Equal(t, float32(0.5), f.axis.Current)

	assert.Equal(t, 1, f.pos.enters)
	assert.Equal(t, 1, f.pos.updates)
	assert.Equal(t, 0, f.pos.leaves)
}

func TestAxisStopsWithinOneFrameOfTarget(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.5, 0.5)
	require.Equal(t, DirectionPositive, f.axis.Direction)

	// Holding another frame would overshoot: the key is released.
	f.axis.Update(0.5, 0.5, 0.6)
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Equal(t, float32(0.5), f.axis.Current)
	assert.Equal(t, 1, f.pos.leaves)

	// A gap smaller than one frame of movement never starts an action.
	g := newAxisFixture(false)
	g.axis.Update(0, 1, 0.5)
	assert.Equal(t, DirectionNone, g.axis.Direction)
	assert.Equal(t, float32(0), g.axis.Current)
	assert.Empty(t, g.log.calls)
}

func TestAxisHoldThresholdPinsDirection(t *testing.T) {
	f := newAxisFixture(false)
	f.axis.HoldThreshold = 0.4

	f.axis.Update(0, 1, 0.5)
	assert.Equal(t, float32(0.5), f.axis.Current)
	assert.Equal(t, 1, f.pos.enters)

	// Target unchanged but past the threshold: keep holding.
	f.axis.Update(1, 1, 0.5)
	assert.Equal(t, float32(0.5), f.axis.Current)
	assert.Equal(t, 1, f.pos.enters)
	assert.Equal(t, 1, f.pos.updates)
	assert.Equal(t, 0, f.pos.leaves)

	// Same on the negative side.
	f.axis.Update(2, 1, -0.5)
	f.axis.Update(3, 1, -0.5)
	assert.Equal(t, float32(-0.5), f.axis.Current)
	assert.Equal(t, DirectionNegative, f.axis.Direction)
	assert.Equal(t, 1, f.neg.enters)
	assert.Equal(t, 1, f.neg.updates)
}

func TestAxisCentering(t *testing.T) {
	f := newAxisFixture(true)
	f.axis.CenterEpsilon = 0.05

	f.axis.Update(0, 0.25, 0.5)
	f.axis.Update(0.25, 0.25, 0.5)
	require.Equal(t, float32(0.5), f.axis.Current)
	require.Equal(t, DirectionPositive, f.axis.Direction)

	// Target returns to the neutral zone: release, snap and center.
	f.axis.Update(0.5, 0.25, 0.01)

	assert.Equal(t, float32(0), f.axis.Current)
	assert.Equal(t, DirectionCenter, f.axis.Direction)
	assert.Equal(t, []string{
		"pos.enter(false)",
		"pos.update",
		"pos.leave",
		"center.enter(false)",
	}, f.log.calls)

	// Reaching the target releases the center action.
	f.axis.Update(0.75, 0.25, 0.01)
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Equal(t, 1, f.center.leaves)
}

func TestAxisCenteredAfterCenterActionCompletes(t *testing.T) {
	f := newAxisFixture(true)

	f.axis.Update(0, 0.25, 0.5)
	f.axis.Update(0.25, 0.25, 0)
	require.Equal(t, DirectionCenter, f.axis.Direction)
	require.False(t, f.axis.Centered)

	// With the axis a full frame away from the neutral zone again, the
	// next centered target ends the center action and marks the axis centered.
	f.axis.Current = 0.5
	f.axis.Update(0.5, 0.25, 0)
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.True(t, f.axis.Centered)
	assert.Equal(t, float32(0.5), f.axis.Current)

	// Once centered, returning to the neutral zone does not re-enter it.
	f.axis.Update(0.75, 0.25, 0)
	assert.Equal(t, 1, f.center.enters)
}

func TestAxisCenterJitterReentersCenterAction(t *testing.T) {
	f := newAxisFixture(true)
	f.axis.Sensitivity = 0.1

	// Current snaps to center and the follow-up frame ends the center action
	// through the stop guard, so Centered is never set and every small
	// excursion inside the neutral zone enters the center action again.
	targets := []float32{0.5, 0, 0, 0.03, 0, 0.03, 0}
	for i, target := range targets {
		f.axis.Update(float64(i)*0.1, 0.1, target)
	}

	assert.Equal(t, 1, f.pos.enters)
	assert.Equal(t, 3, f.center.enters)
	assert.Equal(t, 3, f.center.leaves)
	assert.False(t, f.axis.Centered)
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Equal(t, []string{
		"pos.enter(false)",
		"pos.leave",
		"center.enter(false)",
		"center.leave",
		"center.enter(false)",
		"center.leave",
		"center.enter(false)",
		"center.leave",
	}, f.log.calls)
}

func TestAxisLogsTransitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axis.log")
	require.NoError(t, logger.InitWithFileConfig("debug", logger.FileConfig{Path: path}, false))
	t.Cleanup(func() {
		logger.Log = zap.NewNop()
		logger.Sugar = logger.Log.Sugar()
	})

	f := newAxisFixture(false)
	f.axis.Name = "yaw"
	f.axis.Update(0, 0.25, 1)
	f.axis.StopMovement()
	logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, "axis enter")
	assert.Contains(t, out, "axis leave")
	assert.Contains(t, out, "yaw")
	assert.Contains(t, out, "positive")
}

func TestAxisWithoutCenterActionMovesBack(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.25, 0.5)
	f.axis.Update(0.25, 0.25, 0)

	assert.Equal(t, float32(0), f.axis.Current)
	assert.Equal(t, DirectionNegative, f.axis.Direction)
	assert.Equal(t, []string{"pos.enter(false)", "pos.leave", "neg.enter(false)"}, f.log.calls)
}

func TestAxisReversal(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.5, 1)
	f.axis.Update(0.5, 0.5, -1)

	assert.Equal(t, float32(0), f.axis.Current)
	assert.Equal(t, DirectionNegative, f.axis.Direction)
	assert.Equal(t, 1, f.pos.leaves)
	assert.Equal(t, 1, f.neg.enters)
}

func TestAxisStopMovement(t *testing.T) {
	f := newAxisFixture(false)

	// Nothing entered: no call
	f.axis.StopMovement()
	assert.Empty(t, f.log.calls)

	f.axis.Update(0, 0.5, 1)
	f.axis.StopMovement()
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Equal(t, 1, f.pos.leaves)

	f.axis.StopMovement()
	assert.Equal(t, 1, f.pos.leaves)
}

func TestAxisForceStopIgnoresGate(t *testing.T) {
	f := newAxisFixture(false)

	f.axis.Update(0, 0.5, 1)
	f.mode.Set(false)

	f.axis.StopMovement()
	assert.Equal(t, DirectionPositive, f.axis.Direction, "disabled StopMovement must not leave")

	f.axis.ForceStop()
	assert.Equal(t, DirectionNone, f.axis.Direction)
	assert.Equal(t, 1, f.pos.leaves)
}

func TestAxisNilActions(t *testing.T) {
	a := NewAxis("bare", action.NewMode(true))
	a.Negative = nil
	a.Positive = nil

	assert.NotPanics(t, func() {
		a.Update(0, 0.5, 1)
		a.Update(0.5, 0.5, 1)
		a.Update(1, 0.5, -1)
		a.StopMovement()
	})
}

func TestAxisInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, withCenter := range []bool{false, true} {
		t.Run(fmt.Sprintf("center=%v", withCenter), func(t *testing.T) {
			f := newAxisFixture(withCenter)
			f.axis.Sensitivity = 1.5
			f.axis.CenterEpsilon = 0.1
			f.axis.HoldThreshold = 2

			now := 0.0
			for i := 0; i < 5000; i++ {
				dt := float32(0.005 + rng.Float64()*0.05)
				now += float64(dt)
				target := float32(rng.NormFloat64() * 1.5)
				if rng.Intn(10) == 0 {
					target = 0
				}

				before := f.axis.Current
				f.axis.Update(now, dt, target)
				change := abs(f.axis.Current - before)

				// The only jump allowed is the snap back to center.
				if f.axis.Direction != DirectionCenter || f.axis.Current != f.axis.Center {
					require.LessOrEqual(t, change, f.axis.Sensitivity*dt+1e-6, "frame %d", i)
				}

				open := 0
				for _, p := range []*spy{f.neg, f.pos, f.center} {
					if p != nil && p.open {
						open++
					}
				}
				require.LessOrEqual(t, open, 1, "frame %d", i)

				switch f.axis.Direction {
				case DirectionNone:
					require.Equal(t, 0, open)
				case DirectionPositive:
					require.True(t, f.pos.open)
				case DirectionNegative:
					require.True(t, f.neg.open)
				case DirectionCenter:
					require.True(t, f.center.open)
				}
			}
			assert.LessOrEqual(t, f.log.maxOpen, 1)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "none", DirectionNone.String())
	assert.Equal(t, "negative", DirectionNegative.String())
	assert.Equal(t, "center", DirectionCenter.String())
	assert.Equal(t, "positive", DirectionPositive.String())
}
