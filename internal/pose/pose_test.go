package pose

import (
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/roomscale/pkg/math"
)

func TestFromYawPitchRoundTrip(t *testing.T) {
	p := FromYawPitch(math.Vec3{X: 1, Y: 1.7, Z: -2}, 0.8, -0.3)
	yaw, pitch := p.YawPitch()

	assert.InDelta(t, 0.8, yaw, 1e-4)
	assert.InDelta(t, -0.3, pitch, 1e-4)
	assert.Equal(t, float32(1.7), p.Position.Y)
}

func TestLoadTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "turn.yaml")

	content := `
name: turn left
frames:
  - {t: 0.0, position: [0, 1.7, 0], yaw: 0, pitch: 0}
  - {t: 0.5, position: [0, 1.7, 0], yaw: 0.5, pitch: 0}
  - {t: 1.0, position: [0.2, 1.7, 0], yaw: 1.0, pitch: 0.1}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tr, err := LoadTrace(path)
	require.NoError(t, err)

	assert.Equal(t, "turn left", tr.Name)
	assert.Len(t, tr.Frames, 3)
	assert.InDelta(t, 1.0, tr.Duration(), 1e-9)
	assert.Equal(t, [3]float32{0.2, 1.7, 0}, tr.Frames[2].Position)
}

func TestLoadTraceErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", "name: nothing\n", "no frames"},
		{"unordered", "frames:\n  - {t: 1}\n  - {t: 0.5}\n", "frame 1"},
		{"garbage", "frames: [[[\n", "parsing trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadTrace(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := LoadTrace(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTraceAt(t *testing.T) {
	tr := &Trace{Frames: []Frame{
		{Time: 1, Position: [3]float32{0, 1.7, 0}, Yaw: 0},
		{Time: 2, Position: [3]float32{1, 1.7, 0}, Yaw: 1},
		{Time: 4, Position: [3]float32{1, 1.7, -2}, Yaw: 1},
	}}

	// Clamped before the first and after the last frame
	assert.Equal(t, float32(0), tr.At(0).Position.X)
	assert.Equal(t, float32(-2), tr.At(10).Position.Z)

	mid := tr.At(1.5)
	yaw, _ := mid.YawPitch()
	assert.InDelta(t, 0.5, mid.Position.X, 1e-5)
	assert.InDelta(t, 0.5, yaw, 1e-3)

	late := tr.At(3)
	assert.InDelta(t, -1, late.Position.Z, 1e-5)
}

func TestTraceSteps(t *testing.T) {
	tr := &Trace{Frames: []Frame{
		{Time: 10},
		{Time: 10.5},
		{Time: 11},
	}}

	raw := tr.Steps(0)
	require.Len(t, raw, 3)
	assert.Equal(t, 0.0, raw[0].Time)
	assert.Equal(t, float32(0), raw[0].Delta)
	assert.InDelta(t, 0.5, raw[2].Delta, 1e-6)

	resampled := tr.Steps(10)
	require.Len(t, resampled, 11)
	for _, s := range resampled[1:] {
		assert.InDelta(t, 0.1, s.Delta, 1e-6)
	}
	assert.InDelta(t, 1.0, resampled[10].Time, 1e-9)
}

func TestRecorderSaveLoad(t *testing.T) {
	var rec Recorder
	rec.Trace.Name = "sim"
	rec.Record(0, FromYawPitch(math.Vec3{Y: 1.7}, 0, 0))
	rec.Record(0.1, FromYawPitch(math.Vec3{X: 0.1, Y: 1.7}, 0.2, -0.1))

	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, rec.Trace.Save(path))

	tr, err := LoadTrace(path)
	require.NoError(t, err)
	require.Len(t, tr.Frames, 2)
	assert.InDelta(t, 0.2, tr.Frames[1].Yaw, 1e-4)
	assert.InDelta(t, -0.1, tr.Frames[1].Pitch, 1e-4)
}

func TestSimulator(t *testing.T) {
	s := NewSimulator(1.7)

	// Turn 90 degrees left, then lean forward: the head moves along -X.
	s.Look(gomath.Pi/2, 0)
	s.Lean(math.Vec2{Y: 0.3})

	assert.InDelta(t, -0.3, s.Position.X, 1e-5)
	assert.InDelta(t, 0, s.Position.Z, 1e-5)
	assert.Equal(t, float32(1.7), s.Position.Y)

	// Pitch is clamped short of vertical
	s.Look(0, 10)
	assert.Less(t, s.Pitch, float32(gomath.Pi/2))

	// Yaw wraps
	s.Look(gomath.Pi, 0)
	assert.InDelta(t, -gomath.Pi/2, s.Yaw, 1e-5)

	yaw, _ := s.Pose().YawPitch()
	assert.InDelta(t, -gomath.Pi/2, yaw, 1e-3)
}
