// Package game runs the simulated-headset harness: mouse and keyboard move a
// virtual head, the translator turns it into key actions, and a HUD shows the axes.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/config"
	"github.com/Faultbox/roomscale/internal/engine/hud"
	"github.com/Faultbox/roomscale/internal/engine/input"
	"github.com/Faultbox/roomscale/internal/engine/window"
	"github.com/Faultbox/roomscale/internal/logger"
	"github.com/Faultbox/roomscale/internal/pose"
	"github.com/Faultbox/roomscale/internal/roomscale"
	"github.com/Faultbox/roomscale/pkg/math"
)

// DefaultTracePath is where recordings go when no trace path is configured.
const DefaultTracePath = "roomscale-trace.yaml"

// Game is the harness instance.
type Game struct {
	config  *config.Config
	running bool

	window *window.Window
	input  *input.Input

	head       *pose.Simulator
	translator *roomscale.Translator
	keys       *input.KeyBoard

	recording bool
	recorder  pose.Recorder
	lastTitle string
}

// New creates the harness window and binds the translator from cfg.
func New(cfg *config.Config) (*Game, error) {
	for _, key := range cfg.Roomscale.Keys() {
		if _, err := input.Resolve(key); err != nil {
			return nil, fmt.Errorf("roomscale bindings: %w", err)
		}
	}

	g := &Game{
		config: cfg,
		input:  input.New(),
		head:   pose.NewSimulator(cfg.Sim.EyeHeight),
		keys:   input.NewKeyBoard(),
	}

	sink := action.Tee{g.keys, action.LogSink{Log: logger.Named("keys")}}
	var err error
	g.translator, err = roomscale.FromConfig(cfg.Roomscale, sink)
	if err != nil {
		return nil, err
	}

	g.window, err = window.New(window.Config{
		Title:  "roomscale",
		Width:  cfg.Sim.Width,
		Height: cfg.Sim.Height,
		VSync:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.recorder.Trace.Name = "simulator " + time.Now().Format(time.RFC3339)
	g.translator.Reset(g.head.Pose())

	logger.Info("harness initialized",
		zap.Int("width", cfg.Sim.Width),
		zap.Int("height", cfg.Sim.Height),
	)
	return g, nil
}

// Run starts the frame loop.
func (g *Game) Run() error {
	g.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	var minFrame time.Duration
	if g.config.Sim.FrameRateLimit > 0 {
		minFrame = time.Second / time.Duration(g.config.Sim.FrameRateLimit)
	}

	logger.Info("starting harness loop",
		zap.String("controls", "mouse look, WASD lean, R reset, 1-4 toggle axis, F5 record, Esc quit"))

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.update(now.Sub(start).Seconds(), float32(dt))

		w, h := g.window.GetSize()
		hud.Draw(g.window.Renderer(), w, h, g.translator.Axes())
		g.updateTitle()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if elapsed := time.Since(now); elapsed < minFrame {
			sdl.Delay(uint32((minFrame - elapsed).Milliseconds()))
		}
	}

	return nil
}

// Close releases held keys, saves a pending recording and closes the window.
func (g *Game) Close() {
	logger.Info("closing harness")

	if g.translator != nil {
		for _, a := range g.translator.Axes() {
			a.ForceStop()
		}
	}
	if len(g.recorder.Trace.Frames) > 0 {
		g.saveRecording()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		if event.Type != input.EventKeyDown {
			continue
		}
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			g.running = false
		case sdl.SCANCODE_R:
			g.translator.Reset(g.head.Pose())
		case sdl.SCANCODE_F5:
			g.recording = !g.recording
			logger.Info("recording", zap.Bool("on", g.recording), zap.Int("frames", len(g.recorder.Trace.Frames)))
		case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4:
			name := config.AxisNames[event.Key-sdl.SCANCODE_1]
			mode := g.translator.Mode(name)
			mode.Toggle()
			logger.Info("axis toggled", zap.String("axis", name), zap.Bool("enabled", mode.Enabled()))
		}
	}
}

// update moves the simulated head from input and runs one translator frame.
func (g *Game) update(now float64, dt float32) {
	dx, dy := g.input.MouseDelta()
	rad := g.config.Sim.MouseRadPerPx
	g.head.Look(-float32(dx)*rad, -float32(dy)*rad)

	var right, forward float32
	if g.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	// Diagonal leans move no faster than straight ones.
	lean := math.Vec2{X: right, Y: forward}.Normalize()
	g.head.Lean(lean.Scale(g.config.Sim.LeanSpeed * dt))

	head := g.head.Pose()
	g.translator.Update(now, dt, head)

	if g.recording {
		g.recorder.Record(now, head)
	}
}

func (g *Game) updateTitle() {
	lean := g.head.Position.Distance(g.translator.HeadOrigin)
	title := fmt.Sprintf("roomscale  lean %.2fm  [%s]", lean, g.keys.String())
	if g.recording {
		title += "  REC"
	}
	if title != g.lastTitle {
		g.window.SetTitle(title)
		g.lastTitle = title
	}
}

func (g *Game) saveRecording() {
	path := g.config.Replay.Trace
	if path == "" {
		path = DefaultTracePath
	}
	if err := g.recorder.Trace.Save(path); err != nil {
		logger.Error("failed to save recording", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("recording saved", zap.String("path", path), zap.Int("frames", len(g.recorder.Trace.Frames)))
}
