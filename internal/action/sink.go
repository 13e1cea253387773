package action

import (
	"go.uber.org/zap"
)

// LogSink is a KeySink that only logs key events.
type LogSink struct {
	Log *zap.Logger
}

func (s LogSink) Press(key string) {
	s.Log.Info("key down", zap.String("key", key))
}

func (s LogSink) Release(key string) {
	s.Log.Info("key up", zap.String("key", key))
}

// KeyEvent is one recorded key transition.
type KeyEvent struct {
	Key  string
	Down bool
}

// Recorder is a KeySink that remembers every event and which keys are held.
type Recorder struct {
	Events []KeyEvent
	held   map[string]bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{held: make(map[string]bool)}
}

func (r *Recorder) Press(key string) {
	r.Events = append(r.Events, KeyEvent{Key: key, Down: true})
	r.held[key] = true
}

func (r *Recorder) Release(key string) {
	r.Events = append(r.Events, KeyEvent{Key: key, Down: false})
	delete(r.held, key)
}

// Held reports whether key is currently down.
func (r *Recorder) Held(key string) bool {
	return r.held[key]
}

// Presses counts how often key went down.
func (r *Recorder) Presses(key string) int {
	n := 0
	for _, e := range r.Events {
		if e.Key == key && e.Down {
			n++
		}
	}
	return n
}

// Tee forwards key events to several sinks.
type Tee []KeySink

func (t Tee) Press(key string) {
	for _, s := range t {
		s.Press(key)
	}
}

func (t Tee) Release(key string) {
	for _, s := range t {
		s.Release(key)
	}
}
