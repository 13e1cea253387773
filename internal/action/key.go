package action

// KeySink receives simulated key events. Keys are named the way the sink
// understands them (SDL key names for the SDL sink).
type KeySink interface {
	Press(key string)
	Release(key string)
}

// KeyPress holds a key down for as long as the action is entered.
type KeyPress struct {
	Key  string
	Sink KeySink

	down bool
}

// NewKeyPress creates a held-key action.
func NewKeyPress(key string, sink KeySink) *KeyPress {
	return &KeyPress{Key: key, Sink: sink}
}

// Enter presses the key. A retrigger on a held key releases and presses it again.
func (k *KeyPress) Enter(_ float64, retrigger bool) {
	if k.down {
		if !retrigger {
			return
		}
		k.Sink.Release(k.Key)
	}
	k.Sink.Press(k.Key)
	k.down = true
}

func (k *KeyPress) Update(float64) {}

// Leave releases the key if it is held.
func (k *KeyPress) Leave() {
	if !k.down {
		return
	}
	k.Sink.Release(k.Key)
	k.down = false
}

// Down reports whether the key is currently held.
func (k *KeyPress) Down() bool {
	return k.down
}

// KeyTap presses a key on enter and releases it after Duration seconds,
// even if the action stays entered longer.
type KeyTap struct {
	Key      string
	Duration float64
	Sink     KeySink

	down    bool
	pressed float64
}

// NewKeyTap creates a timed key tap.
func NewKeyTap(key string, duration float64, sink KeySink) *KeyTap {
	return &KeyTap{Key: key, Duration: duration, Sink: sink}
}

// Enter presses the key and starts the tap timer.
func (k *KeyTap) Enter(now float64, retrigger bool) {
	if k.down {
		if !retrigger {
			return
		}
		k.Sink.Release(k.Key)
	}
	k.Sink.Press(k.Key)
	k.down = true
	k.pressed = now
}

// Update releases the key once the tap has lasted Duration.
func (k *KeyTap) Update(now float64) {
	if k.down && now-k.pressed >= k.Duration {
		k.Sink.Release(k.Key)
		k.down = false
	}
}

// Leave releases the key early if the tap is still running.
func (k *KeyTap) Leave() {
	if !k.down {
		return
	}
	k.Sink.Release(k.Key)
	k.down = false
}
