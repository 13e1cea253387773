package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// KeyBoard is an action.KeySink that tracks simulated keys by SDL scancode.
// The harness shows the held keys; nothing is sent to other applications.
type KeyBoard struct {
	held map[sdl.Scancode]bool
}

// NewKeyBoard creates an empty simulated keyboard.
func NewKeyBoard() *KeyBoard {
	return &KeyBoard{held: make(map[sdl.Scancode]bool)}
}

// Resolve maps an SDL key name ("Left", "W", "Space") to its scancode.
func Resolve(name string) (sdl.Scancode, error) {
	code := sdl.GetScancodeFromName(name)
	if code == sdl.SCANCODE_UNKNOWN {
		return code, fmt.Errorf("unknown key name %q", name)
	}
	return code, nil
}

func (k *KeyBoard) Press(key string) {
	if code, err := Resolve(key); err == nil {
		k.held[code] = true
	}
}

func (k *KeyBoard) Release(key string) {
	if code, err := Resolve(key); err == nil {
		delete(k.held, code)
	}
}

// String lists the held keys by name, sorted.
func (k *KeyBoard) String() string {
	names := make([]string, 0, len(k.held))
	for code := range k.held {
		names = append(names, sdl.GetScancodeName(code))
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
