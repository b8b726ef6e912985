// Package input defines the key identifiers and the key-query capability the
// camera reads movement from. It has no dependency on a windowing backend.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Key is an opaque key identifier. The numeric values match GLFW key codes so
// a GLFW-backed State can pass them straight through.
type Key int

// Key constants for keyboard input
const (
	KeyUnknown Key = -1

	KeySpace Key = 32
	Key0     Key = 48
	Key1     Key = 49
	Key2     Key = 50
	Key3     Key = 51
	Key4     Key = 52
	Key5     Key = 53
	Key6     Key = 54
	Key7     Key = 55
	Key8     Key = 56
	Key9     Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
)

// ErrUnknownKey is returned by ParseKey for names with no matching key.
var ErrUnknownKey = errors.New("unknown key")

var keyNames = map[string]Key{
	"space":         KeySpace,
	"escape":        KeyEscape,
	"enter":         KeyEnter,
	"tab":           KeyTab,
	"backspace":     KeyBackspace,
	"right":         KeyRight,
	"left":          KeyLeft,
	"down":          KeyDown,
	"up":            KeyUp,
	"page_up":       KeyPageUp,
	"page_down":     KeyPageDown,
	"left_shift":    KeyLeftShift,
	"left_control":  KeyLeftControl,
	"left_alt":      KeyLeftAlt,
	"right_shift":   KeyRightShift,
	"right_control": KeyRightControl,
	"right_alt":     KeyRightAlt,
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[string(rune('a'+int(k-KeyA)))] = k
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[string(rune('0'+int(k-Key0)))] = k
	}
}

// ParseKey looks up a key by name. Matching ignores case and treats '-' and
// ' ' like '_', so "Left Shift", "left-shift" and "LEFT_SHIFT" are all
// KeyLeftShift.
func ParseKey(name string) (Key, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	if k, ok := keyNames[norm]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// String returns the canonical name of the key, or its code for keys without
// a name.
func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", int(k))
}
