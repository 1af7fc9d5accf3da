package source

import "strings"

// Key identifies a keyboard key.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Special keys
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifiers
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone: "None",
	KeyA:    "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	Key0: "D0", Key1: "D1", Key2: "D2", Key3: "D3", Key4: "D4",
	Key5: "D5", Key6: "D6", Key7: "D7", Key8: "D8", Key9: "D9",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
}

// String returns the key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is a real key.
func (k Key) Valid() bool {
	return k > KeyNone && k < keyCount
}

// Keys returns every valid key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// keyAliases are accepted by ParseKey in addition to the canonical names.
var keyAliases = map[string]Key{
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"return": KeyEnter,
	"esc":    KeyEscape,
	"shift":  KeyLeftShift,
	"ctrl":   KeyLeftControl,
	"alt":    KeyLeftAlt,
}

// ParseKey parses a key name. Matching is case-insensitive.
func ParseKey(name string) (Key, bool) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return KeyNone, false
	}
	if k, ok := keyAliases[s]; ok {
		return k, true
	}
	for k := KeyNone + 1; k < keyCount; k++ {
		if strings.ToLower(keyNames[k]) == s {
			return k, true
		}
	}
	return KeyNone, false
}
