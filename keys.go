package pawnpad

import (
	"fmt"
	"strings"
)

// Key is one key press as the rendering layer reports it: a key name such
// as "a", "<tab>", "<backspace>" or "<mouse-wheel-up>" plus modifiers.
type Key struct {
	Control bool
	Alt     bool
	Shift   bool
	Super   bool
	K       string
}

func (k Key) IsEmpty() bool {
	return k.K == ""
}

// String renders k in the form ParseKey accepts, e.g. "C-<backspace>".
func (k Key) String() string {
	var sb strings.Builder
	if k.Control {
		sb.WriteString("C-")
	}
	if k.Alt {
		sb.WriteString("A-")
	}
	if k.Shift {
		sb.WriteString("S-")
	}
	if k.Super {
		sb.WriteString("s-")
	}
	sb.WriteString(k.K)
	return sb.String()
}

// ParseKey parses "C-", "A-", "S-" and "s-" prefixed key names.
func ParseKey(s string) (Key, error) {
	var k Key
	for len(s) > 2 && s[1] == '-' {
		switch s[0] {
		case 'C':
			k.Control = true
		case 'A':
			k.Alt = true
		case 'S':
			k.Shift = true
		case 's':
			k.Super = true
		default:
			return Key{}, fmt.Errorf("unknown modifier %q in key %q", s[0], s)
		}
		s = s[2:]
	}
	if s == "" || (strings.HasPrefix(s, "<") != strings.HasSuffix(s, ">")) {
		return Key{}, fmt.Errorf("invalid key name %q", s)
	}
	k.K = s
	return k, nil
}

func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Command handles a key. It reports false when the key should fall through
// to the rendering layer's default behaviour.
type Command func(*Editor) (bool, error)

type Keymap map[Key]Command

// MakeCommand wraps a command that always consumes its key.
func MakeCommand(f func(e *Editor) error) Command {
	return func(e *Editor) (bool, error) {
		return true, f(e)
	}
}

// MergeKeymaps returns a new keymap with k2's bindings overriding k1's.
func MergeKeymaps(k1 Keymap, k2 Keymap) Keymap {
	out := Keymap{}
	for k, v := range k1 {
		out[k] = v
	}
	for k, v := range k2 {
		out[k] = v
	}
	return out
}
