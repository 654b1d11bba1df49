// Package edit computes and applies character-level edit scripts.
//
// A script is an ordered list of Transformations. Each index is taken
// against the sequence as already edited by the operations before it, so
// applying the list left to right to the first sequence yields the second.
package edit

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind is the type of a Transformation.
type Kind uint8

const (
	Insertion Kind = iota
	Deletion
	Substitution
)

func (k Kind) String() string {
	switch k {
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	case Substitution:
		return "substitution"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String; case is ignored.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "insertion":
		return Insertion, nil
	case "deletion":
		return Deletion, nil
	case "substitution":
		return Substitution, nil
	}
	return 0, fmt.Errorf("edit: unknown transformation kind %q", s)
}

// Transformation is one edit. Text is the inserted, deleted or replaced
// run; Text2 is the replacement and is only set for Substitution.
type Transformation struct {
	Index int
	Kind  Kind
	Text  string
	Text2 string
}

func (t Transformation) String() string {
	kind := strings.ToUpper(t.Kind.String())
	if t.Kind == Substitution {
		return fmt.Sprintf("Index: %d, Type: %s, Strings: %s, %s", t.Index, kind, t.Text, t.Text2)
	}
	return fmt.Sprintf("Index: %d, Type: %s, String: %s", t.Index, kind, t.Text)
}

var (
	ErrIndexOutOfRange = errors.New("transformation index out of range")
	ErrTextMismatch    = errors.New("transformation text does not match sequence")
)

// Apply runs ts against s in order and returns the result.
func Apply(s string, ts []Transformation) (string, error) {
	out := []byte(s)
	for n, t := range ts {
		switch t.Kind {
		case Insertion:
			if t.Index < 0 || t.Index > len(out) {
				return "", fmt.Errorf("edit: %d (%v): %w", n, t, ErrIndexOutOfRange)
			}
			out = slices.Insert(out, t.Index, []byte(t.Text)...)
		case Deletion, Substitution:
			end := t.Index + len(t.Text)
			if t.Index < 0 || end > len(out) {
				return "", fmt.Errorf("edit: %d (%v): %w", n, t, ErrIndexOutOfRange)
			}
			if string(out[t.Index:end]) != t.Text {
				return "", fmt.Errorf("edit: %d (%v): found %q: %w", n, t, out[t.Index:end], ErrTextMismatch)
			}
			if t.Kind == Deletion {
				out = slices.Delete(out, t.Index, end)
			} else {
				out = slices.Replace(out, t.Index, end, []byte(t.Text2)...)
			}
		default:
			return "", fmt.Errorf("edit: %d: unknown kind %v", n, t.Kind)
		}
	}
	return string(out), nil
}
