// Package rot implements a Caesar substitution cipher over a 27-symbol
// alphabet of the lowercase letters followed by the space character.
package rot

import (
	"strings"
	"unicode"
)

// Alphabet is the full cipher alphabet, indexed 0 through 26. The space at
// the end is a member like any letter and rotates with the rest.
const Alphabet = "abcdefghijklmnopqrstuvwxyz "

const size = len(Alphabet)

// Method selects one of the two equivalent rotation strategies. They differ
// only in where the modular arithmetic happens and must agree on every
// input.
type Method string

const (
	// Table pre-rotates the alphabet once and substitutes by index lookup.
	Table Method = "table"
	// Modular computes each rotated index with modular arithmetic.
	Modular Method = "modular"
)

func (m Method) Valid() bool {
	return m == Table || m == Modular
}

// Transform rotates every alphabet member of text by rotation positions and
// returns the result, one output rune per input rune. Uppercase ASCII
// letters come back uppercase. Runes outside the alphabet pass through
// lowercased. Any rotation is legal; it is reduced mod 27, so rotating by
// 28 equals rotating by 1. Encrypting with rotation r and decrypting the
// result with -r restores the original text.
func Transform(text string, rotation int, method Method) string {
	switch method {
	case Table:
		return table(text, rotation)
	case Modular:
		return modular(text, rotation)
	default:
		panic("rot: unknown method " + string(method))
	}
}

// norm reduces a rotation into the range [0, 27).
func norm(rotation int) int {
	rotation %= size
	if rotation < 0 {
		rotation += size
	}
	return rotation
}

// index returns the alphabet position of a lowercased rune, or -1 for
// non-members.
func index(r rune) int {
	if 'a' <= r && r <= 'z' {
		return int(r - 'a')
	}
	if r == ' ' {
		return size - 1
	}
	return -1
}

// wasUpper reports whether the original rune should re-capitalize its
// substitute. The check is a raw code-point range, not unicode.IsUpper:
// only uppercase ASCII counts, and the space member never does.
func wasUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func table(text string, rotation int) string {
	r := norm(rotation)

	// Circular right shift: the symbol at i moves to slot (i+r) mod 27, so
	// a lookup at i yields Alphabet[(i-r) mod 27], the same substitution
	// the modular method computes directly.
	var rotated [size]byte
	for i := range size {
		rotated[(i+r)%size] = Alphabet[i]
	}

	out := &strings.Builder{}
	out.Grow(len(text))

	for _, c := range text {
		lower := unicode.ToLower(c)

		i := index(lower)
		if i < 0 {
			out.WriteRune(lower)
			continue
		}

		s := rune(rotated[i])
		if wasUpper(c) {
			s = unicode.ToUpper(s)
		}
		out.WriteRune(s)
	}
	return out.String()
}

func modular(text string, rotation int) string {
	r := norm(rotation)

	out := &strings.Builder{}
	out.Grow(len(text))

	for _, c := range text {
		lower := unicode.ToLower(c)

		i := index(lower)
		if i < 0 {
			out.WriteRune(lower)
			continue
		}

		s := rune(Alphabet[(i-r+size)%size])
		if wasUpper(c) {
			s = unicode.ToUpper(s)
		}
		out.WriteRune(s)
	}
	return out.String()
}
