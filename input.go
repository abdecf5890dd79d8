package pinfield

import (
	"strings"

	"github.com/rivo/uniseg"
)

// InputState holds the field's text as user-perceived characters (grapheme
// clusters). The number of characters never exceeds the capacity.
type InputState struct {
	chars    []string
	capacity int

	// filter, when set, drops characters it returns false for.
	filter func(char string) bool
}

// NewInputState creates an empty state bounded to capacity characters.
func NewInputState(capacity int) *InputState {
	if capacity < 0 {
		capacity = 0
	}
	return &InputState{
		chars:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Text returns the stored text.
func (s *InputState) Text() string {
	return strings.Join(s.chars, "")
}

// Len returns the number of stored characters.
func (s *InputState) Len() int {
	return len(s.chars)
}

// Capacity returns the maximum number of characters.
func (s *InputState) Capacity() int {
	return s.capacity
}

// Full reports whether every slot holds a character.
func (s *InputState) Full() bool {
	return len(s.chars) >= s.capacity
}

// Char returns the character at index i.
func (s *InputState) Char(i int) (string, bool) {
	if i < 0 || i >= len(s.chars) {
		return "", false
	}
	return s.chars[i], true
}

// SetFilter installs a per-character filter. Nil accepts everything.
func (s *InputState) SetFilter(fn func(char string) bool) {
	s.filter = fn
}

// SetText replaces the text with candidate, keeping only the first Capacity
// characters. clamped reports that the stored text differs from candidate,
// in which case the caller should push stored back to whoever produced it.
func (s *InputState) SetText(candidate string) (stored string, length int, clamped bool) {
	chars := splitChars(candidate)

	if s.filter != nil {
		kept := chars[:0]
		for _, c := range chars {
			if s.filter(c) {
				kept = append(kept, c)
			}
		}
		clamped = len(kept) != len(chars)
		chars = kept
	}

	if len(chars) > s.capacity {
		chars = chars[:s.capacity]
		clamped = true
	}

	s.chars = append(s.chars[:0], chars...)
	return s.Text(), len(s.chars), clamped
}

// Append adds text after the last character, subject to the same clamp.
func (s *InputState) Append(text string) (stored string, length int, clamped bool) {
	return s.SetText(s.Text() + text)
}

// Backspace removes the last character. It reports false on empty text.
func (s *InputState) Backspace() bool {
	if len(s.chars) == 0 {
		return false
	}
	s.chars = s.chars[:len(s.chars)-1]
	return true
}

// SetCapacity changes the bound. Text longer than the new capacity is
// truncated immediately; the return value reports that truncation.
func (s *InputState) SetCapacity(n int) (truncated bool) {
	if n < 0 {
		n = 0
	}
	s.capacity = n
	if len(s.chars) > n {
		s.chars = s.chars[:n]
		return true
	}
	return false
}

// NormalizeSelection collapses any selection request to a caret at the end
// of the text. Range selection is not supported.
func (s *InputState) NormalizeSelection(start, end int) (int, int) {
	n := len(s.chars)
	return n, n
}

func splitChars(text string) []string {
	if text == "" {
		return nil
	}
	var chars []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}
