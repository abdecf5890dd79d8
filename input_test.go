package pinfield

import "testing"

func TestInputStateSetText(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		candidate   string
		wantStored  string
		wantLen     int
		wantClamped bool
	}{
		{"fits", 6, "123", "123", 3, false},
		{"exactly full", 6, "123456", "123456", 6, false},
		{"one too many", 6, "1234567", "123456", 6, true},
		{"far too many", 4, "abcdefghij", "abcd", 4, true},
		{"empty", 6, "", "", 0, false},
		{"combining marks count once", 3, "e\u0301e\u0301e\u0301e\u0301", "e\u0301e\u0301e\u0301", 3, true},
		{"emoji flags", 2, "🇩🇪🇫🇷🇮🇹", "🇩🇪🇫🇷", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputState(tt.capacity)
			stored, length, clamped := s.SetText(tt.candidate)
			if stored != tt.wantStored {
				t.Errorf("stored = %q, want %q", stored, tt.wantStored)
			}
			if length != tt.wantLen || s.Len() != tt.wantLen {
				t.Errorf("length = %d (Len %d), want %d", length, s.Len(), tt.wantLen)
			}
			if clamped != tt.wantClamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.wantClamped)
			}
			if s.Len() > s.Capacity() {
				t.Errorf("Len() %d exceeds Capacity() %d", s.Len(), s.Capacity())
			}
		})
	}
}

func TestInputStateSetTextIdempotent(t *testing.T) {
	s := NewInputState(6)
	first, firstLen, _ := s.SetText("1234")
	second, secondLen, clamped := s.SetText("1234")

	if first != second || firstLen != secondLen {
		t.Errorf("second SetText = (%q, %d), want (%q, %d)", second, secondLen, first, firstLen)
	}
	if clamped {
		t.Error("second SetText reported a clamp")
	}
}

func TestInputStateAppendAndBackspace(t *testing.T) {
	s := NewInputState(3)
	s.Append("1")
	s.Append("23")
	if _, _, clamped := s.Append("4"); !clamped {
		t.Error("Append past capacity should clamp")
	}
	if s.Text() != "123" {
		t.Errorf("Text() = %q, want 123", s.Text())
	}

	if !s.Backspace() || s.Text() != "12" {
		t.Errorf("after Backspace Text() = %q, want 12", s.Text())
	}
	s.SetText("")
	if s.Backspace() {
		t.Error("Backspace on empty text should report false")
	}
}

func TestInputStateSetCapacity(t *testing.T) {
	s := NewInputState(6)
	s.SetText("123456")

	if !s.SetCapacity(4) {
		t.Error("shrinking below length should report truncation")
	}
	if s.Text() != "1234" {
		t.Errorf("Text() = %q, want 1234", s.Text())
	}
	if s.SetCapacity(8) {
		t.Error("growing should not report truncation")
	}
	if s.Text() != "1234" {
		t.Errorf("growing changed text to %q", s.Text())
	}
}

func TestInputStateFilter(t *testing.T) {
	s := NewInputState(6)
	s.SetFilter(Digits)

	stored, length, clamped := s.SetText("1a2b3")
	if stored != "123" || length != 3 {
		t.Errorf("stored = (%q, %d), want (123, 3)", stored, length)
	}
	if !clamped {
		t.Error("dropping characters should report a clamp")
	}
}

func TestNormalizeSelection(t *testing.T) {
	s := NewInputState(6)
	s.SetText("1234")

	tests := []struct {
		start, end int
	}{
		{0, 0},
		{1, 3},
		{4, 4},
		{3, 1},
	}

	for _, tt := range tests {
		gotStart, gotEnd := s.NormalizeSelection(tt.start, tt.end)
		if gotStart != 4 || gotEnd != 4 {
			t.Errorf("NormalizeSelection(%d, %d) = (%d, %d), want (4, 4)", tt.start, tt.end, gotStart, gotEnd)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := map[string]bool{
		"0":  true,
		"9":  true,
		"a":  false,
		"12": false,
		"":   false,
		"٣":  true,
	}
	for in, want := range tests {
		if got := Digits(in); got != want {
			t.Errorf("Digits(%q) = %v, want %v", in, got, want)
		}
	}
}
