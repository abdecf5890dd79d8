package pinfield

// Slot is the horizontal cell for one character position. FromY and ToY are
// the slot's bottom edge, where the underline sits.
type Slot struct {
	Index int
	FromX float32
	FromY float32
	ToX   float32
	ToY   float32
}

// Width returns the horizontal extent of the slot.
func (s Slot) Width() float32 {
	return s.ToX - s.FromX
}

// CenterX returns the horizontal center used for glyphs.
func (s Slot) CenterX() float32 {
	return s.FromX + s.Width()/2
}

// ComputeSlots lays out n slots left to right. It always builds a fresh
// slice; callers replace their previous layout wholesale.
func ComputeSlots(n int, slotWidth, slotGap, height float32) []Slot {
	if n <= 0 {
		return nil
	}
	slots := make([]Slot, n)
	for i := range slots {
		fromX := (slotWidth + slotGap) * float32(i)
		slots[i] = Slot{
			Index: i,
			FromX: fromX,
			FromY: height,
			ToX:   fromX + slotWidth,
			ToY:   height,
		}
	}
	return slots
}

// ContentWidth is the intrinsic width of n slots: n*slotWidth + (n-1)*slotGap.
func ContentWidth(n int, slotWidth, slotGap float32) float32 {
	if n <= 0 {
		return 0
	}
	return float32(n)*slotWidth + float32(n-1)*slotGap
}
