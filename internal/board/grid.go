package board

// Units is the number of slots on the board.
const Units = 10

// Mask marks which slots a card may cover.
type Mask [Units]bool

// FullMask allows every slot.
func FullMask() Mask {
	var m Mask
	for i := range m {
		m[i] = true
	}
	return m
}

// Count returns the number of allowed slots.
func (m Mask) Count() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// Slots returns the allowed slot indices in ascending order.
func (m Mask) Slots() []int {
	var out []int
	for i, ok := range m {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Allows reports whether slot is in bounds and allowed.
func (m Mask) Allows(slot int) bool {
	return slot >= 0 && slot < Units && m[slot]
}

// Covers reports whether every slot of [start, start+width) is allowed.
func (m Mask) Covers(start, width int) bool {
	if width < 1 || start < 0 || start+width > Units {
		return false
	}
	for i := start; i < start+width; i++ {
		if !m[i] {
			return false
		}
	}
	return true
}

// Subset reports whether every slot allowed by m is also allowed by o.
func (m Mask) Subset(o Mask) bool {
	for i := range m {
		if m[i] && !o[i] {
			return false
		}
	}
	return true
}

// Occupancy tracks which slots are taken while a layout is being built.
type Occupancy [Units]bool

// CanReserve reports whether [start, start+width) is in bounds, free and
// allowed by mask.
func (o Occupancy) CanReserve(start, width int, mask Mask) bool {
	if !mask.Covers(start, width) {
		return false
	}
	for i := start; i < start+width; i++ {
		if o[i] {
			return false
		}
	}
	return true
}

// Reserve marks [start, start+width) as taken. Out-of-range cells are
// ignored.
func (o *Occupancy) Reserve(start, width int) {
	for i := start; i < start+width; i++ {
		if i >= 0 && i < Units {
			o[i] = true
		}
	}
}
