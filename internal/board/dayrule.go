package board

// Board space and marker capacity unlock on fixed game days.
const (
	dayNarrow    = 1
	dayMedium    = 2
	dayThirdMark = 7
	maxMarkers   = 3
	narrowInset  = 2
	mediumInset  = 1
)

// DayOneMarkerSlots are the only slots a first-rank marker may use on day 1.
var DayOneMarkerSlots = []int{3, 4, 5, 6}

// AllowMask returns the slots open on the given day. Days before 1 are
// treated as day 1.
func AllowMask(day int) Mask {
	inset := 0
	switch {
	case day <= dayNarrow:
		inset = narrowInset
	case day == dayMedium:
		inset = mediumInset
	}
	var m Mask
	for i := inset; i < Units-inset; i++ {
		m[i] = true
	}
	return m
}

// AllowedSlots returns the open slot indices for the day, ascending.
func AllowedSlots(day int) []int {
	return AllowMask(day).Slots()
}

// MaxSpecialMarkers returns how many elemental markers a segment starting on
// day may carry.
func MaxSpecialMarkers(day int) int {
	switch {
	case day >= dayThirdMark:
		return maxMarkers
	case day >= dayMedium:
		return 2
	default:
		return 1
	}
}

// IsDayOneMarkerSlot reports whether slot is one of DayOneMarkerSlots.
func IsDayOneMarkerSlot(slot int) bool {
	for _, s := range DayOneMarkerSlots {
		if s == slot {
			return true
		}
	}
	return false
}
