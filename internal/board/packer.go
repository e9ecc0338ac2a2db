package board

import (
	"sort"

	"github.com/alexanderramin/lineup/internal/domain"
)

// FindNearestStart returns the free start for a card of the given width
// closest to preferred. Ties go to the smaller start.
func FindNearestStart(occ Occupancy, width, preferred int, mask Mask) (int, bool) {
	best, bestDist := -1, 0
	for s := 0; s+width <= Units; s++ {
		if !occ.CanReserve(s, width, mask) {
			continue
		}
		d := abs(s - preferred)
		if best < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, best >= 0
}

// TryPack lays out others plus the moving card. The moving card is placed
// first as close to preferred as possible, then the others in ascending
// order of their current start, each as close to where it was. The result
// is sorted by start. It reports false when any card cannot be placed; the
// inputs are never modified.
func TryPack(others []domain.Placement, moving domain.Placement, preferred int, mask Mask) ([]domain.Placement, bool) {
	total := moving.Width
	for _, c := range others {
		total += c.Width
	}
	if total > mask.Count() {
		return nil, false
	}

	var occ Occupancy
	start, ok := FindNearestStart(occ, moving.Width, clamp(preferred, 0, Units-moving.Width), mask)
	if !ok {
		return nil, false
	}
	occ.Reserve(start, moving.Width)
	moving.Start = start
	out := []domain.Placement{moving}

	for _, c := range SortByStart(others) {
		s, ok := FindNearestStart(occ, c.Width, c.Start, mask)
		if !ok {
			return nil, false
		}
		occ.Reserve(s, c.Width)
		c.Start = s
		out = append(out, c)
	}
	return SortByStart(out), true
}

// Normalize re-packs cards into mask, each as close to its current start as
// possible in ascending start order. Cards with no room are dropped. The
// survivors keep their input order, so a build that already fits is
// returned unchanged.
func Normalize(cards []domain.Placement, mask Mask) []domain.Placement {
	order := make([]int, len(cards))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return cards[order[i]].Start < cards[order[j]].Start
	})

	var occ Occupancy
	starts := make([]int, len(cards))
	for _, idx := range order {
		c := cards[idx]
		s, ok := FindNearestStart(occ, c.Width, c.Start, mask)
		if !ok {
			starts[idx] = -1
			continue
		}
		occ.Reserve(s, c.Width)
		starts[idx] = s
	}

	var out []domain.Placement
	for i, c := range cards {
		if starts[i] < 0 {
			continue
		}
		c.Start = starts[i]
		out = append(out, c)
	}
	return out
}

// Fits reports whether cards are pairwise disjoint and inside mask.
func Fits(cards []domain.Placement, mask Mask) bool {
	var occ Occupancy
	for _, c := range cards {
		if !occ.CanReserve(c.Start, c.Width, mask) {
			return false
		}
		occ.Reserve(c.Start, c.Width)
	}
	return true
}

// SortByStart returns a copy of cards ordered by start. Equal starts keep
// their input order.
func SortByStart(cards []domain.Placement) []domain.Placement {
	out := append([]domain.Placement(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
