package planner

import (
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// Split halves the active segment. The right half's build is selected for
// it; the active segment stays the left half.
func Split(p domain.Plan) (domain.Plan, error) {
	si := p.ActiveIndex()
	t, err := timeline.Split(p.Timeline, si)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	right := t.Segments[si+1]
	out.ActiveBuild = setActive(out.ActiveBuild, right.ID, right.Builds[0].ID)
	return out, nil
}

// MergeLeft merges the active segment into its left neighbour's days; the
// active index follows it.
func MergeLeft(p domain.Plan) (domain.Plan, error) {
	si := p.ActiveIndex()
	t, err := timeline.MergeLeft(p.Timeline, si)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	out.ActiveSegment = si - 1
	pruneActive(&out)
	return out, nil
}

// MergeRight extends the active segment over its right neighbour's days.
func MergeRight(p domain.Plan) (domain.Plan, error) {
	t, err := timeline.MergeRight(p.Timeline, p.ActiveIndex())
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	pruneActive(&out)
	return out, nil
}

// MoveBoundary drags the boundary after segment handle to day.
func MoveBoundary(p domain.Plan, handle, day int) domain.Plan {
	out := p.Clone()
	out.Timeline = timeline.MoveBoundary(p.Timeline, handle, day)
	return out
}

// AddMarker adds an elemental marker on slot of the active segment.
func AddMarker(p domain.Plan, slot int, rng timeline.Rand) (domain.Plan, error) {
	t, err := timeline.AddSpecialSlot(p.Timeline, p.ActiveIndex(), slot, rng)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	return out, nil
}

// RemoveMarker removes a marker rank from every segment.
func RemoveMarker(p domain.Plan, id string) (domain.Plan, error) {
	t, err := timeline.RemoveSpecialSlot(p.Timeline, id)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	return out, nil
}

// ToggleMarker flips a marker of the active segment between fire and ice.
func ToggleMarker(p domain.Plan, id string) (domain.Plan, error) {
	t, err := timeline.ToggleSpecialSlotType(p.Timeline, p.ActiveIndex(), id)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	return out, nil
}

// MarkerAt returns the marker of the active segment on slot.
func MarkerAt(p domain.Plan, slot int) (domain.SpecialSlot, bool) {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return domain.SpecialSlot{}, false
	}
	for _, m := range segs[p.ActiveIndex()].SpecialSlots {
		if m.Slot == slot {
			return m, true
		}
	}
	return domain.SpecialSlot{}, false
}
