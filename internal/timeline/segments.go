package timeline

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/domain"
)

// Default bracket edges for a freshly initialised range.
const (
	firstBracketEnd  = 7
	secondBracketEnd = 13
)

// NewSegment returns a segment with one empty build.
func NewSegment(dayFrom, dayTo int, hero domain.Hero) domain.Segment {
	return domain.Segment{
		ID:      NewID("seg"),
		DayFrom: dayFrom,
		DayTo:   dayTo,
		Hero:    hero,
		Builds:  []domain.CardBuild{NewBuild(1)},
	}
}

// InitForRange partitions [start, end] into the default brackets: day 1,
// day 2, days 3-7, days 8-13 and a tail from day 14, each clipped to the
// range. Marker-bearing heroes get freshly seeded markers, then the
// timeline is synchronised.
func InitForRange(start, end int, hero domain.Hero, rng Rand) (domain.Timeline, error) {
	if start < 1 || end < start {
		return domain.Timeline{}, domain.NewHint(domain.HintInvalidRange,
			fmt.Sprintf("invalid day range Day%d-Day%d", start, end))
	}

	var ranges [][2]int
	add := func(from, to int) {
		if from <= to {
			ranges = append(ranges, [2]int{from, to})
		}
	}
	if start <= 1 && end >= 1 {
		add(1, 1)
	}
	if start <= 2 && end >= 2 {
		add(2, 2)
	}
	add(max(start, 3), min(end, firstBracketEnd))
	add(max(start, firstBracketEnd+1), min(end, secondBracketEnd))
	if end > secondBracketEnd {
		add(max(start, secondBracketEnd+1), end)
	}
	if len(ranges) == 0 {
		add(start, end)
	}

	t := domain.Timeline{DayStart: start, DayEnd: end}
	for _, r := range ranges {
		seg := NewSegment(r[0], r[1], hero)
		if hero.BearsMarkers() {
			seg.SpecialSlots = SeedMarkers(r[0], rng)
		}
		t.Segments = append(t.Segments, seg)
	}
	return SyncSpecialSlots(t), nil
}

// Split halves the segment at index i at floor((from+to)/2). The left half
// keeps the id and content; the right half is a fresh segment with the same
// hero and markers.
func Split(t domain.Timeline, i int) (domain.Timeline, error) {
	if i < 0 || i >= len(t.Segments) {
		return t, domain.NewHint(domain.HintUnknownSegment, fmt.Sprintf("no segment at index %d", i))
	}
	cur := t.Segments[i]
	if cur.DayFrom >= cur.DayTo {
		return t, domain.NewHint(domain.HintSingleDay,
			fmt.Sprintf("%s covers only one day and cannot be split", cur.Label()))
	}

	mid := (cur.DayFrom + cur.DayTo) / 2
	left := cur.Clone()
	left.DayTo = mid
	right := NewSegment(mid+1, cur.DayTo, cur.Hero)
	if cur.Hero.BearsMarkers() {
		right.SpecialSlots = append([]domain.SpecialSlot(nil), cur.SpecialSlots...)
	} else {
		left.SpecialSlots = nil
	}

	out := t.Clone()
	segs := append([]domain.Segment(nil), out.Segments[:i]...)
	segs = append(segs, left, right)
	segs = append(segs, out.Segments[i+1:]...)
	out.Segments = segs
	return SyncSpecialSlots(out), nil
}

// MergeLeft folds the left neighbour into segment i. The merged segment
// keeps segment i's content and id and takes over the neighbour's start
// day; it ends up at index i-1.
func MergeLeft(t domain.Timeline, i int) (domain.Timeline, error) {
	if i <= 0 || i >= len(t.Segments) {
		return t, domain.NewHint(domain.HintNoNeighbour, "no segment to the left to merge into")
	}
	out := t.Clone()
	merged := out.Segments[i]
	merged.DayFrom = out.Segments[i-1].DayFrom
	merged = NormalizeSegment(merged)

	segs := append([]domain.Segment(nil), out.Segments[:i-1]...)
	segs = append(segs, merged)
	segs = append(segs, out.Segments[i+1:]...)
	out.Segments = segs
	return SyncSpecialSlots(out), nil
}

// MergeRight folds the right neighbour into segment i, keeping segment i's
// content and extending it to the neighbour's end day.
func MergeRight(t domain.Timeline, i int) (domain.Timeline, error) {
	if i < 0 || i >= len(t.Segments)-1 {
		return t, domain.NewHint(domain.HintNoNeighbour, "no segment to the right to merge into")
	}
	out := t.Clone()
	merged := out.Segments[i]
	merged.DayTo = out.Segments[i+1].DayTo

	segs := append([]domain.Segment(nil), out.Segments[:i]...)
	segs = append(segs, merged)
	segs = append(segs, out.Segments[i+2:]...)
	out.Segments = segs
	return SyncSpecialSlots(out), nil
}

// MoveBoundary moves the boundary after segment handle so that the left
// segment ends on day. The day is clamped so both sides keep at least one
// day. An unknown handle or a no-op move returns t unchanged.
func MoveBoundary(t domain.Timeline, handle, day int) domain.Timeline {
	if handle < 0 || handle >= len(t.Segments)-1 {
		return t
	}
	left, right := t.Segments[handle], t.Segments[handle+1]
	next := clamp(day, left.DayFrom, right.DayTo-1)
	if next == left.DayTo {
		return t
	}

	out := t.Clone()
	out.Segments[handle].DayTo = next
	out.Segments[handle+1].DayFrom = next + 1
	out.Segments[handle+1] = NormalizeSegment(out.Segments[handle+1])
	return SyncSpecialSlots(out)
}

// NormalizeBuild re-packs a build into the board open on day, dropping
// cards that no longer fit together with their role tags.
func NormalizeBuild(b domain.CardBuild, day int) domain.CardBuild {
	b.Cards = board.Normalize(b.Cards, board.AllowMask(day))
	return b.PruneRoles()
}

// NormalizeSegment normalises every build of seg to its start day.
func NormalizeSegment(seg domain.Segment) domain.Segment {
	var builds []domain.CardBuild
	for _, b := range seg.Builds {
		builds = append(builds, NormalizeBuild(b, seg.DayFrom))
	}
	seg.Builds = builds
	return seg
}

// Normalize normalises every segment of t.
func Normalize(t domain.Timeline) domain.Timeline {
	out := t.Clone()
	for i := range out.Segments {
		out.Segments[i] = NormalizeSegment(out.Segments[i])
	}
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
