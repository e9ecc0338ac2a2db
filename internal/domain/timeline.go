package domain

// Timeline is an ordered, gapless partition of [DayStart, DayEnd] into
// segments.
type Timeline struct {
	DayStart int
	DayEnd   int
	Segments []Segment
}

// Clone returns a deep copy.
func (t Timeline) Clone() Timeline {
	var segs []Segment
	for _, s := range t.Segments {
		segs = append(segs, s.Clone())
	}
	t.Segments = segs
	return t
}

// Hero returns the hero of the first segment, which drives the whole
// lineup.
func (t Timeline) Hero() Hero {
	if len(t.Segments) == 0 {
		return DefaultHero
	}
	return t.Segments[0].Hero
}

// SegmentIndex returns the index of the segment with the given id, or -1.
func (t Timeline) SegmentIndex(id string) int {
	for i, s := range t.Segments {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// ClampIndex bounds i to a valid segment index (0 for an empty timeline).
func (t Timeline) ClampIndex(i int) int {
	if i >= len(t.Segments) {
		i = len(t.Segments) - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// HasUserWork reports whether re-initialising the timeline would discard
// anything the user entered.
func (t Timeline) HasUserWork() bool {
	for _, s := range t.Segments {
		if len(s.Skills) > 0 || len(s.Builds) > 1 || s.HasCards() {
			return true
		}
	}
	return false
}
