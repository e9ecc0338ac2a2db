package timeline

import (
	"github.com/alexanderramin/lineup/internal/domain"
)

type segOpt func(*domain.Segment)

func withMarkers(markers ...domain.SpecialSlot) segOpt {
	return func(s *domain.Segment) { s.SpecialSlots = markers }
}

func withCards(cards ...domain.Placement) segOpt {
	return func(s *domain.Segment) { s.Builds[0].Cards = cards }
}

func seg(from, to int, hero domain.Hero, opts ...segOpt) domain.Segment {
	s := NewSegment(from, to, hero)
	for _, o := range opts {
		o(&s)
	}
	return s
}

func tl(segs ...domain.Segment) domain.Timeline {
	return domain.Timeline{
		DayStart: segs[0].DayFrom,
		DayEnd:   segs[len(segs)-1].DayTo,
		Segments: segs,
	}
}

func marker(id string, slot int, typ domain.MarkerType) domain.SpecialSlot {
	return domain.SpecialSlot{ID: id, Slot: slot, Type: typ}
}

func placement(id string, start, width int) domain.Placement {
	return domain.Placement{PlacementID: id, Card: domain.CardRef{ID: id}, Start: start, Width: width, BorderTier: domain.TierBronze}
}

func ranges(t domain.Timeline) [][2]int {
	var out [][2]int
	for _, s := range t.Segments {
		out = append(out, [2]int{s.DayFrom, s.DayTo})
	}
	return out
}
