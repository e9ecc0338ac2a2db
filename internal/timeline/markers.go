package timeline

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/domain"
)

const (
	// dayOneFallbackSlot replaces a first-rank template that lies outside
	// the day-1 marker slots.
	dayOneFallbackSlot = 4
	// syncPassLimit bounds the fixed-point loop in SyncSpecialSlots. Each
	// pass settles at least one more rank, so a handful always suffices.
	syncPassLimit = 8
)

type markerTemplate struct {
	slot int
	typ  domain.MarkerType
}

// RankedMarkerID is the id a synchronised marker of the given 0-based rank
// carries.
func RankedMarkerID(rank int) string {
	return fmt.Sprintf("jules-slot-%d", rank+1)
}

// SeedMarkers returns random markers for a fresh segment starting on day: a
// fire marker in the middle four slots, an ice marker from day 2 and a third
// marker of random type from day 7.
func SeedMarkers(day int, rng Rand) []domain.SpecialSlot {
	fire := board.DayOneMarkerSlots[rng.Intn(len(board.DayOneMarkerSlots))]
	out := []domain.SpecialSlot{{ID: fmt.Sprintf("fire-%d", fire), Slot: fire, Type: domain.MarkerFire}}

	if day >= 2 {
		var pool []int
		for _, s := range board.AllowedSlots(2) {
			if s != fire {
				pool = append(pool, s)
			}
		}
		ice := pool[rng.Intn(len(pool))]
		out = append(out, domain.SpecialSlot{ID: fmt.Sprintf("ice-%d", ice), Slot: ice, Type: domain.MarkerIce})
	}

	if day >= 7 {
		used := make(map[int]bool, len(out))
		for _, m := range out {
			used[m.Slot] = true
		}
		var pool []int
		for s := 0; s < board.Units; s++ {
			if !used[s] {
				pool = append(pool, s)
			}
		}
		third := pool[rng.Intn(len(pool))]
		typ := domain.MarkerFire
		if rng.Intn(2) == 1 {
			typ = domain.MarkerIce
		}
		out = append(out, domain.SpecialSlot{ID: fmt.Sprintf("mix-%d", third), Slot: third, Type: typ})
	}
	return out
}

// SyncSpecialSlots re-derives every marker-bearing segment's markers from
// per-rank templates. The template for rank r is the rank-r marker of the
// earliest marker-bearing segment that may hold r+1 markers and does.
// Segments of other heroes lose their markers. The derivation is repeated
// until it stops changing anything, so the result is a fixed point; when
// nothing changes t is returned as is.
func SyncSpecialSlots(t domain.Timeline) domain.Timeline {
	out := t
	for pass := 0; pass < syncPassLimit; pass++ {
		next, changed := syncOnce(out)
		if !changed {
			return out
		}
		out = next
	}
	return out
}

func syncOnce(t domain.Timeline) (domain.Timeline, bool) {
	var bearers []domain.Segment
	for _, seg := range t.Segments {
		if seg.Hero.BearsMarkers() {
			bearers = append(bearers, seg)
		}
	}
	sort.SliceStable(bearers, func(i, j int) bool {
		return bearers[i].DayFrom < bearers[j].DayFrom
	})

	var templates [3]*markerTemplate
	for rank := range templates {
		for _, seg := range bearers {
			if board.MaxSpecialMarkers(seg.DayFrom) >= rank+1 && len(seg.SpecialSlots) > rank {
				m := seg.SpecialSlots[rank]
				templates[rank] = &markerTemplate{slot: m.Slot, typ: m.Type}
				break
			}
		}
	}

	var out domain.Timeline
	changed := false
	for i, seg := range t.Segments {
		var want []domain.SpecialSlot
		if seg.Hero.BearsMarkers() {
			want = deriveMarkers(seg.DayFrom, templates)
		}
		if domain.SameMarkers(seg.SpecialSlots, want) {
			continue
		}
		if !changed {
			out = t.Clone()
			changed = true
		}
		out.Segments[i].SpecialSlots = want
	}
	if !changed {
		return t, false
	}
	return out, true
}

func deriveMarkers(day int, templates [3]*markerTemplate) []domain.SpecialSlot {
	mask := board.AllowMask(day)
	used := make(map[int]bool)
	var out []domain.SpecialSlot

	for rank := 0; rank < board.MaxSpecialMarkers(day) && rank < len(templates); rank++ {
		tpl := templates[rank]
		if tpl == nil {
			continue
		}
		dayOneFirst := day <= 1 && rank == 0

		target := tpl.slot
		if dayOneFirst && !board.IsDayOneMarkerSlot(target) {
			target = dayOneFallbackSlot
		}
		if !mask.Allows(target) || used[target] {
			pool := mask.Slots()
			if dayOneFirst {
				pool = board.DayOneMarkerSlots
			}
			fallback, ok := firstUnused(pool, used)
			if !ok {
				continue
			}
			target = fallback
		}
		used[target] = true

		typ := tpl.typ
		if dayOneFirst {
			typ = domain.MarkerFire
		}
		out = append(out, domain.SpecialSlot{ID: RankedMarkerID(rank), Slot: target, Type: typ})
	}
	return out
}

func firstUnused(pool []int, used map[int]bool) (int, bool) {
	for _, s := range pool {
		if !used[s] {
			return s, true
		}
	}
	return 0, false
}

// AddSpecialSlot adds a marker on slot to segment i and re-synchronises.
// Day-1 segments take fire markers; otherwise the first marker is fire, the
// second ice and a third is random.
func AddSpecialSlot(t domain.Timeline, i, slot int, rng Rand) (domain.Timeline, error) {
	if !t.Hero().BearsMarkers() {
		return t, domain.NewHint(domain.HintMarkerHero, fmt.Sprintf("%s has no elemental slots", t.Hero()))
	}
	if i < 0 || i >= len(t.Segments) {
		return t, domain.NewHint(domain.HintUnknownSegment, fmt.Sprintf("no segment at index %d", i))
	}
	seg := t.Segments[i]
	limit := board.MaxSpecialMarkers(seg.DayFrom)

	switch {
	case !board.AllowMask(seg.DayFrom).Allows(slot):
		return t, domain.NewHint(domain.HintMarkerDisallowed,
			fmt.Sprintf("slot %d is closed on Day%d", slot, seg.DayFrom))
	case seg.DayFrom <= 1 && !board.IsDayOneMarkerSlot(slot):
		return t, domain.NewHint(domain.HintMarkerDayOne, "Day1 markers must sit in the middle four slots")
	case hasMarkerOn(seg.SpecialSlots, slot):
		return t, domain.NewHint(domain.HintMarkerOccupied, fmt.Sprintf("slot %d already has a marker", slot))
	case len(seg.SpecialSlots) >= limit:
		return t, domain.NewHint(domain.HintMarkerLimit,
			fmt.Sprintf("Day%d allows at most %d markers", seg.DayFrom, limit))
	}

	typ := domain.MarkerFire
	switch {
	case seg.DayFrom <= 1, len(seg.SpecialSlots) == 0:
	case len(seg.SpecialSlots) == 1:
		typ = domain.MarkerIce
	case rng.Intn(2) == 1:
		typ = domain.MarkerIce
	}

	out := t.Clone()
	out.Segments[i].SpecialSlots = append(out.Segments[i].SpecialSlots,
		domain.SpecialSlot{ID: NewID("sp"), Slot: slot, Type: typ})
	return SyncSpecialSlots(out), nil
}

// RemoveSpecialSlot removes the marker with the given id from every
// marker-bearing segment and re-synchronises. Higher ranks move down one.
func RemoveSpecialSlot(t domain.Timeline, id string) (domain.Timeline, error) {
	out := t.Clone()
	found := false
	for i, seg := range out.Segments {
		if !seg.Hero.BearsMarkers() {
			continue
		}
		var kept []domain.SpecialSlot
		for _, m := range seg.SpecialSlots {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		out.Segments[i].SpecialSlots = kept
	}
	if !found {
		return t, domain.NewHint(domain.HintUnknownMarker, fmt.Sprintf("no marker %q", id))
	}
	return SyncSpecialSlots(out), nil
}

// ToggleSpecialSlotType flips a marker of segment i between fire and ice.
// Day-1 markers are always fire.
func ToggleSpecialSlotType(t domain.Timeline, i int, id string) (domain.Timeline, error) {
	if i < 0 || i >= len(t.Segments) {
		return t, domain.NewHint(domain.HintUnknownSegment, fmt.Sprintf("no segment at index %d", i))
	}
	if t.Segments[i].DayFrom <= 1 {
		return t, domain.NewHint(domain.HintMarkerFireOnly, "Day1 only allows fire markers")
	}
	out := t.Clone()
	markers := out.Segments[i].SpecialSlots
	for j := range markers {
		if markers[j].ID == id {
			markers[j].Type = markers[j].Type.Flip()
			return SyncSpecialSlots(out), nil
		}
	}
	return t, domain.NewHint(domain.HintUnknownMarker, fmt.Sprintf("no marker %q", id))
}

func hasMarkerOn(markers []domain.SpecialSlot, slot int) bool {
	for _, m := range markers {
		if m.Slot == slot {
			return true
		}
	}
	return false
}
