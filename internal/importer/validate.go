package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// ErrInvalidSnapshot is wrapped by every validation error.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Code enumerates why a snapshot was rejected.
type Code string

const (
	CodeMalformed   Code = "MALFORMED"
	CodeVersion     Code = "UNSUPPORTED_VERSION"
	CodeDayRange    Code = "INVALID_RANGE"
	CodePartition   Code = "BROKEN_PARTITION"
	CodeUnknownHero Code = "UNKNOWN_HERO"
	CodeMissingID   Code = "MISSING_ID"
	CodeDuplicateID Code = "DUPLICATE_ID"
	CodeNoBuilds    Code = "NO_BUILDS"
	CodeGeometry    Code = "BAD_GEOMETRY"
	CodeOverlap     Code = "OVERLAP"
	CodeBorderTier  Code = "BAD_BORDER_TIER"
	CodeMarker      Code = "BAD_MARKER"
)

// ValidationError is one problem found in a snapshot. Path points at the
// offending field, e.g. "segments[1].builds[0].cards[2].width".
type ValidationError struct {
	Path   string
	Code   Code
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSnapshot
}

// Validate checks a snapshot before conversion and returns every problem
// found. Cards outside the day's open slots are not an error; conversion
// re-packs them.
func Validate(s *Snapshot) []error {
	var errs []error
	add := func(path string, code Code, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Code: code, Detail: fmt.Sprintf(format, args...)})
	}

	if s.Version < MinVersion || s.Version > CurrentVersion {
		add("version", CodeVersion, "version %d is not between %d and %d", s.Version, MinVersion, CurrentVersion)
	}
	if s.DayStart < 1 || s.DayEnd < s.DayStart {
		add("dayStart", CodeDayRange, "day range %d-%d is invalid", s.DayStart, s.DayEnd)
	} else if err := timeline.ValidatePartition(dayRanges(s)); err != nil {
		add("segments", CodePartition, "%v", err)
	}
	if _, err := snapshotHero(s); err != nil {
		add("hero", CodeUnknownHero, "%v", err)
	}

	segIDs := make(map[string]bool, len(s.Segments))
	for i, seg := range s.Segments {
		path := fmt.Sprintf("segments[%d]", i)
		switch {
		case seg.ID == "":
			add(path+".id", CodeMissingID, "segment has no id")
		case segIDs[seg.ID]:
			add(path+".id", CodeDuplicateID, "segment id %q repeats", seg.ID)
		}
		segIDs[seg.ID] = true
		errs = append(errs, validateSegment(path, seg)...)
	}
	return errs
}

func validateSegment(path string, seg SegmentSnapshot) []error {
	var errs []error
	add := func(p string, code Code, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: p, Code: code, Detail: fmt.Sprintf(format, args...)})
	}

	markerIDs := make(map[string]bool, len(seg.SpecialSlots))
	markerSlots := make(map[int]bool, len(seg.SpecialSlots))
	for j, m := range seg.SpecialSlots {
		p := fmt.Sprintf("%s.specialSlots[%d]", path, j)
		switch {
		case m.ID == "":
			add(p+".id", CodeMissingID, "marker has no id")
		case markerIDs[m.ID]:
			add(p+".id", CodeDuplicateID, "marker id %q repeats", m.ID)
		}
		markerIDs[m.ID] = true
		switch {
		case m.Slot < 0 || m.Slot >= board.Units:
			add(p+".slot", CodeMarker, "slot %d is off the board", m.Slot)
		case markerSlots[m.Slot]:
			add(p+".slot", CodeMarker, "slot %d already has a marker", m.Slot)
		}
		markerSlots[m.Slot] = true
		if mt := domain.MarkerType(m.Type); mt != domain.MarkerFire && mt != domain.MarkerIce {
			add(p+".type", CodeMarker, "marker type %q is neither fire nor ice", m.Type)
		}
	}

	if len(seg.Builds) == 0 {
		add(path+".builds", CodeNoBuilds, "segment has no builds")
	}
	buildIDs := make(map[string]bool, len(seg.Builds))
	for j, b := range seg.Builds {
		p := fmt.Sprintf("%s.builds[%d]", path, j)
		switch {
		case b.ID == "":
			add(p+".id", CodeMissingID, "build has no id")
		case buildIDs[b.ID]:
			add(p+".id", CodeDuplicateID, "build id %q repeats", b.ID)
		}
		buildIDs[b.ID] = true
		errs = append(errs, validateCards(p, b.Cards)...)
	}

	skillIDs := make(map[string]bool, len(seg.Skills))
	for j, sk := range seg.Skills {
		p := fmt.Sprintf("%s.skills[%d].skillId", path, j)
		switch {
		case sk.SkillID == "":
			add(p, CodeMissingID, "skill has no id")
		case skillIDs[sk.SkillID]:
			add(p, CodeDuplicateID, "skill %q repeats", sk.SkillID)
		}
		skillIDs[sk.SkillID] = true
	}
	return errs
}

func validateCards(path string, cards []CardSnapshot) []error {
	var errs []error
	add := func(p string, code Code, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: p, Code: code, Detail: fmt.Sprintf(format, args...)})
	}

	var occ board.Occupancy
	ids := make(map[string]bool, len(cards))
	for k, c := range cards {
		p := fmt.Sprintf("%s.cards[%d]", path, k)
		switch {
		case c.PlacementID == "":
			add(p+".placementId", CodeMissingID, "card has no placement id")
		case ids[c.PlacementID]:
			add(p+".placementId", CodeDuplicateID, "placement id %q repeats", c.PlacementID)
		}
		ids[c.PlacementID] = true
		if c.Item.ID == "" {
			add(p+".item.id", CodeMissingID, "card has no item id")
		}
		if c.BorderTier != "" && domain.BorderTier(strings.ToLower(c.BorderTier)).Rank() < 0 {
			add(p+".borderTier", CodeBorderTier, "unknown border tier %q", c.BorderTier)
		}

		if c.Width < 1 || c.Width > 3 || c.Start < 0 || c.Start+c.Width > board.Units {
			add(p, CodeGeometry, "start %d width %d does not fit the board", c.Start, c.Width)
			continue
		}
		if !occ.CanReserve(c.Start, c.Width, board.FullMask()) {
			add(p, CodeOverlap, "card at %d overlaps another card", c.Start)
			continue
		}
		occ.Reserve(c.Start, c.Width)
	}
	return errs
}

// dayRanges returns a timeline carrying only the snapshot's day ranges.
func dayRanges(s *Snapshot) domain.Timeline {
	t := domain.Timeline{DayStart: s.DayStart, DayEnd: s.DayEnd}
	for _, seg := range s.Segments {
		t.Segments = append(t.Segments, domain.Segment{DayFrom: seg.DayFrom, DayTo: seg.DayTo})
	}
	return t
}

// snapshotHero resolves the lineup hero: the top-level field, then the
// first segment's, then the default.
func snapshotHero(s *Snapshot) (domain.Hero, error) {
	var first string
	if len(s.Segments) > 0 {
		first = s.Segments[0].Hero
	}
	h := domain.Hero(domain.CoalesceStr(s.Hero, first, string(domain.DefaultHero)))
	if !domain.ValidHeroes[h] {
		return "", fmt.Errorf("unknown hero %q", h)
	}
	return h, nil
}
