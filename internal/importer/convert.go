package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// Import parses, validates and converts a snapshot. All validation
// problems are joined into the returned error, which wraps
// ErrInvalidSnapshot.
func Import(data []byte) (domain.Plan, error) {
	s, err := Parse(data)
	if err != nil {
		return domain.Plan{}, err
	}
	if errs := Validate(s); len(errs) > 0 {
		return domain.Plan{}, errors.Join(errs...)
	}
	return Convert(s)
}

// Convert turns a validated snapshot into a plan. Every segment takes the
// lineup hero, text fields are trimmed to their limits, unknown tags fall
// back to the defaults and the active segment index is clamped. Builds are
// re-packed into their day's board and markers re-synchronised. Call
// Validate first; Convert assumes the snapshot is valid.
func Convert(s *Snapshot) (domain.Plan, error) {
	hero, err := snapshotHero(s)
	if err != nil {
		return domain.Plan{}, err
	}

	t := domain.Timeline{DayStart: s.DayStart, DayEnd: s.DayEnd}
	for _, ss := range s.Segments {
		t.Segments = append(t.Segments, convertSegment(ss, hero))
	}
	if err := timeline.ValidatePartition(t); err != nil {
		return domain.Plan{}, fmt.Errorf("converting snapshot: %w", err)
	}
	t = timeline.SyncSpecialSlots(timeline.Normalize(t))

	p := domain.Plan{
		LineupName:    domain.TruncateRunes(s.LineupName, domain.MaxLineupNameRunes),
		DayPlanTag:    domain.DefaultDayPlanTag,
		StrengthTag:   domain.DefaultStrengthTag,
		DifficultyTag: domain.DefaultDifficultyTag,
		Timeline:      t,
		ActiveSegment: t.ClampIndex(s.ActiveSegmentIndex),
	}
	if tag := domain.DayPlanTag(s.DayPlanTag); domain.ValidDayPlanTags[tag] {
		p.DayPlanTag = tag
	}
	if tag := domain.StrengthTag(s.StrengthTag); domain.ValidStrengthTags[tag] {
		p.StrengthTag = tag
	}
	if tag := domain.DifficultyTag(s.DifficultyTag); domain.ValidDifficultyTags[tag] {
		p.DifficultyTag = tag
	}

	for segID, buildID := range s.ActiveBuildBySegment {
		i := t.SegmentIndex(segID)
		if i < 0 || t.Segments[i].BuildIndex(buildID) < 0 {
			continue
		}
		if p.ActiveBuild == nil {
			p.ActiveBuild = make(map[string]string)
		}
		p.ActiveBuild[segID] = buildID
	}
	return p, nil
}

func convertSegment(ss SegmentSnapshot, hero domain.Hero) domain.Segment {
	seg := domain.Segment{
		ID:                ss.ID,
		DayFrom:           ss.DayFrom,
		DayTo:             ss.DayTo,
		Hero:              hero,
		StrategyText:      domain.TruncateRunes(ss.StrategyText, domain.MaxStrategyRunes),
		CoreSkillIDs:      legacyIDs(ss.CoreSkillIDs, ss.CoreSkillID),
		ImportantSkillIDs: legacyIDs(ss.ImportantSkillIDs, ""),
		OptionalSkillIDs:  legacyIDs(ss.OptionalSkillIDs, ""),
	}
	for _, m := range ss.SpecialSlots {
		seg.SpecialSlots = append(seg.SpecialSlots, domain.SpecialSlot{
			ID:   m.ID,
			Slot: m.Slot,
			Type: domain.MarkerType(m.Type),
		})
	}
	for _, b := range ss.Builds {
		seg.Builds = append(seg.Builds, convertBuild(b))
	}
	for _, sk := range ss.Skills {
		seg.Skills = append(seg.Skills, domain.SkillEntry{
			SkillID: sk.SkillID,
			Card:    itemRef(sk.Item, domain.KindSkill),
		})
	}
	return seg
}

func convertBuild(b BuildSnapshot) domain.CardBuild {
	out := domain.CardBuild{
		ID:                    b.ID,
		Name:                  b.Name,
		CorePlacementIDs:      legacyIDs(b.CorePlacementIDs, b.CorePlacementID),
		SecondaryPlacementIDs: legacyIDs(b.SecondaryPlacementIDs, b.SecondaryPlacementID),
		SupportPlacementIDs:   legacyIDs(b.SupportPlacementIDs, ""),
	}
	for _, c := range b.Cards {
		ref := itemRef(c.Item, domain.KindItem)
		tier := domain.BorderTier(strings.ToLower(c.BorderTier))
		if tier == "" {
			tier = catalog.DefaultBorderTier(ref)
		}
		out.Cards = append(out.Cards, domain.Placement{
			PlacementID: c.PlacementID,
			Card:        ref,
			Start:       c.Start,
			Width:       c.Width,
			BorderTier:  tier,
		})
	}
	return out.PruneRoles()
}

func itemRef(it ItemSnapshot, kind domain.CardKind) domain.CardRef {
	return domain.CardRef{
		ID:             it.ID,
		NameCN:         it.NameCN,
		NameEN:         it.NameEN,
		Size:           it.Size,
		StartingTier:   domain.CoalesceStr(it.StartingTier, it.Tier),
		AvailableTiers: it.AvailableTiers,
		Kind:           kind,
	}
}

// legacyIDs returns the id list, or the single legacy id when the list is
// absent. Empty results are nil.
func legacyIDs(ids []string, legacy string) []string {
	if ids == nil && legacy != "" {
		return []string{legacy}
	}
	var out []string
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// Export encodes p as a current-version snapshot.
func Export(p domain.Plan) ([]byte, error) {
	data, err := json.Marshal(FromPlan(p))
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// FromPlan builds the snapshot of p. Lists are always emitted, never null.
func FromPlan(p domain.Plan) *Snapshot {
	s := &Snapshot{
		Version:              CurrentVersion,
		DayStart:             p.Timeline.DayStart,
		DayEnd:               p.Timeline.DayEnd,
		Hero:                 string(p.Hero()),
		LineupName:           p.LineupName,
		DayPlanTag:           string(p.DayPlanTag),
		StrengthTag:          string(p.StrengthTag),
		DifficultyTag:        string(p.DifficultyTag),
		Segments:             make([]SegmentSnapshot, 0, len(p.Timeline.Segments)),
		ActiveSegmentIndex:   p.ActiveSegment,
		ActiveBuildBySegment: make(map[string]string, len(p.ActiveBuild)),
	}
	for k, v := range p.ActiveBuild {
		s.ActiveBuildBySegment[k] = v
	}
	for _, seg := range p.Timeline.Segments {
		s.Segments = append(s.Segments, segmentSnapshot(seg))
	}
	return s
}

func segmentSnapshot(seg domain.Segment) SegmentSnapshot {
	out := SegmentSnapshot{
		ID:                seg.ID,
		DayFrom:           seg.DayFrom,
		DayTo:             seg.DayTo,
		Hero:              string(seg.Hero),
		StrategyText:      seg.StrategyText,
		SpecialSlots:      make([]MarkerSnapshot, 0, len(seg.SpecialSlots)),
		Builds:            make([]BuildSnapshot, 0, len(seg.Builds)),
		Skills:            make([]SkillSnapshot, 0, len(seg.Skills)),
		CoreSkillIDs:      nonNil(seg.CoreSkillIDs),
		ImportantSkillIDs: nonNil(seg.ImportantSkillIDs),
		OptionalSkillIDs:  nonNil(seg.OptionalSkillIDs),
	}
	for _, m := range seg.SpecialSlots {
		out.SpecialSlots = append(out.SpecialSlots, MarkerSnapshot{ID: m.ID, Slot: m.Slot, Type: string(m.Type)})
	}
	for _, b := range seg.Builds {
		bs := BuildSnapshot{
			ID:                    b.ID,
			Name:                  b.Name,
			Cards:                 make([]CardSnapshot, 0, len(b.Cards)),
			CorePlacementIDs:      nonNil(b.CorePlacementIDs),
			SecondaryPlacementIDs: nonNil(b.SecondaryPlacementIDs),
			SupportPlacementIDs:   nonNil(b.SupportPlacementIDs),
		}
		for _, c := range b.Cards {
			bs.Cards = append(bs.Cards, CardSnapshot{
				PlacementID: c.PlacementID,
				Item:        itemSnapshot(c.Card),
				Start:       c.Start,
				Width:       c.Width,
				BorderTier:  string(c.BorderTier),
			})
		}
		out.Builds = append(out.Builds, bs)
	}
	for _, sk := range seg.Skills {
		out.Skills = append(out.Skills, SkillSnapshot{SkillID: sk.SkillID, Item: itemSnapshot(sk.Card)})
	}
	return out
}

func itemSnapshot(c domain.CardRef) ItemSnapshot {
	return ItemSnapshot{
		ID:             c.ID,
		NameCN:         c.NameCN,
		NameEN:         c.NameEN,
		Size:           c.Size,
		StartingTier:   c.StartingTier,
		AvailableTiers: c.AvailableTiers,
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
