// Package planner applies editor operations to a lineup plan. Every
// operation takes a plan by value and returns a new one; a *domain.Hint
// error means the plan was left as it was.
package planner

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// Default range of a new plan.
const (
	DefaultDayStart = 1
	DefaultDayEnd   = 13
)

// New returns a plan for [start, end] with default tags.
func New(start, end int, hero domain.Hero, rng timeline.Rand) (domain.Plan, error) {
	if !domain.ValidHeroes[hero] {
		return domain.Plan{}, unknownHero(hero)
	}
	t, err := timeline.InitForRange(start, end, hero, rng)
	if err != nil {
		return domain.Plan{}, err
	}
	return domain.Plan{
		DayPlanTag:    domain.DefaultDayPlanTag,
		StrengthTag:   domain.DefaultStrengthTag,
		DifficultyTag: domain.DefaultDifficultyTag,
		Timeline:      t,
		ActiveBuild:   firstBuilds(t),
	}, nil
}

// ApplyDayRange re-initialises the timeline for [start, end] keeping the
// active segment's hero. All segment content is discarded.
func ApplyDayRange(p domain.Plan, start, end int, rng timeline.Rand) (domain.Plan, error) {
	hero := domain.DefaultHero
	if segs := p.Timeline.Segments; len(segs) > 0 {
		hero = segs[p.ActiveIndex()].Hero
	}
	t, err := timeline.InitForRange(start, end, hero, rng)
	if err != nil {
		return p, err
	}
	out := p.Clone()
	out.Timeline = t
	out.ActiveSegment = 0
	out.ActiveBuild = firstBuilds(t)
	return out, nil
}

// SelectSegment makes segment i active.
func SelectSegment(p domain.Plan, i int) (domain.Plan, error) {
	if i < 0 || i >= len(p.Timeline.Segments) {
		return p, domain.NewHint(domain.HintUnknownSegment, fmt.Sprintf("no segment %d", i+1))
	}
	out := p.Clone()
	out.ActiveSegment = i
	return out, nil
}

// SelectBuild makes the build active within the active segment.
func SelectBuild(p domain.Plan, buildID string) (domain.Plan, error) {
	si := p.ActiveIndex()
	if si >= len(p.Timeline.Segments) || p.Timeline.Segments[si].BuildIndex(buildID) < 0 {
		return p, unknownBuild(buildID)
	}
	out := p.Clone()
	out.ActiveBuild = setActive(out.ActiveBuild, p.Timeline.Segments[si].ID, buildID)
	return out, nil
}

// HeroSwitchDiscardsWork reports whether ApplyHero would wipe placed cards.
func HeroSwitchDiscardsWork(p domain.Plan) bool {
	for _, seg := range p.Timeline.Segments {
		if seg.HasCards() {
			return true
		}
	}
	return false
}

// ApplyHero switches every segment to hero. When any card is placed all
// segments are reset to one empty build without skills. Marker-bearing
// heroes get seeded markers where none exist; other heroes lose them.
func ApplyHero(p domain.Plan, hero domain.Hero, rng timeline.Rand) (domain.Plan, error) {
	if !domain.ValidHeroes[hero] {
		return p, unknownHero(hero)
	}
	if hero == p.Hero() && len(p.Timeline.Segments) > 0 {
		return p, nil
	}

	reset := HeroSwitchDiscardsWork(p)
	out := p.Clone()
	for i, seg := range out.Timeline.Segments {
		seg.Hero = hero
		if reset {
			seg.Builds = []domain.CardBuild{timeline.NewBuild(1)}
			seg.Skills = nil
			seg.CoreSkillIDs, seg.ImportantSkillIDs, seg.OptionalSkillIDs = nil, nil, nil
			seg.SpecialSlots = nil
		}
		switch {
		case !hero.BearsMarkers():
			seg.SpecialSlots = nil
		case len(seg.SpecialSlots) == 0:
			seg.SpecialSlots = timeline.SeedMarkers(seg.DayFrom, rng)
		}
		out.Timeline.Segments[i] = seg
	}
	out.Timeline = timeline.SyncSpecialSlots(out.Timeline)
	if reset {
		out.ActiveBuild = firstBuilds(out.Timeline)
	}
	return out, nil
}

// RenameLineup sets the lineup name, trimmed to the name limit.
func RenameLineup(p domain.Plan, name string) domain.Plan {
	out := p.Clone()
	out.LineupName = domain.TruncateRunes(name, domain.MaxLineupNameRunes)
	return out
}

// Tags holds optional tag changes; empty fields keep the current value.
type Tags struct {
	DayPlan    domain.DayPlanTag
	Strength   domain.StrengthTag
	Difficulty domain.DifficultyTag
}

// SetTags updates the lineup tags.
func SetTags(p domain.Plan, tags Tags) (domain.Plan, error) {
	switch {
	case tags.DayPlan != "" && !domain.ValidDayPlanTags[tags.DayPlan]:
		return p, unknownTag(string(tags.DayPlan))
	case tags.Strength != "" && !domain.ValidStrengthTags[tags.Strength]:
		return p, unknownTag(string(tags.Strength))
	case tags.Difficulty != "" && !domain.ValidDifficultyTags[tags.Difficulty]:
		return p, unknownTag(string(tags.Difficulty))
	}
	out := p.Clone()
	if tags.DayPlan != "" {
		out.DayPlanTag = tags.DayPlan
	}
	if tags.Strength != "" {
		out.StrengthTag = tags.Strength
	}
	if tags.Difficulty != "" {
		out.DifficultyTag = tags.Difficulty
	}
	return out, nil
}

// SetStrategy sets the active segment's strategy note.
func SetStrategy(p domain.Plan, text string) (domain.Plan, error) {
	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		seg.StrategyText = domain.TruncateRunes(text, domain.MaxStrategyRunes)
		return seg, nil
	})
}

func firstBuilds(t domain.Timeline) map[string]string {
	m := make(map[string]string, len(t.Segments))
	for _, seg := range t.Segments {
		if len(seg.Builds) > 0 {
			m[seg.ID] = seg.Builds[0].ID
		}
	}
	return m
}

func setActive(m map[string]string, segID, buildID string) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	m[segID] = buildID
	return m
}

// pruneActive drops selections of segments that no longer exist.
func pruneActive(p *domain.Plan) {
	live := make(map[string]bool, len(p.Timeline.Segments))
	for _, seg := range p.Timeline.Segments {
		live[seg.ID] = true
	}
	for id := range p.ActiveBuild {
		if !live[id] {
			delete(p.ActiveBuild, id)
		}
	}
}

func updateActiveSegment(p domain.Plan, fn func(domain.Segment) (domain.Segment, error)) (domain.Plan, error) {
	si := p.ActiveIndex()
	if si >= len(p.Timeline.Segments) {
		return p, domain.NewHint(domain.HintUnknownSegment, "plan has no segments")
	}
	out := p.Clone()
	seg, err := fn(out.Timeline.Segments[si])
	if err != nil {
		return p, err
	}
	out.Timeline.Segments[si] = seg
	return out, nil
}

func updateActiveBuild(p domain.Plan, fn func(domain.CardBuild, domain.Segment) (domain.CardBuild, error)) (domain.Plan, error) {
	bi := p.ActiveBuildIndex(p.ActiveIndex())
	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if bi >= len(seg.Builds) {
			return seg, domain.NewHint(domain.HintUnknownBuild, "segment has no builds")
		}
		b, err := fn(seg.Builds[bi], seg)
		if err != nil {
			return seg, err
		}
		seg.Builds[bi] = b
		return seg, nil
	})
}

func unknownHero(h domain.Hero) error {
	return domain.NewHint(domain.HintUnknownHero, fmt.Sprintf("unknown hero %q", h))
}

func unknownTag(tag string) error {
	return domain.NewHint(domain.HintUnknownTag, fmt.Sprintf("unknown tag %q", tag))
}

func unknownBuild(id string) error {
	return domain.NewHint(domain.HintUnknownBuild, fmt.Sprintf("no build %q in this segment", id))
}
