package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacement_Overlaps(t *testing.T) {
	a := Placement{Start: 2, Width: 3}
	assert.True(t, a.Overlaps(Placement{Start: 4, Width: 1}))
	assert.False(t, a.Overlaps(Placement{Start: 5, Width: 2}))
	assert.False(t, a.Overlaps(Placement{Start: 0, Width: 2}))
	assert.Equal(t, 5, a.End())
}

func TestCardBuild_CloneIsDeep(t *testing.T) {
	b := CardBuild{
		ID:               "b1",
		Cards:            []Placement{{PlacementID: "p1", Start: 2, Width: 1}},
		CorePlacementIDs: []string{"p1"},
	}
	c := b.Clone()
	c.Cards[0].Start = 7
	c.CorePlacementIDs[0] = "zz"
	assert.Equal(t, 2, b.Cards[0].Start)
	assert.Equal(t, "p1", b.CorePlacementIDs[0])
	assert.Nil(t, c.SupportPlacementIDs, "empty lists stay nil")
}

func TestCardBuild_RolesAndPrune(t *testing.T) {
	b := CardBuild{
		Cards:                 []Placement{{PlacementID: "p1"}, {PlacementID: "p2"}},
		CorePlacementIDs:      []string{"p1", "gone"},
		SecondaryPlacementIDs: []string{"p2"},
		SupportPlacementIDs:   []string{"gone"},
	}
	assert.Equal(t, RoleCore, b.RoleOf("p1"))
	assert.Equal(t, RoleSecondary, b.RoleOf("p2"))
	assert.Equal(t, CardRole(""), b.RoleOf("p3"))

	pruned := b.PruneRoles()
	assert.Equal(t, []string{"p1"}, pruned.CorePlacementIDs)
	assert.Nil(t, pruned.SupportPlacementIDs)
	assert.True(t, b.HasContent())
	assert.False(t, CardBuild{}.HasContent())
}

func TestToggleID(t *testing.T) {
	ids := ToggleID(nil, "a")
	assert.Equal(t, []string{"a"}, ids)
	ids = ToggleID(ids, "b")
	assert.Equal(t, []string{"a", "b"}, ids)
	assert.Equal(t, []string{"b"}, ToggleID(ids, "a"))
	assert.Nil(t, WithoutID([]string{"a"}, "a"))
}

func TestSegment_LabelAndRoles(t *testing.T) {
	s := Segment{DayFrom: 3, DayTo: 7, Skills: []SkillEntry{{SkillID: "s1"}}, ImportantSkillIDs: []string{"s1"}}
	assert.Equal(t, "Day3-Day7", s.Label())
	assert.Equal(t, 5, s.Days())
	assert.Equal(t, "Day1", Segment{DayFrom: 1, DayTo: 1}.Label())
	assert.True(t, s.HasSkill("s1"))
	assert.Equal(t, SkillImportant, s.SkillRoleOf("s1"))
	assert.Equal(t, SkillRole(""), s.SkillRoleOf("s2"))
}

func TestTimeline_HasUserWork(t *testing.T) {
	tl := Timeline{Segments: []Segment{{Builds: []CardBuild{{ID: "b"}}}}}
	assert.False(t, tl.HasUserWork())

	tl.Segments[0].Builds = append(tl.Segments[0].Builds, CardBuild{ID: "b2"})
	assert.True(t, tl.HasUserWork())

	withCard := Timeline{Segments: []Segment{{Builds: []CardBuild{{Cards: []Placement{{PlacementID: "p"}}}}}}}
	assert.True(t, withCard.HasUserWork())
}

func TestPlan_DisplayNameAndSelection(t *testing.T) {
	p := Plan{
		Timeline: Timeline{DayStart: 1, DayEnd: 13, Segments: []Segment{
			{ID: "s1", Hero: HeroJules, Builds: []CardBuild{{ID: "b1"}, {ID: "b2"}}},
		}},
		ActiveSegment: 5,
		ActiveBuild:   map[string]string{"s1": "b2"},
	}
	assert.Equal(t, "Jules Day1-Day13", p.DisplayName())
	p.LineupName = "Burn"
	assert.Equal(t, "Burn", p.DisplayName())

	assert.Equal(t, 0, p.ActiveIndex(), "clamped")
	assert.Equal(t, 1, p.ActiveBuildIndex(0))
	p.ActiveBuild["s1"] = "missing"
	assert.Equal(t, 0, p.ActiveBuildIndex(0))

	c := p.Clone()
	c.ActiveBuild["s1"] = "b1"
	c.Timeline.Segments[0].Builds[0].ID = "changed"
	assert.Equal(t, "missing", p.ActiveBuild["s1"])
	assert.Equal(t, "b1", p.Timeline.Segments[0].Builds[0].ID)
}

func TestPlan_DefaultHeroWithoutSegments(t *testing.T) {
	assert.Equal(t, DefaultHero, Plan{}.Hero())
}

func TestHint_ErrorsAs(t *testing.T) {
	err := fmt.Errorf("placing card: %w", NewHint(HintCapacity, "no room"))
	assert.Equal(t, HintCapacity, HintCodeOf(err))
	assert.Equal(t, "placing card: no room", err.Error())
	assert.Equal(t, HintCode(""), HintCodeOf(errors.New("boom")))

	var h *Hint
	require.True(t, errors.As(err, &h))
	assert.Equal(t, "no room", h.Message)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "连胜", TruncateRunes("连胜早走", 2))
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
}

func TestEnums(t *testing.T) {
	assert.Equal(t, MarkerIce, MarkerFire.Flip())
	assert.Equal(t, MarkerFire, MarkerIce.Flip())
	assert.Equal(t, 2, TierGold.Rank())
	assert.Equal(t, -1, BorderTier("mythic").Rank())
	assert.True(t, HeroJules.BearsMarkers())
	assert.False(t, HeroMak.BearsMarkers())
	for _, h := range Heroes {
		assert.True(t, ValidHeroes[h])
	}
}

func TestSummarizeLineup(t *testing.T) {
	p := Plan{Timeline: Timeline{DayStart: 1, DayEnd: 9, Segments: []Segment{
		{ID: "s1", DayFrom: 1, DayTo: 2, Builds: []CardBuild{{ID: "b0", Cards: []Placement{{PlacementID: "x", Card: CardRef{ID: "early"}}}}}},
		{
			ID: "s2", DayFrom: 3, DayTo: 9,
			SpecialSlots: []SpecialSlot{{ID: "m", Slot: 4, Type: MarkerIce}},
			Builds: []CardBuild{
				{
					ID: "b1",
					Cards: []Placement{
						{PlacementID: "p1", Card: CardRef{ID: "oven"}, Start: 0, Width: 3},
						{PlacementID: "p2", Card: CardRef{ID: "pan"}, Start: 3, Width: 1},
						{PlacementID: "p3", Card: CardRef{ID: "atlas"}, Start: 5, Width: 2},
					},
					CorePlacementIDs:      []string{"p1"},
					SecondaryPlacementIDs: []string{"p2"},
					SupportPlacementIDs:   []string{"p3"},
				},
				{ID: "b2", Cards: []Placement{{PlacementID: "q", Card: CardRef{ID: "ignored"}}}},
			},
		},
	}}}

	cards, markers := SummarizeLineup(p)
	assert.Equal(t, []CommunityCard{
		{ID: "oven", Role: CommunityCore, Pos: 1},
		{ID: "pan", Role: CommunitySub, Pos: 4},
		{ID: "atlas", Role: CommunityTech, Pos: 6},
	}, cards)
	assert.Equal(t, []CommunityMarker{{Slot: 4, Type: MarkerIce}}, markers)

	cards, markers = SummarizeLineup(Plan{})
	assert.Nil(t, cards)
	assert.Nil(t, markers)
}

func TestTagSlug(t *testing.T) {
	assert.Equal(t, "northern-push", TagSlug(string(DayPlanNorthernRun)))
	assert.Equal(t, "off-meta", TagSlug(string(StrengthOffMeta)))
	assert.Equal(t, "very-hard", TagSlug(string(DifficultyVeryHard)))
	assert.Equal(t, "custom", TagSlug("custom"))
	assert.Equal(t, StrengthMeta, StrengthSlugs["meta"])
}
