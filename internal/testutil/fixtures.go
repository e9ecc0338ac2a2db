package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/google/uuid"
)

// NewRand returns a deterministic source for marker seeding.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// Plan options
type PlanOption func(*domain.Plan)

func WithLineupName(name string) PlanOption {
	return func(p *domain.Plan) {
		p.LineupName = name
	}
}

func WithStrengthTag(tag domain.StrengthTag) PlanOption {
	return func(p *domain.Plan) {
		p.StrengthTag = tag
	}
}

// NewTestPlan returns a fresh plan for [start, end] with the default hero.
func NewTestPlan(t *testing.T, start, end int, opts ...PlanOption) domain.Plan {
	t.Helper()
	p, err := planner.New(start, end, domain.DefaultHero, NewRand())
	if err != nil {
		t.Fatalf("creating plan: %v", err)
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Draft options
type DraftOption func(*domain.Draft)

func WithContextLabel(label string) DraftOption {
	return func(d *domain.Draft) {
		d.ContextLabel = label
	}
}

func WithDraftCreatedAt(at time.Time) DraftOption {
	return func(d *domain.Draft) {
		d.CreatedAt = at
		d.UpdatedAt = at
	}
}

// NewTestDraft returns a draft holding the export of a fresh plan.
func NewTestDraft(t *testing.T, name string, opts ...DraftOption) *domain.Draft {
	t.Helper()
	payload, err := importer.Export(NewTestPlan(t, 1, 13))
	if err != nil {
		t.Fatalf("exporting plan: %v", err)
	}
	now := time.Now().UTC()
	d := &domain.Draft{
		ID:        uuid.New().String(),
		Name:      name,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Community lineup options
type LineupOption func(*domain.CommunityLineup)

func WithDays(from, to int) LineupOption {
	return func(l *domain.CommunityLineup) {
		l.DayFrom = from
		l.DayTo = to
	}
}

func WithAuthor(name string) LineupOption {
	return func(l *domain.CommunityLineup) {
		l.AuthorName = name
	}
}

func WithLineupCreatedAt(at time.Time) LineupOption {
	return func(l *domain.CommunityLineup) {
		l.CreatedAt = at
	}
}

func WithVideo(bv, title string) LineupOption {
	return func(l *domain.CommunityLineup) {
		l.VideoBV = bv
		l.VideoTitle = title
	}
}

// NewTestLineup returns a community lineup with a small summary.
func NewTestLineup(name string, opts ...LineupOption) *domain.CommunityLineup {
	l := &domain.CommunityLineup{
		UUID:          uuid.New().String(),
		Name:          name,
		Hero:          domain.DefaultHero,
		DayFrom:       1,
		DayTo:         13,
		DayPlanTag:    domain.DefaultDayPlanTag,
		StrengthTag:   domain.DefaultStrengthTag,
		DifficultyTag: domain.DefaultDifficultyTag,
		Cards: []domain.CommunityCard{
			{ID: "oven", Role: domain.CommunityCore, Pos: 3},
			{ID: "pan", Role: domain.CommunityTech, Pos: 6},
		},
		SpecialSlots: []domain.CommunityMarker{{Slot: 4, Type: domain.MarkerFire}},
		Payload:      []byte(`{"version":3}`),
		Version:      "cli-v1",
		AuthorName:   "tester",
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
