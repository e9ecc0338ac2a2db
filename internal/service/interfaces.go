package service

import (
	"context"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// Operation is one planner edit. A *domain.Hint error means the plan was
// not changed.
type Operation func(p domain.Plan, rng timeline.Rand) (domain.Plan, error)

type PlannerService interface {
	// Current returns the workspace plan. The first call stores a fresh
	// default plan.
	Current(ctx context.Context) (domain.Plan, error)
	// Apply runs op on the workspace plan and persists the result. On error
	// the stored plan is left as it was and the unchanged plan is returned.
	Apply(ctx context.Context, name string, op Operation) (domain.Plan, error)
	Save(ctx context.Context, p domain.Plan) error
	Reset(ctx context.Context, start, end int, hero domain.Hero) (domain.Plan, error)
}

type DraftService interface {
	// Save stores p as a new draft. An empty name uses the plan's display
	// name.
	Save(ctx context.Context, name string, p domain.Plan) (*domain.Draft, error)
	Load(ctx context.Context, id string) (domain.Plan, error)
	List(ctx context.Context) ([]*domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

type ImportService interface {
	Import(ctx context.Context, data []byte) (domain.Plan, error)
	ImportFile(ctx context.Context, path string) (domain.Plan, error)
	// ImportAsDraft imports data and stores the result as a draft.
	ImportAsDraft(ctx context.Context, data []byte, name string) (*domain.Draft, error)
}

// PublishRequest describes a plan shared to the community feed.
type PublishRequest struct {
	Plan       domain.Plan
	Author     string
	VideoBV    string
	VideoTitle string
}

// InteractionResult is the state after toggling a like or favorite.
type InteractionResult struct {
	Active bool
	Count  int
}

type CommunityService interface {
	Publish(ctx context.Context, req PublishRequest) (*domain.CommunityLineup, error)
	// List returns the newest lineups, at most CommunityListLimit.
	List(ctx context.Context) ([]*domain.CommunityLineup, error)
	Get(ctx context.Context, uuid string) (*domain.CommunityLineup, error)
	// Open decodes a published lineup back into an editable plan.
	Open(ctx context.Context, uuid string) (domain.Plan, error)
	Toggle(ctx context.Context, uuid string, typ domain.InteractionType, nickname string) (InteractionResult, error)
}

type SettingsService interface {
	BoardScale(ctx context.Context) (float64, error)
	// SetBoardScale clamps and rounds v, stores it and returns the stored
	// value.
	SetBoardScale(ctx context.Context, v float64) (float64, error)
}
