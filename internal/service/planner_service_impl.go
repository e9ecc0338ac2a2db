package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// WorkspaceKey is the settings key holding the plan being edited.
const WorkspaceKey = "workspace"

type plannerService struct {
	settings repository.SettingsRepo
	rng      timeline.Rand
	observer UseCaseObserver
}

func NewPlannerService(settings repository.SettingsRepo, rng timeline.Rand, observers ...UseCaseObserver) PlannerService {
	return &plannerService{
		settings: settings,
		rng:      rng,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) Current(ctx context.Context) (domain.Plan, error) {
	raw, err := s.settings.Get(ctx, WorkspaceKey)
	if errors.Is(err, repository.ErrNotFound) {
		return s.Reset(ctx, planner.DefaultDayStart, planner.DefaultDayEnd, domain.DefaultHero)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("loading workspace: %w", err)
	}
	p, err := importer.Import([]byte(raw))
	if err != nil {
		return domain.Plan{}, fmt.Errorf("decoding workspace: %w", err)
	}
	return p, nil
}

func (s *plannerService) Apply(ctx context.Context, name string, op Operation) (out domain.Plan, err error) {
	startedAt := time.Now().UTC()
	defer func() { observe(ctx, s.observer, name, startedAt, nil, err) }()

	p, err := s.Current(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	out, err = op(p, s.rng)
	if err != nil {
		return p, err
	}
	if err = s.Save(ctx, out); err != nil {
		return p, err
	}
	return out, nil
}

func (s *plannerService) Save(ctx context.Context, p domain.Plan) error {
	data, err := importer.Export(p)
	if err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}
	if err := s.settings.Set(ctx, WorkspaceKey, string(data)); err != nil {
		return fmt.Errorf("saving workspace: %w", err)
	}
	return nil
}

func (s *plannerService) Reset(ctx context.Context, start, end int, hero domain.Hero) (domain.Plan, error) {
	p, err := planner.New(start, end, hero, s.rng)
	if err != nil {
		return domain.Plan{}, err
	}
	if err := s.Save(ctx, p); err != nil {
		return domain.Plan{}, err
	}
	return p, nil
}
