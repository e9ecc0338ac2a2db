package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/google/uuid"
)

type draftService struct {
	drafts   repository.DraftRepo
	observer UseCaseObserver
}

func NewDraftService(drafts repository.DraftRepo, observers ...UseCaseObserver) DraftService {
	return &draftService{drafts: drafts, observer: useCaseObserverOrNoop(observers)}
}

func (s *draftService) Save(ctx context.Context, name string, p domain.Plan) (d *domain.Draft, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "save-draft", startedAt, fields, err) }()

	d, err = newDraft(name, p)
	if err != nil {
		return nil, err
	}
	fields["draft"] = d.ID
	if err = s.drafts.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *draftService) Load(ctx context.Context, id string) (domain.Plan, error) {
	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}
	p, err := decodePlan(d.Payload)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("draft %q: %w", d.Name, err)
	}
	return p, nil
}

func (s *draftService) List(ctx context.Context) ([]*domain.Draft, error) {
	return s.drafts.List(ctx)
}

func (s *draftService) Delete(ctx context.Context, id string) error {
	return s.drafts.Delete(ctx, id)
}

func newDraft(name string, p domain.Plan) (*domain.Draft, error) {
	payload, err := importer.Export(p)
	if err != nil {
		return nil, fmt.Errorf("encoding draft: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = p.DisplayName()
	}
	now := time.Now().UTC()
	return &domain.Draft{
		ID:           uuid.New().String(),
		Name:         name,
		ContextLabel: string(p.Hero()),
		Payload:      payload,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
