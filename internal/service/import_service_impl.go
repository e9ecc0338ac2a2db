package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/repository"
)

type importService struct {
	drafts   repository.DraftRepo
	observer UseCaseObserver
}

func NewImportService(drafts repository.DraftRepo, observers ...UseCaseObserver) ImportService {
	return &importService{drafts: drafts, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, data []byte) (p domain.Plan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"bytes": len(data)}
	defer func() { observe(ctx, s.observer, "import-plan", startedAt, fields, err) }()

	p, err = decodePlan(data)
	if err != nil {
		return domain.Plan{}, err
	}
	fields["segments"] = len(p.Timeline.Segments)
	return p, nil
}

func (s *importService) ImportFile(ctx context.Context, path string) (domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("reading import file: %w", err)
	}
	return s.Import(ctx, data)
}

func (s *importService) ImportAsDraft(ctx context.Context, data []byte, name string) (*domain.Draft, error) {
	p, err := s.Import(ctx, data)
	if err != nil {
		return nil, err
	}
	d, err := newDraft(name, p)
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("storing imported draft: %w", err)
	}
	return d, nil
}
