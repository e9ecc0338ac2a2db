package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lineup/internal/db"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/google/uuid"
)

// CommunityListLimit caps the community feed.
const CommunityListLimit = 200

// PublishVersion tags lineups published from this client.
const PublishVersion = "cli-v1"

type communityService struct {
	lineups  repository.CommunityRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCommunityService(lineups repository.CommunityRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CommunityService {
	return &communityService{
		lineups:  lineups,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *communityService) Publish(ctx context.Context, req PublishRequest) (l *domain.CommunityLineup, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "publish-lineup", startedAt, fields, err) }()

	author := strings.TrimSpace(req.Author)
	if author == "" {
		return nil, fmt.Errorf("publishing lineup: author nickname is required")
	}
	payload, err := importer.Export(req.Plan)
	if err != nil {
		return nil, fmt.Errorf("encoding lineup: %w", err)
	}

	p := req.Plan
	cards, markers := domain.SummarizeLineup(p)
	l = &domain.CommunityLineup{
		UUID:          uuid.New().String(),
		Name:          p.DisplayName(),
		Hero:          p.Hero(),
		DayFrom:       p.Timeline.DayStart,
		DayTo:         p.Timeline.DayEnd,
		DayPlanTag:    p.DayPlanTag,
		StrengthTag:   p.StrengthTag,
		DifficultyTag: p.DifficultyTag,
		Cards:         cards,
		SpecialSlots:  markers,
		Payload:       payload,
		Version:       PublishVersion,
		AuthorName:    author,
		VideoBV:       strings.TrimSpace(req.VideoBV),
		VideoTitle:    strings.TrimSpace(req.VideoTitle),
		CreatedAt:     time.Now().UTC(),
	}
	fields["lineup"] = l.UUID
	fields["cards"] = len(cards)
	if err = s.lineups.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *communityService) List(ctx context.Context) ([]*domain.CommunityLineup, error) {
	return s.lineups.ListNewest(ctx, CommunityListLimit)
}

func (s *communityService) Get(ctx context.Context, id string) (*domain.CommunityLineup, error) {
	return s.lineups.GetByUUID(ctx, id)
}

func (s *communityService) Open(ctx context.Context, id string) (domain.Plan, error) {
	l, err := s.lineups.GetByUUID(ctx, id)
	if err != nil {
		return domain.Plan{}, err
	}
	p, err := decodePlan(l.Payload)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("lineup %q: %w", l.Name, err)
	}
	return p, nil
}

func (s *communityService) Toggle(ctx context.Context, id string, typ domain.InteractionType, nickname string) (res InteractionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"lineup": id, "type": string(typ)}
	defer func() { observe(ctx, s.observer, "toggle-interaction", startedAt, fields, err) }()

	if !domain.ValidInteractions[typ] {
		return InteractionResult{}, fmt.Errorf("unknown interaction %q", typ)
	}
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return InteractionResult{}, fmt.Errorf("toggling %s: nickname is required", typ)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLineups := repository.NewSQLiteCommunityRepo(tx)

		if _, err := txLineups.GetByUUID(ctx, id); err != nil {
			return err
		}
		has, err := txLineups.HasInteraction(ctx, id, typ, nickname)
		if err != nil {
			return err
		}
		if err := txLineups.SetInteraction(ctx, id, typ, nickname, !has); err != nil {
			return err
		}
		n, err := txLineups.Recount(ctx, id, typ)
		if err != nil {
			return err
		}
		res = InteractionResult{Active: !has, Count: n}
		return nil
	})
	if err != nil {
		return InteractionResult{}, err
	}
	fields["active"] = res.Active
	return res, nil
}
