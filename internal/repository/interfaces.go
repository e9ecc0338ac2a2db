package repository

import (
	"context"

	"github.com/alexanderramin/lineup/internal/domain"
)

type DraftRepo interface {
	// Save inserts the draft or replaces the one with the same id.
	Save(ctx context.Context, d *domain.Draft) error
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	// List returns drafts newest first.
	List(ctx context.Context) ([]*domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type CommunityRepo interface {
	Create(ctx context.Context, l *domain.CommunityLineup) error
	GetByUUID(ctx context.Context, uuid string) (*domain.CommunityLineup, error)
	// ListNewest returns up to limit lineups, newest first.
	ListNewest(ctx context.Context, limit int) ([]*domain.CommunityLineup, error)
	// SetInteraction adds or removes nickname's interaction; both are
	// idempotent.
	SetInteraction(ctx context.Context, uuid string, typ domain.InteractionType, nickname string, enabled bool) error
	HasInteraction(ctx context.Context, uuid string, typ domain.InteractionType, nickname string) (bool, error)
	// Recount stores and returns the number of interactions of typ.
	Recount(ctx context.Context, uuid string, typ domain.InteractionType) (int, error)
}
