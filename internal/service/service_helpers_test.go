package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/stretchr/testify/require"
)

var (
	ovenCard  = domain.CardRef{ID: "oven", NameEN: "Oven", Size: "Large", StartingTier: "Silver", Kind: domain.KindItem}
	panCard   = domain.CardRef{ID: "pan", NameEN: "Pan", Size: "Small", StartingTier: "Bronze", Kind: domain.KindItem}
	stoveCard = domain.CardRef{ID: "hot-stove", NameEN: "Hot Stove", Kind: domain.KindSkill}
)

// dropOn places card at slot in segment seg of p.
func dropOn(t *testing.T, p domain.Plan, seg int, card domain.CardRef, slot int) (domain.Plan, string) {
	t.Helper()
	p, err := planner.SelectSegment(p, seg)
	require.NoError(t, err)
	p, id, err := planner.CommitDrop(p, planner.DragSource{Card: card}, slot)
	require.NoError(t, err)
	return p, id
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func logBuffer() (*bytes.Buffer, UseCaseObserver) {
	var buf bytes.Buffer
	return &buf, NewLogUseCaseObserver(&buf)
}
