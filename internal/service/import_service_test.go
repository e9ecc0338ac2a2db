package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lineup/internal/importer"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/alexanderramin/lineup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedPlan = `{
  "version": 3,
  "dayStart": 1,
  "dayEnd": 3,
  "hero": "Mak",
  "lineupName": "Shared",
  "segments": [
    {"id": "s1", "dayFrom": 1, "dayTo": 3, "builds": [
      {"id": "b1", "name": "Plan 1", "cards": [
        {"placementId": "c1", "item": {"id": "pan", "size": "Small", "starting_tier": "Bronze"}, "start": 3, "width": 1}
      ]}
    ]}
  ]
}`

func TestImportService_Import(t *testing.T) {
	svc := NewImportService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t)))

	p, err := svc.Import(context.Background(), []byte(sharedPlan))
	require.NoError(t, err)
	assert.Equal(t, "Shared", p.LineupName)
	require.Len(t, p.Timeline.Segments, 1)
	assert.Equal(t, 3, p.Timeline.Segments[0].Builds[0].Cards[0].Start)
}

func TestImportService_CollectsAllProblems(t *testing.T) {
	svc := NewImportService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t)))

	bad := `{"version": 3, "dayStart": 4, "dayEnd": 2, "hero": "Nobody", "segments": []}`
	_, err := svc.Import(context.Background(), []byte(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrInvalidSnapshot)

	var ie *ImportError
	require.ErrorAs(t, err, &ie)
	assert.GreaterOrEqual(t, len(ie.Problems), 2)
	assert.Contains(t, err.Error(), "INVALID_RANGE")
	assert.Contains(t, err.Error(), "UNKNOWN_HERO")
}

func TestImportService_Malformed(t *testing.T) {
	svc := NewImportService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t)))

	_, err := svc.Import(context.Background(), []byte("not json"))
	assert.ErrorIs(t, err, importer.ErrInvalidSnapshot)
	assert.Contains(t, err.Error(), "MALFORMED")
}

func TestImportService_ImportFileAndDraft(t *testing.T) {
	drafts := repository.NewSQLiteDraftRepo(testutil.NewTestDB(t))
	svc := NewImportService(drafts)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "shared.json")
	require.NoError(t, os.WriteFile(path, []byte(sharedPlan), 0o644))
	p, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Shared", p.LineupName)

	_, err = svc.ImportFile(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading import file")

	d, err := svc.ImportAsDraft(ctx, []byte(sharedPlan), "")
	require.NoError(t, err)
	assert.Equal(t, "Shared", d.Name)
	assert.Equal(t, "Mak", d.ContextLabel)

	stored, err := drafts.GetByID(ctx, d.ID)
	require.NoError(t, err)
	reloaded, err := importer.Import(stored.Payload)
	require.NoError(t, err)
	assert.Equal(t, p, reloaded)
}

func TestImportService_InvalidDraftNotStored(t *testing.T) {
	drafts := repository.NewSQLiteDraftRepo(testutil.NewTestDB(t))
	svc := NewImportService(drafts)
	ctx := context.Background()

	_, err := svc.ImportAsDraft(ctx, []byte(`{"version": 0}`), "x")
	require.Error(t, err)

	all, err := drafts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
