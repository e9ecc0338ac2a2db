package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/lineup/internal/db"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// retryTx retries fn with backoff while SQLite reports the database busy.
func retryTx(fn func() error) error {
	const maxRetries = 10
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		time.Sleep(time.Millisecond * time.Duration(1<<attempt))
	}
	return err
}

func TestConcurrentAccess_ListDuringDraftWrites(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteDraftRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			d := testutil.NewTestDraft(t, fmt.Sprintf("Draft-%d", i))
			if err := retryTx(func() error { return repo.Save(ctx, d) }); err != nil {
				t.Errorf("writer: save draft %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				drafts, err := repo.List(ctx)
				if err != nil {
					t.Errorf("reader %d: list drafts: %v", reader, err)
					return
				}
				for _, d := range drafts {
					if d.ID == "" || len(d.Payload) == 0 {
						t.Errorf("reader %d: got half-written draft", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	drafts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 20)
}

func TestConcurrentAccess_LikeCountMatchesInteractions(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteCommunityRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	l := testutil.NewTestLineup("popular")
	require.NoError(t, repo.Create(ctx, l))

	const workers = 30
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := retryTx(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					txRepo := NewSQLiteCommunityRepo(tx)
					nick := fmt.Sprintf("user-%d", i)
					if err := txRepo.SetInteraction(ctx, l.UUID, domain.InteractionLike, nick, true); err != nil {
						return err
					}
					_, err := txRepo.Recount(ctx, l.UUID, domain.InteractionLike)
					return err
				})
			})
			if err != nil {
				errCh <- err
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repo.GetByUUID(ctx, l.UUID)
	require.NoError(t, err)
	assert.Equal(t, workers, got.Likes, "stored count should match the interaction rows")
}
