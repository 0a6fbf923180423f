//go:build unit

package draftstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dealdesk/internal/infra/draftstore"
	"dealdesk/internal/infra/ownerdir"
	"dealdesk/internal/usecase/shared"
	"dealdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *shared.Draft {
	t.Helper()
	dir := ownerdir.NewMemoryDirectory(builder.OwnerCandidates())
	return builder.NewDealBuilder().BuildDraft(dir, time.Now())
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("put then get", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)

		require.NoError(t, s.Put(ctx, draft))

		got, err := s.Get(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
		assert.Equal(t, draft.Record.BusinessName, got.Record.BusinessName)
		assert.Same(t, draft.Binder, got.Binder)
	})

	t.Run("get returns an isolated snapshot", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)
		require.NoError(t, s.Put(ctx, draft))

		snap, err := s.Get(ctx, draft.ID)
		require.NoError(t, err)
		assert.NotSame(t, draft.Record, snap.Record)

		before := snap.Record.BusinessName
		_, err = s.Update(ctx, draft.ID, func(d *shared.Draft) error {
			d.Record.BusinessName = "Renamed"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, before, snap.Record.BusinessName)
	})

	t.Run("get missing", func(t *testing.T) {
		s := draftstore.NewStore()
		_, err := s.Get(ctx, uuid.New())
		require.ErrorIs(t, err, shared.ErrDraftMissing)
	})

	t.Run("update mutates under the draft lock", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)
		require.NoError(t, s.Put(ctx, draft))

		got, err := s.Update(ctx, draft.ID, func(d *shared.Draft) error {
			d.Record.BusinessName = "Renamed"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Record.BusinessName)
	})

	t.Run("update propagates fn error", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)
		require.NoError(t, s.Put(ctx, draft))

		_, err := s.Update(ctx, draft.ID, func(*shared.Draft) error {
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("update missing", func(t *testing.T) {
		s := draftstore.NewStore()
		_, err := s.Update(ctx, uuid.New(), func(*shared.Draft) error { return nil })
		require.ErrorIs(t, err, shared.ErrDraftMissing)
	})

	t.Run("delete closes the session", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)
		require.NoError(t, s.Put(ctx, draft))

		require.NoError(t, s.Delete(ctx, draft.ID))
		_, err := s.Get(ctx, draft.ID)
		require.ErrorIs(t, err, shared.ErrDraftMissing)

		require.ErrorIs(t, s.Delete(ctx, draft.ID), shared.ErrDraftMissing)
	})

	t.Run("concurrent updates on one draft do not interleave", func(t *testing.T) {
		s := draftstore.NewStore()
		draft := newDraft(t)
		draft.Record.Images = nil
		require.NoError(t, s.Put(ctx, draft))

		const workers = 20
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			go func() {
				defer wg.Done()
				_, _ = s.Update(ctx, draft.ID, func(d *shared.Draft) error {
					return d.Record.AddImage("img", workers)
				})
			}()
		}
		wg.Wait()

		got, err := s.Get(ctx, draft.ID)
		require.NoError(t, err)
		assert.Len(t, got.Record.Images, workers)
	})
}
