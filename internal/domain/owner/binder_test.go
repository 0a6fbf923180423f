//go:build unit

package owner_test

import (
	"context"
	"sync"
	"testing"

	"dealdesk/internal/domain/owner"
	"dealdesk/internal/infra/ownerdir"
	"dealdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBinder() *owner.Binder {
	return owner.NewBinder(ownerdir.NewMemoryDirectory(builder.OwnerCandidates()), 2)
}

func TestBinderSetQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("starts idle", func(t *testing.T) {
		snap := newTestBinder().Snapshot()
		assert.Equal(t, owner.StateIdle, snap.State)
		assert.Empty(t, snap.Results)
		assert.Nil(t, snap.Selection)
	})

	t.Run("short query resets to idle without searching", func(t *testing.T) {
		b := newTestBinder()
		snap := b.SetQuery(ctx, "j")
		assert.Equal(t, owner.StateIdle, snap.State)
		assert.Empty(t, snap.Results)
	})

	t.Run("query at minimum length resolves results", func(t *testing.T) {
		b := newTestBinder()
		snap := b.SetQuery(ctx, "jo")
		assert.Equal(t, owner.StateResults, snap.State)
		require.Len(t, snap.Results, 3)
	})

	t.Run("narrower query narrows results", func(t *testing.T) {
		b := newTestBinder()
		snap := b.SetQuery(ctx, "john")
		assert.Equal(t, owner.StateResults, snap.State)
		require.Len(t, snap.Results, 1)
		assert.Equal(t, "John Carter", snap.Results[0].Name)
	})

	t.Run("email substring matches too", func(t *testing.T) {
		b := newTestBinder()
		snap := b.SetQuery(ctx, "john@")
		assert.Equal(t, owner.StateResults, snap.State)
		require.Len(t, snap.Results, 1)
		assert.Equal(t, "John Carter", snap.Results[0].Name)
	})

	t.Run("domain-only query matches every candidate with an email", func(t *testing.T) {
		b := newTestBinder()
		snap := b.SetQuery(ctx, "example.com")
		assert.Equal(t, owner.StateResults, snap.State)
		require.Len(t, snap.Results, 2)
	})

	t.Run("minimum length counts runes", func(t *testing.T) {
		b := owner.NewBinder(ownerdir.NewMemoryDirectory(nil), 2)
		snap := b.SetQuery(ctx, "あ")
		assert.Equal(t, owner.StateIdle, snap.State)
	})

	t.Run("directory failure resolves to empty results", func(t *testing.T) {
		b := owner.NewBinder(failingDirectory{}, 2)
		snap := b.SetQuery(ctx, "jo")
		assert.Equal(t, owner.StateResults, snap.State)
		assert.Empty(t, snap.Results)
	})
}

func TestBinderLastQueryWins(t *testing.T) {
	ctx := context.Background()

	// The "jo" lookup is held until after the "john" lookup has fully
	// resolved, simulating out-of-order directory responses.
	dir := &blockingDirectory{
		inner:   ownerdir.NewMemoryDirectory(builder.OwnerCandidates()),
		blockOn: "jo",
		release: make(chan struct{}),
		blocked: make(chan struct{}),
	}
	b := owner.NewBinder(dir, 2)

	var wg sync.WaitGroup
	var staleSnap owner.Snapshot
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleSnap = b.SetQuery(ctx, "jo")
	}()
	dir.waitUntilBlocked()

	freshSnap := b.SetQuery(ctx, "john")
	require.Equal(t, owner.StateResults, freshSnap.State)
	require.Len(t, freshSnap.Results, 1)

	close(dir.release)
	wg.Wait()

	// The stale lookup observed the binder after the newer query landed; its
	// own results were discarded.
	assert.Equal(t, owner.StateResults, staleSnap.State)
	require.Len(t, staleSnap.Results, 1)
	assert.Equal(t, "John Carter", staleSnap.Results[0].Name)

	finalSnap := b.Snapshot()
	assert.Equal(t, "john", finalSnap.Query)
	require.Len(t, finalSnap.Results, 1)
	assert.Equal(t, "John Carter", finalSnap.Results[0].Name)
}

func TestBinderSelect(t *testing.T) {
	ctx := context.Background()

	t.Run("select commits candidate from current results", func(t *testing.T) {
		b := newTestBinder()
		b.SetQuery(ctx, "jo")

		sel, err := b.Select("own-002")
		require.NoError(t, err)
		assert.Equal(t, "John Carter", sel.Name)

		snap := b.Snapshot()
		assert.Equal(t, owner.StateSelected, snap.State)
		assert.Empty(t, snap.Query)
		assert.Empty(t, snap.Results)
		require.NotNil(t, snap.Selection)
		assert.Equal(t, "own-002", snap.Selection.ID)
	})

	t.Run("select rejects candidate outside current results", func(t *testing.T) {
		b := newTestBinder()
		b.SetQuery(ctx, "john")

		_, err := b.Select("own-001")
		require.ErrorIs(t, err, owner.ErrCandidateNotInResults)
	})

	t.Run("select with no results at all", func(t *testing.T) {
		b := newTestBinder()
		_, err := b.Select("own-001")
		require.ErrorIs(t, err, owner.ErrCandidateNotInResults)
	})

	t.Run("select invalidates an in-flight lookup", func(t *testing.T) {
		dir := &blockingDirectory{
			inner:   ownerdir.NewMemoryDirectory(builder.OwnerCandidates()),
			blockOn: "joh",
			release: make(chan struct{}),
			blocked: make(chan struct{}),
		}
		b := owner.NewBinder(dir, 2)
		b.SetQuery(ctx, "jo")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.SetQuery(ctx, "joh")
		}()
		dir.waitUntilBlocked()

		_, err := b.Select("own-001")
		require.NoError(t, err)

		close(dir.release)
		wg.Wait()

		snap := b.Snapshot()
		assert.Equal(t, owner.StateSelected, snap.State)
		assert.Empty(t, snap.Results, "in-flight lookup must not overwrite a selection")
	})
}

func TestBinderClear(t *testing.T) {
	ctx := context.Background()

	b := newTestBinder()
	b.SetQuery(ctx, "jo")
	_, err := b.Select("own-001")
	require.NoError(t, err)

	b.Clear()

	snap := b.Snapshot()
	assert.Equal(t, owner.StateIdle, snap.State)
	assert.Nil(t, snap.Selection)
	assert.Empty(t, snap.Query)
	assert.Empty(t, snap.Results)
}

type failingDirectory struct{}

func (failingDirectory) Search(context.Context, string) ([]owner.Candidate, error) {
	return nil, assert.AnError
}

// blockingDirectory parks the lookup for one specific query until released.
type blockingDirectory struct {
	inner   owner.Directory
	blockOn string
	release chan struct{}

	once    sync.Once
	blocked chan struct{}
}

func (d *blockingDirectory) Search(ctx context.Context, query string) ([]owner.Candidate, error) {
	if query == d.blockOn {
		d.once.Do(func() { close(d.blocked) })
		<-d.release
	}
	return d.inner.Search(ctx, query)
}

func (d *blockingDirectory) waitUntilBlocked() {
	<-d.blocked
}
