package draftstore

import (
	"context"
	"sync"

	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is the in-memory home of open form sessions. Drafts never touch the
// database; only accepted deals are persisted. Update serializes mutations
// per draft so concurrent command handlers cannot interleave edits on one
// session while other drafts stay unaffected.
type Store struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*entry
}

type entry struct {
	mu    sync.Mutex
	draft *shared.Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[uuid.UUID]*entry)}
}

func (s *Store) Put(_ context.Context, draft *shared.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = &entry{draft: draft}
	return nil
}

// Get returns a snapshot taken under the draft's own lock, so readers never
// observe a record mid-mutation.
func (s *Store) Get(_ context.Context, id uuid.UUID) (*shared.Draft, error) {
	s.mu.RLock()
	e, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, shared.ErrDraftMissing
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Snapshot(), nil
}

// Update runs fn under the draft's own lock and returns a snapshot of the
// result. A failed fn leaves the draft untouched from the caller's point of
// view because mutations on the record go through clone-and-commit in the
// command layer when atomicity matters.
func (s *Store) Update(_ context.Context, id uuid.UUID, fn func(*shared.Draft) error) (*shared.Draft, error) {
	s.mu.RLock()
	e, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, shared.ErrDraftMissing
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.draft); err != nil {
		return nil, err
	}
	return e.draft.Snapshot(), nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return shared.ErrDraftMissing
	}
	delete(s.drafts, id)
	return nil
}
