package owner

import (
	"context"
	"errors"
	"sync"
	"unicode/utf8"
)

var (
	ErrCandidateNotInResults = errors.New("candidate is not in the current results")
	ErrNothingSelected       = errors.New("no owner selected")
)

type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateSelected  State = "selected"
)

const DefaultMinQueryLength = 2

// Selection is the pair the binder commits into the deal record.
type Selection struct {
	ID   string
	Name string
}

// Snapshot is an immutable view of the binder for transport and tests.
type Snapshot struct {
	State     State
	Query     string
	Results   []Candidate
	Selection *Selection
}

// Binder decouples free-text owner search from record mutation. Each query
// bumps a sequence number; a lookup that resolves after a newer query was
// issued is discarded without ever becoming visible (last query wins, no
// matter in which order the directory responds).
type Binder struct {
	dir       Directory
	minLength int

	mu        sync.Mutex
	state     State
	query     string
	seq       uint64
	results   []Candidate
	selection *Selection
}

func NewBinder(dir Directory, minLength int) *Binder {
	if minLength <= 0 {
		minLength = DefaultMinQueryLength
	}
	return &Binder{
		dir:       dir,
		minLength: minLength,
		state:     StateIdle,
	}
}

// SetQuery records the operator's current query text. Short queries reset to
// idle without touching the directory. Long enough queries mark the binder
// searching and resolve against the directory in the caller's goroutine; the
// resolution only lands if no newer query superseded it meanwhile.
func (b *Binder) SetQuery(ctx context.Context, query string) Snapshot {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.query = query

	if utf8.RuneCountInString(query) < b.minLength {
		b.state = StateIdle
		b.results = nil
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap
	}

	b.state = StateSearching
	b.results = nil
	b.mu.Unlock()

	candidates, err := b.dir.Search(ctx, query)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		// Stale lookup result: a newer query owns the binder now.
		return b.snapshotLocked()
	}
	if err != nil {
		candidates = nil
	}
	b.state = StateResults
	b.results = candidates
	return b.snapshotLocked()
}

// Select commits one of the current results. The query text and result list
// are cleared so the next keystroke starts a fresh search.
func (b *Binder) Select(candidateID string) (Selection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range b.results {
		if c.ID == candidateID {
			sel := Selection{ID: c.ID, Name: c.Name}
			b.selection = &sel
			b.seq++ // invalidates any in-flight lookup
			b.query = ""
			b.results = nil
			b.state = StateSelected
			return sel, nil
		}
	}
	return Selection{}, ErrCandidateNotInResults
}

// Clear drops the selection and returns to idle.
func (b *Binder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection = nil
	b.seq++
	b.query = ""
	b.results = nil
	b.state = StateIdle
}

func (b *Binder) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Binder) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:   b.state,
		Query:   b.query,
		Results: append([]Candidate(nil), b.results...),
	}
	if b.selection != nil {
		sel := *b.selection
		snap.Selection = &sel
	}
	return snap
}
