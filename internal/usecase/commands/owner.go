package commands

import (
	"context"
	"errors"

	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/queries"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCandidateNotInResults = errs.New("candidate is not in the current results")

// OwnerCommands drives the deal-owner lookup binder of one draft. Search is
// the only operation that talks to the directory; Select and Clear work on
// binder state alone.
type OwnerCommands interface {
	Search(ctx context.Context, draftID uuid.UUID, query string) (*queries.OwnerPanelView, error)
	Select(ctx context.Context, draftID uuid.UUID, candidateID string) (*queries.DraftView, error)
	Clear(ctx context.Context, draftID uuid.UUID) (*queries.DraftView, error)
}

type ownerCommandsImpl struct {
	store DraftStore
	clock clock.Clock
}

func NewOwnerCommands(store DraftStore, clk clock.Clock) OwnerCommands {
	return &ownerCommandsImpl{store: store, clock: clk}
}

// Search resolves against the directory through the binder. The binder
// guarantees last-query-wins: a response landing after a newer query was
// issued is silently discarded, so the returned panel is always consistent
// with the newest query even under out-of-order directory responses.
func (c *ownerCommandsImpl) Search(ctx context.Context, draftID uuid.UUID, query string) (*queries.OwnerPanelView, error) {
	draft, err := c.store.Get(ctx, draftID)
	if err != nil {
		return nil, c.markNotFound(err)
	}

	// Deliberately outside the store's draft lock: the directory call may
	// block and field edits must stay responsive during a search.
	snap := draft.Binder.SetQuery(ctx, query)
	panel := queries.NewOwnerPanelView(snap)
	return &panel, nil
}

func (c *ownerCommandsImpl) Select(ctx context.Context, draftID uuid.UUID, candidateID string) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, draftID, func(d *shared.Draft) error {
		sel, selErr := d.Binder.Select(candidateID)
		if selErr != nil {
			return errs.Mark(selErr, ErrCandidateNotInResults)
		}
		d.Record.SetOwner(sel.ID, sel.Name)
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

func (c *ownerCommandsImpl) Clear(ctx context.Context, draftID uuid.UUID) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, draftID, func(d *shared.Draft) error {
		d.Binder.Clear()
		d.Record.ClearOwner()
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

func (c *ownerCommandsImpl) markNotFound(err error) error {
	if errors.Is(err, shared.ErrDraftMissing) {
		return errs.Mark(err, ErrDraftNotFound)
	}
	return err
}
