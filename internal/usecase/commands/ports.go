package commands

import (
	"context"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// DraftStore owns the open form sessions. Update runs the mutation under the
// draft's lock so command handlers never interleave edits on one session.
type DraftStore interface {
	Put(ctx context.Context, draft *shared.Draft) error
	Get(ctx context.Context, id uuid.UUID) (*shared.Draft, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*shared.Draft) error) (*shared.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DealRepository is the persistence collaborator for accepted deals.
type DealRepository interface {
	Create(ctx context.Context, d *deal.AcceptedDeal) error
}
