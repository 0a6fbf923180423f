package shared

import (
	"errors"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/owner"

	"github.com/google/uuid"
)

// ErrDraftMissing is the store-level absence signal; usecases mark it with
// their own not-found sentinel.
var ErrDraftMissing = errors.New("draft missing from store")

// Draft is one open form session: the working record, the tier rows, and
// the owner lookup binder. It lives in the draft store from form-open until
// submission or cancellation and is owned by a single operator session.
type Draft struct {
	ID        uuid.UUID
	Record    *deal.Record
	Tiers     deal.TierList
	Binder    *owner.Binder
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDraft(id uuid.UUID, dir owner.Directory, searchMinLength int, now time.Time) *Draft {
	return &Draft{
		ID:        id,
		Record:    deal.NewRecord(),
		Tiers:     deal.NewTierList(),
		Binder:    owner.NewBinder(dir, searchMinLength),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot returns an isolated copy for readers. The record is cloned and the
// tier list is copy-on-write; the binder is shared because it carries its own
// synchronization.
func (d *Draft) Snapshot() *Draft {
	return &Draft{
		ID:        d.ID,
		Record:    d.Record.Clone(),
		Tiers:     d.Tiers,
		Binder:    d.Binder,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
