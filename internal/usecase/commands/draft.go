package commands

import (
	"context"
	"errors"
	"log/slog"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/owner"
	"dealdesk/internal/pkg/clock"
	"dealdesk/internal/pkg/config"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/queries"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errs.New("draft not found")
	ErrUnknownField      = errs.New("unknown field")
	ErrFieldNotEditable  = errs.New("field is not directly editable")
	ErrUnknownTier       = errs.New("unknown tier")
	ErrTooManyImages     = errs.New("image limit reached")
	ErrImageIndexInvalid = errs.New("image index out of range")
	ErrPersistenceFailed = errs.New("persisting accepted deal failed")
)

type DraftCommands interface {
	Create(ctx context.Context) (*queries.DraftView, error)
	SetFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*queries.DraftView, deal.ValidationResult, error)
	SetTierValue(ctx context.Context, id uuid.UUID, tierID string, value string) (*queries.DraftView, error)
	SetTieredPricing(ctx context.Context, id uuid.UUID, enabled bool) (*queries.DraftView, error)
	AddImage(ctx context.Context, id uuid.UUID, ref string) (*queries.DraftView, error)
	RemoveImage(ctx context.Context, id uuid.UUID, index int) (*queries.DraftView, error)
	Submit(ctx context.Context, id uuid.UUID) (*queries.DealView, deal.ValidationResult, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type draftCommandsImpl struct {
	store    DraftStore
	dealRepo DealRepository
	ownerDir owner.Directory
	cfg      config.DealConfig
	clock    clock.Clock
}

func NewDraftCommands(
	store DraftStore,
	dealRepo DealRepository,
	ownerDir owner.Directory,
	cfg config.DealConfig,
	clk clock.Clock,
) DraftCommands {
	return &draftCommandsImpl{
		store:    store,
		dealRepo: dealRepo,
		ownerDir: ownerDir,
		cfg:      cfg,
		clock:    clk,
	}
}

func (c *draftCommandsImpl) Create(ctx context.Context) (*queries.DraftView, error) {
	draft := shared.NewDraft(uuid.New(), c.ownerDir, c.cfg.OwnerSearchMinLength, c.clock.Now())
	if err := c.store.Put(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to store new draft")
	}
	slog.Info("draft opened", "draft_id", draft.ID)
	return queries.NewDraftView(draft), nil
}

// SetFields applies a batch of raw edits. Values that fail coercion are
// reported per field and leave the record untouched; the rest are applied.
// The batch runs against a clone and commits as a whole, so a bad field name
// anywhere in it leaves the draft exactly as it was regardless of map order.
// Cross-field rules deliberately do not run here, only at submission.
func (c *draftCommandsImpl) SetFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*queries.DraftView, deal.ValidationResult, error) {
	fieldErrors := deal.NewValidationResult()

	draft, err := c.store.Update(ctx, id, func(d *shared.Draft) error {
		work := d.Record.Clone()
		for name, raw := range fields {
			field := deal.Field(name)
			applyErr := deal.ApplyField(work, field, raw)
			switch {
			case applyErr == nil:
			case errors.Is(applyErr, deal.ErrUnknownField):
				return errs.Mark(applyErr, ErrUnknownField)
			case errors.Is(applyErr, deal.ErrFieldNotEditable):
				return errs.Mark(applyErr, ErrFieldNotEditable)
			default:
				var ferr *deal.FieldError
				if errors.As(applyErr, &ferr) {
					fieldErrors.Add(ferr)
					continue
				}
				return applyErr
			}
		}
		d.Record = work
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, nil, c.markNotFound(err)
	}

	return queries.NewDraftView(draft), fieldErrors, nil
}

func (c *draftCommandsImpl) SetTierValue(ctx context.Context, id uuid.UUID, tierID string, value string) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, id, func(d *shared.Draft) error {
		next, setErr := d.Tiers.SetValue(deal.TierID(tierID), value)
		if setErr != nil {
			return errs.Mark(setErr, ErrUnknownTier)
		}
		d.Tiers = next
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

// SetTieredPricing gates tier participation only; stored tier values survive
// the toggle so switching back restores them.
func (c *draftCommandsImpl) SetTieredPricing(ctx context.Context, id uuid.UUID, enabled bool) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, id, func(d *shared.Draft) error {
		d.Record.TieredPricingEnabled = enabled
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

func (c *draftCommandsImpl) AddImage(ctx context.Context, id uuid.UUID, ref string) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, id, func(d *shared.Draft) error {
		if addErr := d.Record.AddImage(ref, c.cfg.MaxImages); addErr != nil {
			return errs.Mark(addErr, ErrTooManyImages)
		}
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

func (c *draftCommandsImpl) RemoveImage(ctx context.Context, id uuid.UUID, index int) (*queries.DraftView, error) {
	draft, err := c.store.Update(ctx, id, func(d *shared.Draft) error {
		if rmErr := d.Record.RemoveImage(index); rmErr != nil {
			return errs.Mark(rmErr, ErrImageIndexInvalid)
		}
		d.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, c.markNotFound(err)
	}
	return queries.NewDraftView(draft), nil
}

// Submit is the one validate-then-commit transition. Either the whole record
// passes, is frozen, persisted, and the session closed — or the full error
// map comes back and the draft is left exactly as it was.
func (c *draftCommandsImpl) Submit(ctx context.Context, id uuid.UUID) (*queries.DealView, deal.ValidationResult, error) {
	draft, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, nil, c.markNotFound(err)
	}

	record := draft.Record.Clone()
	policy := deal.ResolvePolicy(record)

	result := deal.Validate(record, policy)
	if !result.IsValid() {
		slog.Info("draft submission rejected", "draft_id", id, "error_count", len(result))
		return nil, result, nil
	}

	accepted := deal.Freeze(record, draft.Tiers, policy, uuid.New(), c.clock.Now())
	if err := c.dealRepo.Create(ctx, accepted); err != nil {
		return nil, nil, errs.Mark(err, ErrPersistenceFailed)
	}

	if err := c.store.Delete(ctx, id); err != nil {
		// The deal is already persisted; a stuck session is not worth failing over.
		slog.Warn("failed to close submitted draft", "draft_id", id, "error", err.Error())
	}

	slog.Info("deal accepted", "draft_id", id, "deal_id", accepted.ID())
	return queries.NewDealViewFromDomain(accepted), nil, nil
}

func (c *draftCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return c.markNotFound(err)
	}
	slog.Info("draft canceled", "draft_id", id)
	return nil
}

func (c *draftCommandsImpl) markNotFound(err error) error {
	if errors.Is(err, shared.ErrDraftMissing) {
		return errs.Mark(err, ErrDraftNotFound)
	}
	return err
}
