package queries

import (
	"context"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/owner"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDraftNotFound = errs.New("draft not found")

// Read models (DTO for read side)

type DraftView struct {
	ID        uuid.UUID      `json:"id"`
	Record    RecordView     `json:"record"`
	Policy    PolicyView     `json:"policy"`
	Tiers     []TierView     `json:"tiers"`
	Owner     OwnerPanelView `json:"owner"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type RecordView struct {
	BusinessName         string           `json:"businessName"`
	LocationLabel        string           `json:"locationLabel"`
	DealTitle            string           `json:"dealTitle"`
	Description          string           `json:"description"`
	Currency             string           `json:"currency"`
	CurrencySymbol       string           `json:"currencySymbol"`
	ApplyFor             string           `json:"applyFor"`
	ProductName          string           `json:"productName"`
	DealType             string           `json:"dealType"`
	FreeItemName         string           `json:"freeItemName"`
	OriginalPrice        *decimal.Decimal `json:"originalPrice,omitempty"`
	OfferPrice           *decimal.Decimal `json:"offerPrice,omitempty"`
	DiscountAmount       *decimal.Decimal `json:"discountAmount,omitempty"`
	MinimumSpend         *decimal.Decimal `json:"minimumSpend,omitempty"`
	MaxDiscount          *decimal.Decimal `json:"maxDiscount,omitempty"`
	TieredPricingEnabled bool             `json:"tieredPricingEnabled"`
	ValidityDays         *int             `json:"validityDays,omitempty"`
	TotalRedemptions     *int             `json:"totalRedemptions,omitempty"`
	StartDateTime        *time.Time       `json:"startDateTime,omitempty"`
	EndDateTime          *time.Time       `json:"endDateTime,omitempty"`
	DealOwnerID          string           `json:"dealOwnerId"`
	DealOwnerName        string           `json:"dealOwnerName"`
	Images               []string         `json:"images"`
}

type PolicyView struct {
	VisibleFields  []string             `json:"visibleFields"`
	RequiredFields []string             `json:"requiredFields"`
	Labels         map[string]LabelView `json:"labels"`
	TiersIncluded  bool                 `json:"tiersIncluded"`
}

type LabelView struct {
	Text string `json:"text"`
	Hint string `json:"hint,omitempty"`
	Min  string `json:"min,omitempty"`
	Max  string `json:"max,omitempty"`
	Step string `json:"step,omitempty"`
}

type TierView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Gradient string `json:"gradient"`
	Value    string `json:"value"`
}

type OwnerPanelView struct {
	State        string          `json:"state"`
	Query        string          `json:"query"`
	Results      []CandidateView `json:"results"`
	SelectedID   string          `json:"selectedId,omitempty"`
	SelectedName string          `json:"selectedName,omitempty"`
}

type CandidateView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	ActiveDeals *int    `json:"activeDeals,omitempty"`
}

type DraftStore interface {
	Get(ctx context.Context, id uuid.UUID) (*shared.Draft, error)
}

type DraftQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*DraftView, error)
	OwnerPanel(ctx context.Context, id uuid.UUID) (*OwnerPanelView, error)
}

type draftQueriesImpl struct {
	store DraftStore
}

func NewDraftQueries(store DraftStore) DraftQueries {
	return &draftQueriesImpl{store: store}
}

func (q *draftQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*DraftView, error) {
	d, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftNotFound)
	}
	return NewDraftView(d), nil
}

func (q *draftQueriesImpl) OwnerPanel(ctx context.Context, id uuid.UUID) (*OwnerPanelView, error) {
	d, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftNotFound)
	}
	panel := NewOwnerPanelView(d.Binder.Snapshot())
	return &panel, nil
}

// NewDraftView snapshots a draft for transport. The record is cloned and the
// binder snapshotted, so the view never aliases live session state.
func NewDraftView(d *shared.Draft) *DraftView {
	r := d.Record.Clone()
	policy := deal.ResolvePolicy(r)

	return &DraftView{
		ID:        d.ID,
		Record:    newRecordView(r),
		Policy:    newPolicyView(policy),
		Tiers:     NewTierViews(d.Tiers.Tiers()),
		Owner:     NewOwnerPanelView(d.Binder.Snapshot()),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newRecordView(r *deal.Record) RecordView {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return RecordView{
		BusinessName:         r.BusinessName,
		LocationLabel:        r.LocationLabel,
		DealTitle:            r.DealTitle,
		Description:          r.Description,
		Currency:             r.Currency.String(),
		CurrencySymbol:       r.Currency.Symbol(),
		ApplyFor:             r.ApplyFor.String(),
		ProductName:          r.ProductName,
		DealType:             r.DealType.String(),
		FreeItemName:         r.FreeItemName,
		OriginalPrice:        r.OriginalPrice,
		OfferPrice:           r.OfferPrice,
		DiscountAmount:       r.DiscountAmount,
		MinimumSpend:         r.MinimumSpend,
		MaxDiscount:          r.MaxDiscount,
		TieredPricingEnabled: r.TieredPricingEnabled,
		ValidityDays:         r.ValidityDays,
		TotalRedemptions:     r.TotalRedemptions,
		StartDateTime:        r.StartDateTime,
		EndDateTime:          r.EndDateTime,
		DealOwnerID:          r.DealOwnerID,
		DealOwnerName:        r.DealOwnerName,
		Images:               images,
	}
}

func newPolicyView(p deal.Policy) PolicyView {
	visible := make([]string, 0, 3)
	for _, f := range p.VisibleFields() {
		visible = append(visible, f.String())
	}
	required := make([]string, 0, 5)
	for _, f := range p.RequiredFields() {
		required = append(required, f.String())
	}
	labels := make(map[string]LabelView)
	for f, l := range p.Labels() {
		labels[f.String()] = LabelView{Text: l.Text, Hint: l.Hint, Min: l.Min, Max: l.Max, Step: l.Step}
	}
	return PolicyView{
		VisibleFields:  visible,
		RequiredFields: required,
		Labels:         labels,
		TiersIncluded:  p.TiersIncluded(),
	}
}

func NewTierViews(tiers []deal.Tier) []TierView {
	out := make([]TierView, len(tiers))
	for i, t := range tiers {
		out[i] = TierView{
			ID:       string(t.ID),
			Name:     t.Name,
			Symbol:   t.Symbol,
			Gradient: t.Gradient,
			Value:    t.Value,
		}
	}
	return out
}

func NewOwnerPanelView(snap owner.Snapshot) OwnerPanelView {
	results := make([]CandidateView, len(snap.Results))
	for i, c := range snap.Results {
		results[i] = CandidateView{ID: c.ID, Name: c.Name, Email: c.Email, ActiveDeals: c.ActiveDeals}
	}
	view := OwnerPanelView{
		State:   string(snap.State),
		Query:   snap.Query,
		Results: results,
	}
	if snap.Selection != nil {
		view.SelectedID = snap.Selection.ID
		view.SelectedName = snap.Selection.Name
	}
	return view
}
