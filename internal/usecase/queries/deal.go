package queries

import (
	"context"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrDealNotFound = errs.New("deal not found")

// DealView is the read model for an accepted deal.
type DealView struct {
	ID                   uuid.UUID        `json:"id"`
	BusinessName         string           `json:"businessName"`
	LocationLabel        string           `json:"locationLabel,omitempty"`
	DealTitle            string           `json:"dealTitle"`
	Description          string           `json:"description,omitempty"`
	Currency             string           `json:"currency"`
	CurrencySymbol       string           `json:"currencySymbol"`
	ApplyFor             string           `json:"applyFor"`
	ProductName          *string          `json:"productName,omitempty"`
	DealType             string           `json:"dealType"`
	FreeItemName         *string          `json:"freeItemName,omitempty"`
	OriginalPrice        *decimal.Decimal `json:"originalPrice,omitempty"`
	OfferPrice           *decimal.Decimal `json:"offerPrice,omitempty"`
	DiscountAmount       *decimal.Decimal `json:"discountAmount,omitempty"`
	MinimumSpend         *decimal.Decimal `json:"minimumSpend,omitempty"`
	MaxDiscount          *decimal.Decimal `json:"maxDiscount,omitempty"`
	TieredPricingEnabled bool             `json:"tieredPricingEnabled"`
	Tiers                []TierView       `json:"tiers,omitempty"`
	ValidityDays         int              `json:"validityDays"`
	TotalRedemptions     int              `json:"totalRedemptions"`
	StartDateTime        time.Time        `json:"startDateTime"`
	EndDateTime          time.Time        `json:"endDateTime"`
	DealOwnerID          string           `json:"dealOwnerId,omitempty"`
	DealOwnerName        string           `json:"dealOwnerName,omitempty"`
	Images               []string         `json:"images,omitempty"`
	SubmittedAt          time.Time        `json:"submittedAt"`
}

type DealListItem struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"businessName"`
	DealTitle    string    `json:"dealTitle"`
	DealType     string    `json:"dealType"`
	StartDate    time.Time `json:"startDateTime"`
	EndDate      time.Time `json:"endDateTime"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type DealReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	FindAll(ctx context.Context) ([]*DealListItem, error)
}

type DealQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DealView, error)
	List(ctx context.Context) ([]*DealListItem, error)
}

type dealQueriesImpl struct {
	readStore DealReadStore
}

func NewDealQueries(readStore DealReadStore) DealQueries {
	return &dealQueriesImpl{readStore: readStore}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DealView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *dealQueriesImpl) List(ctx context.Context) ([]*DealListItem, error) {
	return q.readStore.FindAll(ctx)
}

// NewDealViewFromDomain maps a freshly accepted deal, sparing the submit
// path a read back from persistence.
func NewDealViewFromDomain(d *deal.AcceptedDeal) *DealView {
	view := &DealView{
		ID:                   d.ID(),
		BusinessName:         d.BusinessName(),
		LocationLabel:        d.LocationLabel(),
		DealTitle:            d.DealTitle(),
		Description:          d.Description(),
		Currency:             d.Currency().String(),
		CurrencySymbol:       d.Currency().Symbol(),
		ApplyFor:             d.ApplyFor().String(),
		ProductName:          d.ProductName(),
		DealType:             d.DealType().String(),
		FreeItemName:         d.FreeItemName(),
		OriginalPrice:        d.OriginalPrice(),
		OfferPrice:           d.OfferPrice(),
		DiscountAmount:       d.DiscountAmount(),
		MinimumSpend:         d.MinimumSpend(),
		MaxDiscount:          d.MaxDiscount(),
		TieredPricingEnabled: d.TieredPricingEnabled(),
		ValidityDays:         d.ValidityDays(),
		TotalRedemptions:     d.TotalRedemptions(),
		StartDateTime:        d.StartDateTime(),
		EndDateTime:          d.EndDateTime(),
		DealOwnerID:          d.DealOwnerID(),
		DealOwnerName:        d.DealOwnerName(),
		Images:               d.Images(),
		SubmittedAt:          d.SubmittedAt(),
	}
	if tiers := d.Tiers(); len(tiers) > 0 {
		view.Tiers = NewTierViews(tiers)
	}
	return view
}
