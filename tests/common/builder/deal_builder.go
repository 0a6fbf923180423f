//go:build unit || e2e

package builder

import (
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/owner"
	"dealdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealBuilder assembles deal records that pass submission validation unless
// a mutation breaks them on purpose.
type DealBuilder struct {
	BusinessName   string
	LocationLabel  string
	DealTitle      string
	Description    string
	Currency       string
	ApplyFor       string
	ProductName    string
	DealType       string
	FreeItemName   string
	DiscountAmount *decimal.Decimal
	MaxDiscount    *decimal.Decimal
	StartDateTime  time.Time
	EndDateTime    time.Time
}

func NewDealBuilder() *DealBuilder {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	discount := decimal.NewFromInt(15)
	return &DealBuilder{
		BusinessName:   "Blue Bottle Cafe",
		LocationLabel:  "Downtown",
		DealTitle:      "Spring Special",
		Description:    "15% off all drinks",
		Currency:       "USD",
		ApplyFor:       "all",
		DealType:       "percentage",
		DiscountAmount: &discount,
		StartDateTime:  start,
		EndDateTime:    start.Add(14 * 24 * time.Hour),
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

// BuildRecord maps the builder onto a fresh record, bypassing field coercion.
func (b *DealBuilder) BuildRecord() *deal.Record {
	r := deal.NewRecord()
	r.BusinessName = b.BusinessName
	r.LocationLabel = b.LocationLabel
	r.DealTitle = b.DealTitle
	r.Description = b.Description
	if cur, err := deal.NewCurrency(b.Currency); err == nil {
		r.Currency = cur
	}
	if af, err := deal.NewApplyFor(b.ApplyFor); err == nil {
		r.ApplyFor = af
	}
	r.ProductName = b.ProductName
	if dt, err := deal.NewDealType(b.DealType); err == nil {
		r.DealType = dt
	}
	r.FreeItemName = b.FreeItemName
	r.DiscountAmount = b.DiscountAmount
	r.MaxDiscount = b.MaxDiscount
	start := b.StartDateTime
	end := b.EndDateTime
	r.StartDateTime = &start
	r.EndDateTime = &end
	return r
}

// BuildFieldsMap returns the same shape an edit batch carries over the wire.
func (b *DealBuilder) BuildFieldsMap() map[string]any {
	m := map[string]any{
		"businessName":  b.BusinessName,
		"locationLabel": b.LocationLabel,
		"dealTitle":     b.DealTitle,
		"description":   b.Description,
		"currency":      b.Currency,
		"applyFor":      b.ApplyFor,
		"dealType":      b.DealType,
		"startDateTime": b.StartDateTime.Format(time.RFC3339),
		"endDateTime":   b.EndDateTime.Format(time.RFC3339),
	}
	if b.ProductName != "" {
		m["productName"] = b.ProductName
	}
	if b.FreeItemName != "" {
		m["freeItemName"] = b.FreeItemName
	}
	if b.DiscountAmount != nil {
		m["discountAmount"] = b.DiscountAmount.String()
	}
	if b.MaxDiscount != nil {
		m["maxDiscount"] = b.MaxDiscount.String()
	}
	return m
}

func (b *DealBuilder) BuildDraft(dir owner.Directory, now time.Time) *shared.Draft {
	draft := shared.NewDraft(uuid.New(), dir, owner.DefaultMinQueryLength, now)
	draft.Record = b.BuildRecord()
	return draft
}

// Fluent builder methods
func (b *DealBuilder) WithBusinessName(name string) *DealBuilder {
	b.BusinessName = name
	return b
}

func (b *DealBuilder) WithDealTitle(title string) *DealBuilder {
	b.DealTitle = title
	return b
}

func (b *DealBuilder) WithDealType(dealType string) *DealBuilder {
	b.DealType = dealType
	return b
}

func (b *DealBuilder) WithApplyFor(applyFor string) *DealBuilder {
	b.ApplyFor = applyFor
	return b
}

func (b *DealBuilder) WithProductName(name string) *DealBuilder {
	b.ProductName = name
	return b
}

func (b *DealBuilder) WithDiscountAmount(v string) *DealBuilder {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic("invalid discount amount in test builder: " + v)
	}
	b.DiscountAmount = &d
	return b
}

func (b *DealBuilder) WithPeriod(start, end time.Time) *DealBuilder {
	b.StartDateTime = start
	b.EndDateTime = end
	return b
}

func (b *DealBuilder) AsFreeItemDeal() *DealBuilder {
	b.DealType = "free_item"
	b.FreeItemName = "House Blend Coffee"
	b.DiscountAmount = nil
	return b
}

func (b *DealBuilder) AsSpecificProductDeal() *DealBuilder {
	b.ApplyFor = "specific"
	b.ProductName = "Latte"
	return b
}

// OwnerCandidates is a small fixed directory fixture.
func OwnerCandidates() []owner.Candidate {
	email1 := "jo@example.com"
	email2 := "john@example.com"
	deals1 := 3
	return []owner.Candidate{
		{ID: "own-001", Name: "Jo Martin", Email: &email1, ActiveDeals: &deals1},
		{ID: "own-002", Name: "John Carter", Email: &email2},
		{ID: "own-003", Name: "Johanna Lee"},
	}
}
