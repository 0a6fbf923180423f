package deal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrTooManyImages     = errors.New("image limit reached")
	ErrImageIndexInvalid = errors.New("image index out of range")
)

const (
	DefaultValidityDays     = 7
	DefaultTotalRedemptions = 0
)

// Record is the single source of truth for one deal form session. It is
// mutable working state, not an accepted deal; nil pointers mean the
// operator has not provided a value. Owner fields are written only through
// the owner lookup binder, never by direct field edits.
type Record struct {
	BusinessName  string
	LocationLabel string
	DealTitle     string
	Description   string
	Currency      Currency

	ApplyFor    ApplyFor
	ProductName string

	DealType     DealType
	FreeItemName string

	OriginalPrice  *decimal.Decimal
	OfferPrice     *decimal.Decimal
	DiscountAmount *decimal.Decimal
	MinimumSpend   *decimal.Decimal
	MaxDiscount    *decimal.Decimal

	TieredPricingEnabled bool

	ValidityDays     *int
	TotalRedemptions *int

	StartDateTime *time.Time
	EndDateTime   *time.Time

	DealOwnerID   string
	DealOwnerName string

	Images []string
}

// NewRecord returns a record carrying the form-open defaults. Defaults are
// applied here and only here; later edits never fall back to them.
func NewRecord() *Record {
	validityDays := DefaultValidityDays
	totalRedemptions := DefaultTotalRedemptions
	return &Record{
		Currency:             CurrencyUSD,
		ApplyFor:             ApplyForAll,
		DealType:             DealTypePercentage,
		TieredPricingEnabled: true,
		ValidityDays:         &validityDays,
		TotalRedemptions:     &totalRedemptions,
	}
}

func (r *Record) SetOwner(id, name string) {
	r.DealOwnerID = id
	r.DealOwnerName = name
}

func (r *Record) ClearOwner() {
	r.DealOwnerID = ""
	r.DealOwnerName = ""
}

func (r *Record) HasOwner() bool {
	return r.DealOwnerID != ""
}

func (r *Record) AddImage(ref string, maxImages int) error {
	if len(r.Images) >= maxImages {
		return ErrTooManyImages
	}
	r.Images = append(r.Images, ref)
	return nil
}

func (r *Record) RemoveImage(index int) error {
	if index < 0 || index >= len(r.Images) {
		return ErrImageIndexInvalid
	}
	r.Images = append(r.Images[:index], r.Images[index+1:]...)
	return nil
}

// Clone returns a deep copy so validation and freezing never observe
// concurrent edits through shared slices or pointers.
func (r *Record) Clone() *Record {
	c := *r
	c.OriginalPrice = cloneDecimal(r.OriginalPrice)
	c.OfferPrice = cloneDecimal(r.OfferPrice)
	c.DiscountAmount = cloneDecimal(r.DiscountAmount)
	c.MinimumSpend = cloneDecimal(r.MinimumSpend)
	c.MaxDiscount = cloneDecimal(r.MaxDiscount)
	c.ValidityDays = cloneInt(r.ValidityDays)
	c.TotalRedemptions = cloneInt(r.TotalRedemptions)
	c.StartDateTime = cloneTime(r.StartDateTime)
	c.EndDateTime = cloneTime(r.EndDateTime)
	c.Images = append([]string(nil), r.Images...)
	return &c
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
