package deal

import (
	"time"

	"dealdesk/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AcceptedDeal is the frozen, validated outcome of a submission. Hidden
// fields are stripped before freezing, so stale values an operator entered
// and then hid never reach persistence.
type AcceptedDeal struct {
	id            uuid.UUID
	businessName  string
	locationLabel string
	dealTitle     string
	description   string
	currency      Currency

	applyFor    ApplyFor
	productName *string

	dealType     DealType
	freeItemName *string

	originalPrice  *decimal.Decimal
	offerPrice     *decimal.Decimal
	discountAmount *decimal.Decimal
	minimumSpend   *decimal.Decimal
	maxDiscount    *decimal.Decimal

	tieredPricingEnabled bool
	tiers                []Tier

	validityDays     int
	totalRedemptions int

	startDateTime time.Time
	endDateTime   time.Time

	dealOwnerID   string
	dealOwnerName string

	images []string

	submittedAt time.Time
}

// Freeze builds the accepted deal from a record that has already passed
// Validate under the same policy. Participation rules are re-applied here so
// a hidden field can never leak into the frozen payload.
func Freeze(r *Record, tiers TierList, p Policy, id uuid.UUID, submittedAt time.Time) *AcceptedDeal {
	d := &AcceptedDeal{
		id:                   id,
		businessName:         r.BusinessName,
		locationLabel:        r.LocationLabel,
		dealTitle:            r.DealTitle,
		description:          r.Description,
		currency:             r.Currency,
		applyFor:             r.ApplyFor,
		dealType:             r.DealType,
		originalPrice:        cloneDecimal(r.OriginalPrice),
		offerPrice:           cloneDecimal(r.OfferPrice),
		discountAmount:       cloneDecimal(r.DiscountAmount),
		minimumSpend:         cloneDecimal(r.MinimumSpend),
		tieredPricingEnabled: r.TieredPricingEnabled,
		validityDays:         patch.Coalesce(r.ValidityDays, DefaultValidityDays),
		totalRedemptions:     patch.Coalesce(r.TotalRedemptions, DefaultTotalRedemptions),
		dealOwnerID:          r.DealOwnerID,
		dealOwnerName:        r.DealOwnerName,
		images:               append([]string(nil), r.Images...),
		submittedAt:          submittedAt,
	}

	if r.StartDateTime != nil {
		d.startDateTime = *r.StartDateTime
	}
	if r.EndDateTime != nil {
		d.endDateTime = *r.EndDateTime
	}

	if p.Visible(FieldProductName) {
		name := r.ProductName
		d.productName = &name
	}
	if p.Visible(FieldFreeItemName) && r.FreeItemName != "" {
		name := r.FreeItemName
		d.freeItemName = &name
	}
	if p.Visible(FieldMaxDiscount) {
		d.maxDiscount = cloneDecimal(r.MaxDiscount)
	}
	if p.TiersIncluded() {
		d.tiers = tiers.Tiers()
	}

	return d
}

// ReconstructAcceptedDeal rebuilds a frozen deal from persisted state.
func ReconstructAcceptedDeal(
	id uuid.UUID,
	businessName, locationLabel, dealTitle, description string,
	currency Currency,
	applyFor ApplyFor,
	productName *string,
	dealType DealType,
	freeItemName *string,
	originalPrice, offerPrice, discountAmount, minimumSpend, maxDiscount *decimal.Decimal,
	tieredPricingEnabled bool,
	tiers []Tier,
	validityDays, totalRedemptions int,
	startDateTime, endDateTime time.Time,
	dealOwnerID, dealOwnerName string,
	images []string,
	submittedAt time.Time,
) *AcceptedDeal {
	return &AcceptedDeal{
		id:                   id,
		businessName:         businessName,
		locationLabel:        locationLabel,
		dealTitle:            dealTitle,
		description:          description,
		currency:             currency,
		applyFor:             applyFor,
		productName:          productName,
		dealType:             dealType,
		freeItemName:         freeItemName,
		originalPrice:        originalPrice,
		offerPrice:           offerPrice,
		discountAmount:       discountAmount,
		minimumSpend:         minimumSpend,
		maxDiscount:          maxDiscount,
		tieredPricingEnabled: tieredPricingEnabled,
		tiers:                tiers,
		validityDays:         validityDays,
		totalRedemptions:     totalRedemptions,
		startDateTime:        startDateTime,
		endDateTime:          endDateTime,
		dealOwnerID:          dealOwnerID,
		dealOwnerName:        dealOwnerName,
		images:               images,
		submittedAt:          submittedAt,
	}
}

func (d *AcceptedDeal) ID() uuid.UUID                    { return d.id }
func (d *AcceptedDeal) BusinessName() string             { return d.businessName }
func (d *AcceptedDeal) LocationLabel() string            { return d.locationLabel }
func (d *AcceptedDeal) DealTitle() string                { return d.dealTitle }
func (d *AcceptedDeal) Description() string              { return d.description }
func (d *AcceptedDeal) Currency() Currency               { return d.currency }
func (d *AcceptedDeal) ApplyFor() ApplyFor               { return d.applyFor }
func (d *AcceptedDeal) ProductName() *string             { return d.productName }
func (d *AcceptedDeal) DealType() DealType               { return d.dealType }
func (d *AcceptedDeal) FreeItemName() *string            { return d.freeItemName }
func (d *AcceptedDeal) OriginalPrice() *decimal.Decimal  { return d.originalPrice }
func (d *AcceptedDeal) OfferPrice() *decimal.Decimal     { return d.offerPrice }
func (d *AcceptedDeal) DiscountAmount() *decimal.Decimal { return d.discountAmount }
func (d *AcceptedDeal) MinimumSpend() *decimal.Decimal   { return d.minimumSpend }
func (d *AcceptedDeal) MaxDiscount() *decimal.Decimal    { return d.maxDiscount }
func (d *AcceptedDeal) TieredPricingEnabled() bool       { return d.tieredPricingEnabled }
func (d *AcceptedDeal) Tiers() []Tier                    { return d.tiers }
func (d *AcceptedDeal) ValidityDays() int                { return d.validityDays }
func (d *AcceptedDeal) TotalRedemptions() int            { return d.totalRedemptions }
func (d *AcceptedDeal) StartDateTime() time.Time         { return d.startDateTime }
func (d *AcceptedDeal) EndDateTime() time.Time           { return d.endDateTime }
func (d *AcceptedDeal) DealOwnerID() string              { return d.dealOwnerID }
func (d *AcceptedDeal) DealOwnerName() string            { return d.dealOwnerName }
func (d *AcceptedDeal) Images() []string                 { return d.images }
func (d *AcceptedDeal) SubmittedAt() time.Time           { return d.submittedAt }
