package deal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownField     = errors.New("unknown field")
	ErrFieldNotEditable = errors.New("field is not directly editable")
)

const (
	maxShortTextLength   = 100
	maxTitleLength       = 150
	maxDescriptionLength = 1000
)

// datetime-local inputs omit the zone and seconds; accept both that shape
// and full RFC 3339.
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

var decimalHundred = decimal.NewFromInt(100)

// fieldSpec couples a field's coercion with its assignment into the record.
// Coercion failures leave the record untouched.
type fieldSpec struct {
	apply func(r *Record, raw any) *FieldError
}

var registry = map[Field]fieldSpec{
	FieldBusinessName: {applyText(FieldBusinessName, maxShortTextLength, func(r *Record, v string) { r.BusinessName = v })},
	FieldLocationLabel: {applyText(FieldLocationLabel, maxShortTextLength, func(r *Record, v string) { r.LocationLabel = v })},
	FieldDealTitle:   {applyText(FieldDealTitle, maxTitleLength, func(r *Record, v string) { r.DealTitle = v })},
	FieldDescription: {applyText(FieldDescription, maxDescriptionLength, func(r *Record, v string) { r.Description = v })},
	FieldProductName: {applyText(FieldProductName, maxShortTextLength, func(r *Record, v string) { r.ProductName = v })},
	FieldFreeItemName: {applyText(FieldFreeItemName, maxShortTextLength, func(r *Record, v string) { r.FreeItemName = v })},

	FieldCurrency: {func(r *Record, raw any) *FieldError {
		s, ok := raw.(string)
		if !ok {
			return newFieldError(FieldCurrency, KindTypeError, "Must be a string")
		}
		c, err := NewCurrency(s)
		if err != nil {
			return newFieldError(FieldCurrency, KindConstraintError, "Unsupported currency")
		}
		r.Currency = c
		return nil
	}},
	FieldApplyFor: {func(r *Record, raw any) *FieldError {
		s, ok := raw.(string)
		if !ok {
			return newFieldError(FieldApplyFor, KindTypeError, "Must be a string")
		}
		a, err := NewApplyFor(s)
		if err != nil {
			return newFieldError(FieldApplyFor, KindConstraintError, "Must be 'all' or 'specific'")
		}
		r.ApplyFor = a
		return nil
	}},
	FieldDealType: {func(r *Record, raw any) *FieldError {
		s, ok := raw.(string)
		if !ok {
			return newFieldError(FieldDealType, KindTypeError, "Must be a string")
		}
		d, err := NewDealType(s)
		if err != nil {
			return newFieldError(FieldDealType, KindConstraintError, "Unknown deal type")
		}
		r.DealType = d
		return nil
	}},

	FieldOriginalPrice:  {applyDecimal(FieldOriginalPrice, func(r *Record, v *decimal.Decimal) { r.OriginalPrice = v })},
	FieldOfferPrice:     {applyDecimal(FieldOfferPrice, func(r *Record, v *decimal.Decimal) { r.OfferPrice = v })},
	FieldDiscountAmount: {applyDecimal(FieldDiscountAmount, func(r *Record, v *decimal.Decimal) { r.DiscountAmount = v })},
	FieldMinimumSpend:   {applyDecimal(FieldMinimumSpend, func(r *Record, v *decimal.Decimal) { r.MinimumSpend = v })},
	FieldMaxDiscount:    {applyDecimal(FieldMaxDiscount, func(r *Record, v *decimal.Decimal) { r.MaxDiscount = v })},

	FieldTieredPricingEnabled: {func(r *Record, raw any) *FieldError {
		b, ok := raw.(bool)
		if !ok {
			return newFieldError(FieldTieredPricingEnabled, KindTypeError, "Must be true or false")
		}
		r.TieredPricingEnabled = b
		return nil
	}},

	FieldValidityDays: {applyInt(FieldValidityDays, 1, "Must be at least 1 day", DefaultValidityDays,
		func(r *Record, v *int) { r.ValidityDays = v })},
	FieldTotalRedemptions: {applyInt(FieldTotalRedemptions, 0, "Must be 0 or greater", DefaultTotalRedemptions,
		func(r *Record, v *int) { r.TotalRedemptions = v })},

	FieldStartDateTime: {applyDateTime(FieldStartDateTime, func(r *Record, v *time.Time) { r.StartDateTime = v })},
	FieldEndDateTime:   {applyDateTime(FieldEndDateTime, func(r *Record, v *time.Time) { r.EndDateTime = v })},
}

// ApplyField coerces one raw form value and, on success, writes it into the
// record. A *FieldError return is user-visible and field-scoped; the two
// sentinel errors are caller mistakes (unknown name, owner fields).
func ApplyField(r *Record, field Field, raw any) error {
	if field == FieldDealOwnerID || field == FieldDealOwnerName {
		return ErrFieldNotEditable
	}
	spec, ok := registry[field]
	if !ok {
		return ErrUnknownField
	}
	if ferr := spec.apply(r, raw); ferr != nil {
		return ferr
	}
	return nil
}

// IsKnownField reports whether name is a registered, directly editable field.
func IsKnownField(field Field) bool {
	_, ok := registry[field]
	return ok
}

func applyText(field Field, maxLen int, assign func(*Record, string)) func(*Record, any) *FieldError {
	return func(r *Record, raw any) *FieldError {
		s, ok := raw.(string)
		if !ok {
			return newFieldError(field, KindTypeError, "Must be a string")
		}
		if len([]rune(s)) > maxLen {
			return newFieldError(field, KindConstraintError, maxLengthMessage(maxLen))
		}
		assign(r, s)
		return nil
	}
}

// applyDecimal accepts JSON numbers and numeric strings. Empty input clears
// the value entirely rather than storing zero.
func applyDecimal(field Field, assign func(*Record, *decimal.Decimal)) func(*Record, any) *FieldError {
	return func(r *Record, raw any) *FieldError {
		d, cleared, ferr := coerceDecimal(field, raw)
		if ferr != nil {
			return ferr
		}
		if cleared {
			assign(r, nil)
			return nil
		}
		if d.IsNegative() {
			return newFieldError(field, KindConstraintError, "Must be 0 or greater")
		}
		assign(r, &d)
		return nil
	}
}

func applyInt(field Field, min int, minMessage string, fallback int, assign func(*Record, *int)) func(*Record, any) *FieldError {
	return func(r *Record, raw any) *FieldError {
		d, cleared, ferr := coerceDecimal(field, raw)
		if ferr != nil {
			return ferr
		}
		if cleared {
			// Declared default: emptying the input restores it.
			v := fallback
			assign(r, &v)
			return nil
		}
		if !d.IsInteger() {
			return newFieldError(field, KindTypeError, "Must be a whole number")
		}
		v := int(d.IntPart())
		if v < min {
			return newFieldError(field, KindConstraintError, minMessage)
		}
		assign(r, &v)
		return nil
	}
}

func applyDateTime(field Field, assign func(*Record, *time.Time)) func(*Record, any) *FieldError {
	return func(r *Record, raw any) *FieldError {
		s, ok := raw.(string)
		if !ok {
			return newFieldError(field, KindTypeError, "Must be a string")
		}
		if s == "" {
			assign(r, nil)
			return nil
		}
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				assign(r, &t)
				return nil
			}
		}
		return newFieldError(field, KindTypeError, "Must be a valid date and time")
	}
}

func coerceDecimal(field Field, raw any) (decimal.Decimal, bool, *FieldError) {
	switch v := raw.(type) {
	case nil:
		return decimal.Decimal{}, true, nil
	case string:
		if v == "" {
			return decimal.Decimal{}, true, nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false, newFieldError(field, KindTypeError, "Must be a number")
		}
		return d, false, nil
	case float64:
		return decimal.NewFromFloat(v), false, nil
	case int:
		return decimal.NewFromInt(int64(v)), false, nil
	case int64:
		return decimal.NewFromInt(v), false, nil
	case decimal.Decimal:
		return v, false, nil
	default:
		return decimal.Decimal{}, false, newFieldError(field, KindTypeError, "Must be a number")
	}
}

func maxLengthMessage(maxLen int) string {
	switch maxLen {
	case maxTitleLength:
		return "Max 150 characters"
	case maxDescriptionLength:
		return "Max 1000 characters"
	default:
		return "Max 100 characters"
	}
}
