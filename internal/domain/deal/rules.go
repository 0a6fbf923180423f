package deal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rule is one whole-record invariant. Rules assume well-typed field values;
// that is why field-level checks run first and win per field.
type rule struct {
	field   Field
	kind    ErrorKind
	message string
	broken  func(r *Record, p Policy) bool
}

// crossFieldRules run in declaration order and are all evaluated on every
// pass, so independent violations surface together.
var crossFieldRules = []rule{
	{
		field:   FieldProductName,
		kind:    KindConditionalRequirement,
		message: "Product name is required when applying to a specific product",
		broken: func(r *Record, p Policy) bool {
			return p.Required(FieldProductName) && strings.TrimSpace(r.ProductName) == ""
		},
	},
	{
		field:   FieldDiscountAmount,
		kind:    KindCrossFieldRule,
		message: "Percentage must be between 0 and 100",
		broken: func(r *Record, _ Policy) bool {
			return r.DealType == DealTypePercentage &&
				r.DiscountAmount != nil &&
				r.DiscountAmount.GreaterThan(decimalHundred)
		},
	},
	{
		field:   FieldEndDateTime,
		kind:    KindCrossFieldRule,
		message: "End date must be after start date",
		broken: func(r *Record, _ Policy) bool {
			if r.StartDateTime == nil || r.EndDateTime == nil {
				return false
			}
			return !r.EndDateTime.After(*r.StartDateTime)
		},
	},
}

// Validate runs the whole submission-time check: field-level typing and
// constraints first, then every cross-field rule. Hidden fields are excluded
// entirely and never contribute an error.
func Validate(r *Record, p Policy) ValidationResult {
	result := NewValidationResult()

	for _, err := range fieldLevelErrors(r, p) {
		result.Add(err)
	}
	for _, rl := range crossFieldRules {
		if rl.broken(r, p) {
			result.Add(newFieldError(rl.field, rl.kind, rl.message))
		}
	}

	return result
}

func fieldLevelErrors(r *Record, p Policy) []*FieldError {
	var errs []*FieldError
	add := func(e *FieldError) {
		if e != nil {
			errs = append(errs, e)
		}
	}

	add(checkRequiredText(FieldBusinessName, r.BusinessName, "Business name is required"))
	add(checkTextLength(FieldBusinessName, r.BusinessName, maxShortTextLength))
	add(checkTextLength(FieldLocationLabel, r.LocationLabel, maxShortTextLength))
	add(checkRequiredText(FieldDealTitle, r.DealTitle, "Deal title is required"))
	add(checkTextLength(FieldDealTitle, r.DealTitle, maxTitleLength))
	add(checkTextLength(FieldDescription, r.Description, maxDescriptionLength))

	if p.Visible(FieldProductName) {
		add(checkTextLength(FieldProductName, r.ProductName, maxShortTextLength))
	}
	if p.Visible(FieldFreeItemName) {
		add(checkTextLength(FieldFreeItemName, r.FreeItemName, maxShortTextLength))
	}

	add(checkNonNegative(FieldOriginalPrice, r.OriginalPrice))
	add(checkNonNegative(FieldOfferPrice, r.OfferPrice))
	add(checkNonNegative(FieldDiscountAmount, r.DiscountAmount))
	add(checkNonNegative(FieldMinimumSpend, r.MinimumSpend))
	if p.Visible(FieldMaxDiscount) {
		add(checkNonNegative(FieldMaxDiscount, r.MaxDiscount))
	}

	if r.ValidityDays != nil && *r.ValidityDays < 1 {
		add(newFieldError(FieldValidityDays, KindConstraintError, "Must be at least 1 day"))
	}
	if r.TotalRedemptions != nil && *r.TotalRedemptions < 0 {
		add(newFieldError(FieldTotalRedemptions, KindConstraintError, "Must be 0 or greater"))
	}

	if r.StartDateTime == nil {
		add(newFieldError(FieldStartDateTime, KindConditionalRequirement, "Start date & time is required"))
	}
	if r.EndDateTime == nil {
		add(newFieldError(FieldEndDateTime, KindConditionalRequirement, "End date & time is required"))
	}

	return errs
}

func checkRequiredText(field Field, value, message string) *FieldError {
	if value == "" {
		return newFieldError(field, KindConditionalRequirement, message)
	}
	return nil
}

func checkTextLength(field Field, value string, maxLen int) *FieldError {
	if len([]rune(value)) > maxLen {
		return newFieldError(field, KindConstraintError, maxLengthMessage(maxLen))
	}
	return nil
}

func checkNonNegative(field Field, value *decimal.Decimal) *FieldError {
	if value != nil && value.IsNegative() {
		return newFieldError(field, KindConstraintError, "Must be 0 or greater")
	}
	return nil
}
