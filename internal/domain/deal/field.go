package deal

// Field names match the wire form the client submits (camelCase, one name
// per editable input of the deal form).
type Field string

const (
	FieldBusinessName         Field = "businessName"
	FieldLocationLabel        Field = "locationLabel"
	FieldDealTitle            Field = "dealTitle"
	FieldDescription          Field = "description"
	FieldCurrency             Field = "currency"
	FieldApplyFor             Field = "applyFor"
	FieldProductName          Field = "productName"
	FieldDealType             Field = "dealType"
	FieldFreeItemName         Field = "freeItemName"
	FieldOriginalPrice        Field = "originalPrice"
	FieldOfferPrice           Field = "offerPrice"
	FieldDiscountAmount       Field = "discountAmount"
	FieldMinimumSpend         Field = "minimumSpend"
	FieldMaxDiscount          Field = "maxDiscount"
	FieldTieredPricingEnabled Field = "tieredPricingEnabled"
	FieldValidityDays         Field = "validityDays"
	FieldTotalRedemptions     Field = "totalRedemptions"
	FieldStartDateTime        Field = "startDateTime"
	FieldEndDateTime          Field = "endDateTime"
	FieldDealOwnerID          Field = "dealOwnerId"
	FieldDealOwnerName        Field = "dealOwnerName"
)

func (f Field) String() string { return string(f) }

type ErrorKind string

const (
	KindTypeError              ErrorKind = "TYPE"
	KindConstraintError        ErrorKind = "CONSTRAINT"
	KindConditionalRequirement ErrorKind = "CONDITIONAL_REQUIREMENT"
	KindCrossFieldRule         ErrorKind = "CROSS_FIELD_RULE"
)

// FieldError is a user-visible validation failure scoped to one field.
type FieldError struct {
	Field   Field
	Kind    ErrorKind
	Message string
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

func newFieldError(field Field, kind ErrorKind, message string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: message}
}

// ValidationResult maps field names to error messages. An absent key means
// the field passed. Field-level errors win over cross-field errors for the
// same field, so Add keeps the first entry.
type ValidationResult map[Field]string

func NewValidationResult() ValidationResult {
	return make(ValidationResult)
}

func (r ValidationResult) Add(err *FieldError) {
	if err == nil {
		return
	}
	if _, exists := r[err.Field]; exists {
		return
	}
	r[err.Field] = err.Message
}

func (r ValidationResult) IsValid() bool { return len(r) == 0 }

func (r ValidationResult) Message(field Field) (string, bool) {
	msg, ok := r[field]
	return msg, ok
}
