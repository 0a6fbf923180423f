package deal

// Label carries the display text a field should show under the current
// policy, plus optional numeric bounds/step for number inputs. Display-only;
// validation reads the same policy but never the label text.
type Label struct {
	Text string
	Hint string
	Min  string
	Max  string
	Step string
}

// Policy is what the current record values make of the form: which
// conditional fields participate, which fields are required, and which
// labels deviate from their static text. It is a pure value; resolving the
// same record twice always yields the same policy.
type Policy struct {
	visible  map[Field]bool
	required map[Field]bool
	labels   map[Field]Label
	tiers    bool
}

// conditionalFields default to hidden unless the policy turns them on.
// Every other field is always visible.
var conditionalFields = map[Field]bool{
	FieldProductName:  true,
	FieldFreeItemName: true,
	FieldMaxDiscount:  true,
}

// ResolvePolicy computes the conditional-field policy from the record alone.
func ResolvePolicy(r *Record) Policy {
	p := Policy{
		visible:  make(map[Field]bool),
		required: make(map[Field]bool),
		labels:   make(map[Field]Label),
		tiers:    r.TieredPricingEnabled,
	}

	p.required[FieldBusinessName] = true
	p.required[FieldDealTitle] = true
	p.required[FieldStartDateTime] = true
	p.required[FieldEndDateTime] = true

	if r.ApplyFor == ApplyForSpecific {
		p.visible[FieldProductName] = true
		p.required[FieldProductName] = true
	}

	if r.DealType.GrantsFreeItem() {
		p.visible[FieldFreeItemName] = true
		hint := "The free item included with this deal"
		if r.DealType == DealTypeBOGO {
			hint = "Item customer gets free with purchase"
		}
		p.labels[FieldFreeItemName] = Label{Text: "Free Item Name", Hint: hint}
	}

	if r.DealType == DealTypePercentage {
		p.visible[FieldMaxDiscount] = true
		p.labels[FieldDiscountAmount] = Label{Text: "Discount Percentage (%)", Min: "0", Max: "100", Step: "1"}
	} else {
		p.labels[FieldDiscountAmount] = Label{Text: "Discount Amount", Min: "0", Step: "0.01"}
	}

	return p
}

// Visible reports whether the field participates in validation and
// submission. Non-conditional fields are always visible.
func (p Policy) Visible(f Field) bool {
	if conditionalFields[f] {
		return p.visible[f]
	}
	return true
}

func (p Policy) Required(f Field) bool {
	return p.required[f]
}

// TiersIncluded reports whether tier rows belong to the validated and
// submitted record. Toggling it off never clears stored tier values.
func (p Policy) TiersIncluded() bool {
	return p.tiers
}

func (p Policy) Label(f Field) (Label, bool) {
	l, ok := p.labels[f]
	return l, ok
}

// VisibleFields lists the conditional fields currently shown, in a stable
// order for transport.
func (p Policy) VisibleFields() []Field {
	ordered := []Field{FieldProductName, FieldFreeItemName, FieldMaxDiscount}
	out := make([]Field, 0, len(ordered))
	for _, f := range ordered {
		if p.visible[f] {
			out = append(out, f)
		}
	}
	return out
}

func (p Policy) RequiredFields() []Field {
	ordered := []Field{FieldBusinessName, FieldDealTitle, FieldProductName, FieldStartDateTime, FieldEndDateTime}
	out := make([]Field, 0, len(ordered))
	for _, f := range ordered {
		if p.required[f] {
			out = append(out, f)
		}
	}
	return out
}

// Labels returns a copy of the label overrides keyed by field.
func (p Policy) Labels() map[Field]Label {
	out := make(map[Field]Label, len(p.labels))
	for f, l := range p.labels {
		out[f] = l
	}
	return out
}
