package deal

import "errors"

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidApplyFor = errors.New("invalid apply-for scope")
	ErrInvalidDealType = errors.New("invalid deal type")
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyAED Currency = "AED"
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
	CurrencyAED: "د.إ",
}

func NewCurrency(value string) (Currency, error) {
	c := Currency(value)
	if _, ok := currencySymbols[c]; !ok {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

func (c Currency) String() string { return string(c) }

func (c Currency) Symbol() string { return currencySymbols[c] }

// ApplyFor is the scope of a deal: every product, or one named product.
type ApplyFor string

const (
	ApplyForAll      ApplyFor = "all"
	ApplyForSpecific ApplyFor = "specific"
)

func NewApplyFor(value string) (ApplyFor, error) {
	switch ApplyFor(value) {
	case ApplyForAll, ApplyForSpecific:
		return ApplyFor(value), nil
	}
	return "", ErrInvalidApplyFor
}

func (a ApplyFor) String() string { return string(a) }

type DealType string

const (
	DealTypePercentage DealType = "percentage"
	DealTypeFixed      DealType = "fixed"
	DealTypeBOGO       DealType = "bogo"
	DealTypeFreeItem   DealType = "free_item"
	DealTypeVoucher    DealType = "voucher"
)

func NewDealType(value string) (DealType, error) {
	switch DealType(value) {
	case DealTypePercentage, DealTypeFixed, DealTypeBOGO, DealTypeFreeItem, DealTypeVoucher:
		return DealType(value), nil
	}
	return "", ErrInvalidDealType
}

func (d DealType) String() string { return string(d) }

// GrantsFreeItem reports whether the deal type hands out a free item.
func (d DealType) GrantsFreeItem() bool {
	return d == DealTypeFreeItem || d == DealTypeBOGO
}
