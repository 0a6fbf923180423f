package deal

import "errors"

var ErrUnknownTier = errors.New("unknown tier")

type TierID string

const (
	TierSilver   TierID = "silver"
	TierGold     TierID = "gold"
	TierPlatinum TierID = "platinum"
	TierTitanium TierID = "titanium"
	TierDiamond  TierID = "diamond"
)

const TierCount = 5

// Tier is one loyalty level row. Name, symbol, and gradient are display
// metadata fixed at construction; only Value is ever edited.
type Tier struct {
	ID       TierID
	Name     string
	Symbol   string
	Gradient string
	Value    string
}

// TierList is a fixed five-membership ordered collection. There is no way
// to insert, remove, or reorder; SetValue is the only mutation and it is
// copy-on-write.
type TierList struct {
	tiers [TierCount]Tier
}

func NewTierList() TierList {
	return TierList{tiers: [TierCount]Tier{
		{ID: TierSilver, Name: "Silver", Symbol: "S", Gradient: "from-slate-400 to-slate-600"},
		{ID: TierGold, Name: "Gold", Symbol: "G", Gradient: "from-amber-400 to-amber-600"},
		{ID: TierPlatinum, Name: "Platinum", Symbol: "P", Gradient: "from-cyan-400 to-cyan-600"},
		{ID: TierTitanium, Name: "Titanium", Symbol: "T", Gradient: "from-zinc-500 to-zinc-700"},
		{ID: TierDiamond, Name: "Diamond", Symbol: "D", Gradient: "from-violet-400 to-violet-600"},
	}}
}

// SetValue returns a new list with exactly one tier's value replaced.
// An unknown id leaves the receiver's contents unreturned and reports
// ErrUnknownTier.
func (l TierList) SetValue(id TierID, value string) (TierList, error) {
	for i, t := range l.tiers {
		if t.ID == id {
			next := l
			next.tiers[i].Value = value
			return next, nil
		}
	}
	return TierList{}, ErrUnknownTier
}

func (l TierList) Value(id TierID) (string, bool) {
	for _, t := range l.tiers {
		if t.ID == id {
			return t.Value, true
		}
	}
	return "", false
}

// Tiers returns the rows in their fixed order.
func (l TierList) Tiers() []Tier {
	out := make([]Tier, TierCount)
	copy(out, l.tiers[:])
	return out
}
