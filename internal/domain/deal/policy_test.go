//go:build unit

package deal_test

import (
	"testing"

	"dealdesk/internal/domain/deal"
	"dealdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicy(t *testing.T) {
	t.Run("defaults: all-products percentage deal", func(t *testing.T) {
		p := deal.ResolvePolicy(deal.NewRecord())

		assert.False(t, p.Visible(deal.FieldProductName))
		assert.False(t, p.Visible(deal.FieldFreeItemName))
		assert.True(t, p.Visible(deal.FieldMaxDiscount))
		assert.True(t, p.TiersIncluded())

		assert.True(t, p.Required(deal.FieldBusinessName))
		assert.True(t, p.Required(deal.FieldDealTitle))
		assert.True(t, p.Required(deal.FieldStartDateTime))
		assert.True(t, p.Required(deal.FieldEndDateTime))
		assert.False(t, p.Required(deal.FieldProductName))
	})

	t.Run("non-conditional fields are always visible", func(t *testing.T) {
		p := deal.ResolvePolicy(deal.NewRecord())
		assert.True(t, p.Visible(deal.FieldBusinessName))
		assert.True(t, p.Visible(deal.FieldDiscountAmount))
		assert.True(t, p.Visible(deal.FieldTieredPricingEnabled))
	})

	t.Run("specific product turns product name on and required", func(t *testing.T) {
		r := builder.NewDealBuilder().AsSpecificProductDeal().BuildRecord()
		p := deal.ResolvePolicy(r)

		assert.True(t, p.Visible(deal.FieldProductName))
		assert.True(t, p.Required(deal.FieldProductName))
		assert.Contains(t, p.VisibleFields(), deal.FieldProductName)
		assert.Contains(t, p.RequiredFields(), deal.FieldProductName)
	})

	t.Run("free item name participates for bogo and free_item", func(t *testing.T) {
		for _, dealType := range []string{"bogo", "free_item"} {
			r := builder.NewDealBuilder().WithDealType(dealType).BuildRecord()
			p := deal.ResolvePolicy(r)
			assert.True(t, p.Visible(deal.FieldFreeItemName), dealType)
		}

		for _, dealType := range []string{"percentage", "fixed", "voucher"} {
			r := builder.NewDealBuilder().WithDealType(dealType).BuildRecord()
			p := deal.ResolvePolicy(r)
			assert.False(t, p.Visible(deal.FieldFreeItemName), dealType)
		}
	})

	t.Run("free item hint differs between bogo and free_item", func(t *testing.T) {
		bogo := deal.ResolvePolicy(builder.NewDealBuilder().WithDealType("bogo").BuildRecord())
		label, ok := bogo.Label(deal.FieldFreeItemName)
		require.True(t, ok)
		assert.Equal(t, "Item customer gets free with purchase", label.Hint)

		free := deal.ResolvePolicy(builder.NewDealBuilder().WithDealType("free_item").BuildRecord())
		label, ok = free.Label(deal.FieldFreeItemName)
		require.True(t, ok)
		assert.Equal(t, "The free item included with this deal", label.Hint)
	})

	t.Run("discount label switches with deal type", func(t *testing.T) {
		pct := deal.ResolvePolicy(builder.NewDealBuilder().WithDealType("percentage").BuildRecord())
		label, ok := pct.Label(deal.FieldDiscountAmount)
		require.True(t, ok)
		assert.Equal(t, "Discount Percentage (%)", label.Text)
		assert.Equal(t, "100", label.Max)
		assert.Equal(t, "1", label.Step)
		assert.True(t, pct.Visible(deal.FieldMaxDiscount))

		fixed := deal.ResolvePolicy(builder.NewDealBuilder().WithDealType("fixed").BuildRecord())
		label, ok = fixed.Label(deal.FieldDiscountAmount)
		require.True(t, ok)
		assert.Equal(t, "Discount Amount", label.Text)
		assert.Empty(t, label.Max)
		assert.Equal(t, "0.01", label.Step)
		assert.False(t, fixed.Visible(deal.FieldMaxDiscount))
	})

	t.Run("tiers follow the toggle", func(t *testing.T) {
		r := deal.NewRecord()
		r.TieredPricingEnabled = false
		assert.False(t, deal.ResolvePolicy(r).TiersIncluded())
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		r := builder.NewDealBuilder().AsFreeItemDeal().BuildRecord()
		p1 := deal.ResolvePolicy(r)
		p2 := deal.ResolvePolicy(r)
		assert.Equal(t, p1.VisibleFields(), p2.VisibleFields())
		assert.Equal(t, p1.RequiredFields(), p2.RequiredFields())
		assert.Equal(t, p1.Labels(), p2.Labels())
	})
}
