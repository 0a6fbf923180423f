//go:build unit

package deal_test

import (
	"testing"

	"dealdesk/internal/domain/deal"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierList(t *testing.T) {
	t.Run("fixed membership and order", func(t *testing.T) {
		tiers := deal.NewTierList().Tiers()
		require.Len(t, tiers, deal.TierCount)

		wantOrder := []deal.TierID{
			deal.TierSilver, deal.TierGold, deal.TierPlatinum, deal.TierTitanium, deal.TierDiamond,
		}
		for i, id := range wantOrder {
			assert.Equal(t, id, tiers[i].ID)
		}
		assert.Equal(t, "Gold", tiers[1].Name)
		assert.Equal(t, "G", tiers[1].Symbol)
	})

	t.Run("set value touches exactly one tier", func(t *testing.T) {
		original := deal.NewTierList()
		updated, err := original.SetValue(deal.TierGold, "25.00")
		require.NoError(t, err)

		v, ok := updated.Value(deal.TierGold)
		require.True(t, ok)
		assert.Equal(t, "25.00", v)

		for _, id := range []deal.TierID{deal.TierSilver, deal.TierPlatinum, deal.TierTitanium, deal.TierDiamond} {
			v, ok := updated.Value(id)
			require.True(t, ok)
			assert.Empty(t, v, id)
		}

		// copy-on-write: the original list is untouched
		v, _ = original.Value(deal.TierGold)
		assert.Empty(t, v)
	})

	t.Run("unknown tier id", func(t *testing.T) {
		_, err := deal.NewTierList().SetValue(deal.TierID("bronze"), "5")
		require.ErrorIs(t, err, deal.ErrUnknownTier)
	})

	t.Run("value survives round trips", func(t *testing.T) {
		l := deal.NewTierList()
		l1, err := l.SetValue(deal.TierDiamond, "99")
		require.NoError(t, err)
		l2, err := l1.SetValue(deal.TierSilver, "10")
		require.NoError(t, err)

		if diff := cmp.Diff(l1.Tiers()[4], l2.Tiers()[4]); diff != "" {
			t.Errorf("diamond tier changed by unrelated edit (-want +got):\n%s", diff)
		}
	})
}
