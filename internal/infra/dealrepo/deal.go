package dealrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Repository persists accepted deals. Drafts never reach this layer; rows
// are written once at submission and read back for listings.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// tierRow is the JSONB shape of one tier. Display metadata travels with the
// value so the read side needs no join.
type tierRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Gradient string `json:"gradient"`
	Value    string `json:"value"`
}

func (r *Repository) Create(ctx context.Context, d *deal.AcceptedDeal) error {
	tiersJSON, err := marshalTiers(d.Tiers())
	if err != nil {
		return infra.WrapRepoErr("failed to encode deal tiers", err)
	}

	const q = `
        INSERT INTO deals (
            id, business_name, location_label, deal_title, description,
            currency, apply_for, product_name, deal_type, free_item_name,
            original_price, offer_price, discount_amount, minimum_spend, max_discount,
            tiered_pricing_enabled, tiers,
            validity_days, total_redemptions,
            start_at, end_at,
            deal_owner_id, deal_owner_name,
            images, submitted_at
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9, $10,
            $11, $12, $13, $14, $15,
            $16, $17,
            $18, $19,
            $20, $21,
            $22, $23,
            $24, $25
        )`

	_, err = r.pool.Exec(ctx, q,
		d.ID(),
		d.BusinessName(),
		d.LocationLabel(),
		d.DealTitle(),
		d.Description(),
		d.Currency().String(),
		d.ApplyFor().String(),
		d.ProductName(),
		d.DealType().String(),
		d.FreeItemName(),
		decimalText(d.OriginalPrice()),
		decimalText(d.OfferPrice()),
		decimalText(d.DiscountAmount()),
		decimalText(d.MinimumSpend()),
		decimalText(d.MaxDiscount()),
		d.TieredPricingEnabled(),
		tiersJSON,
		d.ValidityDays(),
		d.TotalRedemptions(),
		d.StartDateTime(),
		d.EndDateTime(),
		nullableText(d.DealOwnerID()),
		nullableText(d.DealOwnerName()),
		d.Images(),
		d.SubmittedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert deal", err)
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	const q = selectColumns + ` FROM deals WHERE id = $1`

	row := r.pool.QueryRow(ctx, q, id)
	view, err := scanDealView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("deal not found", err, infra.KindNotFound), queries.ErrDealNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal", err)
	}
	return view, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]*queries.DealListItem, error) {
	const q = `
        SELECT id, business_name, deal_title, deal_type, start_at, end_at, submitted_at
        FROM deals
        ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}
	defer rows.Close()

	items := make([]*queries.DealListItem, 0)
	for rows.Next() {
		var item queries.DealListItem
		if err := rows.Scan(
			&item.ID, &item.BusinessName, &item.DealTitle, &item.DealType,
			&item.StartDate, &item.EndDate, &item.SubmittedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deal rows", err)
	}
	return items, nil
}

const selectColumns = `
        SELECT id, business_name, location_label, deal_title, description,
               currency, apply_for, product_name, deal_type, free_item_name,
               original_price, offer_price, discount_amount, minimum_spend, max_discount,
               tiered_pricing_enabled, tiers,
               validity_days, total_redemptions,
               start_at, end_at,
               deal_owner_id, deal_owner_name,
               images, submitted_at`

func scanDealView(row pgx.Row) (*queries.DealView, error) {
	var (
		view         queries.DealView
		locationNull *string
		descNull     *string
		original     *string
		offer        *string
		discount     *string
		minSpend     *string
		maxDiscount  *string
		tiersJSON    []byte
		ownerID      *string
		ownerName    *string
		start        time.Time
		end          time.Time
	)

	err := row.Scan(
		&view.ID, &view.BusinessName, &locationNull, &view.DealTitle, &descNull,
		&view.Currency, &view.ApplyFor, &view.ProductName, &view.DealType, &view.FreeItemName,
		&original, &offer, &discount, &minSpend, &maxDiscount,
		&view.TieredPricingEnabled, &tiersJSON,
		&view.ValidityDays, &view.TotalRedemptions,
		&start, &end,
		&ownerID, &ownerName,
		&view.Images, &view.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}

	view.LocationLabel = textOrEmpty(locationNull)
	view.Description = textOrEmpty(descNull)
	view.DealOwnerID = textOrEmpty(ownerID)
	view.DealOwnerName = textOrEmpty(ownerName)
	view.StartDateTime = start
	view.EndDateTime = end

	if cur, curErr := deal.NewCurrency(view.Currency); curErr == nil {
		view.CurrencySymbol = cur.Symbol()
	}

	if view.OriginalPrice, err = parseDecimal(original); err != nil {
		return nil, err
	}
	if view.OfferPrice, err = parseDecimal(offer); err != nil {
		return nil, err
	}
	if view.DiscountAmount, err = parseDecimal(discount); err != nil {
		return nil, err
	}
	if view.MinimumSpend, err = parseDecimal(minSpend); err != nil {
		return nil, err
	}
	if view.MaxDiscount, err = parseDecimal(maxDiscount); err != nil {
		return nil, err
	}

	if len(tiersJSON) > 0 {
		var tierRows []tierRow
		if err := json.Unmarshal(tiersJSON, &tierRows); err != nil {
			return nil, err
		}
		view.Tiers = make([]queries.TierView, len(tierRows))
		for i, t := range tierRows {
			view.Tiers[i] = queries.TierView(t)
		}
	}

	return &view, nil
}

func marshalTiers(tiers []deal.Tier) ([]byte, error) {
	if len(tiers) == 0 {
		return nil, nil
	}
	rows := make([]tierRow, len(tiers))
	for i, t := range tiers {
		rows[i] = tierRow{
			ID:       string(t.ID),
			Name:     t.Name,
			Symbol:   t.Symbol,
			Gradient: t.Gradient,
			Value:    t.Value,
		}
	}
	return json.Marshal(rows)
}

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
