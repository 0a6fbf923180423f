package ownerdir

import (
	"context"

	"dealdesk/internal/domain/owner"
	"dealdesk/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDirectory resolves owner candidates against the owners table.
// Matching is case-insensitive substring on the display name or email,
// ordered by name then id to keep results stable across repeated queries.
type PostgresDirectory struct {
	pool *pgxpool.Pool
}

func NewPostgresDirectory(pool *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{pool: pool}
}

func (d *PostgresDirectory) Search(ctx context.Context, query string) ([]owner.Candidate, error) {
	const q = `
        SELECT id, name, email, active_deals
        FROM owners
        WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
        ORDER BY name, id
        LIMIT 20`

	rows, err := d.pool.Query(ctx, q, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search owners", err)
	}
	defer rows.Close()

	candidates := make([]owner.Candidate, 0)
	for rows.Next() {
		var c owner.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ActiveDeals); err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner row", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owner rows", err)
	}
	return candidates, nil
}
