package fact

import (
	"context"
	"io"
	"log"

	"customerhub/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. The table is
// insert-only; facts are never updated or deleted.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Append(ctx context.Context, f domain.Fact) error {
	const q = `
INSERT INTO customer_facts (id, customer_id, customer_type, kind, summary, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, q, f.ID, f.CustomerID, string(f.CustomerType), string(f.Kind), f.Summary, f.OccurredAt)
	if err != nil {
		r.logger.Printf("fact repo: append kind=%s customer=%s err=%v", f.Kind, f.CustomerID, err)
	}
	return err
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Fact, error) {
	const q = `
SELECT id::text, customer_id::text, customer_type, kind, summary, occurred_at
FROM customer_facts
WHERE customer_id = $1
ORDER BY occurred_at, id
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Fact
	for rows.Next() {
		var f domain.Fact
		var typ, kind string
		if err := rows.Scan(&f.ID, &f.CustomerID, &typ, &kind, &f.Summary, &f.OccurredAt); err != nil {
			return nil, err
		}
		f.CustomerType = domain.CustomerType(typ)
		f.Kind = domain.FactKind(kind)
		out = append(out, f)
	}
	return out, rows.Err()
}
