package customer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"customerhub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c *domain.Customer) error {
	account, billing, shipping, person, company, err := encodeParts(c)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO customers (id, type, deleted, created_at, version, account, billing, shipping, person, company)
VALUES ($1, $2, $3, $4, 1, $5, $6, $7, $8, $9)
`
	_, err = r.pool.Exec(ctx, q, c.ID, string(c.Type), c.Deleted, c.CreatedAt, account, billing, shipping, person, company)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConflict
		}
		r.logger.Printf("customer repo: create id=%s err=%v", c.ID, err)
		return err
	}
	c.Version = 1
	return nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `
SELECT id::text, type, deleted, created_at, version, account, billing, shipping, person, company
FROM customers
WHERE id = $1
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

// Save writes the whole aggregate back. The version predicate rejects stale
// writes so a lost update surfaces as domain.ErrConflict.
func (r *postgresRepo) Save(ctx context.Context, c *domain.Customer) error {
	account, billing, shipping, person, company, err := encodeParts(c)
	if err != nil {
		return err
	}

	const q = `
UPDATE customers
SET deleted = $3, account = $4, billing = $5, shipping = $6, person = $7, company = $8, version = version + 1
WHERE id = $1 AND version = $2
`
	tag, err := r.pool.Exec(ctx, q, c.ID, c.Version, c.Deleted, account, billing, shipping, person, company)
	if err != nil {
		r.logger.Printf("customer repo: save id=%s err=%v", c.ID, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, c.ID); errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	c.Version++
	return nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Customer, error) {
	q := `
SELECT id::text, type, deleted, created_at, version, account, billing, shipping, person, company
FROM customers
WHERE ($1 = '' OR type = $1) AND ($2 OR NOT deleted)
ORDER BY created_at
`
	rows, err := r.pool.Query(ctx, q, string(f.Type), f.IncludeDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var typ string
	var account, billing, shipping, person, company []byte
	err := row.Scan(&c.ID, &typ, &c.Deleted, &c.CreatedAt, &c.Version, &account, &billing, &shipping, &person, &company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	c.Type = domain.CustomerType(typ)
	for _, part := range []struct {
		raw []byte
		dst interface{}
	}{
		{account, &c.Account},
		{billing, &c.Billing},
		{shipping, &c.Shipping},
		{person, &c.Person},
		{company, &c.Company},
	} {
		if len(part.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(part.raw, part.dst); err != nil {
			r.logger.Printf("customer repo: decode id=%s err=%v", c.ID, err)
			return nil, err
		}
	}
	return &c, nil
}

func encodeParts(c *domain.Customer) (account, billing, shipping, person, company []byte, err error) {
	if c.Account != nil {
		if account, err = json.Marshal(c.Account); err != nil {
			return
		}
	}
	if billing, err = json.Marshal(c.Billing); err != nil {
		return
	}
	if shipping, err = json.Marshal(c.Shipping); err != nil {
		return
	}
	if c.Person != nil {
		if person, err = json.Marshal(c.Person); err != nil {
			return
		}
	}
	if c.Company != nil {
		company, err = json.Marshal(c.Company)
	}
	return
}
