package customer

import (
	"context"

	"customerhub/internal/domain"
)

// Filter narrows List results on the read side.
type Filter struct {
	Type           domain.CustomerType
	IncludeDeleted bool
}

// Repository persists and fetches customer aggregates. Save uses optimistic
// versioning: a stale version yields domain.ErrConflict.
type Repository interface {
	Create(ctx context.Context, c *domain.Customer) error
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Save(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, f Filter) ([]domain.Customer, error)
}
