package fact

import (
	"context"

	"customerhub/internal/domain"
)

// Repository appends to and reads from the append-only fact log.
type Repository interface {
	Append(ctx context.Context, f domain.Fact) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Fact, error)
}
