package application

import (
	"context"

	"github.com/smartpanda/restaurant/internal/catalog/domain"
)

type ProductRepository interface {
	// Load returns the full catalog, or an empty one when nothing was
	// persisted yet.
	Load(ctx context.Context) ([]domain.Product, error)

	// Save replaces the persisted catalog with the given snapshot.
	Save(ctx context.Context, products []domain.Product) error
}
