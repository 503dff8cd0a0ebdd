package application

import (
	"context"

	catalogdomain "github.com/smartpanda/restaurant/internal/catalog/domain"
	"github.com/smartpanda/restaurant/internal/order/domain"
)

type OrderRepository interface {
	// Load returns the ledger in insertion order, or an empty one when
	// nothing was persisted yet.
	Load(ctx context.Context) ([]domain.Order, error)

	// Save replaces the persisted ledger with the given snapshot.
	Save(ctx context.Context, orders []domain.Order) error
}

// Catalog is the slice of the catalog store the order lifecycle needs.
// AdjustQuantity stages stock changes in memory; Persist makes them
// durable once the whole commit is assembled.
type Catalog interface {
	Product(ctx context.Context, id int) (catalogdomain.Product, error)
	AdjustQuantity(ctx context.Context, id, delta int) error
	Persist(ctx context.Context) error
}
