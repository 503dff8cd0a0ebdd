package jsonstore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/smartpanda/restaurant/internal/order/domain"
	"github.com/smartpanda/restaurant/pkg/jsonfile"
)

// Repository persists the order ledger as a single JSON array document
// in insertion order.
type Repository struct {
	log  *slog.Logger
	path string
}

func NewRepository(log *slog.Logger, path string) *Repository {
	return &Repository{log: log, path: path}
}

func (r *Repository) Load(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	switch err := jsonfile.Read(r.path, &orders); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, jsonfile.ErrCorrupt):
		r.log.Warn("orders document corrupt, starting with empty ledger", "path", r.path, "err", err)
		orders = nil
	default:
		return nil, err
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, orders []domain.Order) error {
	if orders == nil {
		orders = []domain.Order{}
	}
	return jsonfile.Write(r.path, orders)
}
