package jsonstore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/smartpanda/restaurant/internal/catalog/domain"
	"github.com/smartpanda/restaurant/pkg/jsonfile"
)

// Repository persists the catalog as a single JSON array document.
type Repository struct {
	log  *slog.Logger
	path string
}

func NewRepository(log *slog.Logger, path string) *Repository {
	return &Repository{log: log, path: path}
}

func (r *Repository) Load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	switch err := jsonfile.Read(r.path, &products); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, jsonfile.ErrCorrupt):
		// Never crash on a bad document: start empty and say so.
		r.log.Warn("products document corrupt, starting with empty catalog", "path", r.path, "err", err)
		products = nil
	default:
		return nil, err
	}
	return products, nil
}

func (r *Repository) Save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	return jsonfile.Write(r.path, products)
}
