package application

import (
	"context"
	"fmt"
	"log/slog"

	authdomain "github.com/smartpanda/restaurant/internal/auth/domain"
	"github.com/smartpanda/restaurant/internal/catalog/domain"
)

// Service is the catalog store: an in-memory product collection backed by
// a repository. Mutations persist a staged copy first and only then swap
// it in, so memory never diverges from the durable state.
type Service struct {
	log      *slog.Logger
	repo     ProductRepository
	products []domain.Product
}

func NewService(ctx context.Context, log *slog.Logger, repo ProductRepository) (*Service, error) {
	products, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Service{log: log, repo: repo, products: products}, nil
}

func (s *Service) Product(ctx context.Context, id int) (domain.Product, error) {
	i := s.index(id)
	if i < 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products[i].Clone(), nil
}

func (s *Service) Products(ctx context.Context) []domain.Product {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Service) ProductsByCategory(ctx context.Context, category domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Search matches products by id, name or category substring.
func (s *Service) Search(ctx context.Context, key string) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Matches(key) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *Service) AddProduct(ctx context.Context, session authdomain.Session, fields domain.Fields) (domain.Product, error) {
	if err := authdomain.RequireRole(session, authdomain.RoleAdmin, authdomain.RoleManager, authdomain.RoleStaff); err != nil {
		return domain.Product{}, err
	}
	p, err := domain.New(s.nextID(), fields)
	if err != nil {
		return domain.Product{}, err
	}
	next := append(s.snapshot(), p)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Product{}, err
	}
	s.products = next
	s.log.Info("product added", "id", p.ID, "name", p.Name)
	return p.Clone(), nil
}

func (s *Service) UpdateProduct(ctx context.Context, session authdomain.Session, id int, fields domain.Fields) (domain.Product, error) {
	if err := authdomain.RequireRole(session, authdomain.RoleAdmin, authdomain.RoleManager, authdomain.RoleStaff); err != nil {
		return domain.Product{}, err
	}
	i := s.index(id)
	if i < 0 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	p, err := domain.New(id, fields)
	if err != nil {
		return domain.Product{}, err
	}
	next := s.snapshot()
	next[i] = p
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Product{}, err
	}
	s.products = next
	s.log.Info("product updated", "id", id)
	return p.Clone(), nil
}

func (s *Service) RemoveProduct(ctx context.Context, session authdomain.Session, id int) error {
	if err := authdomain.RequireRole(session, authdomain.RoleAdmin, authdomain.RoleManager, authdomain.RoleStaff); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	next := append(s.snapshot()[:i], s.products[i+1:]...)
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.products = next
	s.log.Info("product removed", "id", id)
	return nil
}

// AdjustQuantity changes available stock in memory only; the order
// lifecycle persists via Persist once its whole commit is staged. A delta
// that would take stock negative fails with ErrInsufficientStock and
// leaves the product untouched.
func (s *Service) AdjustQuantity(ctx context.Context, id, delta int) error {
	i := s.index(id)
	if i < 0 {
		return domain.ErrProductNotFound
	}
	if next := s.products[i].Quantity + delta; next < 0 {
		return fmt.Errorf("%w: product %d has %d, requested %d",
			domain.ErrInsufficientStock, id, s.products[i].Quantity, -delta)
	}
	s.products[i].Quantity += delta
	return nil
}

// Persist writes the current catalog snapshot.
func (s *Service) Persist(ctx context.Context) error {
	return s.repo.Save(ctx, s.products)
}

func (s *Service) index(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// nextID never reuses an id: deletions leave gaps.
func (s *Service) nextID() int {
	max := 0
	for _, p := range s.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
