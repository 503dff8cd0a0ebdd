package application

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"sync"

	authdomain "github.com/smartpanda/restaurant/internal/auth/domain"
	catalogdomain "github.com/smartpanda/restaurant/internal/catalog/domain"
	"github.com/smartpanda/restaurant/internal/order/domain"
	"github.com/smartpanda/restaurant/internal/validation"
)

const maxIDAttempts = 10000

var errIDSpaceExhausted = errors.New("order id space exhausted")

// CartItem is one requested entry of an in-progress cart: the product
// reference, the amount and the chosen extras by name.
type CartItem struct {
	ProductID int
	Quantity  int
	Extras    []string
}

// Service is the order lifecycle manager. It owns the in-memory ledger,
// builds order lines against the catalog, prices them and commits both
// documents together: stage stock and ledger changes, persist, and roll
// both back when either write fails.
type Service struct {
	log     *slog.Logger
	repo    OrderRepository
	catalog Catalog

	// mu serialises the read-modify-write commit sections so stock
	// arithmetic stays consistent even with more than one driver.
	mu     sync.Mutex
	orders []domain.Order

	randInt func(n int) int
}

func NewService(ctx context.Context, log *slog.Logger, repo OrderRepository, catalog Catalog) (*Service, error) {
	orders, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return &Service{
		log:     log,
		repo:    repo,
		catalog: catalog,
		orders:  orders,
		randInt: rand.IntN,
	}, nil
}

// PlaceOrder commits a cart as a new pending order: stock is re-checked
// at commit time, decremented per line, and both catalog and ledger are
// persisted or neither is.
func (s *Service) PlaceOrder(ctx context.Context, session authdomain.Session, cart []CartItem, payment domain.PaymentMethod) (domain.Order, error) {
	return s.place(ctx, session, cart, payment, domain.StatusPending)
}

func (s *Service) place(ctx context.Context, session authdomain.Session, cart []CartItem, payment domain.PaymentMethod, status domain.Status) (domain.Order, error) {
	if !session.LoggedIn() {
		return domain.Order{}, authdomain.ErrPermissionDenied
	}
	if len(cart) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	lines, err := s.buildLines(ctx, cart)
	if err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Commit-time stock check: the cart was built interactively and may
	// be stale. Any shortfall aborts the whole order.
	decremented, err := s.adjustAll(ctx, lines, -1)
	if err != nil {
		return domain.Order{}, err
	}

	id, err := s.newOrderID()
	if err != nil {
		s.rollbackAdjustments(ctx, decremented, +1)
		return domain.Order{}, err
	}
	order, err := domain.NewOrder(id, session.Username, lines, payment, status)
	if err != nil {
		s.rollbackAdjustments(ctx, decremented, +1)
		return domain.Order{}, err
	}

	next := append(s.snapshot(), order)
	if err := s.persistBoth(ctx, next); err != nil {
		s.rollbackAdjustments(ctx, decremented, +1)
		s.repersistCatalog(ctx)
		return domain.Order{}, err
	}
	s.orders = next

	s.log.Info("order placed", "order_id", order.ID, "username", order.Username,
		"lines", len(order.Lines), "total", order.TotalPrice)
	return order.Clone(), nil
}

// ViewOrders returns a lazy, restartable sequence of the caller's orders
// in ledger insertion order.
func (s *Service) ViewOrders(ctx context.Context, session authdomain.Session) iter.Seq[domain.Order] {
	s.mu.Lock()
	orders := s.orders
	s.mu.Unlock()
	return func(yield func(domain.Order) bool) {
		for _, o := range orders {
			if o.Username != session.Username {
				continue
			}
			if !yield(o.Clone()) {
				return
			}
		}
	}
}

// Order fetches a single order owned by the caller.
func (s *Service) Order(ctx context.Context, session authdomain.Session, orderID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(session, orderID)
	if i < 0 {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return s.orders[i].Clone(), nil
}

// CancelOrder restocks every line of the order and removes it from the
// ledger. A second cancel of the same id fails with ErrOrderNotFound, so
// stock is never restocked twice.
func (s *Service) CancelOrder(ctx context.Context, session authdomain.Session, orderID string) error {
	if !session.LoggedIn() {
		return authdomain.ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(session, orderID)
	if i < 0 {
		return domain.ErrOrderNotFound
	}
	order := s.orders[i]

	restocked, err := s.adjustAll(ctx, order.Lines, +1)
	if err != nil {
		return err
	}

	next := append(s.snapshot()[:i], s.orders[i+1:]...)
	if err := s.persistBoth(ctx, next); err != nil {
		s.rollbackAdjustments(ctx, restocked, -1)
		s.repersistCatalog(ctx)
		return err
	}
	s.orders = next

	s.log.Info("order cancelled", "order_id", orderID, "username", session.Username)
	return nil
}

// UpdateOrder is cancel plus a fresh placement: the original order id is
// not preserved and the replacement carries the Updated status.
func (s *Service) UpdateOrder(ctx context.Context, session authdomain.Session, orderID string, cart []CartItem, payment domain.PaymentMethod) (domain.Order, error) {
	if err := s.CancelOrder(ctx, session, orderID); err != nil {
		return domain.Order{}, err
	}
	return s.place(ctx, session, cart, payment, domain.StatusUpdated)
}

// buildLines resolves cart items against the catalog and snapshots name,
// unit price and selected extras.
func (s *Service) buildLines(ctx context.Context, cart []CartItem) ([]domain.Line, error) {
	lines := make([]domain.Line, 0, len(cart))
	for _, item := range cart {
		if item.Quantity <= 0 {
			return nil, validation.Errorf("quantity", "must be positive, got %d", item.Quantity)
		}
		p, err := s.catalog.Product(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p.Quantity < item.Quantity {
			return nil, fmt.Errorf("%w: %s has %d left, requested %d",
				catalogdomain.ErrInsufficientStock, p.Name, p.Quantity, item.Quantity)
		}
		line := domain.Line{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  item.Quantity,
		}
		for _, name := range item.Extras {
			e, ok := p.Extra(name)
			if !ok {
				return nil, validation.Errorf("extras", "%s has no extra %q", p.Name, name)
			}
			line.Extras = append(line.Extras, domain.Extra{Name: e.Name, Price: e.Price})
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// adjustAll applies sign*quantity to every line's product and unwinds on
// the first failure. On cancel a product may have been removed from the
// catalog since the order was placed; its restock is skipped with a log
// line rather than leaving the order stuck forever.
func (s *Service) adjustAll(ctx context.Context, lines []domain.Line, sign int) ([]domain.Line, error) {
	var done []domain.Line
	for _, l := range lines {
		err := s.catalog.AdjustQuantity(ctx, l.ProductID, sign*l.Quantity)
		if err != nil {
			if sign > 0 && errors.Is(err, catalogdomain.ErrProductNotFound) {
				s.log.Warn("restock skipped, product gone from catalog", "product_id", l.ProductID)
				continue
			}
			s.rollbackAdjustments(ctx, done, -sign)
			return nil, err
		}
		done = append(done, l)
	}
	return done, nil
}

func (s *Service) rollbackAdjustments(ctx context.Context, lines []domain.Line, sign int) {
	for _, l := range lines {
		if err := s.catalog.AdjustQuantity(ctx, l.ProductID, sign*l.Quantity); err != nil {
			s.log.Error("stock rollback failed", "product_id", l.ProductID, "err", err)
		}
	}
}

// persistBoth writes catalog then ledger. When the ledger write fails,
// callers roll the staged stock back and re-persist the catalog so the
// two documents stay consistent.
func (s *Service) persistBoth(ctx context.Context, orders []domain.Order) error {
	if err := s.catalog.Persist(ctx); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	if err := s.repo.Save(ctx, orders); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// repersistCatalog is the compensation write after a failed commit. Best
// effort: if storage is down this fails too, and memory already matches
// the last durable stock.
func (s *Service) repersistCatalog(ctx context.Context) {
	if err := s.catalog.Persist(ctx); err != nil {
		s.log.Error("catalog compensation write failed", "err", err)
	}
}

func (s *Service) index(session authdomain.Session, orderID string) int {
	for i, o := range s.orders {
		if o.ID == orderID && o.Username == session.Username {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() []domain.Order {
	return append([]domain.Order(nil), s.orders...)
}

// newOrderID keeps the external #SP#### format but retries on collision
// against the stored orders.
func (s *Service) newOrderID() (string, error) {
	taken := make(map[string]struct{}, len(s.orders))
	for _, o := range s.orders {
		taken[o.ID] = struct{}{}
	}
	for range maxIDAttempts {
		id := fmt.Sprintf("#SP%04d", 1000+s.randInt(9000))
		if _, ok := taken[id]; !ok {
			return id, nil
		}
	}
	return "", errIDSpaceExhausted
}
