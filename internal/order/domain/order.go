package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentCreditCard   PaymentMethod = "Credit Card"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusUpdated Status = "Updated"
)

// Extra is a snapshot of a product add-on at order time. Later catalog
// edits never reach stored orders.
type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Line is one cart entry: the product reference plus a snapshot of its
// name, unit price and the selected extras.
type Line struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Extras    []Extra `json:"extras,omitempty"`
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	out := l
	out.Extras = append([]Extra(nil), l.Extras...)
	return out
}

// Order is one entry of the orders document. The totals are persisted
// redundantly with the lines for display; Price over the lines must
// reproduce them.
type Order struct {
	ID            string        `json:"order_id"`
	Username      string        `json:"username"`
	Lines         []Line        `json:"cart"`
	BaseTotal     float64       `json:"base_total"`
	ExtrasTotal   float64       `json:"extras_total"`
	VAT           float64       `json:"vat"`
	Tax           float64       `json:"tax"`
	TotalPrice    float64       `json:"total_price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewOrder snapshots the lines, prices them and stamps the order.
func NewOrder(id, username string, lines []Line, payment PaymentMethod, status Status) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if payment != PaymentBankTransfer && payment != PaymentCreditCard {
		return Order{}, fmt.Errorf("unknown payment method %q", payment)
	}
	owned := make([]Line, 0, len(lines))
	for _, l := range lines {
		owned = append(owned, l.Clone())
	}
	t := Price(owned)
	return Order{
		ID:            id,
		Username:      username,
		Lines:         owned,
		BaseTotal:     t.Base,
		ExtrasTotal:   t.Extras,
		VAT:           t.VAT,
		Tax:           t.Tax,
		TotalPrice:    t.Total,
		PaymentMethod: payment,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	out := o
	out.Lines = make([]Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		out.Lines = append(out.Lines, l.Clone())
	}
	return out
}
