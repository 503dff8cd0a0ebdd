package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestPriceBurgerWithCheese(t *testing.T) {
	lines := []Line{{
		ProductID: 1,
		Name:      "Burger",
		UnitPrice: 5.00,
		Quantity:  2,
		Extras:    []Extra{{Name: "Cheese", Price: 0.50}},
	}}

	got := Price(lines)

	assert.InDelta(t, 10.00, got.Base, tolerance)
	assert.InDelta(t, 0.50, got.Extras, tolerance)
	assert.InDelta(t, 1.575, got.VAT, tolerance)
	assert.InDelta(t, 0.525, got.Tax, tolerance)
	assert.InDelta(t, 12.60, got.Total, tolerance)
}

func TestPriceExtrasChargedOncePerLine(t *testing.T) {
	lines := []Line{{
		UnitPrice: 3.00,
		Quantity:  4,
		Extras:    []Extra{{Name: "Sauce", Price: 1.00}, {Name: "Bacon", Price: 2.00}},
	}}

	got := Price(lines)

	assert.InDelta(t, 12.00, got.Base, tolerance)
	// Extras are flat per cart entry, not multiplied by quantity.
	assert.InDelta(t, 3.00, got.Extras, tolerance)
}

func TestPriceIdentities(t *testing.T) {
	carts := [][]Line{
		{},
		{{UnitPrice: 0.10, Quantity: 3}},
		{
			{UnitPrice: 5.00, Quantity: 2, Extras: []Extra{{Name: "Cheese", Price: 0.50}}},
			{UnitPrice: 1.25, Quantity: 7},
			{UnitPrice: 9.99, Quantity: 1, Extras: []Extra{{Name: "Cream", Price: 0.75}, {Name: "Flake", Price: 0.30}}},
		},
	}

	for _, lines := range carts {
		got := Price(lines)
		taxable := got.Base + got.Extras
		assert.InDelta(t, taxable*VATRate, got.VAT, tolerance)
		assert.InDelta(t, taxable*TaxRate, got.Tax, tolerance)
		assert.InDelta(t, got.Base+got.Extras+got.VAT+got.Tax, got.Total, tolerance)
	}
}

func TestPriceEmptyCartIsZero(t *testing.T) {
	got := Price(nil)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.Base)
}

func TestNewOrderReproducesPersistedTotals(t *testing.T) {
	lines := []Line{
		{ProductID: 1, Name: "Burger", UnitPrice: 5.00, Quantity: 2, Extras: []Extra{{Name: "Cheese", Price: 0.50}}},
		{ProductID: 3, Name: "Cola", UnitPrice: 1.50, Quantity: 3},
	}
	o, err := NewOrder("#SP1234", "cathy", lines, PaymentCreditCard, StatusPending)
	assert.NoError(t, err)

	recomputed := Price(o.Lines)
	assert.InDelta(t, recomputed.Base, o.BaseTotal, tolerance)
	assert.InDelta(t, recomputed.Extras, o.ExtrasTotal, tolerance)
	assert.InDelta(t, recomputed.VAT, o.VAT, tolerance)
	assert.InDelta(t, recomputed.Tax, o.Tax, tolerance)
	assert.InDelta(t, recomputed.Total, o.TotalPrice, tolerance)
}

func TestNewOrderRejectsEmptyCart(t *testing.T) {
	_, err := NewOrder("#SP1234", "cathy", nil, PaymentCreditCard, StatusPending)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderCloneIsDeep(t *testing.T) {
	o, err := NewOrder("#SP1234", "cathy", []Line{
		{ProductID: 1, Name: "Burger", UnitPrice: 5, Quantity: 1, Extras: []Extra{{Name: "Cheese", Price: 0.5}}},
	}, PaymentBankTransfer, StatusPending)
	assert.NoError(t, err)

	c := o.Clone()
	c.Lines[0].Extras[0].Price = 99
	assert.Equal(t, 0.5, o.Lines[0].Extras[0].Price)
}
