package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/smartpanda/restaurant/internal/validation"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Category string

const (
	CategorySnacks   Category = "Snacks"
	CategoryLunch    Category = "Lunch"
	CategoryDinner   Category = "Dinner"
	CategoryDrinks   Category = "Drinks"
	CategoryDesserts Category = "Desserts"
)

// Categories lists the fixed category set in menu order.
func Categories() []Category {
	return []Category{CategorySnacks, CategoryLunch, CategoryDinner, CategoryDrinks, CategoryDesserts}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", validation.Errorf("category", "unknown category %q", s)
}

// Extra is a priced add-on embedded in a product. It has no identity of
// its own.
type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Fields carries the mutable attributes of a product for add and update
// operations.
type Fields struct {
	Name     string   `validate:"required"`
	Price    float64  `validate:"gte=0"`
	Quantity int      `validate:"gte=0"`
	Category Category `validate:"required"`
	Extras   []Extra
}

// Product is one catalog entry. Quantity is the available stock and never
// goes below zero.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
	Extras   []Extra  `json:"extras"`
}

// New validates fields and builds a product under the given id.
func New(id int, f Fields) (Product, error) {
	if id <= 0 {
		return Product{}, validation.Errorf("id", "must be positive, got %d", id)
	}
	if err := validation.Struct(f); err != nil {
		return Product{}, err
	}
	if _, err := ParseCategory(string(f.Category)); err != nil {
		return Product{}, err
	}
	for _, e := range f.Extras {
		if e.Name == "" {
			return Product{}, validation.Errorf("extras", "extra name must not be empty")
		}
		if e.Price < 0 {
			return Product{}, validation.Errorf("extras", "extra %q has negative price", e.Name)
		}
	}
	p := Product{
		ID:       id,
		Name:     f.Name,
		Price:    f.Price,
		Quantity: f.Quantity,
		Category: f.Category,
	}
	p.Extras = append(p.Extras, f.Extras...)
	return p, nil
}

// Extra looks up an add-on by name, case-insensitively.
func (p Product) Extra(name string) (Extra, bool) {
	for _, e := range p.Extras {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Extra{}, false
}

// Clone returns a deep copy, so callers can hand products out without
// sharing the extras slice.
func (p Product) Clone() Product {
	out := p
	out.Extras = append([]Extra(nil), p.Extras...)
	return out
}

// Matches reports whether the product matches a free-text search key by
// id, name or category.
func (p Product) Matches(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return false
	}
	return strings.Contains(strconv.Itoa(p.ID), key) ||
		strings.Contains(strings.ToLower(p.Name), key) ||
		strings.Contains(strings.ToLower(string(p.Category)), key)
}
