package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrProductNotFound = errors.New("product not found")

type memoryCatalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

// New returns an in-memory catalog holding products in the given order.
// Duplicate IDs are rejected.
func New(products ...domain.Product) (port.ProductCatalog, error) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product[%s] is duplicated", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &memoryCatalog{products: products}, nil
}

// Default returns the two demo articles priced in unit.
func Default(unit currency.Unit) (port.ProductCatalog, error) {
	p1, err := domain.NewProduct("1", "Article 1", domain.NewMoney(decimal.NewFromInt(50), unit))
	if err != nil {
		return nil, fmt.Errorf("domain.NewProduct: %w", err)
	}

	p2, err := domain.NewProduct("2", "Article 2", domain.NewMoney(decimal.NewFromInt(20), unit))
	if err != nil {
		return nil, fmt.Errorf("domain.NewProduct: %w", err)
	}

	return New(p1, p2)
}

func (c *memoryCatalog) List(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *memoryCatalog) GetByID(_ context.Context, productID string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}
