package domain

import "fmt"

// Product is an immutable catalog entry. Two products are the same product
// when their IDs are equal.
type Product struct {
	ID    string
	Name  string
	Price Money
}

func NewProduct(id, name string, price Money) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("%w: id is empty", ErrInvalidProduct)
	}
	if price.Amount.IsNegative() {
		return Product{}, fmt.Errorf("%w: price[%s] is negative", ErrInvalidProduct, price.Amount)
	}

	return Product{
		ID:    id,
		Name:  name,
		Price: price,
	}, nil
}
