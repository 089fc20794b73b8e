package domain

import "errors"

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrLineNotFound     = errors.New("cart line not found")
)
