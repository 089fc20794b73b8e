package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID       uuid.UUID
	Lines    []OrderLine
	Total    Money
	PlacedAt time.Time
}

type OrderLine struct {
	ProductID   string
	ProductName string
	UnitPrice   Money
	Quantity    int
}

func (l OrderLine) LineTotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}
