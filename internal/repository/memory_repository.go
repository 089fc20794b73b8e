package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/port"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.Order
}

// NewMemoryOrders keeps orders in process memory. It is used when no database
// is configured.
func NewMemoryOrders() port.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[uuid.UUID]domain.Order),
	}
}

func (r *memoryOrderRepository) SaveOrder(_ context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("order has no lines")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return fmt.Errorf("order[%s] already exists", order.ID)
	}

	order.Lines = slices.Clone(order.Lines)
	r.orders[order.ID] = order
	return nil
}

func (r *memoryOrderRepository) GetOrder(_ context.Context, orderID uuid.UUID) (domain.Order, error) {
	if orderID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	order.Lines = slices.Clone(order.Lines)
	return order, nil
}

func (r *memoryOrderRepository) ListOrders(_ context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		o.Lines = nil
		orders = append(orders, o)
	}

	slices.SortFunc(orders, func(a, b domain.Order) int {
		if c := b.PlacedAt.Compare(a.PlacedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}
