package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/cart-widget/internal/domain"
)

type OrderRepository interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, productID string) (domain.Product, error)
}

// Notifier surfaces user-visible messages such as the order confirmation.
type Notifier interface {
	Notify(n domain.Notification)
}
