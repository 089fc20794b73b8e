package domain

type NotificationKind string

const (
	NotificationOrderPlaced NotificationKind = "order_placed"
	NotificationCartEmpty   NotificationKind = "cart_empty"
)

// Notification is a user-visible message raised by the cart.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	Total   Money            `json:"-"`
}
