package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfillment lifecycle of a purchase.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statusRank orders the forward-progressing statuses. Cancelled sits
// outside the chain and is handled separately.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPaid:      1,
	OrderStatusConfirmed: 2,
	OrderStatusSent:      3,
	OrderStatusDelivered: 4,
}

// Entitles reports whether an order in this status grants access to the
// digital content of the books it contains.
func (s OrderStatus) Entitles() bool {
	switch s {
	case OrderStatusPaid, OrderStatusConfirmed, OrderStatusSent, OrderStatusDelivered:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// EntitlingStatuses returns the statuses that confer content access.
func EntitlingStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPaid, OrderStatusConfirmed, OrderStatusSent, OrderStatusDelivered}
}

// CanTransition reports whether status may move from one value to
// another. Statuses only progress forward; cancellation is allowed from
// any non-terminal status.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return false
	}
	if to == OrderStatusCancelled {
		return !from.Terminal()
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// OrderItem is a purchased line item inside an order.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
}

// Order describes a purchase placed at checkout. Status is advanced by
// the fulfillment provider, never by access checks.
type Order struct {
	ID        int64
	UserID    int64
	Items     []OrderItem
	Status    OrderStatus
	Total     decimal.Decimal
	OrderedAt time.Time
	UpdatedAt time.Time
}
