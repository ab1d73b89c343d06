package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookery/bookery/internal/domain/model"
)

// CheckoutItem is a single position of a checkout request.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// CheckoutRequest describes a purchase payload.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

// Items converts the payload into domain order items.
func (r *CheckoutRequest) OrderItems() []model.OrderItem {
	items := make([]model.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

// OrderResponse describes an order as returned to its owner.
type OrderResponse struct {
	ID        int64             `json:"id"`
	Items     []model.OrderItem `json:"items"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	OrderedAt time.Time         `json:"orderedAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewOrderResponse builds the response from a domain order.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Items:     o.Items,
		Status:    string(o.Status),
		Total:     o.Total,
		OrderedAt: o.OrderedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
