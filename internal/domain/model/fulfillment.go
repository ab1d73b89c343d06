package model

// FulfillmentStatus is the order state reported by the external
// fulfillment provider.
type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "PENDING"
	FulfillmentStatusPaid      FulfillmentStatus = "PAID"
	FulfillmentStatusConfirmed FulfillmentStatus = "CONFIRMED"
	FulfillmentStatusShipped   FulfillmentStatus = "SHIPPED"
	FulfillmentStatusDelivered FulfillmentStatus = "DELIVERED"
	FulfillmentStatusCancelled FulfillmentStatus = "CANCELLED"
)

// Fulfillment encapsulates provider-side order state.
type Fulfillment struct {
	OrderID int64
	Status  FulfillmentStatus
}

// OrderStatus maps the provider status onto the order lifecycle. The
// boolean is false when the provider state implies no local change.
func (f FulfillmentStatus) OrderStatus() (OrderStatus, bool) {
	switch f {
	case FulfillmentStatusPaid:
		return OrderStatusPaid, true
	case FulfillmentStatusConfirmed:
		return OrderStatusConfirmed, true
	case FulfillmentStatusShipped:
		return OrderStatusSent, true
	case FulfillmentStatusDelivered:
		return OrderStatusDelivered, true
	case FulfillmentStatusCancelled:
		return OrderStatusCancelled, true
	}
	return "", false
}
