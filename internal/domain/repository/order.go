package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookery/bookery/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Orders
// are written at checkout and by the fulfillment poller only; access
// checks read them through HasEntitlement.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	HasEntitlement(ctx context.Context, userID int64, productID uuid.UUID, statuses []model.OrderStatus) (bool, error)
	SelectBatchForFulfillment(ctx context.Context, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
