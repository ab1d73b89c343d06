package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/domain/repository"
)

// OrderUseCase encapsulates checkout and order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	books  repository.BookRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, books repository.BookRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, books: books}
}

// Checkout creates a pending order. Every item is resolved against the
// catalog so that names and the total reflect current catalog state,
// not client input.
func (u *OrderUseCase) Checkout(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	total := decimal.Zero
	resolved := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		book, err := u.books.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(quantity))))
		resolved = append(resolved, model.OrderItem{
			ProductID: book.ID,
			Name:      book.Title,
			Quantity:  quantity,
		})
	}

	return u.orders.Create(ctx, userID, resolved, total)
}

// ListByUser returns orders sorted by purchase time, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// SelectBatchForFulfillment returns orders still moving through the
// fulfillment lifecycle.
func (u *OrderUseCase) SelectBatchForFulfillment(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchForFulfillment(ctx, limit)
}

// UpdateStatus persists a lifecycle transition for an order.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, orderID, status)
}
