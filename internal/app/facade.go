package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/usecase"
)

type FulfillmentProvider interface {
	Fetch(ctx context.Context, orderID int64) (*model.Fulfillment, error)
}

type StoreFacade struct {
	auth        *usecase.AuthUseCase
	catalog     *usecase.CatalogUseCase
	access      *usecase.AccessUseCase
	library     *usecase.LibraryUseCase
	orders      *usecase.OrderUseCase
	fulfillment FulfillmentProvider
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	access *usecase.AccessUseCase,
	library *usecase.LibraryUseCase,
	orders *usecase.OrderUseCase,
	fulfillment FulfillmentProvider,
) *StoreFacade {
	return &StoreFacade{
		auth:        auth,
		catalog:     catalog,
		access:      access,
		library:     library,
		orders:      orders,
		fulfillment: fulfillment,
	}
}

func (f *StoreFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StoreFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StoreFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) UserRole(ctx context.Context, id int64) (model.Role, error) {
	return f.auth.UserRole(ctx, id)
}

func (f *StoreFacade) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	return f.catalog.Create(ctx, book)
}

func (f *StoreFacade) UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	return f.catalog.Update(ctx, book)
}

func (f *StoreFacade) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StoreFacade) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StoreFacade) ListBooks(ctx context.Context, search string) ([]model.Book, error) {
	return f.catalog.List(ctx, search)
}

func (f *StoreFacade) CheckAccess(ctx context.Context, userID int64, bookID uuid.UUID) (*model.AccessDecision, error) {
	return f.access.Evaluate(ctx, userID, bookID)
}

func (f *StoreFacade) Library(ctx context.Context, userID int64) ([]model.BookView, error) {
	return f.library.ListPurchased(ctx, userID)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID, items)
}

func (f *StoreFacade) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) OrdersForFulfillment(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForFulfillment(ctx, limit)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StoreFacade) CheckFulfillment(ctx context.Context, orderID int64) (*model.Fulfillment, error) {
	return f.fulfillment.Fetch(ctx, orderID)
}
