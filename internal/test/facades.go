package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	RoleFn         func(context.Context, int64) (model.Role, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// UserRole reports the configured role, defaulting to a plain user.
func (s AuthFacadeStub) UserRole(ctx context.Context, id int64) (model.Role, error) {
	if s.RoleFn != nil {
		return s.RoleFn(ctx, id)
	}
	return model.RoleUser, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreateFn func(context.Context, *model.Book) (*model.Book, error)
	UpdateFn func(context.Context, *model.Book) (*model.Book, error)
	DeleteFn func(context.Context, uuid.UUID) error
	GetFn    func(context.Context, uuid.UUID) (*model.Book, error)
	ListFn   func(context.Context, string) ([]model.Book, error)
}

// CreateBook delegates to the override or echoes the book back.
func (s CatalogFacadeStub) CreateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, book)
	}
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	return book, nil
}

// UpdateBook delegates to the override or echoes the book back.
func (s CatalogFacadeStub) UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, book)
	}
	return book, nil
}

// DeleteBook delegates to the override or succeeds.
func (s CatalogFacadeStub) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// GetBook returns a minimal book for the requested identifier.
func (s CatalogFacadeStub) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Book{ID: id, Title: "stub"}, nil
}

// ListBooks returns predefined catalog content.
func (s CatalogFacadeStub) ListBooks(ctx context.Context, search string) ([]model.Book, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, search)
	}
	return []model.Book{{ID: uuid.New(), Title: "stub"}}, nil
}

// AccessFacadeStub simulates entitlement checks.
type AccessFacadeStub struct {
	CheckFn  func(context.Context, int64, uuid.UUID) (*model.AccessDecision, error)
	Decision *model.AccessDecision
	Err      error
}

// CheckAccess returns the configured decision.
func (s AccessFacadeStub) CheckAccess(ctx context.Context, userID int64, bookID uuid.UUID) (*model.AccessDecision, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, userID, bookID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Decision != nil {
		return s.Decision, nil
	}
	return &model.AccessDecision{HasAccess: false}, nil
}

// LibraryFacadeStub returns predefined library content.
type LibraryFacadeStub struct {
	LibraryFn func(context.Context, int64) ([]model.BookView, error)
	Views     []model.BookView
}

// Library returns the configured views.
func (s LibraryFacadeStub) Library(ctx context.Context, userID int64) ([]model.BookView, error) {
	if s.LibraryFn != nil {
		return s.LibraryFn(ctx, userID)
	}
	return s.Views, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn func(context.Context, int64, []model.OrderItem) (*model.Order, error)
	OrdersFn   func(context.Context, int64) ([]model.Order, error)
}

// Checkout delegates to provided function or returns a pending order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, items)
	}
	return &model.Order{ID: 1, UserID: userID, Items: items, Status: model.OrderStatusPending}, nil
}

// UserOrders returns predefined orders for given user.
func (s OrderFacadeStub) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	AccessFacadeStub
	LibraryFacadeStub
	OrderFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the store facade.
type WorkerFacadeStub struct {
	Orders          [][]model.Order
	OrdersFn        func(context.Context, int) ([]model.Order, error)
	CheckFn         func(context.Context, int64) (*model.Fulfillment, error)
	UpdateFn        func(context.Context, int64, model.OrderStatus) error
	Updates         []OrderUpdateCall
	mu              sync.Mutex
	ordersCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersForFulfillment returns batches from configured queue.
func (s *WorkerFacadeStub) OrdersForFulfillment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.ordersCallCount, 1)
	if int(call) <= len(s.Orders) {
		return s.Orders[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CheckFulfillment returns configured fulfillment data.
func (s *WorkerFacadeStub) CheckFulfillment(ctx context.Context, orderID int64) (*model.Fulfillment, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, orderID)
	}
	return &model.Fulfillment{OrderID: orderID, Status: model.FulfillmentStatusDelivered}, nil
}

// UpdateOrderStatus records update requests.
func (s *WorkerFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, OrderUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// FulfillmentProviderStub fetches order fulfillment state for tests.
type FulfillmentProviderStub struct {
	FetchFn     func(context.Context, int64) (*model.Fulfillment, error)
	Fulfillment *model.Fulfillment
	Err         error
}

// Fetch returns configured response or default delivered status.
func (s FulfillmentProviderStub) Fetch(ctx context.Context, orderID int64) (*model.Fulfillment, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, orderID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Fulfillment != nil {
		return s.Fulfillment, nil
	}
	return &model.Fulfillment{OrderID: orderID, Status: model.FulfillmentStatusDelivered}, nil
}
