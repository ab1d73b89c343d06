package test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: model.RoleUser}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// BookRepositoryStub stores catalog entries in-memory with optional
// per-method overrides.
type BookRepositoryStub struct {
	Books map[uuid.UUID]*model.Book

	CreateFn        func(context.Context, *model.Book) error
	GetByIDFn       func(context.Context, uuid.UUID) (*model.Book, error)
	UpdateFn        func(context.Context, *model.Book) error
	DeleteFn        func(context.Context, uuid.UUID) error
	ListFn          func(context.Context, string) ([]model.Book, error)
	ListPurchasedFn func(context.Context, int64, []model.OrderStatus) ([]model.Book, error)

	Purchased []model.Book
}

// NewBookRepositoryStub constructs stub repository with initialized map.
func NewBookRepositoryStub() *BookRepositoryStub {
	return &BookRepositoryStub{Books: make(map[uuid.UUID]*model.Book)}
}

// Create stores book unless an override is configured.
func (s *BookRepositoryStub) Create(ctx context.Context, book *model.Book) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, book)
	}
	if s.Books == nil {
		s.Books = make(map[uuid.UUID]*model.Book)
	}
	if _, exists := s.Books[book.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.Books[book.ID] = book
	return nil
}

// GetByID fetches book by identifier or returns not found.
func (s *BookRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if book, ok := s.Books[id]; ok {
		return book, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces stored book or returns not found.
func (s *BookRepositoryStub) Update(ctx context.Context, book *model.Book) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, book)
	}
	if _, ok := s.Books[book.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.Books[book.ID] = book
	return nil
}

// Delete removes stored book or returns not found.
func (s *BookRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Books[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Books, id)
	return nil
}

// List returns all stored books, ignoring search unless overridden.
func (s *BookRepositoryStub) List(ctx context.Context, search string) ([]model.Book, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, search)
	}
	result := make([]model.Book, 0, len(s.Books))
	for _, b := range s.Books {
		result = append(result, *b)
	}
	return result, nil
}

// ListPurchased returns the configured purchased slice.
func (s *BookRepositoryStub) ListPurchased(ctx context.Context, userID int64, statuses []model.OrderStatus) ([]model.Book, error) {
	if s.ListPurchasedFn != nil {
		return s.ListPurchasedFn(ctx, userID, statuses)
	}
	return s.Purchased, nil
}

// OrderUpdateCall captures an UpdateStatus invocation.
type OrderUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn                    func(context.Context, int64, []model.OrderItem, decimal.Decimal) (*model.Order, error)
	ListByUserFn                func(context.Context, int64) ([]model.Order, error)
	HasEntitlementFn            func(context.Context, int64, uuid.UUID, []model.OrderStatus) (bool, error)
	SelectBatchForFulfillmentFn func(context.Context, int) ([]model.Order, error)
	UpdateStatusFn              func(context.Context, int64, model.OrderStatus) error

	Orders      []model.Order
	Pending     []model.Order
	Entitled    bool
	UpdateCalls []OrderUpdateCall
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, items []model.OrderItem, total decimal.Decimal) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, items, total)
	}
	order := &model.Order{ID: 1, UserID: userID, Items: items, Status: model.OrderStatusPending, Total: total}
	s.Orders = append(s.Orders, *order)
	return order, nil
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// HasEntitlement returns the configured decision.
func (s *OrderRepositoryStub) HasEntitlement(ctx context.Context, userID int64, productID uuid.UUID, statuses []model.OrderStatus) (bool, error) {
	if s.HasEntitlementFn != nil {
		return s.HasEntitlementFn(ctx, userID, productID, statuses)
	}
	return s.Entitled, nil
}

// SelectBatchForFulfillment returns queued orders for polling.
func (s *OrderRepositoryStub) SelectBatchForFulfillment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.SelectBatchForFulfillmentFn != nil {
		return s.SelectBatchForFulfillmentFn(ctx, limit)
	}
	return s.Pending, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	return nil
}
