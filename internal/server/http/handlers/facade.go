package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserRole(ctx context.Context, id int64) (model.Role, error)
}

// CatalogFacade encapsulates catalog management exposed via HTTP.
type CatalogFacade interface {
	CreateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	UpdateBook(ctx context.Context, book *model.Book) (*model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)
	ListBooks(ctx context.Context, search string) ([]model.Book, error)
}

// AccessFacade provides entitlement checks.
type AccessFacade interface {
	CheckAccess(ctx context.Context, userID int64, bookID uuid.UUID) (*model.AccessDecision, error)
}

// LibraryFacade lists a user's purchased books.
type LibraryFacade interface {
	Library(ctx context.Context, userID int64) ([]model.BookView, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID int64, items []model.OrderItem) (*model.Order, error)
	UserOrders(ctx context.Context, userID int64) ([]model.Order, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	AccessFacade
	LibraryFacade
	OrderFacade
}
