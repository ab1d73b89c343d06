package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
)

// BookRepository describes persistence operations with catalog entries.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]model.Book, error)
	ListPurchased(ctx context.Context, userID int64, statuses []model.OrderStatus) ([]model.Book, error)
}
