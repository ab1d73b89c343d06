package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/domain/repository"
)

// CatalogUseCase encapsulates catalog management and browsing.
type CatalogUseCase struct {
	books repository.BookRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(books repository.BookRepository) *CatalogUseCase {
	return &CatalogUseCase{books: books}
}

// Create validates and stores a new catalog entry, assigning an ID
// when the caller did not provide one.
func (u *CatalogUseCase) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	if err := ValidateBook(book); err != nil {
		return nil, err
	}
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	if book.Language == "" {
		book.Language = "English"
	}
	if err := u.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update validates and replaces an existing catalog entry.
func (u *CatalogUseCase) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	if err := ValidateBook(book); err != nil {
		return nil, err
	}
	if err := u.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes a catalog entry.
func (u *CatalogUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.books.Delete(ctx, id)
}

// Get returns a single catalog entry.
func (u *CatalogUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return u.books.GetByID(ctx, id)
}

// List returns catalog entries, optionally filtered by a search term
// matched against title, author, description, category and publisher.
func (u *CatalogUseCase) List(ctx context.Context, search string) ([]model.Book, error) {
	return u.books.List(ctx, search)
}
