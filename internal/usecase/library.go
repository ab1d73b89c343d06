package usecase

import (
	"context"

	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/domain/repository"
)

// LibraryUseCase lists the books a user is entitled to read.
type LibraryUseCase struct {
	books repository.BookRepository
}

// NewLibraryUseCase constructs LibraryUseCase.
func NewLibraryUseCase(books repository.BookRepository) *LibraryUseCase {
	return &LibraryUseCase{books: books}
}

// ListPurchased returns the redacted views of every book contained in
// an entitling order of the user, most recent purchase first. A book
// bought twice appears once.
func (u *LibraryUseCase) ListPurchased(ctx context.Context, userID int64) ([]model.BookView, error) {
	books, err := u.books.ListPurchased(ctx, userID, model.EntitlingStatuses())
	if err != nil {
		return nil, err
	}

	views := make([]model.BookView, 0, len(books))
	for i := range books {
		views = append(views, *books[i].View())
	}
	return views, nil
}
