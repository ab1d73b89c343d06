package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/domain/repository"
)

// AccessUseCase decides whether a user may read a book. Decisions are
// derived from order state on every call and never cached.
type AccessUseCase struct {
	books  repository.BookRepository
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewAccessUseCase constructs AccessUseCase.
func NewAccessUseCase(books repository.BookRepository, orders repository.OrderRepository, logger *slog.Logger) *AccessUseCase {
	return &AccessUseCase{books: books, orders: orders, logger: logger}
}

// Evaluate checks the catalog and the user's orders concurrently. A
// missing book surfaces as ErrNotFound; a present book without an
// entitling order yields a negative decision, not an error.
func (u *AccessUseCase) Evaluate(ctx context.Context, userID int64, bookID uuid.UUID) (*model.AccessDecision, error) {
	var (
		book     *model.Book
		entitled bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := u.books.GetByID(gctx, bookID)
		if err != nil {
			return err
		}
		book = b
		return nil
	})
	g.Go(func() error {
		e, err := u.orders.HasEntitlement(gctx, userID, bookID, model.EntitlingStatuses())
		if err != nil {
			return err
		}
		entitled = e
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u.logger.DebugContext(ctx, "access evaluated",
		slog.Int64("user_id", userID),
		slog.String("book_id", bookID.String()),
		slog.Bool("entitled", entitled),
	)

	if !entitled {
		return &model.AccessDecision{HasAccess: false}, nil
	}
	return &model.AccessDecision{HasAccess: true, Book: book.View()}, nil
}
