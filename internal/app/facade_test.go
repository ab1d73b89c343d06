package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
	testhelpers "github.com/bookery/bookery/internal/test"
	"github.com/bookery/bookery/internal/usecase"
)

func newFacade() (*StoreFacade, *testhelpers.UserRepositoryStub, *testhelpers.BookRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.FulfillmentProviderStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	bookRepo := testhelpers.NewBookRepositoryStub()
	catalogUC := usecase.NewCatalogUseCase(bookRepo)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo, bookRepo)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	accessUC := usecase.NewAccessUseCase(bookRepo, orderRepo, logger)
	libraryUC := usecase.NewLibraryUseCase(bookRepo)

	provider := &testhelpers.FulfillmentProviderStub{}

	facade := NewStoreFacade(authUC, catalogUC, accessUC, libraryUC, orderUC, provider)
	return facade, userRepo, bookRepo, orderRepo, provider
}

func TestStoreFacadeAuth(t *testing.T) {
	facade, users, _, _, _ := newFacade()
	token, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Login != "user" {
		t.Fatalf("unexpected stored login %q", stored.Login)
	}

	token, err = facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	role, err := facade.UserRole(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("user role returned error: %v", err)
	}
	if role != model.RoleUser {
		t.Fatalf("unexpected role %q", role)
	}
}

func TestStoreFacadeCatalog(t *testing.T) {
	facade, _, books, _, _ := newFacade()

	created, err := facade.CreateBook(context.Background(), &model.Book{Title: "Gopher Tales"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected assigned ID")
	}

	fetched, err := facade.GetBook(context.Background(), created.ID)
	if err != nil || fetched.Title != "Gopher Tales" {
		t.Fatalf("unexpected get result: %+v err=%v", fetched, err)
	}

	created.Title = "Renamed"
	if _, err := facade.UpdateBook(context.Background(), created); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	list, err := facade.ListBooks(context.Background(), "")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %v err=%v", list, err)
	}

	if err := facade.DeleteBook(context.Background(), created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.GetBook(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if _, ok := books.Books[created.ID]; ok {
		t.Fatal("book should have been removed from repository")
	}
}

func TestStoreFacadeAccessAndLibrary(t *testing.T) {
	facade, _, books, orders, _ := newFacade()

	book := &model.Book{ID: uuid.New(), Title: "Gopher Tales"}
	books.Books[book.ID] = book
	orders.Entitled = true

	decision, err := facade.CheckAccess(context.Background(), 7, book.ID)
	if err != nil {
		t.Fatalf("check access returned error: %v", err)
	}
	if !decision.HasAccess || decision.Book == nil {
		t.Fatalf("unexpected decision %+v", decision)
	}

	books.Purchased = []model.Book{*book}
	library, err := facade.Library(context.Background(), 7)
	if err != nil || len(library) != 1 {
		t.Fatalf("unexpected library: %v err=%v", library, err)
	}
}

func TestStoreFacadeOrders(t *testing.T) {
	facade, _, books, orders, _ := newFacade()

	book := &model.Book{ID: uuid.New(), Title: "Gopher Tales", Price: decimal.NewFromInt(10)}
	books.Books[book.ID] = book

	order, err := facade.Checkout(context.Background(), 7, []model.OrderItem{{ProductID: book.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order status %q", order.Status)
	}

	listed, err := facade.UserOrders(context.Background(), 7)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected orders: %v err=%v", listed, err)
	}

	orders.Pending = []model.Order{{ID: 5}}
	batch, err := facade.OrdersForFulfillment(context.Background(), 1)
	if err != nil || len(batch) != 1 {
		t.Fatalf("expected batch of one, got %v err=%v", batch, err)
	}

	if err := facade.UpdateOrderStatus(context.Background(), 5, model.OrderStatusPaid); err != nil {
		t.Fatalf("update status error: %v", err)
	}
	if len(orders.UpdateCalls) != 1 {
		t.Fatalf("expected update call, got %d", len(orders.UpdateCalls))
	}
}

func TestStoreFacadeFulfillment(t *testing.T) {
	facade, _, _, _, provider := newFacade()
	provider.Fulfillment = &model.Fulfillment{OrderID: 42, Status: model.FulfillmentStatusPaid}
	result, err := facade.CheckFulfillment(context.Background(), 42)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if result.OrderID != 42 || result.Status != model.FulfillmentStatusPaid {
		t.Fatalf("unexpected fulfillment %v", result)
	}
}
