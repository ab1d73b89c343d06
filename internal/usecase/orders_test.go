package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
	testhelpers "github.com/bookery/bookery/internal/test"
)

func TestOrderUseCaseCheckout(t *testing.T) {
	books := testhelpers.NewBookRepositoryStub()
	book := &model.Book{ID: uuid.New(), Title: "Gopher Tales", Price: decimal.RequireFromString("9.99")}
	books.Books[book.ID] = book
	orders := &testhelpers.OrderRepositoryStub{}

	uc := NewOrderUseCase(orders, books)
	order, err := uc.Checkout(context.Background(), 7, []model.OrderItem{
		{ProductID: book.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %q", order.Status)
	}
	if !order.Total.Equal(decimal.RequireFromString("19.98")) {
		t.Fatalf("unexpected total %s", order.Total)
	}
	if order.Items[0].Name != "Gopher Tales" {
		t.Fatalf("expected item name from catalog, got %q", order.Items[0].Name)
	}
}

func TestOrderUseCaseCheckoutDefaultsQuantity(t *testing.T) {
	books := testhelpers.NewBookRepositoryStub()
	book := &model.Book{ID: uuid.New(), Title: "Gopher Tales", Price: decimal.NewFromInt(5)}
	books.Books[book.ID] = book

	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, books)
	order, err := uc.Checkout(context.Background(), 7, []model.OrderItem{{ProductID: book.ID}})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity default of 1, got %d", order.Items[0].Quantity)
	}
	if !order.Total.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected total %s", order.Total)
	}
}

func TestOrderUseCaseCheckoutEmpty(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, testhelpers.NewBookRepositoryStub())
	if _, err := uc.Checkout(context.Background(), 7, nil); !errors.Is(err, domainErrors.ErrEmptyOrder) {
		t.Fatalf("expected empty order error, got %v", err)
	}
}

func TestOrderUseCaseCheckoutUnknownProduct(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, testhelpers.NewBookRepositoryStub())
	_, err := uc.Checkout(context.Background(), 7, []model.OrderItem{{ProductID: uuid.New()}})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderUseCaseListByUser(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: 3, UserID: 7}}}
	uc := NewOrderUseCase(orders, testhelpers.NewBookRepositoryStub())

	list, err := uc.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 3 {
		t.Fatalf("unexpected orders %+v", list)
	}
}

func TestOrderUseCaseFulfillmentPassthrough(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Pending: []model.Order{{ID: 5}}}
	uc := NewOrderUseCase(orders, testhelpers.NewBookRepositoryStub())

	batch, err := uc.SelectBatchForFulfillment(context.Background(), 10)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}
	if len(batch) != 1 || batch[0].ID != 5 {
		t.Fatalf("unexpected batch %+v", batch)
	}

	if err := uc.UpdateStatus(context.Background(), 5, model.OrderStatusPaid); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].Status != model.OrderStatusPaid {
		t.Fatalf("unexpected update calls %+v", orders.UpdateCalls)
	}
}
