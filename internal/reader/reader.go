package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/server/http/dto"
	"github.com/bookery/bookery/internal/usecase"
)

// State is the reader surface presentation state.
type State string

const (
	StateLoading   State = "loading"
	StateDenied    State = "denied"
	StateNoContent State = "no_content"
	StateReady     State = "ready"
	StateError     State = "error"
)

// View is what the reader surface renders for a book. Plan is only set
// in the ready state.
type View struct {
	State   State
	Book    *model.BookView
	Plan    *model.PresentationPlan
	Message string
}

// Reader drives the access endpoint and resolves the decision into a
// renderable view. It owns no entitlement logic: the server decides,
// the reader only presents.
type Reader struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a reader client for the given marketplace address.
func New(baseURL string, logger *slog.Logger) (*Reader, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse reader url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("reader url must be absolute")
	}
	return &Reader{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Open checks access to the book and returns the resulting view. It
// never returns an error: every failure maps to a view state.
func (r *Reader) Open(ctx context.Context, bookID uuid.UUID, token string) View {
	endpoint := *r.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/books/", bookID.String(), "/access")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return View{State: StateError, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Error("access request failed", slog.String("error", err.Error()))
		return View{State: StateError, Message: "Unable to reach the store"}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var decision dto.AccessResponse
		if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
			return View{State: StateError, Message: "Malformed access response"}
		}
		return r.render(decision.Book)
	case http.StatusUnauthorized:
		return View{State: StateDenied, Message: "Sign in to read this book"}
	case http.StatusForbidden:
		var decision dto.AccessResponse
		message := "Purchase required to access this book"
		if err := json.NewDecoder(resp.Body).Decode(&decision); err == nil && decision.Message != "" {
			message = decision.Message
		}
		return View{State: StateDenied, Message: message}
	case http.StatusNotFound:
		return View{State: StateError, Message: "Book not found"}
	default:
		r.logger.Error("unexpected access status", slog.Int("status", resp.StatusCode))
		return View{State: StateError, Message: resp.Status}
	}
}

func (r *Reader) render(book *model.BookView) View {
	plan, err := usecase.ResolvePresentation(book)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMalformedContent) {
			return View{State: StateNoContent, Book: book, Message: "Content unavailable"}
		}
		return View{State: StateError, Book: book, Message: err.Error()}
	}
	if plan.Kind == model.PlanNoContent {
		return View{State: StateNoContent, Book: book, Message: "This book has no digital content"}
	}
	return View{State: StateReady, Book: book, Plan: plan}
}
