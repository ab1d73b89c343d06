package reader

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/bookery/bookery/internal/domain/model"
	"github.com/bookery/bookery/internal/server/http/dto"
)

func newTestReader(t *testing.T, baseURL string) *Reader {
	t.Helper()
	r, err := New(baseURL, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func accessServer(t *testing.T, bookID uuid.UUID, status int, body dto.AccessResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantPath := "/api/books/" + bookID.String() + "/access"
		if r.URL.Path != wantPath {
			t.Errorf("expected path %s, got %s", wantPath, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestNewValidatesURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New("://bad", logger); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := New("localhost:8080", logger); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := New("http://localhost:8080", logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenReadyInline(t *testing.T) {
	bookID := uuid.New()
	book := &model.BookView{
		ID:    bookID,
		Title: "Gopher Tales",
		DigitalContent: &model.DigitalContent{
			HasContent:  true,
			ContentType: model.ContentTypePDF,
			ContentURL:  "https://cdn.example.com/gopher.pdf",
		},
	}
	srv := accessServer(t, bookID, http.StatusOK, dto.AccessResponse{HasAccess: true, Book: book})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateReady {
		t.Fatalf("expected ready state, got %s (%s)", view.State, view.Message)
	}
	if view.Plan == nil || view.Plan.Kind != model.PlanInlineFrame {
		t.Fatalf("expected inline frame plan, got %+v", view.Plan)
	}
	if view.Plan.URL != "https://cdn.example.com/gopher.pdf" {
		t.Fatalf("unexpected plan url %s", view.Plan.URL)
	}
	if view.Book == nil || view.Book.Title != "Gopher Tales" {
		t.Fatalf("expected book view, got %+v", view.Book)
	}
}

func TestOpenDenied(t *testing.T) {
	bookID := uuid.New()
	srv := accessServer(t, bookID, http.StatusForbidden, dto.AccessResponse{Message: "Purchase required to access this book"})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateDenied {
		t.Fatalf("expected denied state, got %s", view.State)
	}
	if view.Message != "Purchase required to access this book" {
		t.Fatalf("unexpected message %q", view.Message)
	}
	if view.Book != nil || view.Plan != nil {
		t.Fatal("denied view must not carry book or plan")
	}
}

func TestOpenUnauthorized(t *testing.T) {
	bookID := uuid.New()
	srv := accessServer(t, bookID, http.StatusUnauthorized, dto.AccessResponse{})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateDenied {
		t.Fatalf("expected denied state, got %s", view.State)
	}
	if view.Message != "Sign in to read this book" {
		t.Fatalf("unexpected message %q", view.Message)
	}
}

func TestOpenBookNotFound(t *testing.T) {
	bookID := uuid.New()
	srv := accessServer(t, bookID, http.StatusNotFound, dto.AccessResponse{})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateError {
		t.Fatalf("expected error state, got %s", view.State)
	}
	if view.Message != "Book not found" {
		t.Fatalf("unexpected message %q", view.Message)
	}
}

func TestOpenNoContent(t *testing.T) {
	bookID := uuid.New()
	book := &model.BookView{ID: bookID, Title: "Paper Only"}
	srv := accessServer(t, bookID, http.StatusOK, dto.AccessResponse{HasAccess: true, Book: book})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateNoContent {
		t.Fatalf("expected no content state, got %s", view.State)
	}
	if view.Book == nil || view.Book.Title != "Paper Only" {
		t.Fatalf("expected book view, got %+v", view.Book)
	}
}

func TestOpenMalformedContent(t *testing.T) {
	bookID := uuid.New()
	book := &model.BookView{
		ID:    bookID,
		Title: "Broken",
		DigitalContent: &model.DigitalContent{
			HasContent:  true,
			ContentType: model.ContentTypePDF,
		},
	}
	srv := accessServer(t, bookID, http.StatusOK, dto.AccessResponse{HasAccess: true, Book: book})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateNoContent {
		t.Fatalf("expected no content state, got %s", view.State)
	}
	if view.Message != "Content unavailable" {
		t.Fatalf("unexpected message %q", view.Message)
	}
}

func TestOpenExternalRedirect(t *testing.T) {
	bookID := uuid.New()
	book := &model.BookView{
		ID:    bookID,
		Title: "Quantum Entanglement Study",
		DigitalContent: &model.DigitalContent{
			HasContent:  true,
			ContentType: model.ContentTypeDOI,
			DOINumber:   "10.1000/xyz123",
		},
	}
	srv := accessServer(t, bookID, http.StatusOK, dto.AccessResponse{HasAccess: true, Book: book})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateReady {
		t.Fatalf("expected ready state, got %s", view.State)
	}
	if view.Plan.Kind != model.PlanExternalRedirect {
		t.Fatalf("expected external redirect, got %s", view.Plan.Kind)
	}
	if view.Plan.URL != "https://doi.org/10.1000/xyz123" {
		t.Fatalf("unexpected plan url %s", view.Plan.URL)
	}
}

func TestOpenServerUnreachable(t *testing.T) {
	bookID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateError {
		t.Fatalf("expected error state, got %s", view.State)
	}
}

func TestOpenUnexpectedStatus(t *testing.T) {
	bookID := uuid.New()
	srv := accessServer(t, bookID, http.StatusInternalServerError, dto.AccessResponse{})
	defer srv.Close()

	view := newTestReader(t, srv.URL).Open(context.Background(), bookID, "token-1")

	if view.State != StateError {
		t.Fatalf("expected error state, got %s", view.State)
	}
}
