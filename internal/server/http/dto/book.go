package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookery/bookery/internal/domain/model"
)

// BookRequest describes a catalog entry payload for create and update.
type BookRequest struct {
	Title          string                `json:"title"`
	Author         string                `json:"author"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	TargetAudience string                `json:"targetAudience"`
	AgeRange       *model.AgeRange       `json:"ageRange,omitempty"`
	Language       string                `json:"language"`
	PageCount      int                   `json:"pageCount"`
	PublishedDate  *time.Time            `json:"publishedDate,omitempty"`
	ISBN           string                `json:"isbn"`
	Publisher      string                `json:"publisher"`
	Price          decimal.Decimal       `json:"price"`
	CoverImage     string                `json:"coverImage"`
	DigitalContent *model.DigitalContent `json:"digitalContent,omitempty"`
}

// Model converts the payload into a domain book with the given ID.
func (r *BookRequest) Model(id uuid.UUID) *model.Book {
	return &model.Book{
		ID:             id,
		Title:          r.Title,
		Author:         r.Author,
		Description:    r.Description,
		Category:       r.Category,
		TargetAudience: r.TargetAudience,
		AgeRange:       r.AgeRange,
		Language:       r.Language,
		PageCount:      r.PageCount,
		PublishedDate:  r.PublishedDate,
		ISBN:           r.ISBN,
		Publisher:      r.Publisher,
		Price:          r.Price,
		CoverImage:     r.CoverImage,
		DigitalContent: r.DigitalContent,
	}
}

// BookResponse is the catalog representation of a book. The name,
// brand and image fields duplicate title, publisher and coverImage for
// clients that still speak the storefront product schema.
type BookResponse struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Name           string                `json:"name"`
	Author         string                `json:"author"`
	Description    string                `json:"description,omitempty"`
	Category       string                `json:"category,omitempty"`
	TargetAudience string                `json:"targetAudience,omitempty"`
	AgeRange       *model.AgeRange       `json:"ageRange,omitempty"`
	Language       string                `json:"language,omitempty"`
	PageCount      int                   `json:"pageCount,omitempty"`
	PublishedDate  *time.Time            `json:"publishedDate,omitempty"`
	ISBN           string                `json:"isbn,omitempty"`
	Publisher      string                `json:"publisher,omitempty"`
	Brand          string                `json:"brand,omitempty"`
	Price          decimal.Decimal       `json:"price"`
	CoverImage     string                `json:"coverImage,omitempty"`
	Image          string                `json:"image,omitempty"`
	DigitalContent *model.DigitalContent `json:"digitalContent,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// NewBookResponse builds the catalog representation from a domain book.
func NewBookResponse(b *model.Book) BookResponse {
	return BookResponse{
		ID:             b.ID,
		Title:          b.Title,
		Name:           b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Category:       b.Category,
		TargetAudience: b.TargetAudience,
		AgeRange:       b.AgeRange,
		Language:       b.Language,
		PageCount:      b.PageCount,
		PublishedDate:  b.PublishedDate,
		ISBN:           b.ISBN,
		Publisher:      b.Publisher,
		Brand:          b.Publisher,
		Price:          b.Price,
		CoverImage:     b.CoverImage,
		Image:          b.CoverImage,
		DigitalContent: b.DigitalContent,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
