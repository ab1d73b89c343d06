package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContentType enumerates the supported digital content kinds.
type ContentType string

const (
	ContentTypePDF      ContentType = "pdf"
	ContentTypeDoc      ContentType = "doc"
	ContentTypeDocx     ContentType = "docx"
	ContentTypeEPUB     ContentType = "epub"
	ContentTypeTxt      ContentType = "txt"
	ContentTypeLink     ContentType = "link"
	ContentTypeDOI      ContentType = "doi"
	ContentTypeExternal ContentType = "external"
)

// Valid reports whether the content type is a known enum member.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypePDF, ContentTypeDoc, ContentTypeDocx, ContentTypeEPUB,
		ContentTypeTxt, ContentTypeLink, ContentTypeDOI, ContentTypeExternal:
		return true
	}
	return false
}

// DigitalContent describes whether and how a book's content can be
// delivered. Exactly one locator field is authoritative, selected by
// ContentType; the rest are ignored during resolution.
type DigitalContent struct {
	HasContent      bool        `json:"hasContent"`
	ContentType     ContentType `json:"contentType"`
	ContentURL      string      `json:"contentUrl,omitempty"`
	FileName        string      `json:"fileName,omitempty"`
	FileSize        int64       `json:"fileSize,omitempty"`
	DOINumber       string      `json:"doiNumber,omitempty"`
	ExternalLink    string      `json:"externalLink,omitempty"`
	LinkDescription string      `json:"linkDescription,omitempty"`
}

// AgeRange bounds the intended reader age for kids titles.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Book is a catalog entry. Descriptive attributes pass through access
// checks unchanged; only DigitalContent participates in content
// resolution.
type Book struct {
	ID             uuid.UUID
	Title          string
	Author         string
	Description    string
	Category       string
	TargetAudience string
	AgeRange       *AgeRange
	Language       string
	PageCount      int
	PublishedDate  *time.Time
	ISBN           string
	Publisher      string
	Price          decimal.Decimal
	CoverImage     string
	DigitalContent *DigitalContent
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BookView is the redacted projection returned to an entitled reader.
// It never carries pricing or any order information.
type BookView struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Author         string          `json:"author"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	TargetAudience string          `json:"targetAudience,omitempty"`
	AgeRange       *AgeRange       `json:"ageRange,omitempty"`
	Language       string          `json:"language,omitempty"`
	PageCount      int             `json:"pageCount,omitempty"`
	PublishedDate  *time.Time      `json:"publishedDate,omitempty"`
	ISBN           string          `json:"isbn,omitempty"`
	DigitalContent *DigitalContent `json:"digitalContent,omitempty"`
}

// View builds the redacted reader projection of the book.
func (b *Book) View() *BookView {
	return &BookView{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Category:       b.Category,
		TargetAudience: b.TargetAudience,
		AgeRange:       b.AgeRange,
		Language:       b.Language,
		PageCount:      b.PageCount,
		PublishedDate:  b.PublishedDate,
		ISBN:           b.ISBN,
		DigitalContent: b.DigitalContent,
	}
}
