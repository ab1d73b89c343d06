package usecase

import (
	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
)

// ValidateBook checks a catalog entry before it is stored. A nil or
// disabled digital content descriptor is acceptable; an enabled one
// must carry a known content type and the locator that type needs.
func ValidateBook(book *model.Book) error {
	if book == nil || book.Title == "" {
		return domainErrors.ErrInvalidBook
	}
	if book.Price.IsNegative() {
		return domainErrors.ErrInvalidBook
	}
	return validateDigitalContent(book.DigitalContent)
}

func validateDigitalContent(dc *model.DigitalContent) error {
	if dc == nil || !dc.HasContent {
		return nil
	}
	if !dc.ContentType.Valid() {
		return domainErrors.ErrInvalidBook
	}

	switch dc.ContentType {
	case model.ContentTypePDF, model.ContentTypeTxt, model.ContentTypeDoc,
		model.ContentTypeDocx, model.ContentTypeEPUB:
		if dc.ContentURL == "" {
			return domainErrors.ErrInvalidBook
		}
	case model.ContentTypeLink, model.ContentTypeExternal:
		if dc.ExternalLink == "" {
			return domainErrors.ErrInvalidBook
		}
	case model.ContentTypeDOI:
		if dc.DOINumber == "" {
			return domainErrors.ErrInvalidBook
		}
	}
	return nil
}
