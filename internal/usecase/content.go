package usecase

import (
	domainErrors "github.com/bookery/bookery/internal/domain/errors"
	"github.com/bookery/bookery/internal/domain/model"
)

const doiResolverBase = "https://doi.org/"

// ResolvePresentation turns a book's digital content descriptor into a
// presentation plan. Resolution is pure: calling it twice on the same
// view yields the same plan.
func ResolvePresentation(view *model.BookView) (*model.PresentationPlan, error) {
	if view == nil {
		return &model.PresentationPlan{Kind: model.PlanNoContent}, nil
	}

	dc := view.DigitalContent
	if dc == nil || !dc.HasContent {
		return &model.PresentationPlan{Kind: model.PlanNoContent}, nil
	}

	switch dc.ContentType {
	case model.ContentTypePDF, model.ContentTypeTxt:
		if dc.ContentURL == "" {
			return nil, domainErrors.ErrMalformedContent
		}
		return &model.PresentationPlan{Kind: model.PlanInlineFrame, URL: dc.ContentURL}, nil

	case model.ContentTypeDoc, model.ContentTypeDocx, model.ContentTypeEPUB:
		if dc.ContentURL == "" {
			return nil, domainErrors.ErrMalformedContent
		}
		name := dc.FileName
		if name == "" {
			name = view.Title + "." + string(dc.ContentType)
		}
		return &model.PresentationPlan{Kind: model.PlanDownloadLink, URL: dc.ContentURL, SuggestedName: name}, nil

	case model.ContentTypeLink, model.ContentTypeExternal:
		if dc.ExternalLink == "" {
			return nil, domainErrors.ErrMalformedContent
		}
		return &model.PresentationPlan{
			Kind:        model.PlanExternalRedirect,
			URL:         dc.ExternalLink,
			Description: dc.LinkDescription,
		}, nil

	case model.ContentTypeDOI:
		if dc.DOINumber == "" {
			return nil, domainErrors.ErrMalformedContent
		}
		return &model.PresentationPlan{
			Kind:        model.PlanExternalRedirect,
			URL:         doiResolverBase + dc.DOINumber,
			Description: "Academic paper",
		}, nil
	}

	return nil, domainErrors.ErrMalformedContent
}
