package dto

import "github.com/bookery/bookery/internal/domain/model"

// AccessResponse is the result of an entitlement check. Book is only
// populated when access is granted.
type AccessResponse struct {
	HasAccess bool            `json:"hasAccess"`
	Book      *model.BookView `json:"book,omitempty"`
	Message   string          `json:"message,omitempty"`
}
