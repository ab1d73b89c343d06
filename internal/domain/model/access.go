package model

// AccessDecision is the outcome of an entitlement check. It is derived
// per request and never persisted or cached.
type AccessDecision struct {
	HasAccess bool
	Book      *BookView
}

// PlanKind tags the presentation plan variants.
type PlanKind string

const (
	PlanNoContent        PlanKind = "no_content"
	PlanInlineFrame      PlanKind = "inline_frame"
	PlanDownloadLink     PlanKind = "download_link"
	PlanExternalRedirect PlanKind = "external_redirect"
)

// PresentationPlan tells the reader surface how to present content:
// embed it inline, offer a download, or open an external location.
type PresentationPlan struct {
	Kind          PlanKind
	URL           string
	SuggestedName string
	Description   string
}
