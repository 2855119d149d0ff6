package agent

import "movi-agent/internal/model"

// ProcessInput is one inbound agent message.
type ProcessInput struct {
	Input       string // free-text user message
	CurrentPage string // originating UI context, opaque
	ImageText   string // OCR text from a screenshot, used as a target fallback
	PendingID   string // token of a previously proposed action being confirmed
}

// ProcessOutput is the branch-independent result. OK and Message are always
// meaningful; the remaining fields are set only by the branches that produce
// them. Count fields are pointers so "zero" and "not applicable" stay
// distinguishable in the response.
type ProcessOutput struct {
	OK      bool
	Message string

	ConfirmationRequired bool
	PendingID            string

	Trip       *model.Trip
	Route      *model.Route
	Deployment *model.Deployment
	Bookings   *int

	Trips  []model.Trip
	Routes []model.Route

	Deleted   *int
	Cancelled *int
}
