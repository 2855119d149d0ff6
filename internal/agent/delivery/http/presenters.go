package http

import (
	"movi-agent/internal/agent"
	"movi-agent/internal/model"
)

type processReq struct {
	Input       string `json:"input"`
	CurrentPage string `json:"currentPage"`
	ImageText   string `json:"imageText"`
	PendingID   string `json:"pendingId"`
}

func (r processReq) toInput() agent.ProcessInput {
	return agent.ProcessInput{
		Input:       r.Input,
		CurrentPage: r.CurrentPage,
		ImageText:   r.ImageText,
		PendingID:   r.PendingID,
	}
}

type processResp struct {
	OK                   bool              `json:"ok"`
	Message              string            `json:"message"`
	ConfirmationRequired bool              `json:"confirmationRequired,omitempty"`
	PendingID            string            `json:"pendingId,omitempty"`
	Trip                 *model.Trip       `json:"trip,omitempty"`
	Route                *model.Route      `json:"route,omitempty"`
	Deployment           *model.Deployment `json:"deployment,omitempty"`
	Bookings             *int              `json:"bookings,omitempty"`
	Trips                []model.Trip      `json:"trips,omitempty"`
	Routes               []model.Route     `json:"routes,omitempty"`
	Deleted              *int              `json:"deleted,omitempty"`
	Cancelled            *int              `json:"cancelled,omitempty"`
}

func newProcessResp(out agent.ProcessOutput) processResp {
	return processResp{
		OK:                   out.OK,
		Message:              out.Message,
		ConfirmationRequired: out.ConfirmationRequired,
		PendingID:            out.PendingID,
		Trip:                 out.Trip,
		Route:                out.Route,
		Deployment:           out.Deployment,
		Bookings:             out.Bookings,
		Trips:                out.Trips,
		Routes:               out.Routes,
		Deleted:              out.Deleted,
		Cancelled:            out.Cancelled,
	}
}
