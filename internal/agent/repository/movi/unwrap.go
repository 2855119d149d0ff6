package movi

import (
	"encoding/json"

	"movi-agent/internal/model"
)

// The backend is inconsistent about response shapes: collections arrive as a
// bare array or wrapped in {trips|routes|deployments|items|data: [...]}, and
// single objects sometimes carry a {found, ...} envelope. All of that
// tolerance lives here, one unwrap function per endpoint; non-JSON bodies are
// treated as absent data, never as errors.

// unwrapArray returns the raw JSON array from the body: the body itself, or
// the first of the named wrapper keys holding an array. nil means no data.
func unwrapArray(raw []byte, keys ...string) json.RawMessage {
	var direct json.RawMessage
	if err := json.Unmarshal(raw, &direct); err != nil {
		return nil
	}
	if len(direct) > 0 && direct[0] == '[' {
		return direct
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil
	}
	for _, key := range keys {
		if inner, ok := wrapper[key]; ok && len(inner) > 0 && inner[0] == '[' {
			return inner
		}
	}
	return nil
}

func unwrapTrips(raw []byte) []model.Trip {
	arr := unwrapArray(raw, "trips", "items", "data")
	if arr == nil {
		return nil
	}
	var trips []model.Trip
	if err := json.Unmarshal(arr, &trips); err != nil {
		return nil
	}
	return trips
}

func unwrapRoutes(raw []byte) []model.Route {
	arr := unwrapArray(raw, "routes", "items", "data")
	if arr == nil {
		return nil
	}
	var routes []model.Route
	if err := json.Unmarshal(arr, &routes); err != nil {
		return nil
	}
	return routes
}

func unwrapDeployments(raw []byte) []model.Deployment {
	arr := unwrapArray(raw, "deployments", "items", "data")
	if arr == nil {
		return nil
	}
	var deployments []model.Deployment
	if err := json.Unmarshal(arr, &deployments); err != nil {
		return nil
	}
	return deployments
}

// unwrapDeploymentForTrip handles {found, deployment} and the deployment
// object sent directly. Returns nil when no vehicle is deployed.
func unwrapDeploymentForTrip(raw []byte) *model.Deployment {
	var envelope struct {
		Found      *bool             `json:"found"`
		Deployment *model.Deployment `json:"deployment"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	if envelope.Found != nil {
		if !*envelope.Found {
			return nil
		}
		return envelope.Deployment
	}

	var direct model.Deployment
	if err := json.Unmarshal(raw, &direct); err != nil {
		return nil
	}
	if direct.DeploymentID == 0 {
		return nil
	}
	return &direct
}

// unwrapBookings handles a row array or a bare {count} summary.
func unwrapBookings(raw []byte) ([]model.Booking, int) {
	if arr := unwrapArray(raw, "bookings", "items", "data"); arr != nil {
		var rows []model.Booking
		if err := json.Unmarshal(arr, &rows); err != nil {
			return nil, 0
		}
		return rows, len(rows)
	}

	var summary struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, 0
	}
	return nil, summary.Count
}

// unwrapCreatedDeployment accepts {deployment_id} or {id}.
func unwrapCreatedDeployment(raw []byte) int {
	var body struct {
		DeploymentID int `json:"deployment_id"`
		ID           int `json:"id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0
	}
	if body.DeploymentID != 0 {
		return body.DeploymentID
	}
	return body.ID
}

// unwrapDeleted accepts {deleted} or {changed}.
func unwrapDeleted(raw []byte) int {
	var body struct {
		Deleted *int `json:"deleted"`
		Changed *int `json:"changed"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0
	}
	if body.Deleted != nil {
		return *body.Deleted
	}
	if body.Changed != nil {
		return *body.Changed
	}
	return 0
}
