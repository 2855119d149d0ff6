package model

import "time"

// ActionKind enumerates the destructive actions that require confirmation.
type ActionKind string

const (
	ActionRemoveVehicle ActionKind = "remove_vehicle"
)

// PendingDetails is the closed record of fields cached at proposal time.
// Bookings is the count observed when the action was proposed; confirmation
// reports this cached count rather than re-fetching.
type PendingDetails struct {
	TripID       int
	TripName     string
	DeploymentID int
	VehicleID    int
	DriverID     *int
	Bookings     int
	Page         string // originating UI context, opaque
}

// PendingAction is a proposed destructive operation awaiting confirmation.
// Records are never mutated: they are created once and removed on consume.
type PendingAction struct {
	Token     string
	Kind      ActionKind
	Details   PendingDetails
	CreatedAt time.Time
}
