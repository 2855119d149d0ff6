package repository

import (
	"context"

	"movi-agent/internal/model"
)

// Backend is the read/write surface of the Movi operations backend this agent
// depends on. Implementations normalize the backend's tolerated response
// shapes at this boundary so callers never see raw wire variants.
type Backend interface {
	// ListTrips fetches today's daily trips.
	ListTrips(ctx context.Context) ([]model.Trip, error)

	// ListRoutes fetches all routes.
	ListRoutes(ctx context.Context) ([]model.Route, error)

	// ListDeployments fetches all deployments.
	ListDeployments(ctx context.Context) ([]model.Deployment, error)

	// DeploymentForTrip returns the deployment for the trip, or nil when no
	// vehicle is deployed.
	DeploymentForTrip(ctx context.Context, tripID int) (*model.Deployment, error)

	// TripBookings returns the trip's booking rows and their count. When the
	// backend reports only a count, rows is empty and count carries it.
	TripBookings(ctx context.Context, tripID int) (rows []model.Booking, count int, err error)

	// CreateDeployment creates a deployment and returns its id.
	CreateDeployment(ctx context.Context, opt CreateDeploymentOptions) (int, error)

	// DeleteDeployment deletes a deployment and returns the affected-row count.
	DeleteDeployment(ctx context.Context, deploymentID int) (int, error)
}

// CreateDeploymentOptions is the body for the deployment-create call.
// DriverID stays nil when the user named no driver.
type CreateDeploymentOptions struct {
	TripID    int
	VehicleID int
	DriverID  *int
}
