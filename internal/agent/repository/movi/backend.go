package movi

import (
	"context"
	"fmt"

	"movi-agent/internal/agent/repository"
	"movi-agent/internal/model"
	pkgLog "movi-agent/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the Movi backend repository.
func New(client *Client, l pkgLog.Logger) repository.Backend {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTrips(ctx context.Context) ([]model.Trip, error) {
	raw, err := r.client.get(ctx, "/api/daily_trips")
	if err != nil {
		return nil, err
	}
	return unwrapTrips(raw), nil
}

func (r *implRepository) ListRoutes(ctx context.Context) ([]model.Route, error) {
	raw, err := r.client.get(ctx, "/api/routes")
	if err != nil {
		return nil, err
	}
	return unwrapRoutes(raw), nil
}

func (r *implRepository) ListDeployments(ctx context.Context) ([]model.Deployment, error) {
	raw, err := r.client.get(ctx, "/api/deployments")
	if err != nil {
		return nil, err
	}
	return unwrapDeployments(raw), nil
}

func (r *implRepository) DeploymentForTrip(ctx context.Context, tripID int) (*model.Deployment, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/api/helpers/deployment_for_trip/%d", tripID))
	if err != nil {
		return nil, err
	}
	return unwrapDeploymentForTrip(raw), nil
}

func (r *implRepository) TripBookings(ctx context.Context, tripID int) ([]model.Booking, int, error) {
	raw, err := r.client.get(ctx, fmt.Sprintf("/api/bookings/trip/%d", tripID))
	if err != nil {
		return nil, 0, err
	}
	rows, count := unwrapBookings(raw)
	return rows, count, nil
}

func (r *implRepository) CreateDeployment(ctx context.Context, opt repository.CreateDeploymentOptions) (int, error) {
	body := map[string]any{
		"trip_id":    opt.TripID,
		"vehicle_id": opt.VehicleID,
		"driver_id":  opt.DriverID,
	}

	raw, err := r.client.post(ctx, "/api/deployments", body)
	if err != nil {
		return 0, err
	}

	id := unwrapCreatedDeployment(raw)
	if id == 0 {
		r.l.Warnf(ctx, "movi repository: deployment created but no id in response")
	}
	return id, nil
}

func (r *implRepository) DeleteDeployment(ctx context.Context, deploymentID int) (int, error) {
	raw, err := r.client.delete(ctx, fmt.Sprintf("/api/deployments/%d", deploymentID))
	if err != nil {
		return 0, err
	}
	return unwrapDeleted(raw), nil
}
