package usecase

import (
	"context"
	"fmt"
	"strings"

	"movi-agent/internal/agent"
	"movi-agent/internal/agent/matcher"
	"movi-agent/internal/model"
	"movi-agent/internal/router"
)

// removeVehicle resolves the target trip and either deletes the deployment
// immediately (no bookings) or proposes the removal for confirmation.
func (uc *implUseCase) removeVehicle(ctx context.Context, parsed router.ParsedIntent, input agent.ProcessInput) agent.ProcessOutput {
	target := parsed.Target
	if target == "" {
		target = strings.TrimSpace(input.ImageText)
	}
	if target == "" {
		return failOutput(MsgClarifyRemoveTarget)
	}

	trips, err := uc.backend.ListTrips(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching trips", err)
	}

	trip := matcher.Trip(target, trips)
	if trip == nil {
		return failOutput(fmt.Sprintf("Couldn't find a trip matching %q.", target))
	}

	dep, err := uc.backend.DeploymentForTrip(ctx, trip.TripID)
	if err != nil {
		return uc.backendFail(ctx, "looking up the deployment", err)
	}
	if dep == nil {
		return failOutput(fmt.Sprintf("No vehicle currently deployed for trip %q.", trip.DisplayName))
	}

	_, count, err := uc.backend.TripBookings(ctx, trip.TripID)
	if err != nil {
		return uc.backendFail(ctx, "counting bookings", err)
	}

	if count > 0 {
		p := uc.store.Create(model.ActionRemoveVehicle, model.PendingDetails{
			TripID:       trip.TripID,
			TripName:     trip.DisplayName,
			DeploymentID: dep.DeploymentID,
			VehicleID:    dep.VehicleID,
			DriverID:     dep.DriverID,
			Bookings:     count,
			Page:         input.CurrentPage,
		})

		out := okOutput(fmt.Sprintf(
			"I can remove the vehicle from %q. However, this trip has %d confirmed booking%s. Removing the vehicle will cancel those bookings. Reply \"yes\" with pendingId %s to proceed.",
			trip.DisplayName, count, pluralS(count), p.Token))
		out.ConfirmationRequired = true
		out.PendingID = p.Token
		out.Trip = trip
		out.Deployment = dep
		out.Bookings = intPtr(count)
		return out
	}

	// Zero bookings: nothing to cancel, delete in the same request.
	deleted, err := uc.backend.DeleteDeployment(ctx, dep.DeploymentID)
	if err != nil {
		return uc.backendFail(ctx, "removing the vehicle", err)
	}

	out := okOutput(fmt.Sprintf("Vehicle removed from %q (deployment %d).", trip.DisplayName, dep.DeploymentID))
	out.Trip = trip
	out.Deleted = intPtr(deleted)
	out.Cancelled = intPtr(0)
	return out
}
