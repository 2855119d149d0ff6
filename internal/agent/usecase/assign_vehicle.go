package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"movi-agent/internal/agent"
	"movi-agent/internal/agent/matcher"
	"movi-agent/internal/agent/repository"
	"movi-agent/internal/model"
	"movi-agent/internal/router"
)

var (
	vehicleIDPattern = regexp.MustCompile(`(?i)\b(?:vehicle|bus)\s*#?\s*(\d+)`)
	driverIDPattern  = regexp.MustCompile(`(?i)\bdriver\s*#?\s*(\d+)`)
)

// assignVehicle creates a deployment for the target trip. An existing
// deployment is never overwritten automatically; the user has to remove it
// first.
func (uc *implUseCase) assignVehicle(ctx context.Context, parsed router.ParsedIntent, input agent.ProcessInput) agent.ProcessOutput {
	target := parsed.Target
	if target == "" {
		target = strings.TrimSpace(input.ImageText)
	}
	if target == "" {
		return failOutput(MsgClarifyAssignTarget)
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
	if dep != nil {
		return failOutput(fmt.Sprintf(
			"Trip %q already has vehicle %d deployed (deployment %d). Remove it first before assigning a new one.",
			trip.DisplayName, dep.VehicleID, dep.DeploymentID))
	}

	// Vehicle and driver numbers come from the raw text, not the classifier.
	vehicleID, ok := extractID(vehicleIDPattern, parsed.RawText)
	if !ok {
		return failOutput(MsgClarifyVehicleID)
	}
	var driverID *int
	if d, ok := extractID(driverIDPattern, parsed.RawText); ok {
		driverID = intPtr(d)
	}

	deploymentID, err := uc.backend.CreateDeployment(ctx, repository.CreateDeploymentOptions{
		TripID:    trip.TripID,
		VehicleID: vehicleID,
		DriverID:  driverID,
	})
	if err != nil {
		return uc.backendFail(ctx, "creating the deployment", err)
	}

	msg := fmt.Sprintf("Assigned vehicle %d to %q", vehicleID, trip.DisplayName)
	if driverID != nil {
		msg += fmt.Sprintf(" with driver %d", *driverID)
	}
	msg += fmt.Sprintf(" (deployment %d).", deploymentID)

	out := okOutput(msg)
	out.Trip = trip
	out.Deployment = &model.Deployment{
		DeploymentID: deploymentID,
		TripID:       trip.TripID,
		VehicleID:    vehicleID,
		DriverID:     driverID,
	}
	return out
}

func extractID(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
