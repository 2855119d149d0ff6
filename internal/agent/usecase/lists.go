package usecase

import (
	"context"
	"fmt"
	"strings"

	"movi-agent/internal/agent"
	"movi-agent/internal/model"
)

func (uc *implUseCase) listTrips(ctx context.Context) agent.ProcessOutput {
	trips, err := uc.backend.ListTrips(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching trips", err)
	}
	if len(trips) == 0 {
		return okOutput("There are no trips scheduled today.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today's trips (%d):", len(trips))
	for i, t := range trips {
		if i == ListCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(trips)-ListCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s (%s)", t.DisplayName, t.ScheduledDate)
		if t.VehicleID != nil {
			fmt.Fprintf(&sb, " vehicle %d", *t.VehicleID)
		}
	}

	out := okOutput(sb.String())
	out.Trips = capTrips(trips, ListCap)
	return out
}

func (uc *implUseCase) listRoutes(ctx context.Context) agent.ProcessOutput {
	routes, err := uc.backend.ListRoutes(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching routes", err)
	}
	if len(routes) == 0 {
		return okOutput("There are no routes configured.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Routes (%d):", len(routes))
	for i, r := range routes {
		if i == ListCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(routes)-ListCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s (route %d)", r.DisplayName, r.RouteID)
	}

	out := okOutput(sb.String())
	out.Routes = capRoutes(routes, ListCap)
	return out
}

// listUnassignedTrips computes today's trips minus the deployed ones, by
// integer trip id.
func (uc *implUseCase) listUnassignedTrips(ctx context.Context) agent.ProcessOutput {
	trips, err := uc.backend.ListTrips(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching trips", err)
	}
	deployments, err := uc.backend.ListDeployments(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching deployments", err)
	}

	deployed := make(map[int]bool, len(deployments))
	for _, d := range deployments {
		deployed[d.TripID] = true
	}

	var unassigned []model.Trip
	for _, t := range trips {
		if !deployed[t.TripID] {
			unassigned = append(unassigned, t)
		}
	}

	if len(unassigned) == 0 {
		return okOutput("Every trip today has a vehicle deployed.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d trip%s without a vehicle:", len(unassigned), pluralS(len(unassigned)))
	for i, t := range unassigned {
		if i == ListCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(unassigned)-ListCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s (%s)", t.DisplayName, t.ScheduledDate)
	}

	out := okOutput(sb.String())
	out.Trips = capTrips(unassigned, ListCap)
	return out
}
