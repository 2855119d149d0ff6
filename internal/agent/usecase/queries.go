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

// queryWrappers are leading phrases stripped from query targets before
// matching ("status of Bulk - 00:01" -> "Bulk - 00:01"). Stripping repeats
// until no prefix applies.
var queryWrappers = []string{
	"what is the status of ",
	"what's the status of ",
	"status of ",
	"status for ",
	"details of ",
	"details for ",
	"tell me about ",
	"show me ",
	"show ",
	"about ",
	"the ",
}

func stripQueryWrappers(target string) string {
	target = strings.TrimSpace(target)
	target = strings.TrimRight(target, "?!. ")
	for {
		lowered := strings.ToLower(target)
		stripped := false
		for _, w := range queryWrappers {
			if strings.HasPrefix(lowered, w) {
				target = strings.TrimSpace(target[len(w):])
				stripped = true
				break
			}
		}
		if !stripped {
			return target
		}
	}
}

// genericPhrase reports a catch-all target ("show trips", "trips") that asks
// for a summary rather than a specific record.
func genericPhrase(target string, words ...string) bool {
	n := matcher.Normalize(target)
	if n == "" {
		return true
	}
	for _, w := range words {
		if n == w {
			return true
		}
	}
	return false
}

// tripQuery answers either a summary (generic phrase) or full detail for one
// trip, assembled from the trip, deployment and bookings reads.
func (uc *implUseCase) tripQuery(ctx context.Context, parsed router.ParsedIntent) agent.ProcessOutput {
	trips, err := uc.backend.ListTrips(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching trips", err)
	}

	target := stripQueryWrappers(parsed.Target)
	if genericPhrase(target, "trip", "trips", "all trips", "today's trips", "todays trips") {
		return summarizeTrips(trips)
	}

	trip := matcher.Trip(target, trips)
	if trip == nil {
		return failOutput(fmt.Sprintf("Couldn't find a trip matching %q.", target))
	}

	dep, err := uc.backend.DeploymentForTrip(ctx, trip.TripID)
	if err != nil {
		return uc.backendFail(ctx, "looking up the deployment", err)
	}
	_, count, err := uc.backend.TripBookings(ctx, trip.TripID)
	if err != nil {
		return uc.backendFail(ctx, "counting bookings", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Trip %q (%s)", trip.DisplayName, trip.ScheduledDate)
	if trip.RouteDisplayName != "" {
		fmt.Fprintf(&sb, " on route %q", trip.RouteDisplayName)
	}
	sb.WriteString(". ")
	if dep != nil {
		fmt.Fprintf(&sb, "Vehicle %d is deployed", dep.VehicleID)
		if dep.DriverID != nil {
			fmt.Fprintf(&sb, " with driver %d", *dep.DriverID)
		}
		sb.WriteString(". ")
	} else {
		sb.WriteString("No vehicle deployed. ")
	}
	fmt.Fprintf(&sb, "%d confirmed booking%s.", count, pluralS(count))

	out := okOutput(sb.String())
	out.Trip = trip
	out.Deployment = dep
	out.Bookings = intPtr(count)
	return out
}

// routeQuery answers a summary or detail for one route, including the trips
// scheduled on it today.
func (uc *implUseCase) routeQuery(ctx context.Context, parsed router.ParsedIntent) agent.ProcessOutput {
	routes, err := uc.backend.ListRoutes(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching routes", err)
	}

	target := stripQueryWrappers(parsed.Target)
	if genericPhrase(target, "route", "routes", "all routes") {
		return summarizeRoutes(routes)
	}

	route := matcher.Route(target, routes)
	if route == nil {
		return failOutput(fmt.Sprintf("Couldn't find a route matching %q.", target))
	}

	trips, err := uc.backend.ListTrips(ctx)
	if err != nil {
		return uc.backendFail(ctx, "fetching trips", err)
	}

	var onRoute []model.Trip
	for _, t := range trips {
		if t.RouteID == route.RouteID {
			onRoute = append(onRoute, t)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Route %q (route %d): %d trip%s scheduled today.",
		route.DisplayName, route.RouteID, len(onRoute), pluralS(len(onRoute)))
	for i, t := range onRoute {
		if i == SummaryCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(onRoute)-SummaryCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s", t.DisplayName)
	}

	out := okOutput(sb.String())
	out.Route = route
	out.Trips = capTrips(onRoute, SummaryCap)
	return out
}

func summarizeTrips(trips []model.Trip) agent.ProcessOutput {
	if len(trips) == 0 {
		return okOutput("There are no trips scheduled today.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today's trips (%d):", len(trips))
	for i, t := range trips {
		if i == SummaryCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(trips)-SummaryCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s", t.DisplayName)
		if t.VehicleID != nil {
			fmt.Fprintf(&sb, " (vehicle %d)", *t.VehicleID)
		}
	}

	out := okOutput(sb.String())
	out.Trips = capTrips(trips, SummaryCap)
	return out
}

func summarizeRoutes(routes []model.Route) agent.ProcessOutput {
	if len(routes) == 0 {
		return okOutput("There are no routes configured.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Routes (%d):", len(routes))
	for i, r := range routes {
		if i == SummaryCap {
			fmt.Fprintf(&sb, "\n...and %d more.", len(routes)-SummaryCap)
			break
		}
		fmt.Fprintf(&sb, "\n- %s (route %d)", r.DisplayName, r.RouteID)
	}

	out := okOutput(sb.String())
	out.Routes = capRoutes(routes, SummaryCap)
	return out
}

func capTrips(trips []model.Trip, n int) []model.Trip {
	if len(trips) > n {
		return trips[:n]
	}
	return trips
}

func capRoutes(routes []model.Route, n int) []model.Route {
	if len(routes) > n {
		return routes[:n]
	}
	return routes
}
