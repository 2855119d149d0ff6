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

// tripsheet renders the fixed-format operational report for one trip.
// Bookings count as confirmed when status is "confirmed" or blank, cancelled
// when "cancelled"; any other status is left uncounted.
func (uc *implUseCase) tripsheet(ctx context.Context, parsed router.ParsedIntent, input agent.ProcessInput) agent.ProcessOutput {
	target := stripQueryWrappers(parsed.Target)
	if target == "" {
		target = strings.TrimSpace(input.ImageText)
	}
	if target == "" {
		return failOutput(`Which trip do you want the tripsheet for? E.g. "tripsheet for Bulk - 00:01".`)
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
	rows, count, err := uc.backend.TripBookings(ctx, trip.TripID)
	if err != nil {
		return uc.backendFail(ctx, "fetching bookings", err)
	}

	confirmed, cancelled := countByStatus(rows, count)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tripsheet: %s (%s)\n", trip.DisplayName, trip.ScheduledDate)
	if trip.RouteDisplayName != "" {
		fmt.Fprintf(&sb, "Route: %s\n", trip.RouteDisplayName)
	}
	if dep != nil {
		fmt.Fprintf(&sb, "Vehicle: %d\n", dep.VehicleID)
		if dep.DriverID != nil {
			fmt.Fprintf(&sb, "Driver: %d\n", *dep.DriverID)
		} else {
			sb.WriteString("Driver: unassigned\n")
		}
	} else {
		sb.WriteString("Vehicle: none deployed\n")
	}
	fmt.Fprintf(&sb, "Bookings: %d total, %d confirmed, %d cancelled", count, confirmed, cancelled)

	out := okOutput(sb.String())
	out.Trip = trip
	out.Deployment = dep
	out.Bookings = intPtr(count)
	return out
}

// countByStatus classifies booking rows. When the backend sent only a count
// and no rows, the whole count is treated as confirmed (the bookings endpoint
// reports confirmed bookings).
func countByStatus(rows []model.Booking, count int) (confirmed, cancelled int) {
	if len(rows) == 0 {
		return count, 0
	}
	for _, b := range rows {
		switch b.Status {
		case model.BookingStatusConfirmed, "":
			confirmed++
		case model.BookingStatusCancelled:
			cancelled++
		}
	}
	return confirmed, cancelled
}
