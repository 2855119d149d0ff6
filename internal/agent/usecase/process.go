package usecase

import (
	"context"
	"strings"

	"movi-agent/internal/agent"
	"movi-agent/internal/router"
)

// Process classifies the message and dispatches on the intent. The switch is
// exhaustive over the closed intent set.
func (uc *implUseCase) Process(ctx context.Context, input agent.ProcessInput) agent.ProcessOutput {
	text := strings.TrimSpace(input.Input)

	// Confirmation fast path: "yes" plus a token needs no classifier, LLM or
	// otherwise.
	if input.PendingID != "" && router.IsConfirmWord(text) {
		return uc.confirm(ctx, input.PendingID)
	}

	parsed := uc.router.Classify(ctx, text)
	uc.l.Infof(ctx, "agent usecase: intent=%s target=%q", parsed.Intent, parsed.Target)

	switch parsed.Intent {
	case router.IntentConfirm:
		return uc.confirm(ctx, input.PendingID)
	case router.IntentRemoveVehicle:
		return uc.removeVehicle(ctx, parsed, input)
	case router.IntentAssignVehicle:
		return uc.assignVehicle(ctx, parsed, input)
	case router.IntentTripQuery:
		return uc.tripQuery(ctx, parsed)
	case router.IntentRouteQuery:
		return uc.routeQuery(ctx, parsed)
	case router.IntentListTrips:
		return uc.listTrips(ctx)
	case router.IntentListRoutes:
		return uc.listRoutes(ctx)
	case router.IntentListUnassigned:
		return uc.listUnassignedTrips(ctx)
	case router.IntentTripsheet:
		return uc.tripsheet(ctx, parsed, input)
	case router.IntentGreeting:
		return okOutput(MsgGreeting)
	case router.IntentQuery:
		return okOutput(MsgHelp)
	case router.IntentUnknown:
		return failOutput(MsgUnknown)
	default:
		return failOutput(MsgUnknown)
	}
}
