package usecase

import (
	"context"
	"fmt"

	"movi-agent/internal/agent"
	"movi-agent/internal/model"
)

// confirm executes a previously proposed destructive action. The token is
// taken atomically up front; if the backend call fails the action is restored
// under the same token so the user can retry.
func (uc *implUseCase) confirm(ctx context.Context, token string) agent.ProcessOutput {
	if token == "" {
		return failOutput(MsgNoPendingToken)
	}

	p, ok := uc.store.Take(token)
	if !ok {
		return failOutput(MsgPendingNotFound)
	}

	switch p.Kind {
	case model.ActionRemoveVehicle:
		deleted, err := uc.backend.DeleteDeployment(ctx, p.Details.DeploymentID)
		if err != nil {
			uc.store.Restore(p)
			uc.l.Errorf(ctx, "agent usecase: confirm %s: delete deployment %d failed: %v",
				token, p.Details.DeploymentID, err)
			return failOutput("Backend error while removing the vehicle. The pending action was kept; reply \"yes\" again to retry.")
		}

		// The bookings count was cached at proposal time; it is reported, not
		// re-fetched.
		cancelled := p.Details.Bookings

		out := okOutput(fmt.Sprintf("Removed vehicle (deployment %d) from trip %d. Cancelled %d bookings.",
			p.Details.DeploymentID, p.Details.TripID, cancelled))
		out.Deleted = intPtr(deleted)
		out.Cancelled = intPtr(cancelled)
		return out
	default:
		uc.store.Restore(p)
		return failOutput(MsgUnknownPendingKind)
	}
}
