package usecase

import (
	"context"
	"fmt"

	"movi-agent/internal/agent"
)

func okOutput(message string) agent.ProcessOutput {
	return agent.ProcessOutput{OK: true, Message: message}
}

func failOutput(message string) agent.ProcessOutput {
	return agent.ProcessOutput{OK: false, Message: message}
}

// backendFail logs the transport error and degrades it to a user-facing
// refusal. Backend failures are never surfaced as protocol errors.
func (uc *implUseCase) backendFail(ctx context.Context, op string, err error) agent.ProcessOutput {
	uc.l.Errorf(ctx, "agent usecase: backend error while %s: %v", op, err)
	return failOutput(fmt.Sprintf("Backend error while %s. Please try again.", op))
}

func intPtr(v int) *int { return &v }

// pluralS is for "booking(s)"-free English: 1 booking, 2 bookings.
func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
