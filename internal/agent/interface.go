package agent

import "context"

// UseCase is the business logic interface for the agent domain: it takes one
// inbound message end to end. Process never returns an error; every failure
// path (unresolvable target, backend outage, expired token) degrades to an
// OK:false output with a user-readable message, so the response contract is
// identical across all branches.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) ProcessOutput
}
