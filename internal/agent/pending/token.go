package pending

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newToken generates a pending-action token: millisecond timestamp plus a
// random suffix so same-millisecond proposals never collide. Tokens only need
// to be unique, not unguessable.
func newToken() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("p_%d_%s", time.Now().UnixMilli(), suffix)
}
