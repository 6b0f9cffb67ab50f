package ports

import "context"

// HealthChecker verifies a backing component is reachable.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
