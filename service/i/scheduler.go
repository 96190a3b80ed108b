package i

import (
	"context"

	"github.com/google/uuid"
)

// WalkScheduler queues accepted walk runs and hands batches of run IDs
// to the registered handler for execution.
type WalkScheduler interface {
	// Schedule enqueues a run. The step budget places the run in a load
	// bucket so heavy walks do not starve cheap ones.
	Schedule(ctx context.Context, id uuid.UUID, steps int) error

	// SetRunHandler registers the function that executes claimed runs.
	SetRunHandler(func(IDs []uuid.UUID))
}
