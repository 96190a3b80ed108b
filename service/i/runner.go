package i

import (
	"context"

	dmn "github.com/beka-birhanu/driftwalk-api/domain"
)

// WalkRunner accepts validated walk runs for asynchronous execution.
type WalkRunner interface {
	// Submit persists the queued run and schedules it for execution.
	Submit(ctx context.Context, run *dmn.WalkRun) error
}
