package i

import "context"

// SortedQueue defines a score-ordered queue with batch removal.
type SortedQueue interface {
	// Enqueue adds a member to the queue under queueKey with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns up to amount members with the lowest
	// scores, or nothing when fewer than amount members are queued.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members currently in the queue.
	Count(ctx context.Context, queueKey string) int64
}
