package service

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/driftwalk-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix        = "walkrun"
	defaultBatchSize     = 1
	defaultLoadTolerance = 0
	queueLoadKeyFmt      = "%s:queue:load_%d"
)

type runHandlerFunc func(IDs []uuid.UUID)

// SchedulerOptions tunes how runs are queued and claimed.
type SchedulerOptions struct {
	// Prefix namespaces the queue keys.
	Prefix string

	// Handler is called with the IDs of claimed runs.
	Handler runHandlerFunc

	// BatchSize is how many queued runs one dispatch claims.
	BatchSize int64

	// LoadTolerance widens the step-budget buckets: runs whose budgets
	// differ by at most this amount share a queue.
	LoadTolerance int
}

// Scheduler queues accepted walk runs in score-ordered queues bucketed
// by step budget and dispatches batches to the run handler.
type Scheduler struct {
	sortedQueue i.SortedQueue
	logger      i.Logger
	opts        *SchedulerOptions
}

// NewScheduler creates a Scheduler on top of the given sorted queue.
func NewScheduler(sortedQueue i.SortedQueue, logger i.Logger, opts *SchedulerOptions) (i.WalkScheduler, error) {
	if opts == nil {
		opts = &SchedulerOptions{
			BatchSize: defaultBatchSize,
			Prefix:    defaultPrefix,
		}
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.LoadTolerance < 0 {
		opts.LoadTolerance = defaultLoadTolerance
	}

	return &Scheduler{
		sortedQueue: sortedQueue,
		logger:      logger,
		opts:        opts,
	}, nil
}

// Schedule enqueues a run with submission time as its score, then
// triggers a dispatch attempt for the run's load bucket.
func (s *Scheduler) Schedule(ctx context.Context, id uuid.UUID, steps int) error {
	s.logger.Info(fmt.Sprintf("Queueing run: ID=%s Steps=%d", id, steps))

	score := float64(time.Now().UnixNano())
	err := s.sortedQueue.Enqueue(ctx, s.queueKey(steps), score, id.String())
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to enqueue run: %s", err))
		return err
	}

	go s.dispatch(ctx, steps)
	return nil
}

// dispatch claims up to BatchSize runs from the bucket and hands their
// IDs to the handler. Nothing is claimed while the bucket holds fewer
// runs than one batch.
func (s *Scheduler) dispatch(ctx context.Context, steps int) {
	queueKey := s.queueKey(steps)
	qLen := s.sortedQueue.Count(ctx, queueKey)

	if qLen < s.opts.BatchSize {
		return
	}

	rawIDs, err := s.sortedQueue.DequeTops(ctx, queueKey, s.opts.BatchSize)
	if err != nil {
		s.logger.Error(fmt.Sprintf("claiming queued runs: %s", err))
		return
	}

	var runIDs []uuid.UUID
	for _, raw := range rawIDs {
		if id, err := uuid.Parse(raw); err == nil {
			runIDs = append(runIDs, id)
		} else {
			s.logger.Warning(fmt.Sprintf("Non-UUID value in queue: %s", raw))
		}
	}

	if len(runIDs) > 0 && s.opts.Handler != nil {
		s.logger.Info(fmt.Sprintf("Dispatching runs: %v", runIDs))
		go s.opts.Handler(runIDs)
	}
}

// SetRunHandler registers the function that executes claimed runs.
func (s *Scheduler) SetRunHandler(f func([]uuid.UUID)) {
	s.opts.Handler = f
}

func (s *Scheduler) queueKey(steps int) string {
	return fmt.Sprintf(queueLoadKeyFmt, s.opts.Prefix, scale(steps, s.opts.LoadTolerance))
}

func scale(value, tolerance int) int {
	return value / (tolerance + 1)
}
