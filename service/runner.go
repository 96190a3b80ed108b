package service

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/driftwalk-api/service/i"
	"github.com/beka-birhanu/driftwalk-api/walk"

	dmn "github.com/beka-birhanu/driftwalk-api/domain"
	"github.com/google/uuid"
)

// Runner executes queued walk runs: it builds the raster for a run's
// extent, drives the walk engine over it, and records the outcome.
// Each walk is strictly sequential; concurrency exists only across
// independent runs dispatched by the scheduler.
type Runner struct {
	walkRepo    i.WalkRepo
	scheduler   i.WalkScheduler
	gridFactory func(rows, cols int) (i.Raster, error)
	logger      i.Logger
}

// RunnerConfig holds the Runner's dependencies.
type RunnerConfig struct {
	WalkRepo    i.WalkRepo
	Scheduler   i.WalkScheduler
	GridFactory func(rows, cols int) (i.Raster, error)
	Logger      i.Logger
}

// NewRunner creates a Runner and registers it as the scheduler's run
// handler.
func NewRunner(c *RunnerConfig) (*Runner, error) {
	r := &Runner{
		walkRepo:    c.WalkRepo,
		scheduler:   c.Scheduler,
		gridFactory: c.GridFactory,
		logger:      c.Logger,
	}

	c.Scheduler.SetRunHandler(r.runBatch)
	return r, nil
}

// Submit persists the queued run and schedules it for execution.
func (r *Runner) Submit(ctx context.Context, run *dmn.WalkRun) error {
	if err := r.walkRepo.Save(run); err != nil {
		r.logger.Error(fmt.Sprintf("Saving submitted run %s: %s", run.ID, err))
		return err
	}

	return r.scheduler.Schedule(ctx, run.ID, run.Steps)
}

// runBatch executes claimed runs one after another. Batches themselves
// arrive concurrently, one goroutine per dispatch.
func (r *Runner) runBatch(IDs []uuid.UUID) {
	for _, id := range IDs {
		r.execute(id)
	}
}

// execute performs a single run end to end and records the result.
func (r *Runner) execute(id uuid.UUID) {
	run, err := r.walkRepo.ByID(id)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Loading claimed run %s: %s", id, err))
		return
	}

	run.MarkRunning()
	if err := r.walkRepo.Save(run); err != nil {
		r.logger.Error(fmt.Sprintf("Marking run %s running: %s", id, err))
		return
	}

	grid, err := r.gridFactory(run.Rows, run.Cols)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Creating %dx%d raster for run %s: %s", run.Rows, run.Cols, id, err))
		r.fail(run)
		return
	}

	res, err := walk.Run(run.WalkConfig(), grid)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Executing run %s: %s", id, err))
		r.fail(run)
		return
	}

	run.RecordResult(res, grid.Cells())
	if err := r.walkRepo.Save(run); err != nil {
		r.logger.Error(fmt.Sprintf("Saving finished run %s: %s", id, err))
		return
	}

	if res.State == walk.Stuck {
		r.logger.Info(fmt.Sprintf("Run %s stuck on step %d", id, res.StuckStep))
	} else {
		r.logger.Info(fmt.Sprintf("Run %s completed after %d steps", id, res.Steps))
	}
}

func (r *Runner) fail(run *dmn.WalkRun) {
	run.MarkFailed()
	if err := r.walkRepo.Save(run); err != nil {
		r.logger.Error(fmt.Sprintf("Marking run %s failed: %s", run.ID, err))
	}
}
