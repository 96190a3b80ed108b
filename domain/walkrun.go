package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/driftwalk-api/raster"
	"github.com/beka-birhanu/driftwalk-api/walk"
	"github.com/google/uuid"
)

// Lifecycle states of a WalkRun. A run moves queued -> running and then
// to exactly one of completed, stuck, or failed. Stuck is a normal
// outcome of the walk, not a failure.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusStuck     = "stuck"
	StatusFailed    = "failed"
)

// WalkRun validation errors.
var (
	ErrUnsupportedDirections = errors.New("directions must be 4 or 8")
	ErrNegativeSteps         = errors.New("steps must not be negative")
	ErrInvalidExtent         = errors.New("extent must be at least 1x1")
	ErrExtentTooLarge        = errors.New("extent exceeds the raster cell limit")
)

// WalkRun is the persisted record of one requested walk: the
// configuration it was submitted with, its lifecycle state, and - once
// finished - the resulting raster cells and walk metadata.
type WalkRun struct {
	ID          uuid.UUID  `bson:"_id"`
	OwnerID     uuid.UUID  `bson:"ownerId"`
	Rows        int        `bson:"rows"`
	Cols        int        `bson:"cols"`
	Directions  int        `bson:"directions"`
	Steps       int        `bson:"steps"`
	Revisit     bool       `bson:"revisit"`
	Seed        *int64     `bson:"seed,omitempty"`
	Status      string     `bson:"status"`
	StartRow    int        `bson:"startRow"`
	StartCol    int        `bson:"startCol"`
	FinalRow    int        `bson:"finalRow"`
	FinalCol    int        `bson:"finalCol"`
	StuckStep   int        `bson:"stuckStep"`
	Cells       []int32    `bson:"cells,omitempty"`
	RequestedAt time.Time  `bson:"requestedAt"`
	FinishedAt  *time.Time `bson:"finishedAt,omitempty"`
}

// WalkRunConfig holds parameters for creating a WalkRun.
type WalkRunConfig struct {
	OwnerID    uuid.UUID
	Rows       int
	Cols       int
	Directions int
	Steps      int
	Revisit    bool
	Seed       *int64
}

// NewWalkRun validates the requested configuration and creates a queued
// run. Validation here is the submission gate: a run that cannot pass it
// must never reach the engine.
func NewWalkRun(config WalkRunConfig) (*WalkRun, error) {
	if config.Directions != walk.FourDirections && config.Directions != walk.EightDirections {
		return nil, ErrUnsupportedDirections
	}
	if config.Steps < 0 {
		return nil, ErrNegativeSteps
	}
	if config.Rows < 1 || config.Cols < 1 {
		return nil, ErrInvalidExtent
	}
	if config.Rows*config.Cols > raster.MaxCells {
		return nil, ErrExtentTooLarge
	}

	return &WalkRun{
		ID:          uuid.New(),
		OwnerID:     config.OwnerID,
		Rows:        config.Rows,
		Cols:        config.Cols,
		Directions:  config.Directions,
		Steps:       config.Steps,
		Revisit:     config.Revisit,
		Seed:        config.Seed,
		Status:      StatusQueued,
		RequestedAt: time.Now().UTC(),
	}, nil
}

// WalkConfig translates the stored configuration into the engine's form.
func (r *WalkRun) WalkConfig() walk.Config {
	return walk.Config{
		Directions: r.Directions,
		Steps:      r.Steps,
		Revisit:    r.Revisit,
		Seed:       r.Seed,
	}
}

// MarkRunning records that a worker claimed the run.
func (r *WalkRun) MarkRunning() {
	r.Status = StatusRunning
}

// MarkFailed records an execution error. The run keeps no cells.
func (r *WalkRun) MarkFailed() {
	r.Status = StatusFailed
	r.finish()
}

// RecordResult stores the walk outcome and the mutated raster cells.
func (r *WalkRun) RecordResult(res *walk.Result, cells []int32) {
	if res.State == walk.Stuck {
		r.Status = StatusStuck
	} else {
		r.Status = StatusCompleted
	}
	r.StartRow = res.Start.Row
	r.StartCol = res.Start.Col
	r.FinalRow = res.Final.Row
	r.FinalCol = res.Final.Col
	r.StuckStep = res.StuckStep
	r.Cells = cells
	r.finish()
}

// Finished reports whether the run reached a terminal status.
func (r *WalkRun) Finished() bool {
	return r.Status == StatusCompleted || r.Status == StatusStuck || r.Status == StatusFailed
}

func (r *WalkRun) finish() {
	now := time.Now().UTC()
	r.FinishedAt = &now
}
