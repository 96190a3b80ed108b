// Package walkapi provides the HTTP surface for submitting random-walk
// runs and retrieving their status and rasters.
package walkapi

import (
	"time"

	dmn "github.com/beka-birhanu/driftwalk-api/domain"
)

// WalkRequest represents a request to execute a new random walk.
// Omitted fields fall back to the server defaults.
type WalkRequest struct {
	Rows       int    `json:"rows" binding:"omitempty,min=1"`
	Cols       int    `json:"cols" binding:"omitempty,min=1"`
	Steps      *int   `json:"steps" binding:"omitempty,min=0"`
	Directions int    `json:"directions" binding:"omitempty,oneof=4 8"`
	Revisit    bool   `json:"revisit"`
	Seed       *int64 `json:"seed"`
}

// CellRef identifies a single grid cell.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WalkResponse represents the state of a walk run.
type WalkResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Directions  int        `json:"directions"`
	Steps       int        `json:"steps"`
	Revisit     bool       `json:"revisit"`
	Seed        *int64     `json:"seed,omitempty"`
	Start       *CellRef   `json:"start,omitempty"`
	Final       *CellRef   `json:"final,omitempty"`
	StuckStep   int        `json:"stuckStep,omitempty"`
	RequestedAt time.Time  `json:"requestedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

func newWalkResponse(run *dmn.WalkRun) *WalkResponse {
	response := &WalkResponse{
		ID:          run.ID.String(),
		Status:      run.Status,
		Rows:        run.Rows,
		Cols:        run.Cols,
		Directions:  run.Directions,
		Steps:       run.Steps,
		Revisit:     run.Revisit,
		Seed:        run.Seed,
		StuckStep:   run.StuckStep,
		RequestedAt: run.RequestedAt,
		FinishedAt:  run.FinishedAt,
	}

	if run.Status == dmn.StatusCompleted || run.Status == dmn.StatusStuck {
		response.Start = &CellRef{Row: run.StartRow, Col: run.StartCol}
		response.Final = &CellRef{Row: run.FinalRow, Col: run.FinalCol}
	}
	return response
}
