package i

import "github.com/beka-birhanu/driftwalk-api/walk"

// Raster is the mutable grid a walk executes on, extended with the
// flattened export the persistence layer stores.
type Raster interface {
	walk.Grid

	// Cells returns a flattened row-major copy of the raster.
	Cells() []int32
}
