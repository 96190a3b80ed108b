/*
Package raster provides the bounded in-memory grid walks are recorded
on, plus plain-text export of the result. Dense satisfies the walk
engine's Grid interface and flattens to an int32 slice for persistence.
*/
package raster

import (
	"errors"
	"strings"
)

// MaxCells caps the raster size so a single request cannot exhaust
// memory. Mirrors the memory guard of the raster backends this service
// replaces.
const MaxCells = 1 << 24

// Raster-related errors.
var (
	ErrInvalidExtent     = errors.New("raster extent must be at least 1x1")
	ErrTooManyCells      = errors.New("raster exceeds the cell limit")
	ErrCellCountMismatch = errors.New("cell count does not match extent")
)

// Dense is a row-major rectangular integer raster. Row 0 is the
// southernmost row; rows grow northward, columns eastward.
type Dense struct {
	rows  int
	cols  int
	cells []int
}

// NewDense creates a zeroed raster of the given extent.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidExtent
	}
	if rows*cols > MaxCells {
		return nil, ErrTooManyCells
	}
	return &Dense{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}, nil
}

// FromCells rebuilds a raster from a flattened row-major cell slice, as
// stored by the persistence layer.
func FromCells(rows, cols int, cells []int32) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, ErrCellCountMismatch
	}
	for i, v := range cells {
		d.cells[i] = int(v)
	}
	return d, nil
}

// Get returns the value of the cell at (row, col).
func (d *Dense) Get(row, col int) int {
	return d.cells[row*d.cols+col]
}

// Set overwrites the cell at (row, col).
func (d *Dense) Set(row, col, value int) {
	d.cells[row*d.cols+col] = value
}

// Extent returns the number of rows and columns.
func (d *Dense) Extent() (rows, cols int) {
	return d.rows, d.cols
}

// InBound reports whether (row, col) addresses a cell of the raster.
func (d *Dense) InBound(row, col int) bool {
	return row >= 0 && row < d.rows && col >= 0 && col < d.cols
}

// Cells returns a flattened row-major copy of the raster for storage.
func (d *Dense) Cells() []int32 {
	out := make([]int32, len(d.cells))
	for i, v := range d.cells {
		out[i] = int32(v)
	}
	return out
}

// String renders the raster north-up, one glyph per cell: '.' for an
// untouched cell, the digit for visit values 1-9, and '#' beyond that.
func (d *Dense) String() string {
	var output strings.Builder

	for row := d.rows - 1; row >= 0; row-- {
		for col := 0; col < d.cols; col++ {
			value := d.Get(row, col)
			switch {
			case value == 0:
				output.WriteByte('.')
			case value <= 9:
				output.WriteByte(byte('0' + value))
			default:
				output.WriteByte('#')
			}
		}
		output.WriteByte('\n')
	}

	return output.String()
}
