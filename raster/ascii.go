package raster

import (
	"bufio"
	"fmt"
	"io"
)

// asciiNoData is the NODATA marker written into ASCII grid headers.
// Walk rasters never contain it; the field is part of the format.
const asciiNoData = -9999

// WriteASCII writes the raster in the plain-text ASCII grid format
// (ncols/nrows header followed by one line per row, north-up), suitable
// for import into common GIS tools.
func (d *Dense) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ncols %d\n", d.cols)
	fmt.Fprintf(bw, "nrows %d\n", d.rows)
	fmt.Fprintf(bw, "xllcorner 0\n")
	fmt.Fprintf(bw, "yllcorner 0\n")
	fmt.Fprintf(bw, "cellsize 1\n")
	fmt.Fprintf(bw, "NODATA_value %d\n", asciiNoData)

	for row := d.rows - 1; row >= 0; row-- {
		for col := 0; col < d.cols; col++ {
			if col > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", d.Get(row, col)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
