package demflow

import (
	"fmt"
	"math"

	"github.com/maseology/demflow/grid"
)

// DownslopeDistanceToStream measures the distance each cell must flow,
// along its D8 path, to reach a mapped stream cell (streams: value > 0).
// Distances accumulate the true per-direction grid length (diagonal or
// cardinal). Cells whose flow path terminates in a pit rather than a
// stream, and nodata cells, are reported as nodata. The streams grid must
// match the DEM in shape.
func (d *Domain) DownslopeDistanceToStream(streams *grid.Real) (*grid.Real, error) {
	gd := d.DEM.GD
	if !gd.Match(streams.GD) {
		return nil, fmt.Errorf("demflow: DEM (%dx%d) and streams grid (%dx%d) differ in shape",
			gd.Nrow, gd.Ncol, streams.GD.Nrow, streams.GD.Ncol)
	}

	fd := d.FlowDirections()
	nr, nc := gd.Nrow, gd.Ncol
	ncells := gd.Ncells()
	nodata := gd.NoData
	streamsNodata := streams.GD.NoData
	gl := gridLengths(gd)

	background := -math.MaxFloat64
	out := grid.NewReal(gd, background)

	type distCell struct {
		row, col int
		dist     float64
	}
	stack := make([]distCell, 0, ncells)
	nsolved := 0
	for row := 0; row < nr; row++ {
		for col := 0; col < nc; col++ {
			if sv := streams.Value(row, col); sv > 0. && sv != streamsNodata {
				out.Set(row, col, 0.)
				stack = append(stack, distCell{row, col, 0.})
			}
			if d.DEM.Value(row, col) == nodata {
				out.Set(row, col, nodata)
				nsolved++
			}
			// pits that are not stream cells drain nowhere: nodata upstream
			if fd.Value(row, col) == -1 && out.Value(row, col) != 0. {
				out.Set(row, col, nodata)
				stack = append(stack, distCell{row, col, nodata})
				nsolved++
			}
		}
	}

	mon := newMonitor(d.Progress, "downslope distance to stream")
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n := 0; n < 8; n++ {
			rn, cn := c.row+dy[n], c.col+dx[n]
			if fd.Value(rn, cn) == inflowing[n] && out.Value(rn, cn) == background {
				if c.dist != nodata {
					dist := c.dist + gl[n]
					out.Set(rn, cn, dist)
					stack = append(stack, distCell{rn, cn, dist})
				} else {
					out.Set(rn, cn, nodata)
					stack = append(stack, distCell{rn, cn, nodata})
				}
			}
		}
		nsolved++
		mon.update(nsolved, ncells)
	}
	return out, nil
}
