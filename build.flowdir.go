package demflow

import (
	"math"
	"runtime"

	"github.com/maseology/demflow/grid"
)

// buildFlowdirs assigns every valid cell its steepest-descent neighbour.
// Rows are partitioned round-robin over a fixed set of workers; each worker
// owns its row buffer exclusively until it is sent, so the DEM is the only
// shared state and it is read-only. The assembled result is independent of
// message arrival order.
func (d *Domain) buildFlowdirs() {
	gd := d.DEM.GD
	nr, nc := gd.Nrow, gd.Ncol
	nodata := gd.NoData
	gl := gridLengths(gd)

	type rowdir struct {
		row  int
		data []int8
		pit  bool
	}

	nwrk := runtime.NumCPU()
	ch := make(chan rowdir, nwrk)
	for tid := 0; tid < nwrk; tid++ {
		go func(tid int) {
			for row := tid; row < nr; row += nwrk {
				data, pit := make([]int8, nc), false
				for col := 0; col < nc; col++ {
					z := d.DEM.Value(row, col)
					if z == nodata {
						data[col] = -1
						continue
					}
					dir, maxSlope := int8(0), -math.MaxFloat64
					neighbouringNodata := false
					for i := 0; i < 8; i++ {
						zn := d.DEM.Value(row+dy[i], col+dx[i])
						if zn == nodata {
							neighbouringNodata = true
							continue
						}
						// strict greater-than: first direction found wins ties
						if slope := (z - zn) / gl[i]; slope > maxSlope && slope > 0. {
							maxSlope = slope
							dir = int8(i)
						}
					}
					if maxSlope >= 0. {
						data[col] = dir
					} else {
						data[col] = -1
						if !neighbouringNodata {
							pit = true
						}
					}
				}
				ch <- rowdir{row, data, pit}
			}
		}(tid)
	}

	d.FD = grid.NewIndx(gd, -1, -1)
	mon := newMonitor(d.Progress, "flow directions")
	for r := 0; r < nr; r++ {
		rd := <-ch
		d.FD.SetRow(rd.row, rd.data)
		if rd.pit {
			d.InteriorPitFound = true
		}
		mon.update(r, nr)
	}
}
