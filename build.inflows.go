package demflow

import (
	"runtime"

	"github.com/maseology/demflow/grid"
)

// buildInflows counts, for every valid cell, the neighbours whose direction
// drains into it; nodata cells are coded -1. Requires the completed
// direction grid (hard barrier), which is then shared read-only across the
// same round-robin row workers as buildFlowdirs.
func (d *Domain) buildInflows() *grid.Indx {
	fd := d.FlowDirections()
	gd := d.DEM.GD
	nr, nc := gd.Nrow, gd.Ncol
	nodata := gd.NoData

	type rowcnt struct {
		row  int
		data []int8
	}

	nwrk := runtime.NumCPU()
	ch := make(chan rowcnt, nwrk)
	for tid := 0; tid < nwrk; tid++ {
		go func(tid int) {
			for row := tid; row < nr; row += nwrk {
				data := make([]int8, nc)
				for col := 0; col < nc; col++ {
					if d.DEM.Value(row, col) == nodata {
						data[col] = -1
						continue
					}
					cnt := int8(0)
					for i := 0; i < 8; i++ {
						if fd.Value(row+dy[i], col+dx[i]) == inflowing[i] {
							cnt++
						}
					}
					data[col] = cnt
				}
				ch <- rowcnt{row, data}
			}
		}(tid)
	}

	ni := grid.NewIndx(gd, -1, -1)
	mon := newMonitor(d.Progress, "num. inflowing neighbours")
	for r := 0; r < nr; r++ {
		rc := <-ch
		ni.SetRow(rc.row, rc.data)
		mon.update(r, nr)
	}
	return ni
}
