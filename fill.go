package demflow

import (
	"container/heap"
	"math"

	"github.com/maseology/demflow/grid"
)

type gridCell struct {
	row, col int
	z        float64
}

// floodHeap is a min-heap keyed on elevation: the flood front always
// expands at its currently lowest cell. Equal elevations resolve in heap
// order; no further tie-break is needed for the fill invariant.
type floodHeap []gridCell

func (h floodHeap) Len() int            { return len(h) }
func (h floodHeap) Less(i, j int) bool  { return h[i].z < h[j].z }
func (h floodHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *floodHeap) Push(x interface{}) { *h = append(*h, x.(gridCell)) }
func (h *floodHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// FillDepressions returns a depression-free copy of the DEM computed by
// boundary-seeded priority flood: filled(c) >= z(c) everywhere, and filled
// elevation is non-increasing from any interior cell back toward the grid
// border. A fully-nodata input yields a fully-nodata output.
func (d *Domain) FillDepressions() *grid.Real {
	gd := d.DEM.GD
	nr, nc := gd.Nrow, gd.Ncol
	ncells := gd.Ncells()
	nodata := gd.NoData
	unresolved := float64(math.MinInt32 + 1)
	out := grid.NewReal(gd, unresolved)

	// Region-grow inward from a virtual nodata frame surrounding the grid.
	// DEMs frequently carry nodata edges, so the data edge cannot be found
	// by border position alone; growing through nodata cells only also
	// keeps interior nodata holes excluded from filling.
	queue := make([][2]int, 0, 2*(nr+nc)+ncells)
	for row := 0; row < nr; row++ {
		queue = append(queue, [2]int{row, -1}, [2]int{row, nc})
	}
	for col := 0; col < nc; col++ {
		queue = append(queue, [2]int{-1, col}, [2]int{nr, col})
	}

	mh := make(floodHeap, 0, ncells)
	mon := newMonitor(d.Progress, "filling depressions")
	nsolved := 0
	for ihead := 0; ihead < len(queue); ihead++ {
		row, col := queue[ihead][0], queue[ihead][1]
		for n := 0; n < 8; n++ {
			rn, cn := row+dy[n], col+dx[n]
			if out.Value(rn, cn) != unresolved {
				continue
			}
			if zn := d.DEM.Value(rn, cn); zn == nodata {
				out.Set(rn, cn, nodata)
				queue = append(queue, [2]int{rn, cn})
			} else {
				out.Set(rn, cn, zn)
				heap.Push(&mh, gridCell{rn, cn, zn})
			}
			nsolved++
			mon.update(nsolved, ncells)
		}
	}

	// priority flood: a cell's filled value never decreases once set
	for mh.Len() > 0 {
		c := heap.Pop(&mh).(gridCell)
		zout := out.Value(c.row, c.col)
		for n := 0; n < 8; n++ {
			rn, cn := c.row+dy[n], c.col+dx[n]
			if out.Value(rn, cn) != unresolved {
				continue
			}
			if zn := d.DEM.Value(rn, cn); zn != nodata {
				if zn < zout {
					zn = zout // in a depression: raise to the pour point
				}
				out.Set(rn, cn, zn)
				heap.Push(&mh, gridCell{rn, cn, zn})
			} else {
				out.Set(rn, cn, nodata)
			}
			nsolved++
			mon.update(nsolved, ncells)
		}
	}
	return out
}

// DepthInSink measures how deep each cell lies within a closed topographic
// depression: filled minus original elevation. Cells not in any sink are
// reported as nodata, or as 0 when zeroBackground is set, distinguishing
// "not in a sink" from a zero-depth sink cell.
func (d *Domain) DepthInSink(zeroBackground bool) *grid.Real {
	out := d.FillDepressions()
	nodata := d.DEM.GD.NoData
	background := nodata
	if zeroBackground {
		background = 0.
	}
	for i, z := range d.DEM.A {
		if out.A[i] > z {
			out.A[i] -= z
		} else if z != nodata {
			out.A[i] = background
		} else {
			out.A[i] = nodata
		}
	}
	return out
}
