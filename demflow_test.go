package demflow_test

import (
	"math/rand"

	"github.com/maseology/demflow/grid"
)

const nodata = -9999.

// testDEM builds a Real grid from row-major elevations (nodata = -9999)
func testDEM(zs [][]float64, cw float64) *grid.Real {
	gd := grid.NewDefinition(len(zs), len(zs[0]), cw)
	r := grid.NewReal(gd, gd.NoData)
	for i, rw := range zs {
		for j, z := range rw {
			r.Set(i, j, z)
		}
	}
	return r
}

// rampDEM strictly decreasing row-by-row: every cell drains due south
func rampDEM(nr, nc int, cw float64) *grid.Real {
	zs := make([][]float64, nr)
	for i := range zs {
		zs[i] = make([]float64, nc)
		for j := range zs[i] {
			zs[i][j] = float64(100 - i)
		}
	}
	return testDEM(zs, cw)
}

// randomDEM deterministic pseudo-random surface
func randomDEM(nr, nc int, seed int64) *grid.Real {
	rng := rand.New(rand.NewSource(seed))
	zs := make([][]float64, nr)
	for i := range zs {
		zs[i] = make([]float64, nc)
		for j := range zs[i] {
			zs[i][j] = 100. * rng.Float64()
		}
	}
	return testDEM(zs, 10.)
}

// pitDEM a 7x7 raster: outer ring nodata, 5x5 valid block with a low rim
// (z=1), the centre cell at z=2 and its 8 neighbours above it (min z=6)
func pitDEM() *grid.Real {
	n := nodata
	return testDEM([][]float64{
		{n, n, n, n, n, n, n},
		{n, 1, 1, 1, 1, 1, n},
		{n, 1, 6, 7, 8, 1, n},
		{n, 1, 9, 2, 6.5, 1, n},
		{n, 1, 7.5, 8.5, 9.5, 1, n},
		{n, 1, 1, 1, 1, 1, n},
		{n, n, n, n, n, n, n},
	}, 10.)
}
