// Package demflow derives single-flow-direction (D8) routing, flow
// accumulation and depression characteristics from gridded digital
// elevation models. Input DEMs are assumed hydrologically corrected
// (flats and spurious depressions removed).
package demflow

import (
	"math"

	"github.com/maseology/demflow/grid"
)

// fixed 8-neighbour scan order (NE,E,SE,S,SW,W,NW,N); the order is part of
// the contract: first direction found wins slope ties
var dx = [8]int{1, 1, 1, 0, -1, -1, -1, 0}
var dy = [8]int{-1, 0, 1, 1, 1, 0, -1, -1}

// inflowing[i] is the direction code a neighbour at offset i must hold to
// drain into the current cell
var inflowing = [8]int8{4, 5, 6, 7, 0, 1, 2, 3}

// gridLengths distance to each neighbour in scan order
func gridLengths(gd *grid.Definition) [8]float64 {
	diag := math.Sqrt(gd.Cwx*gd.Cwx + gd.Cwy*gd.Cwy)
	return [8]float64{diag, gd.Cwx, diag, gd.Cwy, diag, gd.Cwx, diag, gd.Cwy}
}
