package demflow

import (
	"fmt"

	"github.com/maseology/demflow/grid"
)

// Domain couples a DEM with the routing grids derived from it. The DEM is
// never mutated; the flow-direction grid is built once on first use and
// read many times.
type Domain struct {
	DEM *grid.Real
	FD  *grid.Indx // D8 flow directions: 0-7, -1 pit/nodata

	// InteriorPitFound is raised when a pit is found whose neighbours are
	// all valid data, signalling an unprocessed depression in the source
	// DEM. Non-fatal: results remain deterministic, but well-defined only
	// for hydrologically conditioned input.
	InteriorPitFound bool

	// Progress, when set, receives advisory percent-complete updates.
	Progress ProgressFunc
}

// New wraps a DEM for flow-topology analysis
func New(dem *grid.Real) *Domain {
	return &Domain{DEM: dem}
}

// NewWithDirections wraps a DEM with a pre-computed direction grid. The two
// grids must agree in shape; a mismatch is a caller contract violation
// reported before any computation.
func NewWithDirections(dem *grid.Real, fd *grid.Indx) (*Domain, error) {
	if !dem.GD.Match(fd.GD) {
		return nil, fmt.Errorf("demflow: DEM (%dx%d) and direction grid (%dx%d) differ in shape",
			dem.GD.Nrow, dem.GD.Ncol, fd.GD.Nrow, fd.GD.Ncol)
	}
	return &Domain{DEM: dem, FD: fd}, nil
}

// FlowDirections returns the D8 flow-direction grid, computing it on first call
func (d *Domain) FlowDirections() *grid.Indx {
	if d.FD == nil {
		d.buildFlowdirs()
	}
	return d.FD
}
