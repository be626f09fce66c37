package grid

import "math"

// Definition describes a uniform, structured grid
type Definition struct {
	Oe, On     float64 // upper-left origin
	Cwx, Cwy   float64 // cell widths
	NoData     float64
	Nrow, Ncol int
}

// NewDefinition builds a uniform grid definition with the default nodata sentinel
func NewDefinition(nrow, ncol int, cw float64) *Definition {
	return &Definition{Nrow: nrow, Ncol: ncol, Cwx: cw, Cwy: cw, NoData: -9999.}
}

// Ncells total cell count
func (gd *Definition) Ncells() int { return gd.Nrow * gd.Ncol }

// CellArea area of one cell
func (gd *Definition) CellArea() float64 { return gd.Cwx * gd.Cwy }

// Match reports whether two definitions share the same shape
func (gd *Definition) Match(o *Definition) bool {
	return gd.Nrow == o.Nrow && gd.Ncol == o.Ncol
}

// Real a dense row-major grid of float64
type Real struct {
	GD *Definition
	A  []float64
}

// NewReal allocates a Real pre-initialized to fill
func NewReal(gd *Definition, fill float64) *Real {
	a := make([]float64, gd.Ncells())
	for i := range a {
		a[i] = fill
	}
	return &Real{GD: gd, A: a}
}

// Value returns the cell value; any out-of-bounds coordinate returns the
// nodata sentinel, which keeps 8-neighbour scans free of bounds checks
func (r *Real) Value(row, col int) float64 {
	if row < 0 || row >= r.GD.Nrow || col < 0 || col >= r.GD.Ncol {
		return r.GD.NoData
	}
	return r.A[row*r.GD.Ncol+col]
}

// Set writes a cell value; out-of-bounds writes are ignored
func (r *Real) Set(row, col int, v float64) {
	if row < 0 || row >= r.GD.Nrow || col < 0 || col >= r.GD.Ncol {
		return
	}
	r.A[row*r.GD.Ncol+col] = v
}

// IsNoData reports whether the cell holds the nodata sentinel
func (r *Real) IsNoData(row, col int) bool {
	return r.Value(row, col) == r.GD.NoData
}

// MinMax range of valid cell values
func (r *Real) MinMax() (float64, float64) {
	mn, mx := math.MaxFloat64, -math.MaxFloat64
	for _, v := range r.A {
		if v == r.GD.NoData {
			continue
		}
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return mn, mx
}

// Indx a dense row-major grid of small signed integers (direction codes,
// inflow counts)
type Indx struct {
	GD     *Definition
	A      []int8
	NoData int8
}

// NewIndx allocates an Indx pre-initialized to fill
func NewIndx(gd *Definition, fill, nodata int8) *Indx {
	a := make([]int8, gd.Ncells())
	if fill != 0 {
		for i := range a {
			a[i] = fill
		}
	}
	return &Indx{GD: gd, A: a, NoData: nodata}
}

// Value returns the cell value, or the grid's nodata code when out of bounds
func (x *Indx) Value(row, col int) int8 {
	if row < 0 || row >= x.GD.Nrow || col < 0 || col >= x.GD.Ncol {
		return x.NoData
	}
	return x.A[row*x.GD.Ncol+col]
}

// Set writes a cell value; out-of-bounds writes are ignored
func (x *Indx) Set(row, col int, v int8) {
	if row < 0 || row >= x.GD.Nrow || col < 0 || col >= x.GD.Ncol {
		return
	}
	x.A[row*x.GD.Ncol+col] = v
}

// SetRow assigns a complete row vector
func (x *Indx) SetRow(row int, data []int8) {
	copy(x.A[row*x.GD.Ncol:(row+1)*x.GD.Ncol], data)
}
