package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maseology/demflow/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealOutOfBounds(t *testing.T) {
	gd := grid.NewDefinition(3, 4, 10.)
	r := grid.NewReal(gd, 1.)

	assert.Equal(t, gd.NoData, r.Value(-1, 0))
	assert.Equal(t, gd.NoData, r.Value(0, -1))
	assert.Equal(t, gd.NoData, r.Value(3, 0))
	assert.Equal(t, gd.NoData, r.Value(0, 4))
	assert.Equal(t, 1., r.Value(2, 3))

	r.Set(-1, 0, 99.) // ignored
	assert.Equal(t, 1., r.Value(0, 0))
}

func TestIndxOutOfBounds(t *testing.T) {
	gd := grid.NewDefinition(2, 2, 10.)
	x := grid.NewIndx(gd, -1, -1)
	assert.Equal(t, int8(-1), x.Value(-1, -1))
	assert.Equal(t, int8(-1), x.Value(2, 2))

	x.SetRow(1, []int8{3, 4})
	assert.Equal(t, int8(3), x.Value(1, 0))
	assert.Equal(t, int8(4), x.Value(1, 1))
}

func TestReadGDEF(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "t.gdef")
	require.NoError(t, os.WriteFile(fp, []byte("650000.0\n4850000.0\n0.0\n120\n85\nU50.0\n"), 0644))

	gd, err := grid.ReadGDEF(fp)
	require.NoError(t, err)
	assert.Equal(t, 650000., gd.Oe)
	assert.Equal(t, 4850000., gd.On)
	assert.Equal(t, 120, gd.Nrow)
	assert.Equal(t, 85, gd.Ncol)
	assert.Equal(t, 50., gd.Cwx)
	assert.Equal(t, 50., gd.Cwy)
	assert.Equal(t, -9999., gd.NoData)
	assert.Equal(t, 120*85, gd.Ncells())
	assert.Equal(t, 2500., gd.CellArea())
}

func TestReadGDEFRotated(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "t.gdef")
	require.NoError(t, os.WriteFile(fp, []byte("0.0\n0.0\n12.5\n10\n10\n50.0\n"), 0644))
	_, err := grid.ReadGDEF(fp)
	require.Error(t, err)
}

func TestBilRoundTrip(t *testing.T) {
	gd := grid.NewDefinition(2, 3, 25.)
	r := grid.NewReal(gd, gd.NoData)
	for i := range r.A {
		r.A[i] = float64(i) * 1.5
	}

	fp := filepath.Join(t.TempDir(), "t.bil")
	require.NoError(t, r.ToBil(fp))

	r2, err := grid.LoadReal(gd, fp)
	require.NoError(t, err)
	assert.Equal(t, r.A, r2.A)

	_, err = os.Stat(filepath.Join(filepath.Dir(fp), "t.hdr"))
	assert.NoError(t, err, "a .hdr companion is written alongside the .bil")
}
