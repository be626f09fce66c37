package demflow_test

import (
	"testing"

	"github.com/maseology/demflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowDirectionsRamp(t *testing.T) {
	dom := demflow.New(rampDEM(6, 4, 10.))
	fd := dom.FlowDirections()

	// every cell above the bottom row drains due south (code 3)
	for row := 0; row < 5; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, int8(3), fd.Value(row, col), "row %d col %d", row, col)
		}
	}
	// bottom-row cells have no downhill neighbour
	for col := 0; col < 4; col++ {
		assert.Equal(t, int8(-1), fd.Value(5, col))
	}
	// bottom-row pits touch the virtual nodata frame, so they are edge
	// artifacts, not interior pits
	assert.False(t, dom.InteriorPitFound)
}

func TestFlowDirectionsInteriorPit(t *testing.T) {
	dom := demflow.New(pitDEM())
	fd := dom.FlowDirections()

	require.Equal(t, int8(-1), fd.Value(3, 3))
	assert.True(t, dom.InteriorPitFound, "a pit with 8 valid neighbours is an interior pit")

	// nodata cells resolve to the direction nodata code
	assert.Equal(t, int8(-1), fd.Value(0, 0))
}

func TestFlowDirectionsEdgePitNotInterior(t *testing.T) {
	// a lone valid cell: a pit, but its neighbours are nodata
	n := nodata
	dom := demflow.New(testDEM([][]float64{
		{n, n, n},
		{n, 5, n},
		{n, n, n},
	}, 10.))
	fd := dom.FlowDirections()
	assert.Equal(t, int8(-1), fd.Value(1, 1))
	assert.False(t, dom.InteriorPitFound)
}

func TestFlowDirectionsDeterministic(t *testing.T) {
	a := demflow.New(randomDEM(80, 60, 42)).FlowDirections()
	b := demflow.New(randomDEM(80, 60, 42)).FlowDirections()
	require.Equal(t, a.A, b.A, "direction grids must be bit-identical across runs")
}

func TestFlowDirectionsPointDownhill(t *testing.T) {
	dem := randomDEM(50, 50, 7)
	dom := demflow.New(dem)
	fd := dom.FlowDirections()

	dx := [8]int{1, 1, 1, 0, -1, -1, -1, 0}
	dy := [8]int{-1, 0, 1, 1, 1, 0, -1, -1}
	for row := 0; row < 50; row++ {
		for col := 0; col < 50; col++ {
			dir := fd.Value(row, col)
			if dir < 0 {
				continue
			}
			z, zn := dem.Value(row, col), dem.Value(row+dy[dir], col+dx[dir])
			require.Less(t, zn, z, "direction must target a strictly lower neighbour")
		}
	}
}
