package locohd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/locohd"
	"github.com/nozzle/locohd/pmf"
)

func TestFromDistanceMatrices(t *testing.T) {
	lchd := newCalculator(t, []string{"A", "B"}, uniform04(t))

	labels := []string{"A", "B"}
	// Structure A holds its two points 2 apart, structure B holds them
	// 1 apart: every row reduces to the golden anchor trace.
	dmxA := [][]float64{{0, 2}, {2, 0}}
	dmxB := [][]float64{{0, 1}, {1, 0}}

	scores, err := lchd.FromDistanceMatrices(labels, labels, dmxA, dmxB)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	want, err := lchd.FromAnchors([]string{"A", "B"}, []float64{0, 2}, []string{"A", "B"}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, want, scores[0], 1e-15)

	// Row 1 anchors on the second point, so the label order flips.
	want, err = lchd.FromAnchors([]string{"B", "A"}, []float64{0, 2}, []string{"B", "A"}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, want, scores[1], 1e-15)
}

func TestFromDistanceMatricesRowCountMismatch(t *testing.T) {
	lchd := newCalculator(t, []string{"A"}, uniform04(t))

	_, err := lchd.FromDistanceMatrices(
		[]string{"A"}, []string{"A"},
		[][]float64{{0}}, [][]float64{{0}, {0}},
	)
	require.ErrorIs(t, err, locohd.ErrDimensionMismatch)
}

func TestFromDistanceMatricesFailFast(t *testing.T) {
	lchd := newCalculator(t, []string{"A"}, uniform04(t))

	// Label "X" is not in the catalog: the whole batch fails, no partial
	// results.
	scores, err := lchd.FromDistanceMatrices(
		[]string{"A", "X"}, []string{"A", "X"},
		[][]float64{{0, 1}, {1, 0}}, [][]float64{{0, 1}, {1, 0}},
	)
	require.ErrorIs(t, err, pmf.ErrUnknownCategory)
	assert.Nil(t, scores)
}

func TestFromDistanceMatricesRowLengthMismatch(t *testing.T) {
	lchd := newCalculator(t, []string{"A"}, uniform04(t))

	_, err := lchd.FromDistanceMatrices(
		[]string{"A", "A"}, []string{"A", "A"},
		[][]float64{{0, 1, 2}, {1, 0, 2}}, [][]float64{{0, 1}, {1, 0}},
	)
	require.ErrorIs(t, err, locohd.ErrInputMismatch)
}

func TestFromDistanceMatricesSortsRows(t *testing.T) {
	lchd := newCalculator(t, []string{"A", "B", "C"}, uniform04(t))

	// Unsorted rows must be ordered together with their labels before the
	// sweep; identical structures still score zero everywhere.
	labels := []string{"A", "B", "C"}
	dmx := [][]float64{
		{0, 2.5, 1.0},
		{2.5, 0, 1.5},
		{1.0, 1.5, 0},
	}
	scores, err := lchd.FromDistanceMatrices(labels, labels, dmx, dmx)
	require.NoError(t, err)
	for i, score := range scores {
		assert.Zerof(t, score, "row %d", i)
	}
}

func TestFromCoords(t *testing.T) {
	lchd := newCalculator(t, []string{"A", "B"}, uniform04(t))

	labels := []string{"A", "B"}
	coordsA := [][]float64{{0, 0, 0}, {2, 0, 0}}
	coordsB := [][]float64{{0, 0, 0}, {0, 1, 0}}

	scores, err := lchd.FromCoords(labels, labels, coordsA, coordsB)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	// Same geometry as the golden trace: pair distances 2 vs 1.
	assert.InDelta(t, 0.13529902503654926, scores[0], 1e-12)
	assert.InDelta(t, 0.13529902503654926, scores[1], 1e-12)
}

func TestFromCoordsManyWorkersMatchesSerial(t *testing.T) {
	labels := []string{"A", "B", "C", "A", "B", "C"}
	coordsA := [][]float64{
		{0, 0}, {1, 0}, {0, 2}, {3, 1}, {2, 2}, {5, 0},
	}
	coordsB := [][]float64{
		{0, 0}, {1.2, 0}, {0, 1.7}, {2.8, 1}, {2, 2.4}, {4.6, 0.2},
	}

	serial := newCalculator(t, []string{"A", "B", "C"}, uniform04(t))
	serial.NumWorkers = 1
	wantScores, err := serial.FromCoords(labels, labels, coordsA, coordsB)
	require.NoError(t, err)

	parallel := newCalculator(t, []string{"A", "B", "C"}, uniform04(t))
	parallel.NumWorkers = 4
	gotScores, err := parallel.FromCoords(labels, labels, coordsA, coordsB)
	require.NoError(t, err)

	assert.Equal(t, wantScores, gotScores)
}
