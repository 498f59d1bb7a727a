package pmf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/locohd/pmf"
)

func TestNewCatalog(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, []string{"A", "B", "C"}, catalog.Names())

	idx, ok := catalog.Index("B")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = catalog.Index("Z")
	assert.False(t, ok)
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := pmf.NewCatalog([]string{"A", "B", "A"})
	require.Error(t, err)
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	_, err := pmf.NewCatalog(nil)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B"})
	require.NoError(t, err)

	resolved, err := catalog.Resolve([]string{"B", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, resolved)

	_, err = catalog.Resolve([]string{"A", "X"})
	require.ErrorIs(t, err, pmf.ErrUnknownCategory)
}

func TestAddUnknownCategory(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A"})
	require.NoError(t, err)

	sys := pmf.NewSystem(catalog)
	require.ErrorIs(t, sys.AddA("X"), pmf.ErrUnknownCategory)
	require.ErrorIs(t, sys.AddB("X"), pmf.ErrUnknownCategory)
	require.ErrorIs(t, sys.AddIndexA(1), pmf.ErrUnknownCategory)
	require.ErrorIs(t, sys.AddIndexB(-1), pmf.ErrUnknownCategory)
}

func TestHellingerDistRequiresObservations(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B"})
	require.NoError(t, err)

	sys := pmf.NewSystem(catalog)
	_, err = sys.HellingerDist()
	require.ErrorIs(t, err, pmf.ErrEmptyDistribution)

	// One-sided initialization is still an error.
	require.NoError(t, sys.AddA("A"))
	_, err = sys.HellingerDist()
	require.ErrorIs(t, err, pmf.ErrEmptyDistribution)
}

func TestHellingerDistIdentical(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B", "C"})
	require.NoError(t, err)

	sys := pmf.NewSystem(catalog)
	for _, name := range []string{"A", "A", "B", "C"} {
		require.NoError(t, sys.AddA(name))
		require.NoError(t, sys.AddB(name))
	}

	h, err := sys.HellingerDist()
	require.NoError(t, err)
	assert.Zero(t, h)
}

func TestHellingerDistKnownValue(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B"})
	require.NoError(t, err)

	// P = {A: 1}, Q = {A: 1/2, B: 1/2}.
	sys := pmf.NewSystem(catalog)
	require.NoError(t, sys.AddA("A"))
	require.NoError(t, sys.AddB("A"))
	require.NoError(t, sys.AddB("B"))

	h, err := sys.HellingerDist()
	require.NoError(t, err)

	want := math.Sqrt(0.5 * (math.Pow(1-math.Sqrt(0.5), 2) + 0.5))
	assert.InDelta(t, want, h, 1e-15)
}

func TestHellingerDistDisjoint(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B"})
	require.NoError(t, err)

	sys := pmf.NewSystem(catalog)
	require.NoError(t, sys.AddA("A"))
	require.NoError(t, sys.AddB("B"))

	h, err := sys.HellingerDist()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, h, 1e-15)
}

func TestHellingerDistOrderIndependent(t *testing.T) {
	catalog, err := pmf.NewCatalog([]string{"A", "B", "C"})
	require.NoError(t, err)

	first := pmf.NewSystem(catalog)
	for _, name := range []string{"A", "B", "B", "C"} {
		require.NoError(t, first.AddA(name))
	}
	require.NoError(t, first.AddB("C"))

	second := pmf.NewSystem(catalog)
	for _, name := range []string{"B", "C", "A", "B"} {
		require.NoError(t, second.AddA(name))
	}
	require.NoError(t, second.AddB("C"))

	h1, err := first.HellingerDist()
	require.NoError(t, err)
	h2, err := second.HellingerDist()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}
