package weight

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// Table returns a weight function backed by a tabulated density: densities[i]
// is the density at xs[i], with linear interpolation between knots and zero
// density outside [xs[0], xs[n-1]]. The table is normalized to total mass 1,
// so it does not need to integrate to one on input. xs must be strictly
// increasing and non-negative.
func Table(xs, densities []float64) (Function, error) {
	if len(xs) < 2 || len(xs) != len(densities) {
		return Function{}, fmt.Errorf("%w: table needs at least two matching knots", ErrInvalidParams)
	}
	if xs[0] < 0 {
		return Function{}, fmt.Errorf("%w: table knots must be non-negative", ErrInvalidParams)
	}
	for i := range xs {
		if i > 0 && xs[i] <= xs[i-1] {
			return Function{}, fmt.Errorf("%w: table knots must be strictly increasing", ErrInvalidParams)
		}
		if densities[i] < 0 || math.IsNaN(densities[i]) || math.IsInf(densities[i], 0) {
			return Function{}, fmt.Errorf("%w: table densities must be finite and non-negative", ErrInvalidParams)
		}
	}

	// Cumulative mass at each knot, by trapezoidal quadrature over the
	// growing prefix of the table.
	cum := make([]float64, len(xs))
	for i := 1; i < len(xs); i++ {
		cum[i] = integrate.Trapezoidal(xs[:i+1], densities[:i+1])
	}
	total := cum[len(cum)-1]
	if total <= 0 {
		return Function{}, fmt.Errorf("%w: table has zero total mass", ErrInvalidParams)
	}

	knots := append([]float64(nil), xs...)
	dens := append([]float64(nil), densities...)
	cdf := func(x float64) float64 {
		if x <= knots[0] {
			return 0
		}
		if x >= knots[len(knots)-1] {
			return 1
		}
		// Segment holding x: knots[i-1] <= x < knots[i].
		i := sort.SearchFloat64s(knots, x)
		if knots[i] == x {
			return cum[i] / total
		}
		t := (x - knots[i-1]) / (knots[i] - knots[i-1])
		dx := dens[i-1] + t*(dens[i]-dens[i-1])
		partial := (dens[i-1] + dx) / 2 * (x - knots[i-1])
		return (cum[i-1] + partial) / total
	}
	return Function{name: "table", cdf: cdf}, nil
}
