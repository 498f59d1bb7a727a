// Package weight provides the weighting densities that tune a LoCoHD
// comparison towards near or far neighbors.
//
// Every shape is evaluated through its cumulative distribution function, so
// the definite integral over [lo, hi) is the difference F(hi) - F(lo) and
// the open-ended tail integral to +Inf is exactly 1 - F(lo). Additivity of
// adjacent ranges holds by construction.
package weight

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Function is a stateless weighting density over the non-negative distance
// axis, with total mass 1. The zero value is not usable; construct one with
// New or one of the shape constructors.
type Function struct {
	name string
	cdf  func(x float64) float64
}

// New builds a weight function from a shape name and a flat parameter
// vector, mirroring the parametrizations accepted by the reference
// implementation:
//
//	"uniform"      params = [min, max]
//	"hyper_exp"    params = [c_1..c_n, rate_1..rate_n]
//	"dagum"        params = [a, b, p]
//	"kumaraswamy"  params = [min, max, alpha, beta]
func New(name string, params []float64) (Function, error) {
	switch name {
	case "uniform":
		if len(params) != 2 {
			return Function{}, fmt.Errorf("%w: uniform needs 2 parameters, got %d", ErrInvalidParams, len(params))
		}
		return Uniform(params[0], params[1])
	case "hyper_exp":
		if len(params) == 0 || len(params)%2 != 0 {
			return Function{}, fmt.Errorf("%w: hyper_exp needs an even, positive parameter count, got %d", ErrInvalidParams, len(params))
		}
		n := len(params) / 2
		return HyperExponential(params[:n], params[n:])
	case "dagum":
		if len(params) != 3 {
			return Function{}, fmt.Errorf("%w: dagum needs 3 parameters, got %d", ErrInvalidParams, len(params))
		}
		return Dagum(params[0], params[1], params[2])
	case "kumaraswamy":
		if len(params) != 4 {
			return Function{}, fmt.Errorf("%w: kumaraswamy needs 4 parameters, got %d", ErrInvalidParams, len(params))
		}
		return Kumaraswamy(params[0], params[1], params[2], params[3])
	default:
		return Function{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// Uniform returns the uniform density on [min, max]. Its support is
// compact, so the tail integral beyond max is zero.
func Uniform(min, max float64) (Function, error) {
	if min < 0 || max <= min {
		return Function{}, fmt.Errorf("%w: uniform needs 0 <= min < max, got [%g, %g]", ErrInvalidParams, min, max)
	}
	u := distuv.Uniform{Min: min, Max: max}
	return Function{name: "uniform", cdf: u.CDF}, nil
}

// HyperExponential returns a normalized mixture of exponential densities
// with the given mixture coefficients and rates. Coefficients need not sum
// to one; they are normalized internally.
func HyperExponential(coefs, rates []float64) (Function, error) {
	if len(coefs) == 0 || len(coefs) != len(rates) {
		return Function{}, fmt.Errorf("%w: hyper_exp needs matching, non-empty coefficient and rate lists", ErrInvalidParams)
	}
	var coefSum float64
	for i := range coefs {
		if coefs[i] <= 0 || rates[i] <= 0 {
			return Function{}, fmt.Errorf("%w: hyper_exp coefficients and rates must be positive", ErrInvalidParams)
		}
		coefSum += coefs[i]
	}
	weights := make([]float64, len(coefs))
	exps := make([]distuv.Exponential, len(rates))
	for i := range coefs {
		weights[i] = coefs[i] / coefSum
		exps[i] = distuv.Exponential{Rate: rates[i]}
	}
	cdf := func(x float64) float64 {
		var f float64
		for i := range exps {
			f += weights[i] * exps[i].CDF(x)
		}
		return f
	}
	return Function{name: "hyper_exp", cdf: cdf}, nil
}

// Dagum returns the Dagum density with shape a, scale b and shape p:
// F(x) = (1 + (x/b)^-a)^-p.
func Dagum(a, b, p float64) (Function, error) {
	if a <= 0 || b <= 0 || p <= 0 {
		return Function{}, fmt.Errorf("%w: dagum needs positive a, b, p, got (%g, %g, %g)", ErrInvalidParams, a, b, p)
	}
	cdf := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return math.Pow(1+math.Pow(x/b, -a), -p)
	}
	return Function{name: "dagum", cdf: cdf}, nil
}

// Kumaraswamy returns the Kumaraswamy density rescaled onto [min, max]:
// F(x) = 1 - (1 - u^alpha)^beta with u = (x - min) / (max - min).
func Kumaraswamy(min, max, alpha, beta float64) (Function, error) {
	if min < 0 || max <= min {
		return Function{}, fmt.Errorf("%w: kumaraswamy needs 0 <= min < max, got [%g, %g]", ErrInvalidParams, min, max)
	}
	if alpha <= 0 || beta <= 0 {
		return Function{}, fmt.Errorf("%w: kumaraswamy needs positive alpha and beta, got (%g, %g)", ErrInvalidParams, alpha, beta)
	}
	cdf := func(x float64) float64 {
		if x <= min {
			return 0
		}
		if x >= max {
			return 1
		}
		u := (x - min) / (max - min)
		return 1 - math.Pow(1-math.Pow(u, alpha), beta)
	}
	return Function{name: "kumaraswamy", cdf: cdf}, nil
}

// Name returns the shape name the function was constructed with.
func (f Function) Name() string { return f.name }

// IntegralPoint returns the cumulative weight up to x, i.e. the definite
// integral of the density over [0, x]. Negative x yields 0.
func (f Function) IntegralPoint(x float64) float64 {
	if x < 0 {
		return 0
	}
	return f.cdf(x)
}

// IntegralRange returns the definite integral of the density over
// [lo, hi). hi may be +Inf, in which case the result is the tail mass
// beyond lo. The bounds must satisfy 0 <= lo <= hi.
func (f Function) IntegralRange(lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi < lo {
		return 0, fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, lo, hi)
	}
	if math.IsInf(hi, 1) {
		return 1 - f.cdf(lo), nil
	}
	return f.cdf(hi) - f.cdf(lo), nil
}
