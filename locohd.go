// Package locohd implements the Local Composition Hellinger Distance
// (LoCoHD), a dissimilarity statistic between the categorical neighbor
// compositions of two anchor points.
//
// Each anchor's environment is a distance-sorted sequence of categorical
// labels. As the radius grows, the two environments' label compositions are
// compared with the Hellinger distance, and the resulting step function is
// integrated exactly against a user-chosen weighting density.
//
// This is a Go port of the core of the original Rust/Python implementation
// by Zsolt Fazekas: https://github.com/fazekaszs/loco_hd
//
// Basic usage:
//
//	wf, _ := weight.Uniform(3, 10)
//	lchd, _ := locohd.New([]string{"A", "B", "C"}, wf)
//	score, err := lchd.FromAnchors(labelsA, distsA, labelsB, distsB)
package locohd

import (
	"fmt"
	"math"

	"github.com/nozzle/locohd/pmf"
	"github.com/nozzle/locohd/weight"
)

// LoCoHD compares anchor environments over a fixed category set with a
// fixed weighting density. A value is immutable after construction apart
// from NumWorkers and safe for concurrent use; every comparison owns its
// own scratch state.
type LoCoHD struct {
	// NumWorkers bounds the parallel fan-out of the batch operations.
	// 0 = auto-detect based on CPU cores.
	NumWorkers int

	catalog *pmf.Catalog
	wfunc   weight.Function
}

// New creates a LoCoHD calculator over the given ordered category set.
func New(categories []string, wf weight.Function) (*LoCoHD, error) {
	catalog, err := pmf.NewCatalog(categories)
	if err != nil {
		return nil, err
	}
	return &LoCoHD{catalog: catalog, wfunc: wf}, nil
}

// Categories returns the category names in catalog order.
func (l *LoCoHD) Categories() []string { return l.catalog.Names() }

// WeightFunction returns the weighting density the calculator integrates
// against.
func (l *LoCoHD) WeightFunction() weight.Function { return l.wfunc }

// FromAnchors computes the LoCoHD score between two environments belonging
// to one anchor pair.
//
// Each environment is a pair of parallel slices: labels and non-decreasing
// distances of equal length, starting with the anchor's self-observation at
// distance exactly 0. The score is the integral of the Hellinger distance
// between the two running label compositions, weighted by the calculator's
// density, swept over the distance axis out to +Inf.
//
// The sweep is a merge (as in merge sort's combine step) over the two
// distance lists: the composition only changes when a cursor crosses a new
// neighbor, so between boundaries the Hellinger distance is constant and
// its weighted contribution is exact. Runs in O(len(a) + len(b)).
func (l *LoCoHD) FromAnchors(labelsA []string, distsA []float64, labelsB []string, distsB []float64) (float64, error) {
	if len(labelsA) != len(distsA) || len(labelsB) != len(distsB) {
		return 0, fmt.Errorf("%w: labels and distances must have equal lengths", ErrInputMismatch)
	}
	if len(distsA) == 0 || len(distsB) == 0 {
		return 0, fmt.Errorf("%w: environments must contain at least the anchor itself", ErrInputMismatch)
	}
	if distsA[0] != 0 || distsB[0] != 0 {
		return 0, fmt.Errorf("%w: distance lists must start with a distance of 0", ErrInputMismatch)
	}

	// Resolve names to catalog indices once, before the hot loop.
	seqA, err := l.catalog.Resolve(labelsA)
	if err != nil {
		return 0, err
	}
	seqB, err := l.catalog.Resolve(labelsB)
	if err != nil {
		return 0, err
	}

	// Seed the paired PMFs with the two self-observations at distance 0.
	sys := pmf.NewSystem(l.catalog)
	if err := sys.AddIndexA(seqA[0]); err != nil {
		return 0, err
	}
	if err := sys.AddIndexB(seqB[0]); err != nil {
		return 0, err
	}

	var (
		idxA, idxB int
		integral   float64
		prev       float64 // boundary up to which the integral is accounted
	)

	// Main loop: collate the two distance lists, integrating the current
	// Hellinger step over each inter-boundary interval.
	for idxA < len(seqA)-1 && idxB < len(seqB)-1 {
		hdist, err := sys.HellingerDist()
		if err != nil {
			return 0, err
		}

		var next float64
		switch {
		case distsA[idxA+1] < distsB[idxB+1]:
			idxA++
			if err := sys.AddIndexA(seqA[idxA]); err != nil {
				return 0, err
			}
			next = distsA[idxA]
		case distsA[idxA+1] > distsB[idxB+1]:
			idxB++
			if err := sys.AddIndexB(seqB[idxB]); err != nil {
				return 0, err
			}
			next = distsB[idxB]
		default:
			// Tied boundary: both environments gain a neighbor at once.
			idxA++
			idxB++
			if err := sys.AddIndexA(seqA[idxA]); err != nil {
				return 0, err
			}
			if err := sys.AddIndexB(seqB[idxB]); err != nil {
				return 0, err
			}
			next = distsA[idxA]
		}

		dw, err := l.wfunc.IntegralRange(prev, next)
		if err != nil {
			return 0, err
		}
		integral += dw * hdist
		prev = next
	}

	// Finalization: one side is exhausted, its composition stays frozen
	// while the other keeps adding neighbors.
	for idxB < len(seqB)-1 {
		hdist, err := sys.HellingerDist()
		if err != nil {
			return 0, err
		}
		idxB++
		dw, err := l.wfunc.IntegralRange(prev, distsB[idxB])
		if err != nil {
			return 0, err
		}
		integral += dw * hdist
		prev = distsB[idxB]
		if err := sys.AddIndexB(seqB[idxB]); err != nil {
			return 0, err
		}
	}
	for idxA < len(seqA)-1 {
		hdist, err := sys.HellingerDist()
		if err != nil {
			return 0, err
		}
		idxA++
		dw, err := l.wfunc.IntegralRange(prev, distsA[idxA])
		if err != nil {
			return 0, err
		}
		integral += dw * hdist
		prev = distsA[idxA]
		if err := sys.AddIndexA(seqA[idxA]); err != nil {
			return 0, err
		}
	}

	// Tail integral: the final composition is assumed to persist beyond the
	// farthest observed neighbor on either side.
	hdist, err := sys.HellingerDist()
	if err != nil {
		return 0, err
	}
	dw, err := l.wfunc.IntegralRange(prev, math.Inf(1))
	if err != nil {
		return 0, err
	}
	integral += dw * hdist

	return integral, nil
}
