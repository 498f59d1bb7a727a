package locohd

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/nozzle/locohd/internal/parallel"
)

// FromDistanceMatrices compares two structures given their label sequences
// and precomputed pairwise distance matrices. Row i of each matrix holds
// anchor i's distances to every point of its own structure; anchor i of
// structure A is compared against anchor i of structure B.
//
// The rows are independent and are evaluated in parallel, bounded by
// NumWorkers. Results preserve row order. If any row comparison fails the
// whole call fails.
func (l *LoCoHD) FromDistanceMatrices(labelsA, labelsB []string, dmxA, dmxB [][]float64) ([]float64, error) {
	if len(dmxA) != len(dmxB) {
		return nil, fmt.Errorf("%w: expected matrices with the same number of rows, got %d and %d",
			ErrDimensionMismatch, len(dmxA), len(dmxB))
	}

	results := make([]float64, len(dmxA))
	var g errgroup.Group
	g.SetLimit(l.workers())
	for i := range dmxA {
		g.Go(func() error {
			distsA, seqA, err := sortTogether(dmxA[i], labelsA)
			if err != nil {
				return fmt.Errorf("anchor %d: %w", i, err)
			}
			distsB, seqB, err := sortTogether(dmxB[i], labelsB)
			if err != nil {
				return fmt.Errorf("anchor %d: %w", i, err)
			}
			score, err := l.FromAnchors(seqA, distsA, seqB, distsB)
			if err != nil {
				return fmt.Errorf("anchor %d: %w", i, err)
			}
			results[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FromCoords compares two structures given their label sequences and point
// coordinates. It computes the Euclidean distance matrices first, then
// delegates to FromDistanceMatrices.
func (l *LoCoHD) FromCoords(labelsA, labelsB []string, coordsA, coordsB [][]float64) ([]float64, error) {
	dmxA := l.distanceMatrix(coordsA)
	dmxB := l.distanceMatrix(coordsB)
	return l.FromDistanceMatrices(labelsA, labelsB, dmxA, dmxB)
}

// distanceMatrix computes the full pairwise Euclidean distance matrix,
// one row per point, rows in parallel.
func (l *LoCoHD) distanceMatrix(coords [][]float64) [][]float64 {
	dmx := make([][]float64, len(coords))
	parallel.ParallelFor(0, len(coords), l.workers(), func(i int) {
		row := make([]float64, len(coords))
		for j := range coords {
			row[j] = floats.Distance(coords[i], coords[j], 2)
		}
		dmx[i] = row
	})
	return dmx
}

func (l *LoCoHD) workers() int {
	if l.NumWorkers > 0 {
		return l.NumWorkers
	}
	return parallel.NumWorkers()
}

// sortTogether reorders a distance row and the matching label sequence by
// non-decreasing distance, keeping ties in their input order. The inputs
// are left untouched.
func sortTogether(dists []float64, labels []string) ([]float64, []string, error) {
	if len(dists) != len(labels) {
		return nil, nil, fmt.Errorf("%w: %d distances for %d labels", ErrInputMismatch, len(dists), len(labels))
	}
	order := make([]int, len(dists))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dists[order[i]] < dists[order[j]]
	})
	sortedDists := make([]float64, len(dists))
	sortedLabels := make([]string, len(labels))
	for i, idx := range order {
		sortedDists[i] = dists[idx]
		sortedLabels[i] = labels[idx]
	}
	return sortedDists, sortedLabels, nil
}
