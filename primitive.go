package locohd

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PrimitiveAtom is a typed point in a structure: a categorical type, a tag
// naming the entity the point belongs to (used for same/different-entity
// filtering), and spatial coordinates.
type PrimitiveAtom struct {
	Type        string
	Tag         string
	Coordinates []float64
}

// FromPrimitives compares two structures given as primitive atom lists.
//
// For every requested (anchorA, anchorB) index pair, each side's
// environment is built by scanning all points of its structure: neighbors
// sharing the anchor's tag are skipped when onlyHetero is true, and
// neighbors farther than threshold are dropped. Pass math.Inf(1) as the
// threshold to disable the cutoff. Pairwise distances are cached across
// anchor pairs, so the pairs are evaluated sequentially.
func (l *LoCoHD) FromPrimitives(primA, primB []PrimitiveAtom, anchorPairs [][2]int, onlyHetero bool, threshold float64) ([]float64, error) {
	cacheA := make(map[[2]int]float64)
	cacheB := make(map[[2]int]float64)

	output := make([]float64, 0, len(anchorPairs))
	for _, pair := range anchorPairs {
		if pair[0] < 0 || pair[0] >= len(primA) || pair[1] < 0 || pair[1] >= len(primB) {
			return nil, fmt.Errorf("%w: anchor pair (%d, %d) out of range", ErrInputMismatch, pair[0], pair[1])
		}

		seqA, distsA := buildEnvironment(primA, pair[0], onlyHetero, threshold, cacheA)
		seqB, distsB := buildEnvironment(primB, pair[1], onlyHetero, threshold, cacheB)

		score, err := l.FromAnchors(seqA, distsA, seqB, distsB)
		if err != nil {
			return nil, fmt.Errorf("anchor pair (%d, %d): %w", pair[0], pair[1], err)
		}
		output = append(output, score)
	}
	return output, nil
}

// buildEnvironment collects the anchor's neighbor labels and distances,
// sorted by distance, applying the tag filter and the distance cutoff.
func buildEnvironment(prims []PrimitiveAtom, anchor int, onlyHetero bool, threshold float64, cache map[[2]int]float64) ([]string, []float64) {
	labels := []string{prims[anchor].Type}
	dists := []float64{0}

	for other := range prims {
		if other == anchor {
			continue
		}
		if onlyHetero && prims[anchor].Tag == prims[other].Tag {
			continue
		}

		key := [2]int{anchor, other}
		if anchor > other {
			key = [2]int{other, anchor}
		}
		dist, ok := cache[key]
		if !ok {
			dist = floats.Distance(prims[anchor].Coordinates, prims[other].Coordinates, 2)
			cache[key] = dist
		}

		if dist > threshold {
			continue
		}
		labels = append(labels, prims[other].Type)
		dists = append(dists, dist)
	}

	// Stable so the anchor's self-observation stays first among any
	// coincident points at distance 0.
	sort.Stable(&byDistance{dists: dists, labels: labels})
	return labels, dists
}

// byDistance sorts a label list and its distance list in lockstep.
type byDistance struct {
	dists  []float64
	labels []string
}

func (s *byDistance) Len() int           { return len(s.dists) }
func (s *byDistance) Less(i, j int) bool { return s.dists[i] < s.dists[j] }
func (s *byDistance) Swap(i, j int) {
	s.dists[i], s.dists[j] = s.dists[j], s.dists[i]
	s.labels[i], s.labels[j] = s.labels[j], s.labels[i]
}
