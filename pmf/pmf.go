// Package pmf tracks a pair of categorical probability mass functions and
// measures the Hellinger distance between them.
//
// A System holds one running histogram per environment over a shared
// category Catalog. Observations are only ever added, one category at a
// time, so the normalized distributions can be queried cheaply at any point
// of a sweep.
package pmf

import (
	"fmt"
	"math"
)

// Catalog is the fixed, ordered set of valid category names shared by both
// environments of a comparison. It is immutable after construction and safe
// for concurrent readers.
type Catalog struct {
	names   []string
	indices map[string]int
}

// NewCatalog builds a catalog from an ordered list of category names.
// The list must be non-empty and free of duplicates.
func NewCatalog(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("pmf: catalog needs at least one category")
	}
	indices := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := indices[name]; dup {
			return nil, fmt.Errorf("pmf: duplicate category %q", name)
		}
		indices[name] = i
	}
	return &Catalog{names: append([]string(nil), names...), indices: indices}, nil
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.names) }

// Names returns a copy of the category names in catalog order.
func (c *Catalog) Names() []string { return append([]string(nil), c.names...) }

// Index returns the position of name in the catalog.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.indices[name]
	return i, ok
}

// Resolve maps a label sequence to category indices, erroring on the first
// label not present in the catalog. Resolving once up front keeps name
// hashing out of the merge loop.
func (c *Catalog) Resolve(labels []string) ([]int, error) {
	resolved := make([]int, len(labels))
	for i, label := range labels {
		idx, ok := c.indices[label]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
		}
		resolved[i] = idx
	}
	return resolved, nil
}

// System is a pair of categorical histograms over one catalog.
// Counts only grow; the zero totals state is only valid until the first
// observation on each side.
type System struct {
	catalog *Catalog
	countsA []int
	countsB []int
	totalA  int
	totalB  int
}

// NewSystem creates a system with all counts zero.
func NewSystem(catalog *Catalog) *System {
	return &System{
		catalog: catalog,
		countsA: make([]int, catalog.Len()),
		countsB: make([]int, catalog.Len()),
	}
}

// AddA records one observation of the named category on side A.
func (s *System) AddA(name string) error {
	idx, ok := s.catalog.Index(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return s.AddIndexA(idx)
}

// AddB records one observation of the named category on side B.
func (s *System) AddB(name string) error {
	idx, ok := s.catalog.Index(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return s.AddIndexB(idx)
}

// AddIndexA records one observation of category index idx on side A.
func (s *System) AddIndexA(idx int) error {
	if idx < 0 || idx >= len(s.countsA) {
		return fmt.Errorf("%w: index %d", ErrUnknownCategory, idx)
	}
	s.countsA[idx]++
	s.totalA++
	return nil
}

// AddIndexB records one observation of category index idx on side B.
func (s *System) AddIndexB(idx int) error {
	if idx < 0 || idx >= len(s.countsB) {
		return fmt.Errorf("%w: index %d", ErrUnknownCategory, idx)
	}
	s.countsB[idx]++
	s.totalB++
	return nil
}

// HellingerDist returns the Hellinger distance between the two sides'
// current normalized distributions:
//
//	H(P, Q) = sqrt(0.5 * sum((sqrt(P_i) - sqrt(Q_i))^2))
//
// The result is in [0, 1]. Both sides must have received at least one
// observation.
func (s *System) HellingerDist() (float64, error) {
	if s.totalA == 0 || s.totalB == 0 {
		return 0, ErrEmptyDistribution
	}
	totalA := float64(s.totalA)
	totalB := float64(s.totalB)
	var sum float64
	for i := range s.countsA {
		d := math.Sqrt(float64(s.countsA[i])/totalA) - math.Sqrt(float64(s.countsB[i])/totalB)
		sum += d * d
	}
	return math.Sqrt(0.5 * sum), nil
}
