package pmf

import "errors"

var (
	// ErrUnknownCategory indicates a label that is not part of the catalog.
	ErrUnknownCategory = errors.New("pmf: category not in catalog")
	// ErrEmptyDistribution indicates a distance query before any
	// observation was added to one of the sides.
	ErrEmptyDistribution = errors.New("pmf: distribution has no observations")
)
