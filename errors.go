package locohd

import "errors"

var (
	// ErrInputMismatch indicates malformed environment input: unequal
	// label/distance lengths, an empty environment, or a first distance
	// not equal to 0.
	ErrInputMismatch = errors.New("locohd: input mismatch")
	// ErrDimensionMismatch indicates two distance matrices with differing
	// row counts.
	ErrDimensionMismatch = errors.New("locohd: matrix dimension mismatch")
)
