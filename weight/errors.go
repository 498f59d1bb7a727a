package weight

import "errors"

var (
	// ErrInvalidRange indicates an integral request over a malformed range.
	ErrInvalidRange = errors.New("weight: invalid integration range")
	// ErrInvalidParams indicates parameters outside a shape's domain.
	ErrInvalidParams = errors.New("weight: invalid shape parameters")
	// ErrUnknownShape indicates a shape name New does not recognize.
	ErrUnknownShape = errors.New("weight: unknown shape name")
)
