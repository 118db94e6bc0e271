package storage

import "errors"

var (
	// ErrInvalidSpec is returned when a Spec is internally inconsistent,
	// e.g. a negative dimension or a fixed size that does not match the
	// fixed rows*cols product.
	ErrInvalidSpec = errors.New("invalid storage spec")
)
