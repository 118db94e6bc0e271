package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptSnapshot is returned when a snapshot's header, manifest or
	// payload cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrUnknownCodec is returned when the codec named in a snapshot header
	// is not registered.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrIncompatibleStorage is returned when a snapshot's shape cannot be
	// held by the storage it is being loaded into (fixed dimension mismatch
	// or bounded capacity exceeded).
	ErrIncompatibleStorage = errors.New("incompatible storage")
)

// ErrScalarMismatch indicates a snapshot whose element type differs from the
// storage it is being loaded into.
type ErrScalarMismatch struct {
	Expected string
	Actual   string
}

func (e *ErrScalarMismatch) Error() string {
	return fmt.Sprintf("scalar mismatch: storage holds %s, snapshot holds %s", e.Expected, e.Actual)
}
