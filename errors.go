package matgo

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when two matrices with different storage
	// layouts are swapped.
	ErrKindMismatch = errors.New("storage kind mismatch")
)

// ErrInvalidShape indicates a negative or otherwise unusable matrix shape.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidShape struct {
	Rows  int
	Cols  int
	cause error
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid shape: %dx%d", e.Rows, e.Cols)
}

func (e *ErrInvalidShape) Unwrap() error { return e.cause }

// ErrShapeMismatch indicates a shape that a fixed or bounded storage cannot
// hold.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	ExpectedRows int
	ExpectedCols int
	ActualRows   int
	ActualCols   int
	cause        error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: expected %dx%d, got %dx%d",
		e.ExpectedRows, e.ExpectedCols, e.ActualRows, e.ActualCols)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrCapacityExceeded indicates a resize beyond the capacity of a bounded
// storage.
type ErrCapacityExceeded struct {
	Capacity  int
	Requested int
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("capacity exceeded: %d elements requested, capacity is %d", e.Requested, e.Capacity)
}
