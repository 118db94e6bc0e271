package vec3

import "fmt"

// ErrWidthMismatch indicates a source expression whose width is neither 3
// nor 4.
type ErrWidthMismatch struct {
	Actual int
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("width mismatch: expected 3 or 4, got %d", e.Actual)
}
