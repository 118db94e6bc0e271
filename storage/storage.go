package storage

import (
	"fmt"

	"github.com/hupe1980/matgo/internal/mem"
)

// Dynamic marks a dimension whose value is only known at runtime.
const Dynamic = -1

// Scalar is the set of element types a storage can hold.
type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Options is a bit set of storage construction flags.
type Options uint8

const (
	// DontAlign disables auto-alignment of backing buffers.
	DontAlign Options = 1 << iota
)

func (o Options) autoAlign() bool {
	return o&DontAlign == 0
}

// Spec describes the shape of a storage before construction: the total
// element count and the two dimensions, each either a fixed value or Dynamic.
type Spec struct {
	Size    int // total element count, or Dynamic
	Rows    int // row count, or Dynamic
	Cols    int // column count, or Dynamic
	Options Options
}

// Kind identifies the concrete storage shape a Spec selects.
type Kind uint8

const (
	// KindFixed is fully fixed-size inline storage.
	KindFixed Kind = iota
	// KindNull is storage with zero total size and no backing buffer.
	KindNull
	// KindInline is dynamic rows and columns over a fixed-capacity buffer.
	KindInline
	// KindInlineRows is dynamic rows, fixed columns, fixed-capacity buffer.
	KindInlineRows
	// KindInlineCols is fixed rows, dynamic columns, fixed-capacity buffer.
	KindInlineCols
	// KindHeap is fully dynamic heap-backed storage.
	KindHeap
	// KindHeapRows is fixed rows, dynamic columns, heap-backed.
	KindHeapRows
	// KindHeapCols is dynamic rows, fixed columns, heap-backed.
	KindHeapCols
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindNull:
		return "null"
	case KindInline:
		return "inline"
	case KindInlineRows:
		return "inline-rows"
	case KindInlineCols:
		return "inline-cols"
	case KindHeap:
		return "heap"
	case KindHeapRows:
		return "heap-rows"
	case KindHeapCols:
		return "heap-cols"
	default:
		return "unknown"
	}
}

// Storage is the operational contract every shape implements. It is the
// narrow interface the matrix layer consumes: dimension readback, destructive
// resize, constant-time-or-elementwise swap, and raw buffer access.
type Storage[T Scalar] interface {
	// Rows returns the current row count.
	Rows() int
	// Cols returns the current column count.
	Cols() int
	// Resize sets the total element count and both dimensions. Previous
	// contents are not preserved. Fixed shapes ignore the call; bounded
	// shapes update counters only; heap shapes reallocate exactly when
	// size differs from the previous rows*cols product.
	Resize(size, rows, cols int)
	// Swap exchanges full state with other, which must be the same
	// concrete shape. Swapping mismatched shapes panics.
	Swap(other Storage[T])
	// Data returns the backing buffer, or nil for null storage. For the
	// bounded shapes the full capacity buffer is returned.
	Data() []T
	// Spec returns the shape declaration this storage was built from:
	// fixed dimensions read back as their values, dynamic ones as Dynamic,
	// and Size is the capacity for fixed and bounded shapes.
	Spec() Spec
}

// Kind resolves the concrete shape the spec selects, or reports why the
// spec is inconsistent.
func (s Spec) Kind() (Kind, error) {
	if s.Size < Dynamic || s.Rows < Dynamic || s.Cols < Dynamic {
		return 0, fmt.Errorf("%w: negative dimension in %+v", ErrInvalidSpec, s)
	}

	fixedRows := s.Rows != Dynamic
	fixedCols := s.Cols != Dynamic

	if s.Size == 0 || (fixedRows && s.Rows == 0) || (fixedCols && s.Cols == 0) {
		return KindNull, nil
	}

	if s.Size == Dynamic {
		switch {
		case fixedRows && fixedCols:
			// Both dimensions fixed imply the size; treat as fixed storage.
			return KindFixed, nil
		case fixedRows:
			return KindHeapRows, nil
		case fixedCols:
			return KindHeapCols, nil
		default:
			return KindHeap, nil
		}
	}

	// Fixed total size: either fully fixed or a bounded capacity.
	switch {
	case fixedRows && fixedCols:
		if s.Rows*s.Cols != s.Size {
			return 0, fmt.Errorf("%w: size %d != rows*cols %dx%d", ErrInvalidSpec, s.Size, s.Rows, s.Cols)
		}
		return KindFixed, nil
	case fixedRows:
		return KindInlineCols, nil
	case fixedCols:
		return KindInlineRows, nil
	default:
		return KindInline, nil
	}
}

// New constructs the storage shape selected by spec. Dynamic dimensions
// start at zero; heap shapes start with no allocation.
func New[T Scalar](spec Spec) (Storage[T], error) {
	return build[T](spec, true)
}

// NewUnchecked is like New but skips the debug-build alignment assertion on
// the backing buffer.
//
// This is an internal-use-only escape hatch for constructing placeholder
// instances whose buffer will be relocated before use. Regular callers want
// New.
func NewUnchecked[T Scalar](spec Spec) (Storage[T], error) {
	return build[T](spec, false)
}

// NewSized constructs the storage selected by spec and immediately resizes it
// to (size, rows, cols). This is the construction path used when the initial
// dimensions are known up front; for heap shapes it performs the first
// allocation eagerly.
func NewSized[T Scalar](spec Spec, size, rows, cols int) (Storage[T], error) {
	s, err := New[T](spec)
	if err != nil {
		return nil, err
	}
	s.Resize(size, rows, cols)
	return s, nil
}

func build[T Scalar](spec Spec, checkAlignment bool) (Storage[T], error) {
	kind, err := spec.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindNull:
		s := newNull[T](spec.Rows, spec.Cols)
		s.spec = spec
		return s, nil
	case KindFixed:
		// Kind only selects KindFixed when both dimensions are fixed.
		s := newFixed[T](spec.Rows, spec.Cols, spec.Options, checkAlignment)
		s.spec = spec
		return s, nil
	case KindInline:
		s := newInline[T](spec.Size, spec.Options, checkAlignment)
		s.spec = spec
		return s, nil
	case KindInlineRows:
		s := newInlineRows[T](spec.Size, spec.Cols, spec.Options, checkAlignment)
		s.spec = spec
		return s, nil
	case KindInlineCols:
		s := newInlineCols[T](spec.Size, spec.Rows, spec.Options, checkAlignment)
		s.spec = spec
		return s, nil
	case KindHeap:
		s := newHeap[T](spec.Options)
		s.spec = spec
		return s, nil
	case KindHeapRows:
		s := newHeapRows[T](spec.Rows, spec.Options)
		s.spec = spec
		return s, nil
	case KindHeapCols:
		s := newHeapCols[T](spec.Cols, spec.Options)
		s.spec = spec
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unhandled kind %s", ErrInvalidSpec, kind)
	}
}

// allocFixed allocates a fixed-capacity buffer, aligned when auto-alignment
// applies and the total byte size is a multiple of the SIMD alignment.
func allocFixed[T Scalar](size int, opts Options) []T {
	if size <= 0 {
		return nil
	}
	if opts.autoAlign() && (size*mem.SizeOf[T]())%mem.Alignment == 0 {
		return mem.AllocSlice[T](size)
	}
	return make([]T, size)
}

// allocHeap allocates a heap buffer, aligned unless auto-alignment is off.
func allocHeap[T Scalar](size int, opts Options) []T {
	if size <= 0 {
		return nil
	}
	if opts.autoAlign() {
		return mem.AllocSlice[T](size)
	}
	return make([]T, size)
}
