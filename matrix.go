package matgo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/matgo/internal/debug"
	"github.com/hupe1980/matgo/snapshot"
	"github.com/hupe1980/matgo/storage"
)

// Matrix is a dense column-major matrix over one of the storage shapes.
//
// Element (r, c) lives at index r + c*rows in the backing buffer. The zero
// value is not usable; construct with New, NewFixed, NewBounded or
// NewFromSpec.
type Matrix[T storage.Scalar] struct {
	spec  storage.Spec
	store storage.Storage[T]
	opts  options
}

// New creates a fully dynamic heap-backed matrix with the given initial
// shape.
func New[T storage.Scalar](rows, cols int, optFns ...Option) (*Matrix[T], error) {
	spec := storage.Spec{Size: storage.Dynamic, Rows: storage.Dynamic, Cols: storage.Dynamic}
	return NewFromSpec[T](spec, rows, cols, optFns...)
}

// NewFixed creates a matrix whose shape is fixed at construction. The buffer
// is allocated once; Resize to any other shape fails.
func NewFixed[T storage.Scalar](rows, cols int, optFns ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, &ErrInvalidShape{Rows: rows, Cols: cols}
	}
	spec := storage.Spec{Size: rows * cols, Rows: rows, Cols: cols}
	return NewFromSpec[T](spec, rows, cols, optFns...)
}

// NewBounded creates a matrix with dynamic shape over a fixed-capacity
// buffer. Resizes beyond maxSize elements fail; resizes within it never
// reallocate.
func NewBounded[T storage.Scalar](maxSize, rows, cols int, optFns ...Option) (*Matrix[T], error) {
	spec := storage.Spec{Size: maxSize, Rows: storage.Dynamic, Cols: storage.Dynamic}
	return NewFromSpec[T](spec, rows, cols, optFns...)
}

// NewFromSpec creates a matrix over the storage shape selected by spec,
// resized to the given initial dimensions. This is the general constructor;
// New, NewFixed and NewBounded cover the common specs.
func NewFromSpec[T storage.Scalar](spec storage.Spec, rows, cols int, optFns ...Option) (*Matrix[T], error) {
	o := applyOptions(optFns)
	if o.dontAlign {
		spec.Options |= storage.DontAlign
	}

	m := &Matrix[T]{spec: spec, opts: o}
	if err := m.checkShape(rows, cols); err != nil {
		return nil, err
	}

	store, err := storage.NewSized[T](spec, rows*cols, rows, cols)
	if err != nil {
		return nil, err
	}
	m.store = store

	return m, nil
}

// Rows returns the current row count.
func (m *Matrix[T]) Rows() int { return m.store.Rows() }

// Cols returns the current column count.
func (m *Matrix[T]) Cols() int { return m.store.Cols() }

// Size returns the current element count (rows * cols).
func (m *Matrix[T]) Size() int { return m.store.Rows() * m.store.Cols() }

// Kind returns the concrete storage shape backing the matrix.
func (m *Matrix[T]) Kind() storage.Kind {
	kind, _ := m.spec.Kind()
	return kind
}

// At returns element (r, c). Bounds are checked in debug builds only.
func (m *Matrix[T]) At(r, c int) T {
	m.assertInRange(r, c)
	return m.store.Data()[r+c*m.store.Rows()]
}

// Set stores v at element (r, c). Bounds are checked in debug builds only.
func (m *Matrix[T]) Set(r, c int, v T) {
	m.assertInRange(r, c)
	m.store.Data()[r+c*m.store.Rows()] = v
}

// AtIndex returns the i-th element in column-major order.
func (m *Matrix[T]) AtIndex(i int) T {
	debug.Assertf(i >= 0 && i < m.Size(), "index %d out of range [0,%d)", i, m.Size())
	return m.store.Data()[i]
}

// SetIndex stores v at the i-th element in column-major order.
func (m *Matrix[T]) SetIndex(i int, v T) {
	debug.Assertf(i >= 0 && i < m.Size(), "index %d out of range [0,%d)", i, m.Size())
	m.store.Data()[i] = v
}

// Col returns the contiguous backing slice of column j. The slice aliases
// the matrix; writes through it are visible in the matrix.
func (m *Matrix[T]) Col(j int) []T {
	rows := m.store.Rows()
	debug.Assertf(j >= 0 && j < m.store.Cols(), "column %d out of range [0,%d)", j, m.store.Cols())
	return m.store.Data()[j*rows : (j+1)*rows : (j+1)*rows]
}

// Data returns the backing buffer in column-major order, sliced to the
// current element count.
func (m *Matrix[T]) Data() []T {
	data := m.store.Data()
	if data == nil {
		return nil
	}
	return data[:m.Size()]
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) {
	data := m.Data()
	for i := range data {
		data[i] = v
	}
}

// Zero sets every element to the zero value.
func (m *Matrix[T]) Zero() {
	clear(m.Data())
}

// Clone returns a deep copy of the matrix, backed by a fresh storage of the
// same shape.
func (m *Matrix[T]) Clone() (*Matrix[T], error) {
	c, err := NewFromSpec[T](m.spec, m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	c.opts = m.opts
	copy(c.Data(), m.Data())
	return c, nil
}

// Resize changes the shape to rows x cols. The resize is destructive:
// previous contents are not preserved. For heap shapes the buffer is
// reallocated exactly when the element count changes; bounded shapes only
// update their counters.
func (m *Matrix[T]) Resize(rows, cols int) error {
	start := time.Now()
	err := m.resize(rows, cols)
	m.opts.metricsCollector.RecordResize(time.Since(start), err)
	m.opts.logger.LogResize(context.Background(), rows, cols, err)
	return err
}

func (m *Matrix[T]) resize(rows, cols int) error {
	if err := m.checkShape(rows, cols); err != nil {
		return err
	}
	m.store.Resize(rows*cols, rows, cols)
	return nil
}

// Swap exchanges contents with other. Both matrices must use the same
// storage shape; heap shapes swap in O(1), bounded and fixed shapes swap
// element-wise.
func (m *Matrix[T]) Swap(other *Matrix[T]) error {
	if m.specShape() != other.specShape() {
		return fmt.Errorf("%w: %s vs %s", ErrKindMismatch, m.Kind(), other.Kind())
	}
	m.store.Swap(other.store)
	return nil
}

// Save writes the matrix to w as a self-describing compressed snapshot.
func (m *Matrix[T]) Save(w io.Writer) error {
	start := time.Now()

	cw := &countWriter{w: w}
	err := snapshot.Save(cw, m.store,
		snapshot.WithCodec(m.opts.codec),
		snapshot.WithCompression(m.opts.compression),
	)

	m.opts.metricsCollector.RecordSave(cw.n, time.Since(start), err)
	m.opts.logger.LogSave(context.Background(), m.Rows(), m.Cols(), cw.n, err)

	return err
}

// Load reads a snapshot from r into the matrix, resizing it to the persisted
// shape. Loading into a fixed or bounded matrix that cannot hold the
// persisted element count fails.
func (m *Matrix[T]) Load(r io.Reader) error {
	start := time.Now()
	err := snapshot.Load(r, m.store)
	m.opts.metricsCollector.RecordLoad(time.Since(start), err)
	m.opts.logger.LogLoad(context.Background(), m.Rows(), m.Cols(), err)
	return err
}

// checkShape validates a target shape against the spec, so that misuse is
// reported as an error in release builds instead of relying on the
// debug-build assertions inside the storage layer.
func (m *Matrix[T]) checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return &ErrInvalidShape{Rows: rows, Cols: cols}
	}

	fixedRows := m.spec.Rows != storage.Dynamic
	fixedCols := m.spec.Cols != storage.Dynamic
	if (fixedRows && rows != m.spec.Rows) || (fixedCols && cols != m.spec.Cols) {
		return &ErrShapeMismatch{
			ExpectedRows: m.spec.Rows,
			ExpectedCols: m.spec.Cols,
			ActualRows:   rows,
			ActualCols:   cols,
		}
	}

	if m.spec.Size != storage.Dynamic && rows*cols > m.spec.Size {
		return &ErrCapacityExceeded{Capacity: m.spec.Size, Requested: rows * cols}
	}

	return nil
}

// specShape is the spec with options stripped; two matrices can swap iff
// their spec shapes are identical.
func (m *Matrix[T]) specShape() storage.Spec {
	s := m.spec
	s.Options = 0
	return s
}

func (m *Matrix[T]) assertInRange(r, c int) {
	if !debug.Enabled {
		return
	}
	debug.Assertf(r >= 0 && r < m.store.Rows() && c >= 0 && c < m.store.Cols(),
		"index (%d,%d) out of range %dx%d", r, c, m.store.Rows(), m.store.Cols())
}

// countWriter counts bytes passed through to the underlying writer.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
