package storage

// Heap is fully dynamic heap-backed storage. The buffer always holds exactly
// rows*cols elements as of the last completed resize; a resize reallocates
// if and only if that product changes, and a zero-size resize drops the
// buffer entirely.
//
// The replacement buffer is allocated before the old reference is released,
// so an allocation failure leaves the previous state intact.
type Heap[T Scalar] struct {
	data []T
	rows int
	cols int
	opts Options
	spec Spec
}

func newHeap[T Scalar](opts Options) *Heap[T] {
	return &Heap[T]{opts: opts}
}

// Rows returns the current row count.
func (s *Heap[T]) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *Heap[T]) Cols() int { return s.cols }

// Resize reallocates when size differs from the current rows*cols product.
// Contents are never preserved.
func (s *Heap[T]) Resize(size, rows, cols int) {
	if size != s.rows*s.cols {
		if size > 0 {
			s.data = allocHeap[T](size, s.opts)
		} else {
			s.data = nil
		}
	}
	s.rows = rows
	s.cols = cols
}

// Swap exchanges buffer ownership and counters with other, which must be a
// *Heap. O(1).
func (s *Heap[T]) Swap(other Storage[T]) {
	o := other.(*Heap[T])
	s.data, o.data = o.data, s.data
	s.rows, o.rows = o.rows, s.rows
	s.cols, o.cols = o.cols, s.cols
}

// Data returns the heap buffer, nil when the storage is empty.
func (s *Heap[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *Heap[T]) Spec() Spec { return s.spec }

// HeapRows is fixed-rows, dynamic-cols heap-backed storage. Only the column
// counter varies; the buffer holds rows*cols elements.
type HeapRows[T Scalar] struct {
	data []T
	rows int // fixed
	cols int
	opts Options
	spec Spec
}

func newHeapRows[T Scalar](rows int, opts Options) *HeapRows[T] {
	return &HeapRows[T]{rows: rows, opts: opts}
}

// Rows returns the fixed row count.
func (s *HeapRows[T]) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *HeapRows[T]) Cols() int { return s.cols }

// Resize reallocates when size differs from the current rows*cols product.
// Contents are never preserved.
func (s *HeapRows[T]) Resize(size, _, cols int) {
	if size != s.rows*s.cols {
		if size > 0 {
			s.data = allocHeap[T](size, s.opts)
		} else {
			s.data = nil
		}
	}
	s.cols = cols
}

// Swap exchanges buffer ownership and the column counter with other, which
// must be a *HeapRows. O(1).
func (s *HeapRows[T]) Swap(other Storage[T]) {
	o := other.(*HeapRows[T])
	s.data, o.data = o.data, s.data
	s.cols, o.cols = o.cols, s.cols
}

// Data returns the heap buffer, nil when the storage is empty.
func (s *HeapRows[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *HeapRows[T]) Spec() Spec { return s.spec }

// HeapCols is dynamic-rows, fixed-cols heap-backed storage. Only the row
// counter varies; the buffer holds rows*cols elements.
type HeapCols[T Scalar] struct {
	data []T
	rows int
	cols int // fixed
	opts Options
	spec Spec
}

func newHeapCols[T Scalar](cols int, opts Options) *HeapCols[T] {
	return &HeapCols[T]{cols: cols, opts: opts}
}

// Rows returns the current row count.
func (s *HeapCols[T]) Rows() int { return s.rows }

// Cols returns the fixed column count.
func (s *HeapCols[T]) Cols() int { return s.cols }

// Resize reallocates when size differs from the current rows*cols product.
// Contents are never preserved.
func (s *HeapCols[T]) Resize(size, rows, _ int) {
	if size != s.rows*s.cols {
		if size > 0 {
			s.data = allocHeap[T](size, s.opts)
		} else {
			s.data = nil
		}
	}
	s.rows = rows
}

// Swap exchanges buffer ownership and the row counter with other, which must
// be a *HeapCols. O(1).
func (s *HeapCols[T]) Swap(other Storage[T]) {
	o := other.(*HeapCols[T])
	s.data, o.data = o.data, s.data
	s.rows, o.rows = o.rows, s.rows
}

// Data returns the heap buffer, nil when the storage is empty.
func (s *HeapCols[T]) Data() []T { return s.data }

// Spec returns the shape declaration the storage was built from.
func (s *HeapCols[T]) Spec() Spec { return s.spec }
