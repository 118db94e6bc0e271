package matgo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matgo/internal/debug"
	"github.com/hupe1980/matgo/snapshot"
	"github.com/hupe1980/matgo/storage"
)

func TestNew(t *testing.T) {
	m, err := New[float32](2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, storage.KindHeap, m.Kind())

	m.Set(1, 2, 42)
	assert.Equal(t, float32(42), m.At(1, 2))

	// Column-major: (1,2) lives at 1 + 2*rows.
	assert.Equal(t, float32(42), m.Data()[1+2*2])
}

func TestNewInvalidShape(t *testing.T) {
	_, err := New[float32](-1, 2)

	var is *ErrInvalidShape
	require.ErrorAs(t, err, &is)
	assert.Equal(t, -1, is.Rows)
}

func TestNewFixed(t *testing.T) {
	m, err := NewFixed[float64](4, 4)
	require.NoError(t, err)
	assert.Equal(t, storage.KindFixed, m.Kind())

	// Same shape is accepted, any other shape is rejected.
	require.NoError(t, m.Resize(4, 4))

	var sm *ErrShapeMismatch
	require.ErrorAs(t, m.Resize(2, 8), &sm)
	assert.Equal(t, 4, sm.ExpectedRows)
	assert.Equal(t, 2, sm.ActualRows)
}

func TestNewBounded(t *testing.T) {
	m, err := NewBounded[float32](16, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, storage.KindInline, m.Kind())

	base := &m.store.Data()[0]

	require.NoError(t, m.Resize(4, 4))
	assert.Equal(t, 4, m.Rows())
	// Resizing within capacity keeps the backing buffer.
	assert.Same(t, base, &m.store.Data()[0])

	var ce *ErrCapacityExceeded
	require.ErrorAs(t, m.Resize(5, 5), &ce)
	assert.Equal(t, 16, ce.Capacity)
	assert.Equal(t, 25, ce.Requested)
}

func TestResizeHeapReallocation(t *testing.T) {
	m, err := New[float32](2, 3)
	require.NoError(t, err)

	base := &m.Data()[0]

	// Same element count: transposed shape keeps the buffer.
	require.NoError(t, m.Resize(3, 2))
	assert.Same(t, base, &m.Data()[0])

	// Different element count: reallocated.
	require.NoError(t, m.Resize(4, 4))
	assert.NotSame(t, base, &m.Data()[0])
}

func TestAtIndex(t *testing.T) {
	m, err := New[float32](2, 2)
	require.NoError(t, err)

	m.SetIndex(3, 5)
	assert.Equal(t, float32(5), m.AtIndex(3))
	assert.Equal(t, float32(5), m.At(1, 1))
}

func TestColAliasesMatrix(t *testing.T) {
	m, err := New[float32](3, 2)
	require.NoError(t, err)

	col := m.Col(1)
	require.Len(t, col, 3)
	col[2] = 7

	assert.Equal(t, float32(7), m.At(2, 1))
}

func TestAtOutOfRange(t *testing.T) {
	if !debug.Enabled {
		t.Skip("assertions disabled")
	}

	m, err := New[float32](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestFillZeroClone(t *testing.T) {
	m, err := New[int32](2, 2)
	require.NoError(t, err)

	m.Fill(9)
	assert.Equal(t, []int32{9, 9, 9, 9}, m.Data())

	c, err := m.Clone()
	require.NoError(t, err)
	assert.Equal(t, m.Data(), c.Data())

	// Clone is deep: mutating the original leaves the clone alone.
	m.Zero()
	assert.Equal(t, []int32{0, 0, 0, 0}, m.Data())
	assert.Equal(t, []int32{9, 9, 9, 9}, c.Data())
}

func TestSwapHeap(t *testing.T) {
	a, err := New[float32](2, 2)
	require.NoError(t, err)
	a.Fill(1)

	b, err := New[float32](1, 3)
	require.NoError(t, err)
	b.Fill(2)

	aBase, bBase := &a.Data()[0], &b.Data()[0]

	require.NoError(t, a.Swap(b))

	// Heap swap exchanges buffers without copying elements.
	assert.Same(t, bBase, &a.Data()[0])
	assert.Same(t, aBase, &b.Data()[0])
	assert.Equal(t, 1, a.Rows())
	assert.Equal(t, 3, a.Cols())
	assert.Equal(t, 2, b.Rows())
}

func TestSwapKindMismatch(t *testing.T) {
	a, err := New[float32](2, 2)
	require.NoError(t, err)

	b, err := NewFixed[float32](2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, a.Swap(b), ErrKindMismatch)
}

func TestSaveLoad(t *testing.T) {
	m, err := New[float32](2, 3, WithCompression(snapshot.CompressionLZ4))
	require.NoError(t, err)
	copy(m.Data(), []float32{1, 2, 3, 4, 5, 6})

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := New[float32](0, 0)
	require.NoError(t, err)
	require.NoError(t, loaded.Load(&buf))

	assert.Equal(t, 2, loaded.Rows())
	assert.Equal(t, 3, loaded.Cols())
	assert.Equal(t, m.Data(), loaded.Data())
}

func TestMetricsCollection(t *testing.T) {
	mc := &BasicMetricsCollector{}

	m, err := New[float32](2, 2, WithMetricsCollector(mc))
	require.NoError(t, err)

	require.NoError(t, m.Resize(3, 3))

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))
	written := int64(buf.Len())
	require.NoError(t, m.Load(&buf))

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.ResizeCount)
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, written, stats.SaveBytes)
}

func TestDontAlign(t *testing.T) {
	m, err := New[float32](4, 4, WithDontAlign())
	require.NoError(t, err)

	// Still fully usable, just without the alignment guarantee.
	m.Fill(1)
	assert.Equal(t, float32(1), m.At(3, 3))
}

func BenchmarkAt(b *testing.B) {
	m, err := New[float32](64, 64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink float32
	for i := 0; i < b.N; i++ {
		sink += m.At(i%64, (i/64)%64)
	}
	_ = sink
}

func BenchmarkResizeSameSize(b *testing.B) {
	m, err := New[float32](64, 64)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Resize(64, 64)
	}
}
