package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matgo/internal/mem"
)

func TestSpecKind(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Kind
	}{
		{"fully fixed", Spec{Size: 12, Rows: 3, Cols: 4}, KindFixed},
		{"fixed dims implied size", Spec{Size: Dynamic, Rows: 3, Cols: 4}, KindFixed},
		{"zero size", Spec{Size: 0, Rows: 0, Cols: 0}, KindNull},
		{"zero rows", Spec{Size: Dynamic, Rows: 0, Cols: Dynamic}, KindNull},
		{"zero cols", Spec{Size: Dynamic, Rows: Dynamic, Cols: 0}, KindNull},
		{"bounded both dynamic", Spec{Size: 16, Rows: Dynamic, Cols: Dynamic}, KindInline},
		{"bounded dynamic rows", Spec{Size: 16, Rows: Dynamic, Cols: 4}, KindInlineRows},
		{"bounded dynamic cols", Spec{Size: 16, Rows: 4, Cols: Dynamic}, KindInlineCols},
		{"fully dynamic", Spec{Size: Dynamic, Rows: Dynamic, Cols: Dynamic}, KindHeap},
		{"heap fixed rows", Spec{Size: Dynamic, Rows: 4, Cols: Dynamic}, KindHeapRows},
		{"heap fixed cols", Spec{Size: Dynamic, Rows: Dynamic, Cols: 4}, KindHeapCols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := tt.spec.Kind()
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestSpecKindInvalid(t *testing.T) {
	_, err := Spec{Size: 10, Rows: 3, Cols: 4}.Kind()
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Spec{Size: -2, Rows: 3, Cols: 4}.Kind()
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = New[float32](Spec{Size: 10, Rows: 3, Cols: 4})
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestNewSelectsShape(t *testing.T) {
	s, err := New[float32](Spec{Size: 12, Rows: 3, Cols: 4})
	require.NoError(t, err)
	assert.IsType(t, &Fixed[float32]{}, s)

	s, err = New[float32](Spec{Size: 0, Rows: 0, Cols: 0})
	require.NoError(t, err)
	assert.IsType(t, &Null[float32]{}, s)

	s, err = New[float32](Spec{Size: 16, Rows: Dynamic, Cols: Dynamic})
	require.NoError(t, err)
	assert.IsType(t, &Inline[float32]{}, s)

	s, err = New[float32](Spec{Size: Dynamic, Rows: Dynamic, Cols: Dynamic})
	require.NoError(t, err)
	assert.IsType(t, &Heap[float32]{}, s)

	s, err = New[float32](Spec{Size: Dynamic, Rows: 4, Cols: Dynamic})
	require.NoError(t, err)
	assert.IsType(t, &HeapRows[float32]{}, s)

	s, err = New[float32](Spec{Size: Dynamic, Rows: Dynamic, Cols: 4})
	require.NoError(t, err)
	assert.IsType(t, &HeapCols[float32]{}, s)
}

func TestFixedStorage(t *testing.T) {
	s, err := New[float32](Spec{Size: 12, Rows: 3, Cols: 4})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 4, s.Cols())
	assert.Len(t, s.Data(), 12)

	// Resize with consistent dimensions is a no-op.
	s.Data()[5] = 42
	s.Resize(12, 3, 4)
	assert.Equal(t, float32(42), s.Data()[5])
	assert.Equal(t, 3, s.Rows())
}

func TestFixedAlignment(t *testing.T) {
	// 12 float32 = 48 bytes, a multiple of 16: must be aligned.
	s, err := New[float32](Spec{Size: 12, Rows: 3, Cols: 4})
	require.NoError(t, err)
	assert.True(t, mem.IsAligned(s.Data()))

	// 4 float64 = 32 bytes: aligned.
	d, err := New[float64](Spec{Size: 4, Rows: 4, Cols: 1})
	require.NoError(t, err)
	assert.True(t, mem.IsAligned(d.Data()))

	// DontAlign carries no alignment guarantee, but construction succeeds.
	s, err = New[float32](Spec{Size: 12, Rows: 3, Cols: 4, Options: DontAlign})
	require.NoError(t, err)
	assert.Len(t, s.Data(), 12)

	// Unchecked construction skips the assertion and still allocates.
	s, err = NewUnchecked[float32](Spec{Size: 12, Rows: 3, Cols: 4})
	require.NoError(t, err)
	assert.Len(t, s.Data(), 12)
}

func TestFixedSwap(t *testing.T) {
	a, err := New[float32](Spec{Size: 4, Rows: 2, Cols: 2})
	require.NoError(t, err)
	b, err := New[float32](Spec{Size: 4, Rows: 2, Cols: 2})
	require.NoError(t, err)

	copy(a.Data(), []float32{1, 2, 3, 4})
	copy(b.Data(), []float32{5, 6, 7, 8})

	a.Swap(b)
	assert.Equal(t, []float32{5, 6, 7, 8}, a.Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, b.Data())

	// Swap is its own inverse.
	a.Swap(b)
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float32{5, 6, 7, 8}, b.Data())
}

func TestSwapShapeMismatchPanics(t *testing.T) {
	a, err := New[float32](Spec{Size: 4, Rows: 2, Cols: 2})
	require.NoError(t, err)
	b, err := New[float32](Spec{Size: Dynamic, Rows: Dynamic, Cols: Dynamic})
	require.NoError(t, err)

	assert.Panics(t, func() { a.Swap(b) })
}

func TestNullStorage(t *testing.T) {
	s, err := New[float64](Spec{Size: 0, Rows: 0, Cols: Dynamic})
	require.NoError(t, err)

	assert.Equal(t, 0, s.Rows())
	assert.Equal(t, 0, s.Cols())
	assert.Nil(t, s.Data())

	// All operations are no-op-safe.
	s.Resize(0, 0, 0)
	other, err := New[float64](Spec{Size: 0, Rows: 0, Cols: 0})
	require.NoError(t, err)
	s.Swap(other)
	assert.Nil(t, s.Data())
}

func TestSpecReadback(t *testing.T) {
	specs := []Spec{
		{Size: 12, Rows: 3, Cols: 4},
		{Size: 16, Rows: Dynamic, Cols: 4},
		{Size: Dynamic, Rows: Dynamic, Cols: Dynamic},
		{Size: Dynamic, Rows: 4, Cols: Dynamic},
		{Size: 0, Rows: 0, Cols: 0},
	}

	for _, spec := range specs {
		s, err := New[float32](spec)
		require.NoError(t, err)
		assert.Equal(t, spec, s.Spec())
	}
}

func TestNewSized(t *testing.T) {
	s, err := NewSized[float32](Spec{Size: Dynamic, Rows: Dynamic, Cols: Dynamic}, 6, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Len(t, s.Data(), 6)
}
