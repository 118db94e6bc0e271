package vec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/matgo/internal/debug"
)

func TestNewComponents(t *testing.T) {
	v := New[float32](1, 2, 3)

	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(2), v.At(1))
	assert.Equal(t, float32(3), v.AtRC(2, 0))
	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())
	assert.Zero(t, v.Raw()[3])
}

func TestFromSlice(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, New[float64](1, 2, 3), v)

	v, err = FromSlice([]float64{4, 5, 6, 0})
	require.NoError(t, err)
	assert.Equal(t, New[float64](4, 5, 6), v)

	_, err = FromSlice([]float64{1, 2})
	var wm *ErrWidthMismatch
	require.ErrorAs(t, err, &wm)
	assert.Equal(t, 2, wm.Actual)
}

type sliceExpr []float32

func (e sliceExpr) Width() int       { return len(e) }
func (e sliceExpr) At(i int) float32 { return e[i] }

func TestFromExpr(t *testing.T) {
	v, err := FromExpr[float32](sliceExpr{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, New[float32](1, 2, 3), v)

	v, err = FromExpr[float32](sliceExpr{1, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, New[float32](1, 2, 3), v)

	// A Vec3 is itself a width-3 expression.
	v2, err := FromExpr[float32](v)
	require.NoError(t, err)
	assert.Equal(t, v, v2)

	_, err = FromExpr[float32](sliceExpr{1, 2, 3, 0, 0})
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := New[float32](1, 2, 3)
	b := New[float32](4, 5, 6)

	assert.Equal(t, New[float32](5, 7, 9), a.Add(b))
	assert.Equal(t, New[float32](-3, -3, -3), a.Sub(b))
	assert.Equal(t, New[float32](2, 4, 6), a.Scale(2))
	assert.Equal(t, New[float32](2, 2.5, 3), b.Div(2))
	assert.Equal(t, New[float32](-1, -2, -3), a.Neg())

	c := a
	c.AddInPlace(b)
	assert.Equal(t, New[float32](5, 7, 9), c)
	c.SubInPlace(b)
	assert.Equal(t, a, c)
	c.ScaleInPlace(4)
	assert.Equal(t, New[float32](4, 8, 12), c)
	c.DivInPlace(4)
	assert.Equal(t, a, c)
}

func TestValueSemantics(t *testing.T) {
	a := New[float32](1, 2, 3)
	b := a
	b.SetX(99)

	assert.Equal(t, float32(1), a.X())
	assert.Equal(t, float32(99), b.X())
}

func TestPadStaysZeroThroughOperators(t *testing.T) {
	v := New[float32](1, 2, 3)
	w := New[float32](-4, 0.5, 7)

	// Any chain of +, -, scalar * and / keeps the pad at zero.
	r := v.Add(w).Sub(v.Scale(3)).Div(0.25).Add(w.Neg())
	assert.Zero(t, r.Raw()[3])

	// Reductions therefore see only the three logical components.
	assert.InDelta(t, float64(r.X()+r.Y()+r.Z()), float64(r.Sum()), 1e-4)
	assert.InDelta(t, float64(r.X()*r.X()+r.Y()*r.Y()+r.Z()*r.Z()), float64(r.SquaredNorm()), 1e-3)
}

func TestDot(t *testing.T) {
	a := New[float64](1, 2, 3)
	b := New[float64](4, 5, 6)

	assert.InDelta(t, 32, a.Dot(b), 1e-12)
	assert.InDelta(t, 6, a.Sum(), 1e-12)
}

func TestDotAssertsPad(t *testing.T) {
	if !debug.Enabled {
		t.Skip("assertions compiled out")
	}

	a := New[float64](1, 2, 3)
	a.Raw()[3] = 1 // break the invariant deliberately

	b := New[float64](4, 5, 6)
	assert.Panics(t, func() { a.Dot(b) })
	assert.Panics(t, func() { a.Sum() })
	assert.Panics(t, func() { b.Dot(a) })
}

func TestNorm(t *testing.T) {
	v := New[float32](3, 4, 0)

	assert.InDelta(t, 25, v.SquaredNorm(), 1e-5)
	assert.InDelta(t, 5, v.Norm(), 1e-5)

	n := v.Normalized()
	assert.True(t, n.IsApprox(New[float32](0.6, 0.8, 0)))
	assert.InDelta(t, 1, n.Norm(), 1e-5)
	// Receiver untouched.
	assert.Equal(t, New[float32](3, 4, 0), v)

	v.Normalize()
	assert.True(t, v.IsApprox(n))
}

func TestNormalizedNormIsOne(t *testing.T) {
	vs := []Vec3[float64]{
		New[float64](1, 0, 0),
		New[float64](1, 1, 1),
		New[float64](-2.5, 4.25, -0.125),
		New[float64](1e-3, 2e-3, -5e-4),
	}

	for _, v := range vs {
		assert.InDelta(t, 1, v.Normalized().Norm(), 1e-12)
	}
}

func TestCross(t *testing.T) {
	ex := New[float32](1, 0, 0)
	ey := New[float32](0, 1, 0)

	assert.Equal(t, New[float32](0, 0, 1), ex.Cross(ey))
	assert.Equal(t, New[float32](0, 0, -1), ey.Cross(ex))

	v := New[float32](1.5, -2, 0.5)
	w := New[float32](3, 0.25, -1)

	// Anti-commutativity.
	vw := v.Cross(w)
	wv := w.Cross(v)
	assert.True(t, vw.IsApprox(wv.Neg()))

	// Orthogonality to both operands.
	assert.InDelta(t, 0, vw.Dot(v), 1e-5)
	assert.InDelta(t, 0, vw.Dot(w), 1e-5)

	// Result pad stays zero, so reductions on it are safe.
	assert.Zero(t, vw.Raw()[3])
}

func TestIsApprox(t *testing.T) {
	v := New[float64](1, 2, 3)

	assert.True(t, v.IsApprox(v))
	assert.False(t, v.IsApprox(New[float64](1, 2, 3.1)))
	assert.True(t, v.IsApproxTol(New[float64](1, 2, 3.1), 0.1))

	w := New[float32](1, 2, 3)
	assert.True(t, w.IsApprox(New[float32](1, 2, 3.0000001)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2, 3)", New[float64](1, 2, 3).String())
}

func BenchmarkDot(b *testing.B) {
	v := New[float32](1, 2, 3)
	w := New[float32](4, 5, 6)

	b.ReportAllocs()

	var sink float32
	for i := 0; i < b.N; i++ {
		sink = v.Dot(w)
	}
	_ = sink
}

func BenchmarkCross(b *testing.B) {
	v := New[float32](1, 2, 3)
	w := New[float32](4, 5, 6)

	b.ReportAllocs()

	var sink Vec3[float32]
	for i := 0; i < b.N; i++ {
		sink = v.Cross(w)
	}
	_ = sink
}
