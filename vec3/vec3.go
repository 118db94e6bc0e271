package vec3

import (
	"fmt"
	"math"

	"github.com/hupe1980/matgo/internal/debug"
	"github.com/hupe1980/matgo/internal/mem"
	"github.com/hupe1980/matgo/internal/simd"
)

// Float is the set of element types Vec3 supports.
type Float interface {
	~float32 | ~float64
}

// Expr is the generic element-access interface matgo's vector-like values
// share. Width is the number of logical elements; At reads one of them.
type Expr[T Float] interface {
	Width() int
	At(i int) T
}

// Vec3 is a 3-component vector over a 4-wide backing store. The zero value
// is the zero vector. Vec3 is a plain value type: assignment copies.
type Vec3[T Float] struct {
	d [4]T // x, y, z, pad (pad stays zero)
}

// New returns the vector (x, y, z) with a zeroed pad.
func New[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{d: [4]T{x, y, z, 0}}
}

// FromSlice constructs a vector from a 3- or 4-wide slice. A 3-wide source
// has its pad forced to zero; a 4-wide source is trusted to carry a zero pad
// already (debug builds assert it). Any other width is rejected.
func FromSlice[T Float](s []T) (Vec3[T], error) {
	switch len(s) {
	case 3:
		return New(s[0], s[1], s[2]), nil
	case 4:
		debug.Assertf(s[3] == 0, "4-wide source carries nonzero pad %v", s[3])
		return Vec3[T]{d: [4]T{s[0], s[1], s[2], s[3]}}, nil
	default:
		return Vec3[T]{}, &ErrWidthMismatch{Actual: len(s)}
	}
}

// FromExpr constructs a vector from any 3- or 4-wide expression. Dispatch
// follows the source width the same way FromSlice does.
func FromExpr[T Float](e Expr[T]) (Vec3[T], error) {
	switch e.Width() {
	case 3:
		return New(e.At(0), e.At(1), e.At(2)), nil
	case 4:
		pad := e.At(3)
		debug.Assertf(pad == 0, "4-wide source carries nonzero pad %v", pad)
		return Vec3[T]{d: [4]T{e.At(0), e.At(1), e.At(2), pad}}, nil
	default:
		return Vec3[T]{}, &ErrWidthMismatch{Actual: e.Width()}
	}
}

// X returns the first component.
func (v Vec3[T]) X() T { return v.d[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v.d[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v.d[2] }

// SetX sets the first component. The pad is untouched.
func (v *Vec3[T]) SetX(x T) { v.d[0] = x }

// SetY sets the second component. The pad is untouched.
func (v *Vec3[T]) SetY(y T) { v.d[1] = y }

// SetZ sets the third component. The pad is untouched.
func (v *Vec3[T]) SetZ(z T) { v.d[2] = z }

// Width returns 3, the logical element count. Vec3 satisfies Expr.
func (v Vec3[T]) Width() int { return 3 }

// Rows returns 3; a Vec3 presents as a 3x1 column to generic matrix code.
func (v Vec3[T]) Rows() int { return 3 }

// Cols returns 1.
func (v Vec3[T]) Cols() int { return 1 }

// At returns component i. i must be in [0, 3); debug builds assert.
func (v Vec3[T]) At(i int) T {
	debug.Assertf(i >= 0 && i < 3, "index %d out of range for 3-vector", i)
	return v.d[i]
}

// AtRC returns the element at (r, c); c must be 0. This is the two-argument
// accessor generic matrix algorithms use.
func (v Vec3[T]) AtRC(r, c int) T {
	debug.Assertf(c == 0, "column %d out of range for 3x1 vector", c)
	return v.At(r)
}

// Raw returns the full 4-wide backing store, pad included. Mutating the pad
// through the returned slice breaks the reduction invariant; internal use
// and interop only.
func (v *Vec3[T]) Raw() []T { return v.d[:] }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	simd.AddTo(out.d[:], v.d[:], o.d[:])
	return out
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	simd.SubTo(out.d[:], v.d[:], o.d[:])
	return out
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return v.Scale(-1)
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	out := v
	simd.ScaleInPlace(out.d[:], s)
	return out
}

// Div returns v / s.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return v.Scale(1 / s)
}

// AddInPlace sets v to v + o.
func (v *Vec3[T]) AddInPlace(o Vec3[T]) {
	simd.AddTo(v.d[:], v.d[:], o.d[:])
}

// SubInPlace sets v to v - o.
func (v *Vec3[T]) SubInPlace(o Vec3[T]) {
	simd.SubTo(v.d[:], v.d[:], o.d[:])
}

// ScaleInPlace sets v to v * s.
func (v *Vec3[T]) ScaleInPlace(s T) {
	simd.ScaleInPlace(v.d[:], s)
}

// DivInPlace sets v to v / s.
func (v *Vec3[T]) DivInPlace(s T) {
	simd.ScaleInPlace(v.d[:], 1/s)
}

// Dot returns the dot product of v and o, computed over all four lanes.
// Both pads must be zero; debug builds assert.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	v.assertPadZero()
	o.assertPadZero()
	return simd.Dot(v.d[:], o.d[:])
}

// Sum returns x + y + z. The pad must be zero; debug builds assert.
func (v Vec3[T]) Sum() T {
	v.assertPadZero()
	return simd.Sum(v.d[:])
}

// SquaredNorm returns the squared Euclidean norm.
func (v Vec3[T]) SquaredNorm() T {
	return v.Dot(v)
}

// Norm returns the Euclidean norm.
func (v Vec3[T]) Norm() T {
	return T(math.Sqrt(float64(v.SquaredNorm())))
}

// Normalize scales v in place to unit length, dividing the whole 4-wide
// store by the norm. The zero vector yields NaNs, as with any division by a
// zero norm.
func (v *Vec3[T]) Normalize() {
	n := v.Norm()
	simd.ScaleInPlace(v.d[:], 1/n)
}

// Normalized returns v scaled to unit length without mutating the receiver.
func (v Vec3[T]) Normalized() Vec3[T] {
	out := v
	out.Normalize()
	return out
}

// Cross returns the 3D cross product v x o, computed with the width-4
// shuffle primitive. With zero pads on both operands the result's pad is
// zero as well, preserving the invariant.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	var out Vec3[T]
	simd.Cross4(out.d[:], v.d[:], o.d[:])
	return out
}

// IsApprox reports whether the three logical components of v and o are
// approximately equal within the default precision for T.
func (v Vec3[T]) IsApprox(o Vec3[T]) bool {
	return v.IsApproxTol(o, defaultEpsilon[T]())
}

// IsApproxTol is IsApprox with an explicit relative tolerance: true when
// ||v-o||^2 <= tol^2 * min(||v||^2, ||o||^2), pads excluded.
func (v Vec3[T]) IsApproxTol(o Vec3[T], tol T) bool {
	var diff, vn, on T
	for i := 0; i < 3; i++ {
		d := v.d[i] - o.d[i]
		diff += d * d
		vn += v.d[i] * v.d[i]
		on += o.d[i] * o.d[i]
	}
	return diff <= tol*tol*min(vn, on)
}

// String returns a compact representation of the three components.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.d[0], v.d[1], v.d[2])
}

func (v *Vec3[T]) assertPadZero() {
	debug.Assertf(v.d[3] == 0,
		"pad component is %v, want 0; a 4-wide constructor or Raw() mutation broke the invariant", v.d[3])
}

// defaultEpsilon returns the library default precision for T: 1e-5 for
// 32-bit floats, 1e-12 for 64-bit.
func defaultEpsilon[T Float]() T {
	if mem.SizeOf[T]() == 4 {
		return T(1e-5)
	}
	return T(1e-12)
}
