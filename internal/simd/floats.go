package simd

// Float is the set of element types the kernels operate on.
type Float interface {
	~float32 | ~float64
}

// Dot calculates the dot product of two vectors, using the kernel selected
// for the active ISA.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads.
func Dot[T Float](a, b []T) T {
	switch aa := any(a).(type) {
	case []float32:
		return T(dotF32Impl(aa, any(b).([]float32)))
	case []float64:
		return T(dotF64Impl(aa, any(b).([]float64)))
	default:
		// Named float types fall back to the portable kernel.
		return dotGeneric(a, b)
	}
}

// Sum returns the sum of all elements of a, using the kernel selected for
// the active ISA.
func Sum[T Float](a []T) T {
	switch aa := any(a).(type) {
	case []float32:
		return T(sumF32Impl(aa))
	case []float64:
		return T(sumF64Impl(aa))
	default:
		return sumGeneric(a)
	}
}

// ScaleInPlace multiplies all elements of a by scalar.
//
// This is primarily used by normalization.
func ScaleInPlace[T Float](a []T, scalar T) {
	for i := range a {
		a[i] *= scalar
	}
}

// AddTo stores a + b elementwise into dst. dst may alias a or b.
//
// SAFETY: assumes len(dst) == len(a) == len(b); not bounds checked.
func AddTo[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubTo stores a - b elementwise into dst. dst may alias a or b.
//
// SAFETY: assumes len(dst) == len(a) == len(b); not bounds checked.
func SubTo[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Cross4 computes the 3D cross product over 4-wide (padded) operands,
// the shuffle formulation used by 128-bit SIMD kernels:
//
//	dst = a.yzxw*b.zxyw - a.zxyw*b.yzxw
//
// Lane 3 evaluates to a[3]*b[3] - a[3]*b[3], so it is zero whenever the
// operands carry any pad value at all, keeping a zero pad zero in the result.
// dst may alias a or b.
//
// SAFETY: assumes len(dst), len(a), len(b) >= 4; not bounds checked.
func Cross4[T Float](dst, a, b []T) {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	w := a[3]*b[3] - a[3]*b[3]

	dst[0], dst[1], dst[2], dst[3] = x, y, z, w
}

// dotGeneric is the portable dot product kernel.
func dotGeneric[T Float](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// sumGeneric is the portable sum kernel.
func sumGeneric[T Float](a []T) T {
	var ret T
	for i := range a {
		ret += a[i]
	}

	return ret
}
