package simd

// Kernel implementation variables, one per operation and element type.
// They start at the portable baselines and are reassigned by initDispatch
// once the active ISA is known; assembly kernels plug in here per-arch.
//
// Only the reduction kernels (dot, sum) dispatch: they carry a loop-borne
// dependency chain the multi-accumulator variants break up. The elementwise
// kernels (scale, add, sub, cross) have no such chain and stay generic.
var (
	dotF32Impl = dotGeneric[float32]
	dotF64Impl = dotGeneric[float64]
	sumF32Impl = sumGeneric[float32]
	sumF64Impl = sumGeneric[float64]
)

// initDispatch selects the kernel implementations for the active ISA.
// Called once from initCapabilities, after detection and override handling.
func initDispatch() {
	if activeISA == Generic {
		return
	}

	// Any vector ISA executes the four accumulator streams in parallel.
	dotF32Impl = dotUnrolled[float32]
	dotF64Impl = dotUnrolled[float64]
	sumF32Impl = sumUnrolled[float32]
	sumF64Impl = sumUnrolled[float64]
}

// dotUnrolled is the dot product kernel with four independent accumulators.
func dotUnrolled[T Float](a, b []T) T {
	var s0, s1, s2, s3 T

	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

// sumUnrolled is the sum kernel with four independent accumulators.
func sumUnrolled[T Float](a []T) T {
	var s0, s1, s2, s3 T

	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for ; i < len(a); i++ {
		s0 += a[i]
	}

	return (s0 + s1) + (s2 + s3)
}
