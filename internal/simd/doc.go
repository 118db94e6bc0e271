// Package simd provides SIMD-friendly vector kernels.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2, SSE4.2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the active ISA. The kernels in this
// package are the portable generic implementations; they operate on 4-wide
// (128-bit) friendly layouts so that accelerated variants can be substituted
// per architecture without changing callers.
//
// # Operations
//
//   - Reductions: Dot, Sum
//   - Elementwise: AddTo, SubTo, ScaleInPlace
//   - Geometric: Cross4 (width-4 cross product over a padded 3-vector)
package simd
