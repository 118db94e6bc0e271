// Package vec3 provides a SIMD-width-4 aligned 3-component vector.
//
// Vec3 carries its three logical components in a 4-wide backing store whose
// fourth slot (the pad) is kept at zero. Arithmetic runs over all four lanes,
// which is safe because zero stays zero under addition, subtraction and
// scaling, and lets 128-bit kernels use full-width operations on a logically
// 3-dimensional value.
//
// # The pad invariant
//
// Reductions (Dot, Sum, SquaredNorm, Norm) silently include the pad lane, so
// they assert it is exactly zero before computing - in debug builds only.
// Constructors from 3-wide sources force the pad to zero; 4-wide sources are
// trusted (and debug-asserted) to carry a zero pad. Well-behaved callers
// never observe the pad; callers that scribble over Raw() own the fallout.
package vec3
