// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 16-byte aligned allocation for 128-bit SIMD operations
// (SSE/NEON friendly). Buffers whose total byte size is a multiple of 16
// can be processed with full-width vector loads when placed on a 16-byte
// boundary.
package mem
