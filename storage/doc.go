// Package storage implements the dense storage layer matgo's matrix and
// vector types are built on.
//
// A storage instance owns one backing buffer plus the runtime dimension
// counters its shape requires. The shape is selected once, at construction,
// from a Spec describing which dimensions are fixed and which are Dynamic:
//
//   - Fixed: all dimensions fixed, one inline buffer, Resize is a no-op
//   - Null: zero total size, nil buffer
//   - Inline / InlineRows / InlineCols: dynamic dimensions bounded by a
//     fixed capacity buffer; Resize updates counters only
//   - Heap / HeapRows / HeapCols: unbounded dynamic dimensions; Resize
//     reallocates exactly when the total element count changes
//
// # Alignment
//
// Unless Spec.Options carries DontAlign, fixed-capacity buffers whose byte
// size is a multiple of 16 are placed on a 16-byte boundary so that 128-bit
// SIMD kernels can use full-width loads. Heap buffers are always allocated
// aligned under the same option. Constructors assert the resulting address
// in debug builds; NewUnchecked is the internal-use-only escape hatch that
// skips the check.
//
// # Contract
//
// Resize is destructive: previous contents are not preserved. On the bounded
// shapes, resizing beyond capacity is a contract violation - debug builds
// panic, release builds (matgo_noassert) perform no check. Swap requires
// both instances to share the same concrete shape and exchanges full state:
// O(1) for heap-backed shapes, O(size) element swaps for inline ones.
package storage
