package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for 128-bit SIMD (16 bytes).
const Alignment = 16

// AllocAligned allocates a byte slice of the given size with 16-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 16.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Scalar is the set of element types the aligned allocators support.
type Scalar interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// AllocSlice allocates a slice of n elements of type T with 16-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 16.
func AllocSlice[T Scalar](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	byteSize := n * int(unsafe.Sizeof(zero))
	byteSlice := AllocAligned(byteSize)

	// Safe because AllocAligned guarantees 16-byte alignment, which covers
	// the natural alignment of every Scalar type.
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AsBytes reinterprets s as its raw little-endian byte representation
// without copying. The returned slice aliases s.
func AsBytes[T Scalar](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*SizeOf[T]()) //nolint:gosec // zero-copy serialization
}

// IsAligned reports whether the first element of s sits on a 16-byte boundary.
// An empty slice is trivially aligned.
func IsAligned[T Scalar](s []T) bool {
	if len(s) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&s[0])) //nolint:gosec // address check only
	return addr&(Alignment-1) == 0
}
