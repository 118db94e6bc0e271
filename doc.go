// Package matgo provides SIMD-aligned dense matrix storage for Go.
//
// Matgo separates the storage of a dense matrix from its mathematical
// interface. The storage layer (package storage) selects one of eight
// concrete layouts from a compile-time-style shape declaration: fixed
// buffers, bounded inline buffers, and heap-backed dynamic buffers, each
// with 16-byte alignment for SIMD kernels. Package vec3 builds a padded
// 3-vector on top of the same kernels.
//
// # Quick Start
//
//	// Fully dynamic 3x4 matrix (heap-backed, aligned).
//	m, _ := matgo.New[float32](3, 4)
//	m.Set(1, 2, 42)
//	v := m.At(1, 2)
//
//	// Fixed-shape matrix (allocated once, resize is a no-op).
//	f, _ := matgo.NewFixed[float64](4, 4)
//
//	// Destructive resize: elements are NOT preserved.
//	_ = m.Resize(8, 8)
//
// # Persistence
//
//	m, _ := matgo.New[float32](3, 4, matgo.WithCompression(snapshot.CompressionLZ4))
//
//	var buf bytes.Buffer
//	_ = m.Save(&buf)
//
//	m2, _ := matgo.New[float32](0, 0)
//	_ = m2.Load(&buf)
//
// # Key Features
//
//   - Eight storage layouts selected at construction time
//   - 16-byte aligned buffers with a debug-build alignment assertion
//   - Padded 3-vector with shuffle-style cross product (package vec3)
//   - Self-describing compressed snapshots (zstd/LZ4)
//   - SIMD capability detection (AVX-512/AVX2/NEON/SVE2)
package matgo
