// Package snapshot persists dense storage buffers to self-describing
// binary snapshots.
//
// A snapshot carries a small codec-encoded manifest (scalar type, dimensions,
// compression) followed by the raw element bytes in one compressed block.
// The codec name is stored in the header, so a snapshot written with one
// codec configuration can be opened without knowing it up front.
//
// # Format
//
//	[4]byte  magic "MGS1"
//	uint8    codec name length, codec name
//	uint32   manifest length, manifest bytes (codec-encoded)
//	uint32   uncompressed payload size
//	uint32   compressed payload size (0 = stored uncompressed)
//	[]byte   payload
//
// All integers are little-endian. Element bytes are the native little-endian
// representation of the scalar type.
package snapshot
