// Package debug provides contract assertions that compile out in release builds.
//
// Assertions guard programmer-error conditions (misaligned buffers, unzeroed
// padding, shape-mismatched swaps). They are not recoverable errors: a failed
// assertion panics immediately with a diagnostic.
//
// Build with the matgo_noassert tag to compile all assertions out. Enabled is
// a constant, so disabled assertion calls are eliminated as dead code.
package debug
