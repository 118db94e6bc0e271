//go:build !matgo_noassert

package debug

// Enabled is true when contract assertions are compiled in.
const Enabled = true
