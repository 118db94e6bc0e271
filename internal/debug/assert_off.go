//go:build matgo_noassert

package debug

// Enabled is false when assertions are compiled out (matgo_noassert build tag).
const Enabled = false
