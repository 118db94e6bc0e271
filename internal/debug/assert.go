package debug

import "fmt"

// Assert panics with msg if cond is false. No-op when assertions are disabled.
func Assert(cond bool, msg string) {
	if !Enabled {
		return
	}
	if !cond {
		panic("matgo: assertion failed: " + msg)
	}
}

// Assertf is like Assert with a formatted diagnostic.
// The arguments are only evaluated into a message on failure.
func Assertf(cond bool, format string, args ...any) {
	if !Enabled {
		return
	}
	if !cond {
		panic("matgo: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
