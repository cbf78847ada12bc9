//go:build debug

package bitvector

import "fmt"

// debugAssert panics with a formatted message when cond is false. It is
// compiled in only under the debug build tag; release builds get the
// empty stub in assert_release.go, so precondition checks cost nothing
// in the query hot paths.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
