//go:build amd64

package bitvector

import "github.com/klauspost/cpuid/v2"

// intrinsicsAvailable reports whether this machine has the SSSE3/SSE4.1
// instruction support a hand-written SSE decode (shuffle, blend,
// movemask) of the packed L1 record would require. The Intrinsics
// strategy in this package is a portable branchless shift-and-mask
// decode rather than assembly, so the gate is advisory: it lets
// SelectIntrinsicsStrategy report the yes/no answer a caller swapping
// in real SSE would need, without this package requiring any.
func intrinsicsAvailable() bool {
	return cpuid.CPU.Supports(cpuid.SSSE3, cpuid.SSE4)
}
