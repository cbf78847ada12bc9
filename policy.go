package bitvector

// OptimizedFor picks which bit polarity a Rank/RankSelect index stores
// directly; the other polarity is derived algebraically (span − stored).
// It is realized as a Go generic type parameter rather than a runtime
// enum, so the choice is settled at compile time for every instantiation
// of Rank, RankSelect, FlatRank, FlatRankSelect, WideRank and
// WideRankSelect.
type OptimizedFor interface {
	// storesOnes reports whether this policy indexes ones (true) or
	// zeros (false) directly.
	storesOnes() bool
}

// OptimizeOnes stores one-counts directly; zero-counts are derived.
type OptimizeOnes struct{}

func (OptimizeOnes) storesOnes() bool { return true }

// OptimizeZeros stores zero-counts directly; one-counts are derived.
type OptimizeZeros struct{}

func (OptimizeZeros) storesOnes() bool { return false }

// OptimizeDontCare behaves like OptimizeOnes: with no stated preference,
// ones are stored directly.
type OptimizeDontCare struct{}

func (OptimizeDontCare) storesOnes() bool { return true }

// storesOnes returns, for a concrete OptimizedFor type argument O,
// whether O stores ones directly. Because O is fixed at the call site's
// generic instantiation and storesOnes is a trivial one-line method on a
// zero-size type, this reduces to a compile-time constant after
// inlining for every monomorphized Rank/RankSelect instantiation.
func storesOnes[O OptimizedFor]() bool {
	var policy O
	return policy.storesOnes()
}

// FlatL2Strategy locates the L2 sub-block inside an L1 record for the
// flat (two-level, BigL12-backed) index. All strategies must agree on
// every input; LinearSearch and BinarySearch are portable, Intrinsics is
// a SIMD-flavored decode available on amd64 (see capability_amd64.go /
// capability_other.go) that collapses to the linear strategy elsewhere.
type FlatL2Strategy interface {
	findFlatL2(e bigL12Entry, blockSpan, rank uint64, onesStored bool) (l2pos int, remaining uint64)
}

// WideL2Strategy locates the L2 block inside an L1 span for the wide
// (separated-array) index. The wide variant supports only linear and
// binary search; instantiating WideRankSelect with Intrinsics is a
// compile-time error because Intrinsics does not implement this
// interface.
type WideL2Strategy interface {
	findWideL2(l2 []uint16, start, end int, rank uint64, l1Base uint64, onesStored bool) (l2pos int, remaining uint64)
}

// LinearSearch shifts through the packed L2 fields one at a time.
type LinearSearch struct{}

// BinarySearch uses a fixed-depth decision tree (flat) or a bounded
// binary search with look-ahead prefetch hints (wide, dropped as a
// no-op in this package — see l2search.go).
type BinarySearch struct{}

// Intrinsics decodes all of an L1 record's L2 fields at once via a
// branchless shift-and-mask, the portable equivalent of an x86 SSE
// shuffle/compare/movemask over the packed record. It only implements
// FlatL2Strategy; the wide index has no intrinsics variant.
type Intrinsics struct{}

// SelectIntrinsicsStrategy is a one-time runtime probe for choosing an
// L2-search instantiation: it inspects the CPU once, outside any
// rank/select hot path, and reports whether the Intrinsics strategy is
// worth selecting on this machine. Callers that want a static choice
// can ignore it entirely and instantiate FlatRankSelect[O, LinearSearch]
// or FlatRankSelect[O, BinarySearch] directly.
func SelectIntrinsicsStrategy() bool {
	return intrinsicsAvailable()
}
