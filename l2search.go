package bitvector

import (
	"math/bits"
	"runtime"
)

// polarityValue converts a flat L12 record's stored-polarity prefix sum
// (the count through sub-block index, 0-based boundary) into the
// requested polarity, clamping the boundary position to the L1 block's
// real bit span so the final (possibly partial) L1 block of a buffer
// derives correctly.
func polarityValue(stored, boundaryBits, blockSpan uint64, onesStored bool) uint64 {
	if boundaryBits > blockSpan {
		boundaryBits = blockSpan
	}
	if onesStored {
		return stored
	}
	return boundaryBits - stored
}

// findFlatL2 implementations locate, within one flat L1 block of eight
// L2 sub-blocks, which sub-block contains the rank-th (one-indexed) bit
// of the requested polarity, and the residual rank within that
// sub-block. blockSpan is the L1 block's real (non-padding) bit span.

// findFlatL2 shifts through the seven stored boundary values one at a
// time, at most seven steps.
func (LinearSearch) findFlatL2(e bigL12Entry, blockSpan, rank uint64, onesStored bool) (l2pos int, remaining uint64) {
	l2pos = 0
	for l2pos < bigL12NumL2 {
		v := polarityValue(e.l2(l2pos+1), uint64(l2pos+1)*l2Bits, blockSpan, onesStored)
		if v >= rank {
			break
		}
		l2pos++
	}
	prefix := polarityValue(e.l2(l2pos), uint64(l2pos)*l2Bits, blockSpan, onesStored)
	return l2pos, rank - prefix
}

// findFlatL2 runs a fixed-depth binary search over the eight boundary
// positions (an implicit 8th "sentinel" boundary stands for the
// unstored final sub-block) — a depth-3 decision tree over the seven
// stored values.
func (BinarySearch) findFlatL2(e bigL12Entry, blockSpan, rank uint64, onesStored bool) (l2pos int, remaining uint64) {
	lo, hi := 1, bigL12NumL2+1
	for lo < hi {
		mid := (lo + hi) / 2
		var v uint64
		if mid > bigL12NumL2 {
			v = rank
		} else {
			v = polarityValue(e.l2(mid), uint64(mid)*l2Bits, blockSpan, onesStored)
		}
		if v >= rank {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	l2pos = lo - 1
	prefix := polarityValue(e.l2(l2pos), uint64(l2pos)*l2Bits, blockSpan, onesStored)
	return l2pos, rank - prefix
}

// findFlatL2 decodes all seven stored boundary values at once and
// builds a bitmask of which are still below rank, the portable
// equivalent of an SSE shuffle/compare/movemask over the packed
// record: popcount(mask) is the sub-block index directly, with no
// data-dependent branch in the decode loop itself. Off amd64 it collapses
// to the linear strategy; runtime.GOARCH is a constant, so the check is
// resolved at compile time.
func (Intrinsics) findFlatL2(e bigL12Entry, blockSpan, rank uint64, onesStored bool) (l2pos int, remaining uint64) {
	if runtime.GOARCH != "amd64" {
		return LinearSearch{}.findFlatL2(e, blockSpan, rank, onesStored)
	}
	raw := e.l2Raw()
	var mask uint8
	for i := 0; i < bigL12NumL2; i++ {
		v := polarityValue(uint64(raw[i]), uint64(i+1)*l2Bits, blockSpan, onesStored)
		mask |= uint8(boolToBit(v < rank)) << uint(i)
	}
	l2pos = bits.OnesCount8(mask)
	var prefix uint64
	if l2pos > 0 {
		prefix = polarityValue(uint64(raw[l2pos-1]), uint64(l2pos)*l2Bits, blockSpan, onesStored)
	}
	return l2pos, rank - prefix
}

// polarityValueWide converts a wide index's stored-polarity L2 prefix
// sum (which resets at every L1 boundary) at absolute L2 index idx into
// the requested polarity; l1BitBase is the bit position where idx's
// owning L1 block begins.
func polarityValueWide(stored uint16, idx int, l1BitBase uint64, onesStored bool) uint64 {
	if onesStored {
		return uint64(stored)
	}
	return uint64(idx)*l2Bits - l1BitBase - uint64(stored)
}

// findWideL2 walks forward through the L2 array one entry at a time,
// at most an L1 span's worth of entries.
func (LinearSearch) findWideL2(l2 []uint16, start, end int, rank uint64, l1BitBase uint64, onesStored bool) (l2pos int, remaining uint64) {
	pos := start
	for pos+1 < end && polarityValueWide(l2[pos+1], pos+1, l1BitBase, onesStored) < rank {
		pos++
	}
	prefix := polarityValueWide(l2[pos], pos, l1BitBase, onesStored)
	return pos, rank - prefix
}

// findWideL2 runs a classical bounded binary search over [start,end).
// Go has no portable prefetch intrinsic, so no look-ahead hints are
// issued for upcoming midpoints; the search is otherwise cache-friendly
// (the whole candidate range of 16-bit entries spans few cache lines).
func (BinarySearch) findWideL2(l2 []uint16, start, end int, rank uint64, l1BitBase uint64, onesStored bool) (l2pos int, remaining uint64) {
	lo, hi := start, end
	for lo < hi {
		mid := lo + (hi-lo)/2
		if polarityValueWide(l2[mid], mid, l1BitBase, onesStored) >= rank {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	pos := lo - 1
	if pos < start {
		pos = start
	}
	prefix := polarityValueWide(l2[pos], pos, l1BitBase, onesStored)
	return pos, rank - prefix
}
