package bitvector

// WideRankSelect augments WideRank with select support, sampling every
// selectSampleRate occurrences of each polarity at L2 granularity
// (the global L2 array index, not an L1 index — wide's L1 span is large
// enough that samples must resolve within it, not just to it). F picks
// linear or binary search for locating the L2 block inside the L1 span
// the sample lands in; wide has no SIMD/Intrinsics variant.
type WideRankSelect[O OptimizedFor, F WideL2Strategy] struct {
	*WideRank[O]

	samples1 []uint32
	samples0 []uint32
}

// NewWideRankSelect builds a wide rank/select index over buf. buf must
// not be mutated afterward.
func NewWideRankSelect[O OptimizedFor, F WideL2Strategy](buf *BitBuffer) *WideRankSelect[O, F] {
	rs := &WideRankSelect[O, F]{WideRank: NewWideRank[O](buf)}
	rs.samples1 = rs.buildSamples(true)
	rs.samples0 = rs.buildSamples(false)
	return rs
}

func (r *WideRank[O]) globalL2Count(l2idx int, wantOnes bool) uint64 {
	l1idx := l2idx / 128
	return r.l1Count(l1idx, wantOnes) + r.l2Count(l2idx, wantOnes)
}

// buildSamples scans the global L2 array in order and records the
// previous L2 index each time the requested polarity's running total
// first reaches 1 + another multiple of selectSampleRate. As with the flat
// variant, a degenerate vector that never crosses a threshold still
// gets a single entry and the final entry is duplicated, so a select
// query never indexes an empty or undersized slice.
func (r *WideRank[O]) buildSamples(wantOnes bool) []uint32 {
	n := r.numL2Blocks()
	samples := make([]uint32, 0, n/selectSampleRate+2)
	next := uint64(1)
	for l2pos := 0; l2pos < n; l2pos++ {
		if r.globalL2Count(l2pos, wantOnes) >= next {
			samples = append(samples, uint32(l2pos-1))
			next += selectSampleRate
		}
	}
	if len(samples) == 0 {
		samples = append(samples, 0)
	} else {
		samples = append(samples, samples[len(samples)-1])
	}
	return samples
}

func (r *WideRank[O]) dataSizeBits() uint64 {
	return uint64(len(r.words)) * wordBits
}

func (rs *WideRankSelect[O, F]) samplesFor(wantOnes bool) []uint32 {
	if wantOnes {
		return rs.samples1
	}
	return rs.samples0
}

func (rs *WideRankSelect[O, F]) selectPolarity(k uint64, wantOnes bool) uint64 {
	var total uint64
	if wantOnes {
		total = rs.Rank1(rs.bitLen)
	} else {
		total = rs.Rank0(rs.bitLen)
	}
	if k == 0 || k > total {
		return rs.dataSizeBits()
	}

	samples := rs.samplesFor(wantOnes)
	sampleIdx := (k - 1) / selectSampleRate
	if int(sampleIdx) >= len(samples) {
		sampleIdx = uint64(len(samples) - 1)
	}
	l2pos := int(samples[sampleIdx])
	l1idx := l2pos / 128

	numL1 := rs.numL1Blocks()
	for l1idx+1 < numL1 && rs.l1Count(l1idx+1, wantOnes) < k {
		l1idx++
	}
	if l2pos < l1idx*128 {
		l2pos = l1idx * 128
	}
	localK := k - rs.l1Count(l1idx, wantOnes)

	numL2 := rs.numL2Blocks()
	end := (l1idx + 1) * 128
	if end > numL2 {
		end = numL2
	}
	l1BitBase := uint64(l1idx) * wideL1Bits
	direct := wantOnes == storesOnes[O]()

	var strategy F
	foundL2, remaining := strategy.findWideL2(rs.l2, l2pos, end, localK, l1BitBase, direct)

	wordOff := foundL2 * l2Words
	return scanWordsForSelect(rs.words, rs.bitLen, wordOff, remaining, wantOnes)
}

// Select1 returns the absolute position of the k-th (one-indexed)
// one-bit, or the buffer's word-aligned capacity if fewer than k
// one-bits exist.
func (rs *WideRankSelect[O, F]) Select1(k uint64) uint64 {
	return rs.selectPolarity(k, true)
}

// Select0 returns the absolute position of the k-th (one-indexed)
// zero-bit, or the buffer's word-aligned capacity if fewer than k
// zero-bits exist.
func (rs *WideRankSelect[O, F]) Select0(k uint64) uint64 {
	return rs.selectPolarity(k, false)
}

// SpaceUsage returns the approximate number of bytes the index's own
// auxiliary arrays occupy (not counting the borrowed bit buffer).
func (rs *WideRankSelect[O, F]) SpaceUsage() uint64 {
	return rs.WideRank.SpaceUsage() + uint64(len(rs.samples1))*4 + uint64(len(rs.samples0))*4
}
