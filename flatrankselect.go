package bitvector

// FlatRankSelect augments FlatRank with select support, sampling every
// selectSampleRate occurrences of each polarity at the L1 granularity
// (flat has no L0, so samples index directly into the L1 array). F picks
// which of the three L2-search strategies locates the target sub-block
// inside a chosen L1 record; all three return the same answer.
type FlatRankSelect[O OptimizedFor, F FlatL2Strategy] struct {
	*FlatRank[O]

	samples1 []uint32
	samples0 []uint32
}

// NewFlatRankSelect builds a flat rank/select index over buf. buf must
// not be mutated afterward.
func NewFlatRankSelect[O OptimizedFor, F FlatL2Strategy](buf *BitBuffer) *FlatRankSelect[O, F] {
	rs := &FlatRankSelect[O, F]{FlatRank: NewFlatRank[O](buf)}
	rs.samples1 = rs.buildSamples(true)
	rs.samples0 = rs.buildSamples(false)
	return rs
}

// buildSamples scans every L1 block in order and records the previous
// block's index each time the requested polarity's running total first
// reaches 1 + another multiple of selectSampleRate. A degenerate vector
// with no crossing at all still gets a single entry, and the final
// entry is always duplicated so a select query whose sample bucket
// lands past the real samples still has a valid (if conservative)
// starting point.
func (r *FlatRank[O]) buildSamples(wantOnes bool) []uint32 {
	n := r.numL1Blocks()
	samples := make([]uint32, 0, n/selectSampleRate+2)
	next := uint64(1)
	for l1pos := 0; l1pos < n; l1pos++ {
		if r.l1Count(l1pos, wantOnes) >= next {
			samples = append(samples, uint32(l1pos-1))
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

func (r *FlatRank[O]) dataSizeBits() uint64 {
	return uint64(len(r.words)) * wordBits
}

func (rs *FlatRankSelect[O, F]) samplesFor(wantOnes bool) []uint32 {
	if wantOnes {
		return rs.samples1
	}
	return rs.samples0
}

func (rs *FlatRankSelect[O, F]) selectPolarity(k uint64, wantOnes bool) uint64 {
	var total uint64
	if wantOnes {
		total = rs.Rank1(rs.bitLen)
	} else {
		total = rs.Rank0(rs.bitLen)
	}
	if k == 0 || k > total {
		return rs.dataSizeBits()
	}

	n := rs.numL1Blocks()
	samples := rs.samplesFor(wantOnes)
	sampleIdx := (k - 1) / selectSampleRate
	if int(sampleIdx) >= len(samples) {
		sampleIdx = uint64(len(samples) - 1)
	}
	l1idx := int(samples[sampleIdx])

	for l1idx+1 < n && rs.l1Count(l1idx+1, wantOnes) < k {
		l1idx++
	}
	localRank := k - rs.l1Count(l1idx, wantOnes)

	blockSpan := rs.l1BlockSpan(l1idx)
	entry := rs.l12[l1idx]
	direct := wantOnes == storesOnes[O]()

	var strategy F
	l2pos, remaining := strategy.findFlatL2(entry, blockSpan, localRank, direct)

	wordOff := l1idx*flatL1Words + l2pos*l2Words
	return scanWordsForSelect(rs.words, rs.bitLen, wordOff, remaining, wantOnes)
}

// Select1 returns the absolute position of the k-th (one-indexed)
// one-bit, or the buffer's word-aligned capacity if fewer than k
// one-bits exist.
func (rs *FlatRankSelect[O, F]) Select1(k uint64) uint64 {
	return rs.selectPolarity(k, true)
}

// Select0 returns the absolute position of the k-th (one-indexed)
// zero-bit, or the buffer's word-aligned capacity if fewer than k
// zero-bits exist.
func (rs *FlatRankSelect[O, F]) Select0(k uint64) uint64 {
	return rs.selectPolarity(k, false)
}

// SpaceUsage returns the approximate number of bytes the index's own
// auxiliary arrays occupy (not counting the borrowed bit buffer).
func (rs *FlatRankSelect[O, F]) SpaceUsage() uint64 {
	return rs.FlatRank.SpaceUsage() + uint64(len(rs.samples1))*4 + uint64(len(rs.samples0))*4
}
