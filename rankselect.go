package bitvector

// RankSelect augments Rank with select support: answering "where is the
// k-th one-bit (or zero-bit)" by sampling, every selectSampleRate
// occurrences of each polarity, the L1 block that crossed the threshold.
// A query starts from the nearest sample at or before its target and
// scans forward through L0, L1, L2 and finally individual words.
type RankSelect[O OptimizedFor] struct {
	*Rank[O]

	// samples1Pos[l0idx] is the offset into samples1 where L0 group
	// l0idx's one-samples begin; samples1Pos has one extra trailing
	// entry so every group's slice is samples1[samples1Pos[l0idx]:samples1Pos[l0idx+1]].
	samples1Pos []int
	samples1    []uint32

	samples0Pos []int
	samples0    []uint32
}

// NewRankSelect builds a classic rank/select index over buf. buf must
// not be mutated afterward.
func NewRankSelect[O OptimizedFor](buf *BitBuffer) *RankSelect[O] {
	rs := &RankSelect[O]{Rank: NewRank[O](buf)}
	rs.samples1Pos, rs.samples1 = rs.buildSamples(true)
	rs.samples0Pos, rs.samples0 = rs.buildSamples(false)
	return rs
}

func (r *Rank[O]) numL1Blocks() int { return len(r.l12) }

// numL0Groups returns the number of L0-sized groups the L1 blocks fall
// into, including a final partial group if the L1 block count isn't a
// multiple of l1PerL0.
func (r *Rank[O]) numL0Groups() int {
	n := r.numL1Blocks()
	if n == 0 {
		return 0
	}
	return (n + l1PerL0 - 1) / l1PerL0
}

// buildSamples scans every L0 group's L1 blocks in order, recording the
// L1 block index each time the requested polarity's running local count
// first reaches 1 + another multiple of selectSampleRate: entry t of a
// group is the block holding the group's (t*selectSampleRate + 1)-th
// occurrence, the starting point for every local rank in bucket t. A
// group holding no occurrence of the polarity at all still gets a
// single entry (its first L1 block), so every group's slice is
// non-empty and a select query always has somewhere to start from.
func (r *Rank[O]) buildSamples(wantOnes bool) (pos []int, samples []uint32) {
	numGroups := r.numL0Groups()
	numL1 := r.numL1Blocks()
	pos = make([]int, 0, numGroups+1)
	samples = make([]uint32, 0, numGroups)

	for l0idx := 0; l0idx < numGroups; l0idx++ {
		pos = append(pos, len(samples))

		start := l0idx * l1PerL0
		end := start + l1PerL0
		if end > numL1 {
			end = numL1
		}

		nextThreshold := uint64(1)
		added := false
		for l1idx := start; l1idx < end; l1idx++ {
			cum := r.blockLocalEnd(l1idx, l0idx, wantOnes)
			for cum >= nextThreshold {
				samples = append(samples, uint32(l1idx))
				added = true
				nextThreshold += selectSampleRate
			}
		}
		if !added {
			samples = append(samples, uint32(start))
		}
	}
	pos = append(pos, len(samples))
	return pos, samples
}

func (rs *RankSelect[O]) samplesFor(wantOnes bool) ([]int, []uint32) {
	if wantOnes {
		return rs.samples1Pos, rs.samples1
	}
	return rs.samples0Pos, rs.samples0
}

// dataSizeBits returns the total bit capacity of the backing word slice,
// including any trailing padding — the sentinel select returns once k
// exceeds the available count of the requested polarity.
func (r *Rank[O]) dataSizeBits() uint64 {
	return uint64(len(r.words)) * wordBits
}

// selectPolarity returns the absolute position of the k-th (one-indexed)
// bit of the requested polarity, or dataSizeBits() if k exceeds the
// total count of that polarity in the buffer.
func (rs *RankSelect[O]) selectPolarity(k uint64, wantOnes bool) uint64 {
	var total uint64
	if wantOnes {
		total = rs.Rank1(rs.bitLen)
	} else {
		total = rs.Rank0(rs.bitLen)
	}
	if k == 0 || k > total {
		return rs.dataSizeBits()
	}

	numGroups := rs.numL0Groups()
	l0idx := 0
	for l0idx+1 < numGroups {
		if rs.l0Count(l0idx+1, wantOnes) >= k {
			break
		}
		l0idx++
	}
	localK := k - rs.l0Count(l0idx, wantOnes)

	samplesPos, samples := rs.samplesFor(wantOnes)
	groupStart, groupEnd := samplesPos[l0idx], samplesPos[l0idx+1]

	idx := groupStart + int((localK-1)/selectSampleRate)
	if idx > groupEnd-1 {
		idx = groupEnd - 1
	}
	l1idx := int(samples[idx])

	for rs.blockLocalEnd(l1idx, l0idx, wantOnes) < localK {
		l1idx++
	}
	remaining := localK - rs.blockLocalStart(l1idx, l0idx, wantOnes)

	sub := 0
	wordOff := l1idx * classicL1Words
	for sub < 3 {
		c := rs.subblockCount(l1idx, sub, wantOnes)
		if remaining <= c {
			break
		}
		remaining -= c
		sub++
		wordOff += l2Words
	}

	return scanWordsForSelect(rs.words, rs.bitLen, wordOff, remaining, wantOnes)
}

// Select1 returns the absolute position of the k-th (one-indexed)
// one-bit, or the buffer's word-aligned capacity if fewer than k
// one-bits exist.
func (rs *RankSelect[O]) Select1(k uint64) uint64 {
	return rs.selectPolarity(k, true)
}

// Select0 returns the absolute position of the k-th (one-indexed)
// zero-bit, or the buffer's word-aligned capacity if fewer than k
// zero-bits exist.
func (rs *RankSelect[O]) Select0(k uint64) uint64 {
	return rs.selectPolarity(k, false)
}

// SpaceUsage returns the approximate number of bytes the index's own
// auxiliary arrays occupy (not counting the borrowed bit buffer).
func (rs *RankSelect[O]) SpaceUsage() uint64 {
	usage := rs.Rank.SpaceUsage()
	usage += uint64(len(rs.samples1Pos))*8 + uint64(len(rs.samples1))*4
	usage += uint64(len(rs.samples0Pos))*8 + uint64(len(rs.samples0))*4
	return usage
}
