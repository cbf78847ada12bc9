// Package bitvector provides succinct rank and select queries over a
// static, uncompressed bit sequence.
//
// Given a bit vector B of length n, the package answers access(i),
// rank0/rank1(i) (the count of 0-/1-bits strictly before position i) and
// select0/select1(k) (the position of the k-th, one-indexed, 0-/1-bit) in
// close to constant time by walking a small auxiliary index built once
// over the buffer.
//
// Three index families are provided, trading index size against the
// maximum supported bit-vector length and against which L2-block search
// strategy is cheapest in practice:
//
//   - Rank / RankSelect ("classic"): a three-level L0/L1/L2 popcount
//     index with no length limit beyond what fits in a 64-bit word
//     count.
//   - FlatRank / FlatRankSelect: a two-level index using a 128-bit
//     packed L1 record, tuned for bit vectors up to 2^40 bits.
//   - WideRank / WideRankSelect: a two-level index with separated L1/L2
//     arrays and a much larger L1 span, for very long vectors where the
//     flat record's L1 field would overflow.
//
// The design follows Zhou, Andersen, and Kaminsky, "Space-Efficient,
// High-Performance Rank and Select Structures on Uncompressed Bit
// Sequences" (SEA 2013), and the compile-time policy types OptimizedFor
// and FindL2With let a caller pick, per instantiation, which bit polarity
// is indexed directly and which L2-search strategy runs, without a
// runtime branch in the query path.
//
// Construction is a single forward pass over a finalized BitBuffer; the
// buffer must not be mutated once an index has been built over it. After
// construction, every query method is a pure function of immutable state
// and is safe for concurrent use by multiple goroutines.
package bitvector
