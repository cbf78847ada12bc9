package bitvector

import (
	"encoding/binary"
	"io"
)

const wordBits = 64

var byteOrder = binary.LittleEndian

// BitBuffer is an owning, fixed-capacity packed buffer of 64-bit words
// plus a bit length. Bits are stored LSB-first within each word: bit i
// lives in word i>>6, at offset i&63; position 0 is the LSB of word 0.
//
// A BitBuffer may be freely mutated until a Rank/RankSelect (or Flat/Wide
// variant) has been built over it. Once an index exists, the buffer must
// not change: every level array and sample the index holds becomes stale
// otherwise. This is a contract, not something BitBuffer enforces.
type BitBuffer struct {
	bitLen uint64
	words  []uint64
}

func wordLenFor(bitLen uint64) uint64 {
	return bitLen/wordBits + 1
}

// NewBitBuffer allocates a zero-filled buffer of the given bit length.
func NewBitBuffer(size uint64) *BitBuffer {
	return &BitBuffer{bitLen: size, words: make([]uint64, wordLenFor(size))}
}

// NewBitBufferFilled allocates a buffer of the given bit length with
// every bit set to fill.
func NewBitBufferFilled(size uint64, fill bool) *BitBuffer {
	b := NewBitBuffer(size)
	if fill {
		fillWords(b.words, ^uint64(0))
	}
	return b
}

func fillWords(ws []uint64, v uint64) {
	for i := range ws {
		ws[i] = v
	}
}

// Len returns the logical bit length.
func (b *BitBuffer) Len() uint64 { return b.bitLen }

// WordLen returns the number of 64-bit words backing the buffer.
func (b *BitBuffer) WordLen() uint64 { return uint64(len(b.words)) }

// Get returns the bit at position i. i is unchecked in release builds;
// callers beyond package boundaries are expected to stay within
// [0, Len()).
func (b *BitBuffer) Get(i uint64) bool {
	debugAssert(i < b.bitLen, "bitvector: position %d out of range [0,%d)", i, b.bitLen)
	return (b.words[i>>6]>>(i&63))&1 != 0
}

// Set writes v to position i using a branchless mask-merge: the value is
// folded into a 0/1 integer once, and the same read-modify-write formula
// runs regardless of whether the bit is being set or cleared.
func (b *BitBuffer) Set(i uint64, v bool) {
	debugAssert(i < b.bitLen, "bitvector: position %d out of range [0,%d)", i, b.bitLen)
	mask := uint64(1) << (i & 63)
	w := &b.words[i>>6]
	*w = (*w &^ mask) | ((-boolToBit(v)) & mask)
}

// SetRange writes v to every bit in [start, end), touching the two
// boundary words bitwise and filling whole interior words directly.
func (b *BitBuffer) SetRange(start, end uint64, v bool) {
	debugAssert(start <= end && end <= b.bitLen,
		"bitvector: range [%d,%d) invalid for length %d", start, end, b.bitLen)
	if start >= end {
		return
	}
	fillWord := -boolToBit(v)
	sw, ew := start>>6, (end-1)>>6
	startMask := ^uint64(0) << (start & 63)
	endMask := ^uint64(0) >> (63 - ((end - 1) & 63))
	if sw == ew {
		mask := startMask & endMask
		b.words[sw] = (b.words[sw] &^ mask) | (fillWord & mask)
		return
	}
	b.words[sw] = (b.words[sw] &^ startMask) | (fillWord & startMask)
	for wi := sw + 1; wi < ew; wi++ {
		b.words[wi] = fillWord
	}
	b.words[ew] = (b.words[ew] &^ endMask) | (fillWord & endMask)
}

func boolToBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// Resize changes the bit length, preserving bits in [0, min(old,new)) and,
// when growing, filling bits in [old, new) with fill (bitwise in the
// partial tail word, then full-word fill for whatever follows).
func (b *BitBuffer) Resize(size uint64, fill bool) {
	oldLen := b.bitLen
	newWordLen := wordLenFor(size)
	if newWordLen != uint64(len(b.words)) {
		words := make([]uint64, newWordLen)
		copy(words, b.words)
		b.words = words
	}
	b.bitLen = size
	if size <= oldLen {
		return
	}

	fillWord := uint64(0)
	if fill {
		fillWord = ^uint64(0)
	}
	if off := oldLen % wordBits; off != 0 {
		mask := ^uint64(0) << off
		wi := oldLen >> 6
		if wi < uint64(len(b.words)) {
			b.words[wi] = (b.words[wi] &^ mask) | (fillWord & mask)
		}
		oldLen += wordBits - off
	}
	for wi := oldLen >> 6; wi < uint64(len(b.words)); wi++ {
		b.words[wi] = fillWord
	}
}

// Data returns a read-only view of the backing words. The layout is
// observable and must not be reordered by callers that serialize it
// themselves: word 0 holds bits [0,64) with bit 0 at the LSB.
func (b *BitBuffer) Data() []uint64 { return b.words }

// RawWord returns word i of the backing store.
func (b *BitBuffer) RawWord(i uint64) uint64 { return b.words[i] }

// SpaceUsage returns the number of bytes the backing words occupy.
func (b *BitBuffer) SpaceUsage() uint64 { return uint64(len(b.words)) * 8 }

// BitHandle is a non-owning, borrowing reference to a single bit of a
// BitBuffer. It carries no storage of its own beyond (buffer, position)
// and has no lifetime independent of the buffer it was taken from; it
// exists so callers can pass "a bit" around without copying the buffer,
// not to emulate a true assignable l-value.
type BitHandle struct {
	buf *BitBuffer
	pos uint64
}

// At returns a handle to bit i of b.
func (b *BitBuffer) At(i uint64) BitHandle { return BitHandle{buf: b, pos: i} }

// Get reads the referenced bit.
func (h BitHandle) Get() bool { return h.buf.Get(h.pos) }

// Set writes the referenced bit.
func (h BitHandle) Set(v bool) { h.buf.Set(h.pos, v) }

// Pos returns the position the handle refers to.
func (h BitHandle) Pos() uint64 { return h.pos }

// BitIterator walks a buffer's bit positions in order, yielding a
// BitHandle for each. The handles it yields follow Get/Set semantics:
// writes through them mutate the underlying buffer.
type BitIterator struct {
	buf *BitBuffer
	pos uint64
}

// Iter returns an iterator positioned before the buffer's first bit.
func (b *BitBuffer) Iter() *BitIterator { return &BitIterator{buf: b} }

// Next returns a handle to the next bit in order; ok is false once
// every position in [0, Len()) has been yielded.
func (it *BitIterator) Next() (h BitHandle, ok bool) {
	if it.pos >= it.buf.bitLen {
		return BitHandle{}, false
	}
	h = BitHandle{buf: it.buf, pos: it.pos}
	it.pos++
	return h, true
}

// WriteTo writes the bit length followed by the raw backing words, in
// little-endian layout. The rank/select indexes have no serialization of
// their own; they are rebuilt over a buffer read back with ReadFrom.
func (b *BitBuffer) WriteTo(w io.Writer) (int64, error) {
	var hdr [8]byte
	byteOrder.PutUint64(hdr[:], b.bitLen)
	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, err
	}

	buf := make([]byte, 8*len(b.words))
	for i, word := range b.words {
		byteOrder.PutUint64(buf[i*8:], word)
	}
	n, err = w.Write(buf)
	written += int64(n)
	return written, err
}

// ReadFrom replaces the buffer's contents by reading back what WriteTo
// produced.
func (b *BitBuffer) ReadFrom(r io.Reader) (int64, error) {
	var hdr [8]byte
	n, err := io.ReadFull(r, hdr[:])
	read := int64(n)
	if err != nil {
		return read, err
	}
	size := byteOrder.Uint64(hdr[:])

	words := make([]uint64, wordLenFor(size))
	buf := make([]byte, 8*len(words))
	n, err = io.ReadFull(r, buf)
	read += int64(n)
	if err != nil {
		return read, err
	}
	for i := range words {
		words[i] = byteOrder.Uint64(buf[i*8:])
	}

	b.bitLen = size
	b.words = words
	return read, nil
}
