package bitvector

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BitBufferTestSuite struct {
	suite.Suite
}

func TestBitBufferTestSuite(t *testing.T) {
	suite.Run(t, new(BitBufferTestSuite))
}

func (s *BitBufferTestSuite) TestGetSetIndependence() {
	b := NewBitBuffer(200)
	for i := uint64(0); i < 200; i++ {
		s.Require().False(b.Get(i))
	}

	b.Set(37, true)
	for i := uint64(0); i < 200; i++ {
		s.Require().Equal(i == 37, b.Get(i))
	}

	b.Set(199, true)
	b.Set(37, false)
	for i := uint64(0); i < 200; i++ {
		s.Require().Equal(i == 199, b.Get(i))
	}
}

func (s *BitBufferTestSuite) TestNewBitBufferFilled() {
	ones := NewBitBufferFilled(130, true)
	for i := uint64(0); i < 130; i++ {
		s.Require().True(ones.Get(i))
	}

	zeros := NewBitBufferFilled(130, false)
	for i := uint64(0); i < 130; i++ {
		s.Require().False(zeros.Get(i))
	}
}

func (s *BitBufferTestSuite) TestLenAndWordLen() {
	b := NewBitBuffer(129)
	s.Require().EqualValues(129, b.Len())
	s.Require().EqualValues(3, b.WordLen())
}

func (s *BitBufferTestSuite) TestBitOrderIsLSBFirst() {
	b := NewBitBuffer(64)
	b.Set(0, true)
	s.Require().EqualValues(1, b.RawWord(0))

	b2 := NewBitBuffer(64)
	b2.Set(63, true)
	s.Require().EqualValues(uint64(1)<<63, b2.RawWord(0))
}

func (s *BitBufferTestSuite) TestResizeGrowPreservesPrefixAndFillsTail() {
	rnd := rand.New(rand.NewSource(42))
	const n = 714_010
	b := NewBitBuffer(n)
	want := make([]bool, n)
	for i := 0; i < n; i++ {
		v := rnd.Intn(2) == 1
		want[i] = v
		b.Set(uint64(i), v)
	}

	b.Resize(2*n, false)
	s.Require().EqualValues(2*n, b.Len())
	for i := 0; i < n; i++ {
		s.Require().Equal(want[i], b.Get(uint64(i)), "prefix bit %d", i)
	}
	for i := n; i < 2*n; i++ {
		s.Require().False(b.Get(uint64(i)), "fill bit %d", i)
	}
}

func (s *BitBufferTestSuite) TestResizeGrowFillOnes() {
	b := NewBitBuffer(10)
	for i := uint64(0); i < 10; i++ {
		b.Set(i, true)
	}
	b.Resize(140, true)
	for i := uint64(0); i < 140; i++ {
		s.Require().True(b.Get(i), "bit %d", i)
	}
}

func (s *BitBufferTestSuite) TestResizeShrinkPreservesPrefix() {
	b := NewBitBuffer(500)
	for i := uint64(0); i < 500; i++ {
		b.Set(i, i%3 == 0)
	}
	b.Resize(200, false)
	s.Require().EqualValues(200, b.Len())
	for i := uint64(0); i < 200; i++ {
		s.Require().Equal(i%3 == 0, b.Get(i))
	}
}

func (s *BitBufferTestSuite) TestWriteToReadFromRoundtrip() {
	rnd := rand.New(rand.NewSource(7))
	b := NewBitBuffer(10_000)
	for i := uint64(0); i < 10_000; i++ {
		b.Set(i, rnd.Intn(2) == 1)
	}

	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	s.Require().NoError(err)

	var out BitBuffer
	_, err = out.ReadFrom(&buf)
	s.Require().NoError(err)

	s.Require().Equal(b.Len(), out.Len())
	for i := uint64(0); i < b.Len(); i++ {
		s.Require().Equal(b.Get(i), out.Get(i), "bit %d", i)
	}
}

func (s *BitBufferTestSuite) TestSetRange() {
	b := NewBitBuffer(300)
	b.SetRange(17, 203, true)
	for i := uint64(0); i < 300; i++ {
		s.Require().Equal(i >= 17 && i < 203, b.Get(i), "bit %d", i)
	}

	b.SetRange(60, 70, false)
	for i := uint64(0); i < 300; i++ {
		want := i >= 17 && i < 203 && (i < 60 || i >= 70)
		s.Require().Equal(want, b.Get(i), "bit %d", i)
	}
}

func (s *BitBufferTestSuite) TestSetRangeWithinOneWord() {
	b := NewBitBuffer(64)
	b.SetRange(5, 9, true)
	for i := uint64(0); i < 64; i++ {
		s.Require().Equal(i >= 5 && i < 9, b.Get(i))
	}
	b.SetRange(30, 30, true)
	s.Require().False(b.Get(30))
}

func (s *BitBufferTestSuite) TestIterator() {
	b := NewBitBuffer(130)
	it := b.Iter()
	var count uint64
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		s.Require().False(h.Get())
		h.Set(h.Pos()%5 == 0)
		count++
	}
	s.Require().EqualValues(130, count)
	for i := uint64(0); i < 130; i++ {
		s.Require().Equal(i%5 == 0, b.Get(i), "bit %d", i)
	}
}

func (s *BitBufferTestSuite) TestBitHandle() {
	b := NewBitBuffer(64)
	h := b.At(10)
	s.Require().False(h.Get())
	h.Set(true)
	s.Require().True(b.Get(10))
	s.Require().True(h.Get())
}

// Encodes the first 94 Fibonacci numbers bit-by-bit, LSB-first, into a
// fresh 64-bit buffer each time, and reconstructs them by reading back.
func (s *BitBufferTestSuite) TestFibonacciRoundtrip() {
	var a, b uint64 = 0, 1
	for k := 0; k < 94; k++ {
		buf := NewBitBuffer(64)
		for bit := 0; bit < 64; bit++ {
			buf.Set(uint64(bit), (a>>uint(bit))&1 != 0)
		}

		var got uint64
		for bit := 0; bit < 64; bit++ {
			if buf.Get(uint64(bit)) {
				got |= uint64(1) << uint(bit)
			}
		}
		s.Require().Equal(a, got, "F(%d)", k)

		a, b = b, a+b
	}
}
