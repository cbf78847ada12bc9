package bitvector

// Block-size constants shared by the three index families. L2 is the
// innermost counting block for all of them; L1 span is what
// distinguishes classic, flat, and wide from one another, and only
// classic has an L0 level at all.
const (
	l2Bits  = 512
	l2Words = l2Bits / wordBits // 8

	classicL1Bits  = 4 * l2Bits // 2048
	classicL1Words = classicL1Bits / wordBits

	classicL0Bits = 1 << 31

	l1PerL0 = classicL0Bits / classicL1Bits

	flatL1Bits  = 8 * l2Bits // 4096
	flatL1Words = flatL1Bits / wordBits

	wideL1Bits  = 128 * l2Bits // 65536
	wideL1Words = wideL1Bits / wordBits

	selectSampleRate = 8192
)
