//go:build !debug

package bitvector

func debugAssert(bool, string, ...any) {}
