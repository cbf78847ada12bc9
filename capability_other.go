//go:build !amd64

package bitvector

// intrinsicsAvailable is always false off amd64; callers should
// instantiate FlatRankSelect with LinearSearch or BinarySearch instead.
func intrinsicsAvailable() bool {
	return false
}
