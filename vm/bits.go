package vm

import "math/bits"

// rotateLeft64 wraps bits.RotateLeft64 so ROL and ROR share one helper;
// ROR calls this with a negated count.
func rotateLeft64(x uint64, k int) uint64 {
	return bits.RotateLeft64(x, k)
}

func trailingZeros64(x uint64) int {
	return bits.TrailingZeros64(x)
}
