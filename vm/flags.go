package vm

import "x64lab/model"

// updateFlags is the "shared flag update" of §4.5. Per the documented
// open question in §9, CF is reproduced verbatim from the source's
// non-canonical shortcut rather than computed per-instruction: it is
// always `result < RAX`, independent of the instruction or its real
// operands. overflow is the caller's per-operation overflow indicator
// (true for arithmetic that overflowed, false for logical ops).
func (c *CPU) updateFlags(result uint64, overflow bool) {
	c.ZF = result == 0
	c.SF = result&(1<<63) != 0
	c.OF = overflow
	c.CF = result < c.Get(model.RAX)

	// RFLAGS is fully repacked from the four booleans — all other bits,
	// including the initial reserved bit, are cleared by this packing
	// (§4.5: "all other bits cleared by this packing").
	c.RFLAGS = boolBit(c.CF, 0) | boolBit(c.ZF, 6) | boolBit(c.SF, 7) | boolBit(c.OF, 11)
}

func boolBit(b bool, pos uint) uint64 {
	if b {
		return 1 << pos
	}
	return 0
}

// overflowingAdd64 mirrors Rust's u64::overflowing_add: the wrapped sum
// plus whether unsigned overflow occurred.
func overflowingAdd64(a, b uint64) (uint64, bool) {
	result := a + b
	return result, result < a
}

// overflowingSub64 mirrors Rust's u64::overflowing_sub.
func overflowingSub64(a, b uint64) (uint64, bool) {
	result := a - b
	return result, a < b
}
