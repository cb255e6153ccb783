package vm

import (
	"encoding/binary"
	"fmt"
)

// OutOfRangeError reports an access outside the CPU's memory region.
// The source this workbench is modeled on never bounds-checked memory
// access at all; this is an explicit fix rather than a carried-forward
// bug.
type OutOfRangeError struct {
	Address uint64
	Length  int
	MemSize uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("memory access out of range: address 0x%x length %d (memory size %d)", e.Address, e.Length, e.MemSize)
}

// ReadQword reads 8 little-endian bytes at address.
func (c *CPU) ReadQword(address uint64) (uint64, error) {
	if address > c.memSize-8 {
		return 0, &OutOfRangeError{Address: address, Length: 8, MemSize: c.memSize}
	}
	return binary.LittleEndian.Uint64(c.Memory[address : address+8]), nil
}

// WriteQword writes value as 8 little-endian bytes at address.
func (c *CPU) WriteQword(address uint64, value uint64) error {
	if address > c.memSize-8 {
		return &OutOfRangeError{Address: address, Length: 8, MemSize: c.memSize}
	}
	binary.LittleEndian.PutUint64(c.Memory[address:address+8], value)
	return nil
}

// ReadBytes reads a dump range for the MemoryQuery presenter contract.
// Bytes beyond the memory region are reported via the returned error
// rather than silently treated as zero.
func (c *CPU) ReadBytes(address uint64, size int) ([]byte, error) {
	if size < 0 || address+uint64(size) > c.memSize {
		return nil, &OutOfRangeError{Address: address, Length: size, MemSize: c.memSize}
	}
	return c.Memory[address : address+uint64(size)], nil
}
