package model

// InputKind tags the three shapes a parsed line can take.
type InputKind int

const (
	InputInstruction InputKind = iota
	InputRegisterQuery
	InputMemoryQuery
)

// DisplayOptions controls how a RegisterQuery result is rendered.
type DisplayOptions struct {
	HumanReadable bool
}

// MemoryDumpFormat is the byte-formatting mode for a MemoryQuery.
type MemoryDumpFormat int

const (
	FormatHex MemoryDumpFormat = iota
	FormatDecimal
)

// MemoryDumpOptions carries the parsed "memory 0x<addr> ..." arguments.
// FormatSet distinguishes "-x/-d named explicitly" from "grammar
// default applied", so a caller with its own configured default (e.g.
// session.Session.DefaultMemoryFormat) knows whether to override Format.
type MemoryDumpOptions struct {
	Address   uint64
	Size      int
	Format    MemoryDumpFormat
	FormatSet bool
}

// DefaultMemoryDumpOptions mirrors the grammar's documented defaults
// (size=16, format=Hex) for callers that only supply an address.
func DefaultMemoryDumpOptions(address uint64) MemoryDumpOptions {
	return MemoryDumpOptions{Address: address, Size: 16, Format: FormatHex}
}

// Input is the Parser's output: exactly one of Instruction, RegisterQuery,
// or MemoryQuery is meaningful, selected by Kind.
type Input struct {
	Kind InputKind

	Instruction Instruction

	Register        Register
	RegisterOptions DisplayOptions

	Memory MemoryDumpOptions
}
