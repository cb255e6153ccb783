// Package encoder renders the instruction AST to Intel-syntax text and
// hands that text to Keystone, the external assembler that plays the
// authoritative-encoder role the original workbench gave iced_x86's
// CodeAssembler: the interpreter's own arithmetic is never treated as
// ground truth for "does this instruction actually encode".
package encoder

import (
	"sync"

	"github.com/keystone-engine/keystone/bindings/go/keystone"

	"x64lab/model"
)

// Encoder wraps a Keystone engine instance configured for x86-64.
// Keystone engines are not safe for concurrent Assemble calls, so
// Encoder serializes access with a mutex the way the REPL's single
// session expects to use it from one goroutine at a time, while still
// being safe if a caller wires it into a concurrent server.
type Encoder struct {
	mu sync.Mutex
	ks *keystone.Keystone
}

// New opens a Keystone engine for the x86-64 architecture in 64-bit mode.
func New() (*Encoder, error) {
	ks, err := keystone.New(keystone.ARCH_X86, keystone.MODE_64)
	if err != nil {
		return nil, &EncodeError{Message: "failed to initialize keystone engine", Wrapped: err}
	}
	return &Encoder{ks: ks}, nil
}

// Close releases the underlying Keystone engine.
func (e *Encoder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ks.Close()
}

// Encode renders inst to Intel syntax and assembles it at address,
// returning the raw machine code bytes Keystone produced.
func (e *Encoder) Encode(inst model.Instruction, address uint64) ([]byte, error) {
	text, err := Render(inst)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	code, _, err := e.ks.Assemble(text, address)
	if err != nil {
		return nil, wrapEncodeError(inst, "keystone rejected rendered text \""+text+"\"", err)
	}
	if len(code) == 0 {
		return nil, newEncodeError(inst, "keystone produced no bytes for \""+text+"\"")
	}
	return code, nil
}

// EncodeAll renders and assembles every instruction in order, each at
// its own address: each instruction is assembled at the previous one's
// address plus the previous one's byte length.
func (e *Encoder) EncodeAll(insts []model.Instruction, startAddress uint64) ([][]byte, error) {
	out := make([][]byte, len(insts))
	address := startAddress
	for i, inst := range insts {
		code, err := e.Encode(inst, address)
		if err != nil {
			return nil, err
		}
		out[i] = code
		address += uint64(len(code))
	}
	return out, nil
}
