package encoder

import (
	"fmt"

	"x64lab/model"
)

// EncodeError reports a failure to produce machine code for an
// instruction, whether that failure came from rendering its Intel
// syntax text or from the backend assembler rejecting that text.
type EncodeError struct {
	Instruction model.Instruction
	Message     string
	Wrapped     error
}

func (e *EncodeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("encode %s: %s: %v", e.Instruction.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("encode %s: %s", e.Instruction.Kind, e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Wrapped
}

func newEncodeError(inst model.Instruction, message string) *EncodeError {
	return &EncodeError{Instruction: inst, Message: message}
}

func wrapEncodeError(inst model.Instruction, message string, err error) *EncodeError {
	return &EncodeError{Instruction: inst, Message: message, Wrapped: err}
}
