package encoder

import (
	"fmt"
	"strings"

	"x64lab/model"
)

// Render turns an Instruction into the Intel-syntax assembly line that
// Keystone expects as input. It never inspects CPU state; rendering is
// a pure function of the instruction AST, the same split the original
// assembler drew between "build the text" and "assemble the text".
func Render(inst model.Instruction) (string, error) {
	if err := model.CheckShape(inst); err != nil {
		return "", err
	}

	mnemonic := inst.Kind.String()

	branchTarget := inst.Kind == model.JMP || inst.Kind == model.CALL || inst.Kind.IsJcc()

	operands := make([]string, len(inst.Operands))
	for i, op := range inst.Operands {
		rendered, err := renderOperand(op, branchTarget)
		if err != nil {
			return "", wrapEncodeError(inst, "failed to render operand", err)
		}
		operands[i] = rendered
	}

	if len(operands) == 0 {
		return mnemonic, nil
	}
	return mnemonic + " " + strings.Join(operands, ", "), nil
}

// renderOperand renders op as Keystone input text. branchTarget is set
// when op is the destination operand of a JMP/Jcc/CALL: those render as
// a bare hex literal (absolute addressing, no rip-relative syntax),
// while every other immediate renders in decimal.
func renderOperand(op model.Operand, branchTarget bool) (string, error) {
	switch op.Kind {
	case model.OperandGPR:
		if !op.Reg.Valid() {
			return "", fmt.Errorf("invalid register %d", op.Reg)
		}
		return op.Reg.String(), nil
	case model.OperandImm32:
		if branchTarget {
			return fmt.Sprintf("0x%x", uint32(op.Imm)), nil
		}
		return fmt.Sprintf("%d", op.Imm), nil
	case model.OperandXMM:
		return fmt.Sprintf("xmm%d", op.Xmm), nil
	default:
		return "", fmt.Errorf("unknown operand kind %d", op.Kind)
	}
}
