package parser

import (
	"testing"

	"x64lab/model"
)

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		line string
		want model.Instruction
	}{
		{"mov rax 5", model.Instruction{Kind: model.MOV, Operands: []model.Operand{model.GPR(model.RAX), model.Imm32(5)}}},
		{"mov rax, 5", model.Instruction{Kind: model.MOV, Operands: []model.Operand{model.GPR(model.RAX), model.Imm32(5)}}},
		{"  sub  rax  rbx  ", model.Instruction{Kind: model.SUB, Operands: []model.Operand{model.GPR(model.RAX), model.GPR(model.RBX)}}},
		{"ret", model.Instruction{Kind: model.RET}},
		{"paddd xmm0, xmm1", model.Instruction{Kind: model.PADDD, Operands: []model.Operand{model.XMM(0), model.XMM(1)}}},
	}

	for _, tt := range tests {
		input, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.line, err)
		}
		if input.Kind != model.InputInstruction {
			t.Fatalf("Parse(%q) kind = %v, want InputInstruction", tt.line, input.Kind)
		}
		if input.Instruction.Kind != tt.want.Kind || len(input.Instruction.Operands) != len(tt.want.Operands) {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.line, input.Instruction, tt.want)
		}
		for i, op := range input.Instruction.Operands {
			if op != tt.want.Operands[i] {
				t.Errorf("Parse(%q) operand[%d] = %+v, want %+v", tt.line, i, op, tt.want.Operands[i])
			}
		}
	}
}

func TestParseRegisterQuery(t *testing.T) {
	input, err := Parse("rax -h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Kind != model.InputRegisterQuery || input.Register != model.RAX || !input.RegisterOptions.HumanReadable {
		t.Fatalf("got %+v", input)
	}
}

func TestParseMemoryQuery(t *testing.T) {
	input, err := Parse("memory 0x1000 -s 32 -d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Kind != model.InputMemoryQuery {
		t.Fatalf("kind = %v", input.Kind)
	}
	want := model.MemoryDumpOptions{Address: 0x1000, Size: 32, Format: model.FormatDecimal, FormatSet: true}
	if input.Memory != want {
		t.Fatalf("got %+v, want %+v", input.Memory, want)
	}
}

func TestParseMemoryQueryDefaults(t *testing.T) {
	input, err := Parse("memory 0xff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.DefaultMemoryDumpOptions(0xff)
	if input.Memory != want {
		t.Fatalf("got %+v, want %+v", input.Memory, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"bogus",
		"mov rax &",
		"xmm16",
		"memory",
		"memory notahex",
	}
	for _, line := range tests {
		if _, err := Parse(line); err == nil {
			t.Errorf("Parse(%q) expected an error, got none", line)
		}
	}
}

func TestXmmOutOfRange(t *testing.T) {
	if _, err := Parse("paddd xmm0, xmm16"); err == nil {
		t.Fatal("expected an error for xmm16")
	}
}

func TestLongestMatchRegisterNames(t *testing.T) {
	// r10 must resolve to R10 as a whole word, not be cut at a shorter
	// prefix such as r1.
	in1, err := Parse("r10 -h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in1.Register != model.R10 {
		t.Fatalf("got register %v, want r10", in1.Register)
	}
}
