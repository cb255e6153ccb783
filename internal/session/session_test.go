package session

import (
	"testing"

	"x64lab/encoder"
	"x64lab/model"
	"x64lab/vm"
)

// recordingPresenter captures calls instead of writing to an io.Writer,
// so tests can assert on exactly what the pipeline produced.
type recordingPresenter struct {
	instructions []model.Instruction
	registers    []model.Register
	errors       []error
	notices      []string
	cpuCalls     int
	detailed     []bool
}

func (r *recordingPresenter) Instruction(inst model.Instruction, code []byte) {
	r.instructions = append(r.instructions, inst)
}
func (r *recordingPresenter) Register(reg model.Register, value uint64, opts model.DisplayOptions) {
	r.registers = append(r.registers, reg)
}
func (r *recordingPresenter) Memory(opts model.MemoryDumpOptions, data []byte) {}
func (r *recordingPresenter) CPU(c *vm.CPU, detailed bool) {
	r.cpuCalls++
	r.detailed = append(r.detailed, detailed)
}
func (r *recordingPresenter) Error(err error)          { r.errors = append(r.errors, err) }
func (r *recordingPresenter) Help()                    {}
func (r *recordingPresenter) Notice(message string)    { r.notices = append(r.notices, message) }

func newTestSession(t *testing.T) (*Session, *recordingPresenter) {
	t.Helper()
	enc, err := encoder.New()
	if err != nil {
		t.Fatalf("encoder.New() error: %v", err)
	}
	t.Cleanup(func() { enc.Close() })

	p := &recordingPresenter{}
	return New(enc, p), p
}

func TestMetaCommandExit(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle("exit")
	if !s.Stopped {
		t.Error("expected Stopped=true after exit")
	}
}

func TestMetaCommandCpuAndState(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle("cpu")
	s.Handle("state")

	if p.cpuCalls != 2 {
		t.Fatalf("got %d CPU calls, want 2", p.cpuCalls)
	}
	if p.detailed[0] != false || p.detailed[1] != true {
		t.Errorf("detailed flags = %v, want [false true]", p.detailed)
	}
}

func TestInstructionLineExecutesAndReports(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle("mov rax 5")

	if len(p.instructions) != 1 {
		t.Fatalf("got %d instruction reports, want 1", len(p.instructions))
	}
	if s.CPU.Get(model.RAX) != 5 {
		t.Errorf("RAX = %d, want 5", s.CPU.Get(model.RAX))
	}
}

func TestRegisterQueryLine(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle("rax")

	if len(p.registers) != 1 || p.registers[0] != model.RAX {
		t.Fatalf("registers = %v, want [RAX]", p.registers)
	}
}

func TestMultiModeBuffersUntilRun(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle(":multi")
	s.Handle("mov rax 1")
	s.Handle("mov rbx 2")

	if s.CPU.Get(model.RAX) != 0 {
		t.Fatalf("instructions should be buffered, not executed: RAX = %d", s.CPU.Get(model.RAX))
	}

	s.Handle("run")

	if s.CPU.Get(model.RAX) != 1 || s.CPU.Get(model.RBX) != 2 {
		t.Errorf("after run: RAX=%d RBX=%d, want 1 2", s.CPU.Get(model.RAX), s.CPU.Get(model.RBX))
	}
	if len(p.instructions) != 2 {
		t.Errorf("got %d instruction reports, want 2", len(p.instructions))
	}
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle(":multi")
	s.Handle("mov rax 1")
	s.Handle("bogus nonsense")
	s.Handle("mov rbx 2")

	s.Handle("run")

	if s.CPU.Get(model.RAX) != 1 {
		t.Errorf("RAX = %d, want 1 (first line should have run)", s.CPU.Get(model.RAX))
	}
	if s.CPU.Get(model.RBX) != 0 {
		t.Errorf("RBX = %d, want 0 (line after the failure must not run)", s.CPU.Get(model.RBX))
	}
	if len(p.instructions) != 1 {
		t.Errorf("got %d instruction reports, want 1", len(p.instructions))
	}
	if len(p.errors) != 1 {
		t.Errorf("got %d errors, want 1", len(p.errors))
	}
}

func TestUnrecognizedLineReportsParseError(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle("bogus nonsense")

	if len(p.errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(p.errors))
	}
}

func TestCalcAndScriptAreStubs(t *testing.T) {
	s, p := newTestSession(t)
	s.Handle(":calc")
	s.Handle(":script")

	if len(p.notices) != 2 {
		t.Fatalf("got %d notices, want 2", len(p.notices))
	}
}
