// Package session recognizes the interactive line protocol's
// meta-commands and otherwise drives one line through the
// Parser -> Encoder/Interpreter -> Presenter pipeline. It holds the one
// CPU and one Encoder a session uses for its lifetime; the CPU is
// created by New, the Encoder is opened and closed by the caller.
package session

import (
	"strings"

	"x64lab/encoder"
	"x64lab/model"
	"x64lab/parser"
	"x64lab/vm"
)

// Mode selects whether lines execute immediately or are buffered for a
// later "run".
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

// Session holds the CPU, encoder, presenter, and current mode for one
// interactive run. Persisted state: none — everything here lives only
// for the process lifetime, per the external interface contract.
type Session struct {
	CPU       *vm.CPU
	Encoder   *encoder.Encoder
	Presenter Presenter

	// DefaultMemoryFormat is substituted for a "memory" query that did
	// not name -x/-d/--hex/--decimal explicitly.
	DefaultMemoryFormat model.MemoryDumpFormat

	mode    Mode
	buffer  []string
	Stopped bool
}

// New constructs a Session with a fresh CPU and the given encoder and
// presenter. The caller owns enc's lifetime (Close when done).
func New(enc *encoder.Encoder, p Presenter) *Session {
	return &Session{
		CPU:                 vm.New(),
		Encoder:             enc,
		Presenter:           p,
		mode:                ModeSingle,
		DefaultMemoryFormat: model.FormatHex,
	}
}

// Handle processes one logical line: a recognized meta-command, or
// otherwise a parsed Input dispatched through the Encoder/Interpreter.
// Handle never returns an error itself; all failures are reported to
// the Presenter so the session can keep reading lines, matching the
// "no error is fatal except host I/O" rule.
func (s *Session) Handle(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if s.handleMeta(trimmed) {
		return
	}

	if s.mode == ModeMulti {
		s.buffer = append(s.buffer, trimmed)
		return
	}

	s.execute(trimmed)
}

func (s *Session) handleMeta(line string) bool {
	switch line {
	case "exit":
		s.Stopped = true
		return true
	case "help":
		s.Presenter.Help()
		return true
	case "cpu":
		s.Presenter.CPU(s.CPU, false)
		return true
	case "state":
		s.Presenter.CPU(s.CPU, true)
		return true
	case ":single":
		s.mode = ModeSingle
		s.Presenter.Notice("mode: single")
		return true
	case ":multi":
		s.mode = ModeMulti
		s.buffer = nil
		s.Presenter.Notice("mode: multi")
		return true
	case ":calc":
		s.Presenter.Notice("calculator mode is not available in this build")
		return true
	case ":script":
		s.Presenter.Notice("user-script mode is not available in this build")
		return true
	case "run":
		if s.mode != ModeMulti {
			s.Presenter.Notice("run has no effect outside :multi mode")
			return true
		}
		lines := s.buffer
		s.buffer = nil
		for _, buffered := range lines {
			if !s.execute(buffered) {
				break
			}
		}
		return true
	}
	return false
}

// execute parses one non-meta line and drives it through the pipeline
// appropriate to its Input kind. It reports whether the line succeeded
// so a buffered "run" batch can abort on the first failure, matching
// the original multi-instruction executor.
func (s *Session) execute(line string) bool {
	input, err := parser.Parse(line)
	if err != nil {
		s.Presenter.Error(err)
		return false
	}

	switch input.Kind {
	case model.InputInstruction:
		return s.executeInstruction(input.Instruction)
	case model.InputRegisterQuery:
		s.Presenter.Register(input.Register, s.CPU.Get(input.Register), input.RegisterOptions)
		return true
	case model.InputMemoryQuery:
		opts := input.Memory
		if !opts.FormatSet {
			opts.Format = s.DefaultMemoryFormat
		}
		data, err := s.CPU.ReadBytes(opts.Address, opts.Size)
		if err != nil {
			s.Presenter.Error(err)
			return false
		}
		s.Presenter.Memory(opts, data)
		return true
	}
	return true
}

func (s *Session) executeInstruction(inst model.Instruction) bool {
	code, err := s.Encoder.Encode(inst, s.CPU.RIP)
	if err != nil {
		s.Presenter.Error(err)
		return false
	}

	if err := s.CPU.Execute(inst); err != nil {
		s.Presenter.Error(err)
		return false
	}

	s.Presenter.Instruction(inst, code)
	return true
}
