package session

import (
	"fmt"
	"io"

	"x64lab/model"
	"x64lab/vm"
)

// Presenter renders session output. It is the narrow interface the
// richer external collaborators (colorized register visualizer, TUI)
// would implement; PlainPresenter is the minimal default that makes
// the module runnable without them.
type Presenter interface {
	Instruction(inst model.Instruction, code []byte)
	Register(reg model.Register, value uint64, opts model.DisplayOptions)
	Memory(opts model.MemoryDumpOptions, data []byte)
	CPU(c *vm.CPU, detailed bool)
	Error(err error)
	Help()
	Notice(message string)
}

// PlainPresenter writes plain text to an io.Writer, one line per event.
type PlainPresenter struct {
	Out io.Writer
}

// NewPlainPresenter returns a PlainPresenter writing to w.
func NewPlainPresenter(w io.Writer) *PlainPresenter {
	return &PlainPresenter{Out: w}
}

func (p *PlainPresenter) Instruction(inst model.Instruction, code []byte) {
	fmt.Fprintf(p.Out, "%s -> % x\n", inst.Kind, code)
}

func (p *PlainPresenter) Register(reg model.Register, value uint64, opts model.DisplayOptions) {
	if opts.HumanReadable {
		fmt.Fprintf(p.Out, "%s: %d (0x%x)\n", reg, value, value)
		return
	}
	fmt.Fprintf(p.Out, "%s: 0x%016x\n", reg, value)
}

func (p *PlainPresenter) Memory(opts model.MemoryDumpOptions, data []byte) {
	switch opts.Format {
	case model.FormatDecimal:
		for i, b := range data {
			fmt.Fprintf(p.Out, "%d: %d\n", opts.Address+uint64(i), b)
		}
	default:
		fmt.Fprintf(p.Out, "%#x: % x\n", opts.Address, data)
	}
}

func (p *PlainPresenter) CPU(c *vm.CPU, detailed bool) {
	fmt.Fprintf(p.Out, "RIP=0x%x CF=%v ZF=%v SF=%v OF=%v\n", c.RIP, c.CF, c.ZF, c.SF, c.OF)
	if !detailed {
		return
	}
	for r := model.RAX; r <= model.R15; r++ {
		fmt.Fprintf(p.Out, "  %s: 0x%016x\n", r, c.Get(r))
	}
}

func (p *PlainPresenter) Error(err error) {
	fmt.Fprintf(p.Out, "error: %v\n", err)
}

func (p *PlainPresenter) Help() {
	fmt.Fprint(p.Out, `meta-commands: exit, help, cpu, state, :single, :multi, :calc, :script, run
anything else is parsed as an instruction, register query, or memory query
`)
}

func (p *PlainPresenter) Notice(message string) {
	fmt.Fprintln(p.Out, message)
}
