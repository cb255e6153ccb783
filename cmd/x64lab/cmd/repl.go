package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"x64lab/encoder"
	"x64lab/internal/session"
	"x64lab/model"
	"x64lab/vm"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start the interactive line protocol on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		enc, err := encoder.New()
		if err != nil {
			return err
		}
		defer enc.Close()

		presenter := session.NewPlainPresenter(os.Stdout)
		sess := session.New(enc, presenter)
		sess.CPU = vm.NewWithSize(cfg.Execution.MemorySize)
		sess.DefaultMemoryFormat = numberFormatFromConfig(cfg.Display.NumberFormat)

		fmt.Println("x64lab - type 'help' for meta-commands, 'exit' to quit")
		scanner := bufio.NewScanner(os.Stdin)
		for !sess.Stopped && scanner.Scan() {
			sess.Handle(scanner.Text())
		}
		return nil
	},
}
