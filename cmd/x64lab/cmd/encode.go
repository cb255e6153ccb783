package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"x64lab/encoder"
	"x64lab/model"
	"x64lab/parser"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <line>",
	Short: "parse and encode one instruction line, print the byte sequence, exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		if input.Kind != model.InputInstruction {
			return fmt.Errorf("encode expects an instruction line, got a register or memory query")
		}

		enc, err := encoder.New()
		if err != nil {
			return err
		}
		defer enc.Close()

		code, err := enc.Encode(input.Instruction, 0)
		if err != nil {
			return err
		}

		fmt.Printf("% x\n", code)
		return nil
	},
}
