package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("x64lab %s\n", Version)
	},
}
