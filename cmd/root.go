package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foundry",
	Short: "FoundryTrack production and quality tracking CLI",
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("FoundryTrack", "", true).Print()
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
