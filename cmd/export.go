package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"foundry.GO/cron/jobs"
)

var exportRunCmd = &cobra.Command{
	Use:   "export:run",
	Short: "Export yesterday's casting runs to CSV immediately",
	Run: func(cmd *cobra.Command, args []string) {
		if err := jobs.RunNightlyExport(context.Background()); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			return
		}
		fmt.Println("Export completed.")
	},
}

func init() {
	rootCmd.AddCommand(exportRunCmd)
}
