package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ordino/internal/organizer"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the configured Johnny Decimal structure",
	Long: `Print the areas and categories the organizer will use, including
the system area when the layout has one.

Example:
  ordino overview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(organizer.Overview(registry))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
