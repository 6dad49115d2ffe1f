package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ordino/internal/config"
	"ordino/internal/domain"
)

var (
	configPath string
	verbose    bool

	cfg      *config.Config
	registry *domain.Registry
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ordino",
	Short: "Organize files into a Johnny Decimal structure",
	Long: `ordino plans and applies file organization using the Johnny Decimal
numbering system: areas, categories, and sequential item IDs.

Files are never moved without an explicit --execute or an accepted
interactive review. The default run is a dry run that prints the plan
and the resulting folder tree.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		// A .env in the working directory is a convenience for
		// OPENAI_API_KEY and ORDINO_CONFIG. Absence is fine.
		_ = godotenv.Load()

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		registry, err = cfg.Registry()
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/ordino/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
