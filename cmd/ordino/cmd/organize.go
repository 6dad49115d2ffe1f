package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"ordino/internal/adapters/filesystem"
	"ordino/internal/adapters/openai"
	"ordino/internal/adapters/sqlite"
	"ordino/internal/adapters/tui"
	"ordino/internal/domain"
	"ordino/internal/organizer"
	"ordino/internal/ports"
)

var (
	outputDir string
	mode      string
	linkMode  string
	describe  bool
	execute   bool
	yes       bool
	review    bool
	indexPath string
	skipIndex bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize <input-dir>",
	Short: "Plan and apply file organization",
	Long: `Organize the files under input-dir into output-dir.

Modes:
  jd       Johnny Decimal areas and categories with item IDs (default)
  date     year/month folders from modification time
  type     folders by file kind (images, documents, audio, video)
  content  AI-named theme folders and file names (requires --describe)

Without --execute or --review this is a dry run: the plan and the
resulting tree are printed and nothing is touched. Originals are never
modified; files are hard-linked (or symlinked with --link symlink) into
the new structure.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir := args[0]
		ctx := cmd.Context()

		link, err := parseLink(linkMode)
		if err != nil {
			return err
		}

		files, err := filesystem.CollectFiles(inputDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No files to organize.")
			return nil
		}

		out := outputDir
		if out == "" {
			out = cfg.Output
		}
		if out == "" {
			out = "organized"
		}

		descriptions := describeFiles(ctx, files)

		plan, err := buildPlan(files, out, link, descriptions)
		if err != nil {
			return err
		}

		apply := execute || yes
		if review {
			accepted, err := tui.Review(plan, out)
			if err != nil {
				return err
			}
			if !accepted {
				fmt.Println("Plan rejected, nothing changed.")
				return nil
			}
			apply = true
		}

		if !apply {
			printPlan(plan, out)
			fmt.Println("\nDry run. Re-run with --execute to apply, or --review to inspect interactively.")
			return nil
		}

		result := filesystem.NewExecutor(logger).Execute(plan.Operations)
		fmt.Printf("Done: %d linked, %d copied, %d failed, %d skipped.\n",
			result.Linked, result.Copied, result.Failed, len(plan.Skipped))

		logPath := filepath.Join(out, "ordino.log")
		if err := filesystem.WriteLog(logPath, plan.Operations, time.Now()); err != nil {
			logger.Warn("failed to write operation log", "path", logPath, "error", err)
		}

		if mode == "jd" && !skipIndex {
			if err := recordIndex(plan); err != nil {
				logger.Warn("failed to update index", "error", err)
			}
		}
		return nil
	},
}

func parseLink(s string) (domain.LinkType, error) {
	switch s {
	case "hardlink":
		return domain.LinkHard, nil
	case "symlink":
		return domain.LinkSym, nil
	default:
		return "", fmt.Errorf("unknown link mode: %s (expected hardlink or symlink)", s)
	}
}

// describeFiles runs AI description when requested and available.
// Any failure degrades to filename-based organization.
func describeFiles(ctx context.Context, files []organizer.File) map[string]string {
	if !describe {
		return nil
	}

	describer := openai.NewDescriber(openai.Config{
		APIKey:            cfg.Model.APIKey,
		BaseURL:           cfg.Model.BaseURL,
		VisionModel:       cfg.Model.Vision,
		TextModel:         cfg.Model.Text,
		TranscribeModel:   cfg.Model.Transcribe,
		RequestsPerMinute: cfg.Model.RequestsPerMinute,
	})
	if !describer.Available() {
		logger.Warn("no API key or endpoint configured, organizing by filename only")
		return nil
	}
	return organizer.DescribeFiles(ctx, files, describer, filesystem.ReadTextPreview, logger)
}

func buildPlan(files []organizer.File, out string, link domain.LinkType, descriptions map[string]string) (organizer.Plan, error) {
	switch mode {
	case "jd":
		planner := organizer.NewPlanner(registry,
			organizer.WithLink(link),
			organizer.WithLogger(logger),
		)
		return planner.Plan(files, out, descriptions), nil
	case "date":
		return organizer.PlanByDate(files, out, link), nil
	case "type":
		return organizer.PlanByType(files, out, link), nil
	case "content":
		if descriptions == nil {
			return organizer.Plan{}, fmt.Errorf("content mode requires --describe and a configured model")
		}
		metadata := organizer.MetadataFromDescriptions(descriptions)
		return organizer.PlanByContent(files, out, metadata, link), nil
	default:
		return organizer.Plan{}, fmt.Errorf("unknown mode: %s (expected jd, date, type, or content)", mode)
	}
}

func printPlan(plan organizer.Plan, out string) {
	fmt.Printf("%d operations, %d skipped\n\n", len(plan.Operations), len(plan.Skipped))
	for _, op := range plan.Operations {
		fmt.Printf("%s -> %s\n", op.Source, op.Destination)
	}
	for _, skip := range plan.Skipped {
		fmt.Printf("skipped %s: %s\n", skip.Path, skip.Reason)
	}
	fmt.Println()
	fmt.Print(organizer.RenderTree(organizer.SimulateTree(plan.Operations, out)))
}

func recordIndex(plan organizer.Plan) error {
	var index ports.CatalogIndex = sqlite.NewIndex()

	path := indexPath
	if path == "" {
		path = sqlite.DefaultPath()
	}
	if err := index.Open(path); err != nil {
		return err
	}
	defer index.Close()

	for _, op := range plan.Operations {
		if err := index.Record(op.Index); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(organizeCmd)

	organizeCmd.Flags().StringVarP(&outputDir, "output", "o", "", "destination root (default from config, else ./organized)")
	organizeCmd.Flags().StringVarP(&mode, "mode", "m", "jd", "organization mode: jd, date, type, or content")
	organizeCmd.Flags().StringVar(&linkMode, "link", "hardlink", "link type: hardlink or symlink")
	organizeCmd.Flags().BoolVar(&describe, "describe", false, "describe files with the configured AI model")
	organizeCmd.Flags().BoolVar(&execute, "execute", false, "apply the plan instead of printing it")
	organizeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply without interactive confirmation (same as --execute)")
	organizeCmd.Flags().BoolVar(&review, "review", false, "review the plan interactively before applying")
	organizeCmd.Flags().StringVar(&indexPath, "index", "", "index database path (default ~/.local/share/ordino/jdex.db)")
	organizeCmd.Flags().BoolVar(&skipIndex, "no-index", false, "do not record entries in the index database")
}
