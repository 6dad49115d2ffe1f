package organizer

import (
	"context"
	"log/slog"

	"ordino/internal/domain"
	"ordino/internal/ports"
)

// DescribeFiles builds the path→description map the planner consumes,
// dispatching each file to the describer by kind: images to the vision
// model, documents to summarization, audio and video to transcription.
// Failures are logged and leave the file without a description, which
// the planner handles by falling back to the original name.
func DescribeFiles(ctx context.Context, files []File, describer ports.Describer,
	readText func(path string) (string, error), logger *slog.Logger) map[string]string {

	if logger == nil {
		logger = slog.Default()
	}
	descriptions := make(map[string]string)

	for _, f := range files {
		var (
			desc string
			err  error
		)

		switch domain.KindOf(f.Path) {
		case domain.KindImage:
			desc, err = describer.DescribeImage(ctx, f.Path)

		case domain.KindText:
			var text string
			text, err = readText(f.Path)
			if err == nil && text != "" {
				desc, err = describer.Summarize(ctx, text)
			}

		case domain.KindAudio, domain.KindVideo:
			var transcript string
			transcript, err = describer.Transcribe(ctx, f.Path)
			if err == nil && transcript != "" {
				desc, err = describer.Summarize(ctx, transcript)
			}

		default:
			continue
		}

		if err != nil {
			logger.Warn("failed to describe file", "file", f.Path, "error", err)
			continue
		}
		if desc != "" {
			descriptions[f.Path] = desc
		}
	}

	return descriptions
}
