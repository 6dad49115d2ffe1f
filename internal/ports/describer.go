package ports

import "context"

// Describer produces content descriptions for files via an external AI
// service. The core never calls it directly: the CLI gathers
// descriptions up front and feeds the planner a plain path→description
// map, so the numbering engine stays pure.
type Describer interface {
	// DescribeImage returns a prose description of an image file.
	DescribeImage(ctx context.Context, path string) (string, error)

	// Summarize condenses already-extracted document text.
	Summarize(ctx context.Context, text string) (string, error)

	// Transcribe converts speech in an audio file to text.
	Transcribe(ctx context.Context, path string) (string, error)

	// Available reports whether the backing service is configured.
	Available() bool
}
