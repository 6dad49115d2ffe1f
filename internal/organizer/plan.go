// Package organizer plans file placements. Planners are pure: they map
// an input file list to operation records and never touch the
// filesystem, so every run is a dry run until an executor applies it.
package organizer

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"ordino/internal/domain"
	"ordino/internal/sanitize"
)

// descriptionWords bounds the sanitized description length in
// generated file names.
const descriptionWords = 4

// File is one input file with the metadata planners need. The walker
// fills it in; planners never stat anything themselves.
type File struct {
	Path    string
	ModTime time.Time
}

// Warning records a file the planner could not place.
type Warning struct {
	Path   string
	Reason string
}

// Plan is the ordered result of one planning run. Operations reflects
// exactly the files that were placed; everything else is in Skipped.
type Plan struct {
	Operations []domain.Operation
	Skipped    []Warning
}

// Planner drives the per-file Johnny Decimal pipeline: categorize,
// allocate an ID, build the destination path, emit an operation record.
type Planner struct {
	registry    *domain.Registry
	categorizer *domain.Categorizer
	alloc       *domain.Allocator
	link        domain.LinkType
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithLink sets the link type stamped on planned operations.
func WithLink(link domain.LinkType) Option {
	return func(p *Planner) {
		p.link = link
	}
}

// WithClock overrides the timestamp source for index entries.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

// WithLogger sets the logger for skip warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// NewPlanner creates a planner with a fresh allocator. Allocation state
// lives and dies with the planner: construct one per run.
func NewPlanner(registry *domain.Registry, opts ...Option) *Planner {
	p := &Planner{
		registry:    registry,
		categorizer: domain.NewCategorizer(registry),
		alloc:       domain.NewAllocator(registry.Layout()),
		link:        domain.LinkHard,
		now:         time.Now,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan maps every input file to a planned operation, in input order.
// descriptions is an optional path→description map from upstream AI
// processing; files without one get a description derived from their
// original name. Hidden files are skipped; a category that runs out of
// IDs skips that file with a warning and the batch continues.
func (p *Planner) Plan(files []File, outputDir string, descriptions map[string]string) Plan {
	var plan Plan

	for _, f := range files {
		base := filepath.Base(f.Path)
		if strings.HasPrefix(base, ".") {
			plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: "hidden file"})
			continue
		}

		desc := descriptions[f.Path]
		sug := p.categorizer.Suggest(f.Path, desc, domain.NoHint)

		id, err := p.alloc.Next(sug.Category)
		if err != nil {
			if errors.Is(err, domain.ErrExhausted) {
				p.logger.Warn("skipping file: category exhausted",
					"file", f.Path, "category", sug.Category)
				plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: err.Error()})
				continue
			}
			plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: err.Error()})
			continue
		}

		description := p.describe(f.Path, desc)
		areaName, _ := p.registry.AreaName(sug.Area)
		folder := domain.FolderPath(sug.Area, areaName, sug.Category, sug.CategoryName)
		fileName := domain.FileName(id, description, filepath.Ext(f.Path))
		destination := filepath.Join(outputDir, folder, fileName)

		plan.Operations = append(plan.Operations, domain.Operation{
			Source:      f.Path,
			Destination: destination,
			Link:        p.link,
			FolderName:  folder,
			NewFileName: fileName,
			ID:          id,
			Index:       domain.NewIndexEntry(id, description, destination, p.now()),
		})
	}

	return plan
}

// describe picks the file's description: the AI-supplied one when
// present, the original name otherwise, the fixed placeholder when
// sanitization leaves nothing.
func (p *Planner) describe(path, contentDescription string) string {
	text := contentDescription
	if text == "" {
		text = stem(path)
	}
	if cleaned := sanitize.Clean(text, descriptionWords); cleaned != "" {
		return cleaned
	}
	return domain.FallbackDescription
}

// stem returns the base name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
