package organizer

import (
	"path/filepath"
	"strings"

	"ordino/internal/domain"
	"ordino/internal/sanitize"
)

// ContentMetadata is the AI-derived naming for one file in content
// mode: a theme folder plus a descriptive file name, both already
// free-text (sanitization happens here).
type ContentMetadata struct {
	Folder      string
	Name        string
	Description string
}

// MetadataFromDescriptions derives content-mode naming from plain
// descriptions: the description seeds both the theme folder and the
// file name, trimmed to length by the sanitizer in PlanByContent.
func MetadataFromDescriptions(descriptions map[string]string) map[string]ContentMetadata {
	metadata := make(map[string]ContentMetadata, len(descriptions))
	for path, desc := range descriptions {
		metadata[path] = ContentMetadata{
			Folder:      desc,
			Name:        desc,
			Description: desc,
		}
	}
	return metadata
}

// PlanByContent plans AI-named folders and file names. Files without
// metadata fall back to their sanitized original names under an
// "uncategorized" folder.
func PlanByContent(files []File, outputDir string, metadata map[string]ContentMetadata, link domain.LinkType) Plan {
	var plan Plan
	taken := make(map[string]bool)

	for _, f := range files {
		base := filepath.Base(f.Path)
		if strings.HasPrefix(base, ".") {
			plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: "hidden file"})
			continue
		}

		meta := metadata[f.Path]
		ext := filepath.Ext(f.Path)

		folder := sanitize.Clean(meta.Folder, 2)
		if folder == "" {
			folder = "uncategorized"
		}

		name := sanitize.Clean(meta.Name, 3)
		if name == "" {
			name = sanitize.Clean(stem(f.Path), 3)
		}
		if name == "" {
			name = domain.FallbackDescription
		}

		fileName := uniqueName(taken, folder, name+ext)

		plan.Operations = append(plan.Operations, domain.Operation{
			Source:      f.Path,
			Destination: filepath.Join(outputDir, folder, fileName),
			Link:        link,
			FolderName:  folder,
			NewFileName: fileName,
		})
	}

	return plan
}
