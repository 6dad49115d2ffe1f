package organizer

import (
	"path/filepath"
	"strconv"
	"strings"

	"ordino/internal/domain"
)

// PlanByDate plans a {year}/{month} folder per file based on its
// modification time. Name collisions within a folder get a numeric
// suffix so no planned destination is ever duplicated.
func PlanByDate(files []File, outputDir string, link domain.LinkType) Plan {
	var plan Plan
	taken := make(map[string]bool)

	for _, f := range files {
		base := filepath.Base(f.Path)
		if strings.HasPrefix(base, ".") {
			plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: "hidden file"})
			continue
		}

		folder := filepath.Join(f.ModTime.Format("2006"), f.ModTime.Format("January"))
		fileName := uniqueName(taken, folder, base)

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

// PlanByType plans one folder per file kind (image_files, text_files,
// audio_files, video_files, other_files).
func PlanByType(files []File, outputDir string, link domain.LinkType) Plan {
	var plan Plan
	taken := make(map[string]bool)

	for _, f := range files {
		base := filepath.Base(f.Path)
		if strings.HasPrefix(base, ".") {
			plan.Skipped = append(plan.Skipped, Warning{Path: f.Path, Reason: "hidden file"})
			continue
		}

		folder := domain.KindOf(f.Path).Folder()
		fileName := uniqueName(taken, folder, base)

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

// uniqueName reserves base within folder, appending _1, _2, ... before
// the extension until the name is free.
func uniqueName(taken map[string]bool, folder, base string) string {
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	candidate := base
	for i := 1; taken[filepath.Join(folder, candidate)]; i++ {
		candidate = name + "_" + strconv.Itoa(i) + ext
	}
	taken[filepath.Join(folder, candidate)] = true
	return candidate
}
