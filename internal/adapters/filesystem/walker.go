// Package filesystem is the only component that touches the disk: it
// collects input files for the planners and applies finished plans.
package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ordino/internal/organizer"
)

// CollectFiles gathers every file under root, skipping hidden files
// and hidden directories. A root that is itself a file yields a
// single-element list. Results come back in walk order (lexical).
func CollectFiles(root string) ([]organizer.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read input path: %w", err)
	}

	if !info.IsDir() {
		return []organizer.File{{Path: root, ModTime: info.ModTime()}}, nil
	}

	var files []organizer.File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".") && path != root
		if d.IsDir() {
			if hidden {
				return fs.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, organizer.File{Path: path, ModTime: fi.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// maxPreviewBytes caps how much of a document is read for
// summarization.
const maxPreviewBytes = 32 * 1024

// ReadTextPreview returns up to maxPreviewBytes of a text file's
// content for the describer to summarize.
func ReadTextPreview(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPreviewBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
