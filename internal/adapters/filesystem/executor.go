package filesystem

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ordino/internal/domain"
)

// Result summarizes one execution pass.
type Result struct {
	Linked int // placed via hardlink or symlink
	Copied int // hardlink fell back to a copy (cross-device)
	Failed int
}

// Executor applies planned operations to the filesystem: creating
// destination folders and placing each file with the operation's link
// type. Hardlinks fall back to a plain copy when linking fails (e.g.
// across filesystems).
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger uses slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// Execute applies every operation in order. Failures are per-file:
// they are counted and logged, and the pass continues.
func (e *Executor) Execute(operations []domain.Operation) Result {
	var res Result

	for _, op := range operations {
		copied, err := e.place(op)
		if err != nil {
			e.logger.Error("failed to place file",
				"source", op.Source, "destination", op.Destination, "error", err)
			res.Failed++
			continue
		}
		if copied {
			res.Copied++
		} else {
			res.Linked++
		}
	}

	return res
}

func (e *Executor) place(op domain.Operation) (copied bool, err error) {
	if err := os.MkdirAll(filepath.Dir(op.Destination), 0755); err != nil {
		return false, fmt.Errorf("failed to create folder: %w", err)
	}

	if _, err := os.Lstat(op.Destination); err == nil {
		return false, fmt.Errorf("destination already exists")
	}

	switch op.Link {
	case domain.LinkSym:
		source, err := filepath.Abs(op.Source)
		if err != nil {
			return false, err
		}
		return false, os.Symlink(source, op.Destination)
	default:
		if err := os.Link(op.Source, op.Destination); err == nil {
			return false, nil
		}
		// Cross-device or unsupported: degrade to a copy.
		return true, copyFile(op.Source, op.Destination)
	}
}

// WriteLog appends a plain-text record of executed operations so users
// can trace where each file went.
func WriteLog(path string, operations []domain.Operation, when time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open operation log: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "# run %s\n", when.Format(time.RFC3339))
	for _, op := range operations {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", op.Link, op.Source, op.Destination)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write operation log: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
