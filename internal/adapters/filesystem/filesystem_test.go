package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ordino/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestCollectFiles_SkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.txt"), "notes")
	writeFile(t, filepath.Join(root, ".DS_Store"), "junk")
	writeFile(t, filepath.Join(root, "sub", "report.pdf"), "report")
	writeFile(t, filepath.Join(root, ".git", "config"), "hidden dir content")

	files, err := CollectFiles(root)
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}
	for _, f := range files {
		base := filepath.Base(f.Path)
		if base == ".DS_Store" || base == "config" {
			t.Errorf("hidden entry collected: %s", f.Path)
		}
		if f.ModTime.IsZero() {
			t.Errorf("mod time not populated for %s", f.Path)
		}
	}
}

func TestCollectFiles_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "solo.txt")
	writeFile(t, path, "solo")

	files, err := CollectFiles(path)
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Errorf("got %+v, want just %s", files, path)
	}
}

func TestReadTextPreview(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "# Title\nbody text")

	got, err := ReadTextPreview(path)
	if err != nil {
		t.Fatalf("ReadTextPreview failed: %v", err)
	}
	if got != "# Title\nbody text" {
		t.Errorf("preview = %q", got)
	}
}

func TestExecute_Hardlink(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "in", "a.txt")
	writeFile(t, src, "content")

	dst := filepath.Join(root, "out", "10-19 Life admin", "12 Money", "12.10 a.txt")
	res := NewExecutor(nil).Execute([]domain.Operation{{
		Source: src, Destination: dst, Link: domain.LinkHard,
	}})

	if res.Failed != 0 || res.Linked+res.Copied != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("destination unreadable: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("destination content = %q", data)
	}
}

func TestExecute_Symlink(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "in", "a.txt")
	writeFile(t, src, "content")

	dst := filepath.Join(root, "out", "a.txt")
	res := NewExecutor(nil).Execute([]domain.Operation{{
		Source: src, Destination: dst, Link: domain.LinkSym,
	}})

	if res.Failed != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	target, err := os.Readlink(dst)
	if err != nil {
		t.Fatalf("destination is not a symlink: %v", err)
	}
	if !filepath.IsAbs(target) {
		t.Errorf("symlink target %q should be absolute", target)
	}
}

func TestWriteLog_AppendsRuns(t *testing.T) {
	root := t.TempDir()
	logPath := filepath.Join(root, "out", "ordino.log")
	ops := []domain.Operation{{
		Source: "/in/a.txt", Destination: "/out/12 Money/12.10 a.txt", Link: domain.LinkHard,
	}}
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := WriteLog(logPath, ops, when); err != nil {
		t.Fatalf("WriteLog failed: %v", err)
	}
	if err := WriteLog(logPath, ops, when.Add(time.Hour)); err != nil {
		t.Fatalf("second WriteLog failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log unreadable: %v", err)
	}
	content := string(data)
	if strings.Count(content, "# run ") != 2 {
		t.Errorf("expected two run headers:\n%s", content)
	}
	if !strings.Contains(content, "hardlink\t/in/a.txt\t/out/12 Money/12.10 a.txt") {
		t.Errorf("operation line missing:\n%s", content)
	}
}

func TestExecute_ExistingDestinationFails(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.txt")
	dst := filepath.Join(root, "out", "a.txt")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	res := NewExecutor(nil).Execute([]domain.Operation{{
		Source: src, Destination: dst, Link: domain.LinkHard,
	}})

	if res.Failed != 1 {
		t.Fatalf("expected failure, got %+v", res)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "old" {
		t.Error("existing destination was overwritten")
	}
}
