package domain

import (
	"testing"
	"time"
)

func TestFolderPath_Rendering(t *testing.T) {
	got := FolderPath(20, "Work", 22, "Admin")
	if got != "20-29 Work/22 Admin" {
		t.Errorf("FolderPath = %q, want %q", got, "20-29 Work/22 Admin")
	}
}

func TestFolderPath_SystemArea(t *testing.T) {
	got := FolderPath(SystemArea, "System", 3, "Projects management")
	if got != "00-09 System/03 Projects management" {
		t.Errorf("FolderPath = %q, want %q", got, "00-09 System/03 Projects management")
	}
}

func TestFileName_Rendering(t *testing.T) {
	id := ID{Category: 22, Sequence: 11}
	got := FileName(id, "meeting_notes_march", ".txt")
	if got != "22.11 meeting_notes_march.txt" {
		t.Errorf("FileName = %q, want %q", got, "22.11 meeting_notes_march.txt")
	}
}

func TestFileName_ExtensionPreservedVerbatim(t *testing.T) {
	id := ID{Category: 30, Sequence: 10}
	got := FileName(id, "holiday_photo", ".JPG")
	if got != "30.10 holiday_photo.JPG" {
		t.Errorf("FileName = %q: extension case must be preserved", got)
	}
}

func TestFileName_EmptyDescription(t *testing.T) {
	id := ID{Category: 10, Sequence: 10}
	got := FileName(id, "", ".dat")
	if got != "10.10 item.dat" {
		t.Errorf("FileName = %q, want fallback description %q", got, "item")
	}
}

func TestNewIndexEntry(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	id := ID{Category: 22, Sequence: 11}

	entry := NewIndexEntry(id, "meeting_notes_march", "/out/20-29 Work/22 Admin/22.11 meeting_notes_march.txt", created)

	if entry.ID != "22.11" {
		t.Errorf("ID = %q, want 22.11", entry.ID)
	}
	if entry.Title != "22.11 meeting_notes_march" {
		t.Errorf("Title = %q", entry.Title)
	}
	if entry.Location != "File system: /out/20-29 Work/22 Admin/22.11 meeting_notes_march.txt" {
		t.Errorf("Location = %q", entry.Location)
	}
	if !entry.Created.Equal(created) {
		t.Errorf("Created = %v, want %v", entry.Created, created)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want FileKind
	}{
		{"photo.JPG", KindImage},
		{"report.pdf", KindText},
		{"memo.mp3", KindAudio},
		{"clip.mkv", KindVideo},
		{"archive.zip", KindOther},
		{"no_extension", KindOther},
	}

	for _, tt := range tests {
		if got := KindOf(tt.path); got != tt.want {
			t.Errorf("KindOf(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
