package domain

import (
	"path/filepath"
	"strings"
)

// FileKind classifies a file by its extension, deciding which
// description pipeline handles it and which folder the by-type mode
// places it in.
type FileKind int

const (
	KindOther FileKind = iota
	KindImage
	KindText
	KindAudio
	KindVideo
)

func (k FileKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "other"
	}
}

// Folder returns the by-type destination folder for this kind.
func (k FileKind) Folder() string {
	switch k {
	case KindImage:
		return "image_files"
	case KindText:
		return "text_files"
	case KindAudio:
		return "audio_files"
	case KindVideo:
		return "video_files"
	default:
		return "other_files"
	}
}

var kindByExt = map[string]FileKind{
	".png": KindImage, ".jpg": KindImage, ".jpeg": KindImage,
	".gif": KindImage, ".bmp": KindImage, ".tiff": KindImage,

	".txt": KindText, ".docx": KindText, ".doc": KindText,
	".pdf": KindText, ".md": KindText, ".xls": KindText,
	".xlsx": KindText, ".ppt": KindText, ".pptx": KindText,
	".csv": KindText,

	".mp3": KindAudio, ".wav": KindAudio, ".m4a": KindAudio,
	".flac": KindAudio, ".ogg": KindAudio, ".aac": KindAudio,

	".mp4": KindVideo, ".mov": KindVideo, ".avi": KindVideo,
	".mkv": KindVideo, ".webm": KindVideo,
}

// KindOf classifies a file path by its lowercased extension.
func KindOf(path string) FileKind {
	return kindByExt[strings.ToLower(filepath.Ext(path))]
}
