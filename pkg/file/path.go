package file

import (
	"path/filepath"
	"strings"
)

// ReplaceExt swaps the extension of path for ext ("ass" or ".ass").
func ReplaceExt(path, ext string) string {
	if path == "" {
		return path
	}

	dir := filepath.Dir(path)
	filename := filepath.Base(path)

	lastDot := strings.LastIndex(filename, ".")

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if lastDot <= 0 {
		return filepath.Join(dir, filename+ext)
	}

	return filepath.Join(dir, filename[:lastDot]+ext)
}

// WithSuffix inserts suffix between the base name and the extension:
// WithSuffix("a/video.srt", "_bilingual") == "a/video_bilingual.srt".
func WithSuffix(path, suffix string) string {
	if path == "" {
		return path
	}

	dir := filepath.Dir(path)
	filename := filepath.Base(path)

	lastDot := strings.LastIndex(filename, ".")
	if lastDot <= 0 {
		return filepath.Join(dir, filename+suffix)
	}

	return filepath.Join(dir, filename[:lastDot]+suffix+filename[lastDot:])
}

// HasSuffix reports whether the base name (extension stripped) ends in suffix.
func HasSuffix(path, suffix string) bool {
	filename := filepath.Base(path)
	if lastDot := strings.LastIndex(filename, "."); lastDot > 0 {
		filename = filename[:lastDot]
	}
	return strings.HasSuffix(filename, suffix)
}
