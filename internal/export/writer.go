// Package export serializes content entities to files on disk. It replaces
// the browser blob download of the original tool; nothing in the core layers
// depends on how it formats documents.
package export

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/osokin/teachdesk/internal/logger"
	"github.com/osokin/teachdesk/internal/model"
)

var _ model.ExportWriter = (*FileWriter)(nil)

// FileWriter writes exports under a single directory.
type FileWriter struct {
	dir    string
	logger *logger.Logger
}

func NewFileWriter(dir string, logger *logger.Logger) *FileWriter {
	return &FileWriter{
		dir:    dir,
		logger: logger,
	}
}

// WriteText writes content as a plain-text file and returns its path.
func (w *FileWriter) WriteText(content string, filename string) (string, error) {
	return w.write([]byte(content), filename, ".txt")
}

// WriteDocument writes a Word-compatible HTML document and returns its path.
// Word opens HTML saved with a .doc extension natively, which keeps the
// export dependency-free.
func (w *FileWriter) WriteDocument(doc model.Document, filename string) (string, error) {
	var b strings.Builder
	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word"><head><meta charset="utf-8"><title>`)
	b.WriteString(html.EscapeString(doc.Title))
	b.WriteString("</title></head><body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(doc.Title))
	for _, line := range strings.Split(doc.Body, "\n") {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(line))
	}
	b.WriteString("</body></html>\n")

	return w.write([]byte(b.String()), filename, ".doc")
}

func (w *FileWriter) write(data []byte, filename, ext string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(w.dir, sanitize(filename)+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	w.logger.Info("export: file written", "path", path)

	return path, nil
}

// sanitize keeps filenames portable across filesystems.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "untitled"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		case r == ' ', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}

	return b.String()
}
