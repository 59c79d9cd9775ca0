// Package fs writes archive and summary files to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/helparc"
)

// Ensure Writer implements helparc.ArchiveWriter at compile time.
var _ helparc.ArchiveWriter = (*Writer)(nil)

// Writer writes the assembled archive as a markdown file and the run
// summary as a JSON file.
type Writer struct {
	archivePath string
	summaryPath string
}

// NewWriter creates a Writer targeting the given output paths.
func NewWriter(archivePath, summaryPath string) *Writer {
	return &Writer{archivePath: archivePath, summaryPath: summaryPath}
}

// WriteArchive renders the archive to markdown and writes it to disk,
// creating parent directories as needed.
func (w *Writer) WriteArchive(ctx context.Context, archive *helparc.Archive) error {
	content := helparc.FormatArchive(archive)
	return writeFile(w.archivePath, []byte(content))
}

// WriteSummary writes the run summary as indented JSON.
func (w *Writer) WriteSummary(ctx context.Context, summary *helparc.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(w.summaryPath, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
