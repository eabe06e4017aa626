package service

import (
	"fmt"
	"io"
	"os"

	"github.com/ludo-technologies/simdoc/domain"
)

// FileReportWriter implements the domain.ReportWriter interface. Output goes
// to the given writer unless an output path is set, in which case a file is
// created and a note is printed to the status stream.
type FileReportWriter struct {
	statusWriter io.Writer
}

// NewFileReportWriter creates a report writer that prints status messages to
// the given stream (typically stderr).
func NewFileReportWriter(statusWriter io.Writer) *FileReportWriter {
	return &FileReportWriter{statusWriter: statusWriter}
}

// Write writes formatted content using writeFunc.
func (w *FileReportWriter) Write(writer io.Writer, outputPath string, writeFunc func(io.Writer) error) error {
	if outputPath == "" {
		return writeFunc(writer)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return domain.NewOutputError("failed to create output file", err)
	}
	defer func() { _ = f.Close() }()

	if err := writeFunc(f); err != nil {
		return err
	}
	if w.statusWriter != nil {
		fmt.Fprintf(w.statusWriter, "Output written to %s\n", outputPath)
	}
	return nil
}
