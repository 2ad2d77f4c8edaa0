package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/services"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

type ExportOptions struct {
	Format   string
	Output   string
	Now      time.Time
	Location *time.Location
}

// RunExportCommand writes the export to options.Output, or to stdout when no
// output path is given.
func RunExportCommand(documents services.DocumentReader, options ExportOptions, stdout io.Writer) error {
	format := strings.ToLower(strings.TrimSpace(options.Format))
	if format == "" {
		format = ExportFormatCSV
	}
	if options.Now.IsZero() {
		options.Now = time.Now()
	}

	payload := services.NewExportService(documents, options.Location).BuildPayload(options.Now)

	var (
		data []byte
		err  error
	)
	switch format {
	case ExportFormatCSV:
		data, err = services.EncodeExportCSV(payload.Entries)
	case ExportFormatJSON:
		data, err = services.EncodeExportJSON(payload)
	default:
		return fmt.Errorf("unsupported export format %q", options.Format)
	}
	if err != nil {
		return fmt.Errorf("build export: %w", err)
	}

	output := strings.TrimSpace(options.Output)
	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if output == "." || strings.HasSuffix(output, string(os.PathSeparator)) {
		output = filepath.Join(output, services.BuildExportFilename(options.Now, format))
	}
	if err := writeExportFile(output, data); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "✅ Exported %d day(s) to %s\n", len(payload.Entries), output)
	return nil
}

func writeExportFile(path string, data []byte) error {
	if path == "" {
		return errors.New("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
