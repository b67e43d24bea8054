package phpipam

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenObject wraps an already-open stream, such as an object fetched from a
// bucket, choosing the decoder from the name's extension. Ownership of body
// passes to the returned source (or is released on error).
func OpenObject(name, sheet string, body io.ReadCloser) (RowSource, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return NewCSVSource(body), nil
	case ".xlsx", ".xlsm":
		// The workbook is fully read at open time, so the stream can be
		// released as soon as the source is constructed.
		defer func() { _ = body.Close() }()
		return NewExcelSource(body, sheet)
	case ".xls":
		_ = body.Close()
		return nil, fmt.Errorf("legacy .xls workbooks are not supported, re-export %q as .xlsx or .csv", name)
	default:
		_ = body.Close()
		return nil, fmt.Errorf("unsupported export format %q (expected .csv or .xlsx)", ext)
	}
}

// OpenFile opens a local export file as a row source.
func OpenFile(path, sheet string) (RowSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	return OpenObject(path, sheet, f)
}
