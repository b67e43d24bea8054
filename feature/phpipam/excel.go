package phpipam

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads export rows from an Excel workbook, streaming row by
// row so large exports are not held in memory twice.
type ExcelSource struct {
	file *excelize.File
	rows *excelize.Rows
}

// NewExcelSource opens the named sheet from workbook content. When sheet is
// empty, the workbook's first sheet is used.
func NewExcelSource(r io.Reader, sheet string) (*ExcelSource, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.Rows(sheet)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open sheet %q: %w", sheet, err)
	}

	return &ExcelSource{file: file, rows: rows}, nil
}

// Next returns the next row. io.EOF signals end of the sheet.
func (s *ExcelSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}

// Close releases the row iterator and the workbook.
func (s *ExcelSource) Close() error {
	rowsErr := s.rows.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return rowsErr
}
