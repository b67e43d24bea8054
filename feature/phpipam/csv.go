package phpipam

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
)

// utf8BOM is the byte order mark Windows tools prepend to exported CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads export rows from CSV content.
type CSVSource struct {
	reader *csv.Reader
	closer io.Closer
}

// NewCSVSource creates a RowSource over CSV content. Rows may have varying
// column counts and sloppy quoting; the reader enforces neither, since
// phpIPAM exports interleave header and data rows of different widths.
func NewCSVSource(r io.ReadCloser) *CSVSource {
	buffered := bufio.NewReader(r)
	skipBOM(buffered)

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return &CSVSource{reader: reader, closer: r}
}

func skipBOM(r *bufio.Reader) {
	head, err := r.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = r.Discard(len(utf8BOM))
	}
}

// Next returns the next row. io.EOF signals end of input.
func (s *CSVSource) Next() ([]string, error) {
	return s.reader.Read()
}

// Close closes the underlying reader.
func (s *CSVSource) Close() error {
	return s.closer.Close()
}
