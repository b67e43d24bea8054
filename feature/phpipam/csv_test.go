package phpipam

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllRows(t *testing.T, src RowSource) [][]string {
	t.Helper()

	var rows [][]string
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestCSVSource_ReadsRows(t *testing.T) {
	content := strings.Join([]string{
		`10.1.8.0/24 - lab,,`,
		`IP address,State,Description`,
		`10.1.8.5,Used,"Server A, primary"`,
		`10.1.8.6,Free`,
	}, "\n")

	src := NewCSVSource(io.NopCloser(strings.NewReader(content)))
	defer src.Close()

	rows := readAllRows(t, src)
	require.Len(t, rows, 4)
	assert.Equal(t, "10.1.8.0/24 - lab", rows[0][0])
	assert.Equal(t, []string{"10.1.8.5", "Used", "Server A, primary"}, rows[2])

	// FieldsPerRecord is relaxed: rows keep their own widths.
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[3], 2)
}

func TestCSVSource_SkipsBOM(t *testing.T) {
	content := "\xEF\xBB\xBFIP address,State\n10.1.8.5,Used\n"

	src := NewCSVSource(io.NopCloser(strings.NewReader(content)))
	defer src.Close()

	rows := readAllRows(t, src)
	require.Len(t, rows, 2)
	assert.Equal(t, "IP address", rows[0][0])
	assert.Equal(t, KindColumnTitle, Classify(rows[0]).Kind)
}

func TestCSVSource_Empty(t *testing.T) {
	src := NewCSVSource(io.NopCloser(strings.NewReader("")))
	defer src.Close()

	_, err := src.Next()
	assert.ErrorIs(t, err, io.EOF)
}
