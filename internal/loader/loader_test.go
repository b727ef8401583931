package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBatch_ParsesRecords(t *testing.T) {
	input := "1,0,5,2\n2, 1, 3, 1\n\n3,2,8,3\n"

	batch, err := LoadBatch(strings.NewReader(input), "inline")
	require.NoError(t, err)
	require.Len(t, batch, 3)

	p := batch[1]
	assert.Equal(t, 2, p.Pid)
	assert.Equal(t, 1, p.ArrivalTime)
	assert.Equal(t, 3, p.BurstTime)
	assert.Equal(t, 1, p.Priority)
	assert.Equal(t, 3, p.RemainingTime)
	assert.Nil(t, p.StartTime)
	assert.Nil(t, p.CompletionTime)
}

func TestLoadBatch_Empty(t *testing.T) {
	batch, err := LoadBatch(strings.NewReader(""), "inline")
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestLoadBatch_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantText string
	}{
		{name: "too few fields", input: "1,0,5\n", wantLine: 1, wantText: "1,0,5"},
		{name: "too many fields", input: "1,0,5,2\n2,1,3,1,9\n", wantLine: 2, wantText: "2,1,3,1,9"},
		{name: "non integer", input: "1,0,5,2\n\n2,x,3,1\n", wantLine: 3, wantText: "2,x,3,1"},
		{name: "float field", input: "1,0,2.5,1\n", wantLine: 1, wantText: "1,0,2.5,1"},
		{name: "zero burst", input: "1,0,0,1\n", wantLine: 1, wantText: "1,0,0,1"},
		{name: "negative arrival", input: "1,-2,3,1\n", wantLine: 1, wantText: "1,-2,3,1"},
		{name: "duplicate pid", input: "1,0,3,1\n1,2,3,1\n", wantLine: 2, wantText: "1,2,3,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := LoadBatch(strings.NewReader(tt.input), "procs.txt")
			require.Error(t, err)
			assert.Nil(t, batch)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.wantLine, formatErr.Line)
			assert.Equal(t, tt.wantText, formatErr.Text)
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestLoadBatch_ReadFailure(t *testing.T) {
	_, err := LoadBatch(failingReader{}, "broken")

	var unavailable *SourceUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestLoadFile(t *testing.T) {
	batch, err := LoadFile(filepath.Join("..", "..", "testdata", "processes.txt"))
	require.NoError(t, err)
	assert.Len(t, batch, 3)

	_, err = LoadFile(filepath.Join("..", "..", "testdata", "malformed.txt"))
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Line)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))

	var unavailable *SourceUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
