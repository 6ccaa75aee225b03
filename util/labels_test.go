package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIntegerLabels(t *testing.T) {
	t.Run("one label per line", func(t *testing.T) {
		labels, err := ReadIntegerLabels(strings.NewReader("1\n2\n3\n"))
		require.NoError(t, err)
		assert.Equal(t, []uint32{1, 2, 3}, labels)
	})

	t.Run("comment lines skipped", func(t *testing.T) {
		in := "# header\n% generated\nc dimacs comment\n7\n\n8\n"
		labels, err := ReadIntegerLabels(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []uint32{7, 8}, labels)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		labels, err := ReadIntegerLabels(strings.NewReader("  5\t\n 6 \n"))
		require.NoError(t, err)
		assert.Equal(t, []uint32{5, 6}, labels)
	})

	t.Run("malformed line reports its number", func(t *testing.T) {
		_, err := ReadIntegerLabels(strings.NewReader("1\nnope\n3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("gzip input sniffed and decompressed", func(t *testing.T) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, err := gz.Write([]byte("# packed labels\n10\n20\n30\n"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())

		labels, err := ReadIntegerLabels(&buf)
		require.NoError(t, err)
		assert.Equal(t, []uint32{10, 20, 30}, labels)
	})

	t.Run("empty input", func(t *testing.T) {
		labels, err := ReadIntegerLabels(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}

func TestLoadIntegerLabels(t *testing.T) {
	dir := t.TempDir()

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(dir, "labels.txt")
		require.NoError(t, os.WriteFile(path, []byte("4\n5\n6\n"), 0o600))

		labels, err := LoadIntegerLabels(path)
		require.NoError(t, err)
		assert.Equal(t, []uint32{4, 5, 6}, labels)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadIntegerLabels(filepath.Join(dir, "nope.txt"))
		assert.Error(t, err)
	})
}

func TestLoadIntegerLabelsDIMACS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.dimacs")
	require.NoError(t, os.WriteFile(path, []byte("c partition labels\n9\n8\n"), 0o600))

	labels, err := LoadIntegerLabelsDIMACS(path)
	require.NoError(t, err)

	// DIMACS ids are 1-based: index 0 is a zero sentinel.
	assert.Equal(t, []uint32{0, 9, 8}, labels)
}
