package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Label files carry one integer label per node, one per line. Comment lines
// begin with '#', '%' or 'c'. Benchmark label sets often ship gzipped, so
// readers sniff the gzip magic and decompress transparently.

// LoadIntegerLabels loads node labels from the file at path.
func LoadIntegerLabels(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("util: open label file: %w", err)
	}
	defer f.Close()

	labels, err := ReadIntegerLabels(f)
	if err != nil {
		return nil, fmt.Errorf("util: %s: %w", path, err)
	}
	return labels, nil
}

// LoadIntegerLabelsDIMACS loads node labels for a DIMACS graph. DIMACS node
// identifiers are 1-based, so labels are shifted up one index and index 0 is
// left zero; labels[id] then works with unmodified DIMACS ids.
func LoadIntegerLabelsDIMACS(path string) ([]uint32, error) {
	labels, err := LoadIntegerLabels(path)
	if err != nil {
		return nil, err
	}

	shifted := make([]uint32, len(labels)+1)
	copy(shifted[1:], labels)
	return shifted, nil
}

// ReadIntegerLabels reads labels from r, decompressing gzip input
// transparently.
func ReadIntegerLabels(r io.Reader) ([]uint32, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip label stream: %w", err)
		}
		defer gz.Close()
		return scanIntegerLabels(gz)
	}

	return scanIntegerLabels(br)
}

func scanIntegerLabels(r io.Reader) ([]uint32, error) {
	var labels []uint32

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		switch text[0] {
		case '#', '%', 'c':
			continue
		}

		v, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("label line %d: %w", line, err)
		}
		labels = append(labels, uint32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}
