package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexToXY(t *testing.T) {
	tests := []struct {
		name     string
		id       uint32
		mapWidth uint32
		x, y     int32
	}{
		{"origin", 0, 10, 0, 0},
		{"end of first row", 9, 10, 9, 0},
		{"start of second row", 10, 10, 0, 1},
		{"mid grid", 57, 10, 7, 5},
		{"single column", 3, 1, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := IndexToXY(tt.id, tt.mapWidth)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestXYToIndex(t *testing.T) {
	// Round trip with IndexToXY.
	const mapWidth = 37
	for _, id := range []uint32{0, 1, 36, 37, 1000} {
		x, y := IndexToXY(id, mapWidth)
		assert.Equal(t, id, XYToIndex(x, y, mapWidth))
	}
}

func TestValueIndexSwap(t *testing.T) {
	t.Run("permutation", func(t *testing.T) {
		vec := []uint32{2, 0, 3, 1}
		ValueIndexSwap(vec)
		assert.Equal(t, []uint32{1, 3, 0, 2}, vec)
	})

	t.Run("identity", func(t *testing.T) {
		vec := []uint32{0, 1, 2}
		ValueIndexSwap(vec)
		assert.Equal(t, []uint32{0, 1, 2}, vec)
	})

	t.Run("swap twice restores", func(t *testing.T) {
		vec := []uint32{4, 2, 0, 3, 1}
		want := []uint32{4, 2, 0, 3, 1}
		ValueIndexSwap(vec)
		ValueIndexSwap(vec)
		assert.Equal(t, want, vec)
	})

	t.Run("empty", func(t *testing.T) {
		ValueIndexSwap(nil)
	})
}
