// Package util holds small helpers shared by graph preprocessing:
// grid coordinate conversion, integer node-label loading and index/value
// remapping.
package util

// IndexToXY converts a one-dimensional grid identifier into x/y coordinates.
func IndexToXY(id, mapWidth uint32) (x, y int32) {
	y = int32(id / mapWidth)
	x = int32(id % mapWidth)
	return x, y
}

// XYToIndex converts x/y coordinates into a one-dimensional grid identifier.
func XYToIndex(x, y int32, mapWidth uint32) uint32 {
	return uint32(y)*mapWidth + uint32(x)
}

// ValueIndexSwap re-maps vec in place so that for each i and x,
// vec[i] = x becomes vec[x] = i. The input must be a permutation of
// [0, len(vec)).
func ValueIndexSwap(vec []uint32) {
	swapped := make([]uint32, len(vec))
	for i, v := range vec {
		swapped[v] = uint32(i)
	}
	copy(vec, swapped)
}
