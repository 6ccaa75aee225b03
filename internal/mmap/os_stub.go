//go:build !unix && !windows

package mmap

// Fallback for platforms without anonymous mapping support: a plain heap
// slice. The garbage collector manages it, so unmapping is a no-op.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}
