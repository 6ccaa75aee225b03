package mmap

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrInvalidSize is returned when a non-positive mapping size is requested.
	ErrInvalidSize = errors.New("mmap: invalid mapping size")
)

// Mapping represents one anonymous memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	closed atomic.Bool
	// unmap is the platform-specific function to release the memory.
	unmap func([]byte) error
}

// MapAnon creates a read-write anonymous mapping of the given size.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		unmap: unmapFunc,
	}, nil
}

// Bytes returns the mapped memory.
// The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		return m.unmap(m.data)
	}
	return nil
}
