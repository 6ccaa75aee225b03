package memory

import "errors"

var (
	// ErrInvalidSlotSize is returned when the requested slot size is not positive.
	ErrInvalidSlotSize = errors.New("memory: slot size must be positive")
	// ErrClosed is returned when allocating from a closed pool.
	ErrClosed = errors.New("memory: pool is closed")
	// ErrInvalidChunkSize is returned when the effective chunk size exceeds
	// the addressable slot offset range.
	ErrInvalidChunkSize = errors.New("memory: chunk size exceeds addressable offset range")
	// ErrTooManyChunks is returned when the pool exceeds the maximum chunk count.
	ErrTooManyChunks = errors.New("memory: max chunk count exceeded")
	// ErrAllocationFailed is returned when the system cannot provide chunk memory.
	ErrAllocationFailed = errors.New("memory: chunk allocation failed")
)
