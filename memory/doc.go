// Package memory implements a fixed-size slot pool for search-node
// construction.
//
// # Design
//
// A Pool owns a growable collection of chunks, all sized for the same slot
// size. Each chunk is one contiguous off-heap buffer: fresh slots come from
// a bump cursor, and freed slots are recycled through a LIFO stack of byte
// offsets before any new buffer space is consumed. Allocation first tries
// the chunk that satisfied the previous request, then scans all chunks in
// insertion order, and finally appends a new chunk. The scan is linear by
// design; callers expecting very large working sets should raise the chunk
// size to keep the chunk count low rather than rely on fast lookup.
//
// Allocate returns a Slot, an opaque handle encoding the owning chunk and
// the byte offset within it. Bytes materializes the slot's storage. Slots
// stay valid until Free(slot), ReclaimAll or Close, whichever happens first.
//
// # Concurrency Model
//
// A Pool is single-threaded: no internal synchronization exists, and one
// goroutine must drive a given Pool instance. For parallel workloads create
// one Pool per worker (the parallel package partitions work this way) and
// never share slots across pools.
//
// # Misuse Checking
//
// By default Free and Bytes skip validation for speed; freeing a foreign or
// already-freed slot is a contract violation with undefined results. With
// WithChecks(true) the pool tracks live slots and turns double frees,
// foreign frees and stale slots into logged no-ops.
package memory
