// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// MapAnon creates read-write anonymous mappings that back the slot pool's
// chunk buffers. Keeping chunk storage outside the Go heap means the garbage
// collector never scans it, which matters when a search workload holds tens
// of millions of live slots.
//
// Platform support:
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//   - Other platforms: plain heap slices (unmap is a no-op)
//
// A Mapping is not safe for concurrent Close; callers must ensure no
// goroutine touches Bytes() after Close() returns.
package mmap
