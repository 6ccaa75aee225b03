package memory

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Ozonetf/warthog-core/internal/mmap"
)

// chunkOverhead approximates the fixed per-chunk bookkeeping cost for
// footprint reporting. Advisory only.
const chunkOverhead = 96

// chunk is a single fixed-capacity arena: one contiguous buffer partitioned
// into equal-sized slots. Fresh slots come from the bump cursor; freed slots
// are recycled LIFO through the freed-offset stack.
type chunk struct {
	slotSize int
	buf      []byte
	mapping  *mmap.Mapping

	// next is the byte offset of the next never-yet-allocated slot.
	// Always a multiple of slotSize, never exceeds len(buf).
	next int

	// freed holds byte offsets of released slots, most recent last.
	// Pre-sized to the slot count so pushes never reallocate.
	freed []uint32

	// live tracks slot indices handed out and not yet freed.
	// Nil unless misuse checking is enabled.
	live *roaring.Bitmap

	logger *slog.Logger
}

// newChunk creates a chunk whose capacity is the requested byte budget
// rounded down to a whole number of slots. A budget smaller than one slot is
// corrected up to exactly one slot; that is an observable correction, not a
// failure.
func newChunk(slotSize, budget int, checks bool, logger *slog.Logger) (*chunk, error) {
	capacity := budget - budget%slotSize
	if capacity < slotSize {
		logger.Warn("chunk budget smaller than one slot, forcing capacity to a single slot",
			"budget", budget,
			"slot_size", slotSize,
		)
		capacity = slotSize
	}

	mapping, err := mmap.MapAnon(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	c := &chunk{
		slotSize: slotSize,
		buf:      mapping.Bytes(),
		mapping:  mapping,
		freed:    make([]uint32, 0, capacity/slotSize),
		logger:   logger,
	}
	if checks {
		c.live = roaring.New()
	}
	return c, nil
}

// alloc hands out one slot offset. The bump cursor is consumed first; once
// the buffer is exhausted, previously freed offsets are reused most recent
// first. ok=false signals exhaustion, which is a routing signal for the
// pool, not a fault.
func (c *chunk) alloc() (uint32, bool) {
	if c.next < len(c.buf) {
		off := uint32(c.next)
		c.next += c.slotSize
		if c.live != nil {
			c.live.Add(off / uint32(c.slotSize))
		}
		return off, true
	}

	if n := len(c.freed); n > 0 {
		off := c.freed[n-1]
		c.freed = c.freed[:n-1]
		if c.live != nil {
			c.live.Add(off / uint32(c.slotSize))
		}
		return off, true
	}

	return 0, false
}

// free pushes a slot offset onto the freed stack. Without checks the offset
// is trusted; with checks enabled an out-of-range, misaligned, double-freed
// or stale offset is reported and dropped.
func (c *chunk) free(off uint32) {
	if c.live != nil {
		if !c.contains(off) || int(off)%c.slotSize != 0 {
			c.logger.Error("freeing offset outside chunk range",
				"offset", off,
				"capacity", len(c.buf),
			)
			return
		}
		idx := off / uint32(c.slotSize)
		if !c.live.Contains(idx) {
			c.logger.Error("double free or stale slot",
				"offset", off,
				"slot_index", idx,
			)
			return
		}
		c.live.Remove(idx)
	}
	c.freed = append(c.freed, off)
}

// contains reports whether the byte offset falls inside the buffer.
func (c *chunk) contains(off uint32) bool {
	return int(off) < len(c.buf)
}

// isLive reports whether the slot at off is currently allocated.
// Only meaningful when checks are enabled.
func (c *chunk) isLive(off uint32) bool {
	return c.live != nil && c.live.Contains(off/uint32(c.slotSize))
}

// reclaim resets the chunk to empty: bump cursor back to the start, freed
// stack cleared. Buffer contents are not erased, only bookkeeping. Every
// previously handed-out offset becomes invalid.
func (c *chunk) reclaim() {
	c.next = 0
	c.freed = c.freed[:0]
	if c.live != nil {
		c.live.Clear()
	}
}

// liveSlots is the number of slots currently allocated: slots consumed by
// the bump cursor minus slots sitting on the freed stack.
func (c *chunk) liveSlots() int {
	return c.next/c.slotSize - len(c.freed)
}

// capSlots is the total slot capacity of this chunk.
func (c *chunk) capSlots() int {
	return len(c.buf) / c.slotSize
}

// footprint approximates the chunk's owned memory in bytes: buffer, freed
// stack backing and fixed overhead. Advisory, not load-bearing.
func (c *chunk) footprint() int {
	bytes := len(c.buf)
	bytes += 4 * cap(c.freed)
	bytes += chunkOverhead
	if c.live != nil {
		bytes += int(c.live.GetSizeInBytes())
	}
	return bytes
}

// release unmaps the chunk buffer. The chunk is unusable afterwards.
func (c *chunk) release() error {
	c.buf = nil
	c.freed = nil
	return c.mapping.Close()
}

func (c *chunk) String() string {
	return fmt.Sprintf("chunk{capacity: %d, slot_size: %d, bumped: %d, freed: %d}",
		len(c.buf), c.slotSize, c.next/c.slotSize, len(c.freed))
}
