package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// poolOverhead approximates the fixed pool bookkeeping cost for footprint
// reporting.
const poolOverhead = 64

// Pool is a fixed-size slot pool: the primary allocation and deallocation
// entry point, owner of a growable chunk collection all configured for the
// same slot size.
//
// A Pool must not be copied after construction; exactly one owner drives it
// at a time. Use pointers everywhere.
type Pool struct {
	slotSize  int
	chunkSize int

	// chunks is insertion-ordered and never reordered. It is never empty
	// after New.
	chunks []*chunk

	// maxChunks is the soft capacity of the chunk table; it doubles when an
	// append hits it. Distinct from MaxChunks, the hard cap.
	maxChunks int

	// current indexes the chunk that satisfied the most recent allocation,
	// avoiding a rescan from the start on every call.
	current int

	checks bool
	closed bool
	logger *slog.Logger
}

// New creates a Pool for slots of slotSize bytes. The initial chunk budget
// is pre-created eagerly: DefaultInitialChunks chunks by default, or fewer
// when the chunk size exceeds DefaultChunkSize, staying within
// DefaultInitialBudget.
func New(slotSize int, opts ...Option) (*Pool, error) {
	if slotSize <= 0 {
		return nil, ErrInvalidSlotSize
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// A chunk must hold at least one slot.
	chunkSize := max(slotSize, o.chunkSize)
	if uint64(chunkSize) > math.MaxUint32 {
		return nil, ErrInvalidChunkSize
	}

	initial := o.initialChunks
	if initial == 0 {
		initial = min(DefaultInitialChunks, max(1, DefaultInitialBudget/chunkSize))
	}
	initial = min(initial, MaxChunks)

	p := &Pool{
		slotSize:  slotSize,
		chunkSize: chunkSize,
		chunks:    make([]*chunk, 0, initial),
		maxChunks: initial,
		checks:    o.checks,
		logger:    o.logger,
	}

	for i := 0; i < initial; i++ {
		if _, err := p.addChunk(); err != nil {
			_ = p.Close()
			return nil, err
		}
	}

	return p, nil
}

// SlotSize returns the fixed slot size in bytes.
func (p *Pool) SlotSize() int {
	return p.slotSize
}

// Allocate hands out one slot. The chunk that satisfied the previous request
// is tried first; on exhaustion all chunks are scanned in insertion order,
// and if none has room a new chunk is appended. The scan is linear in the
// chunk count; size chunks larger to keep that count low.
//
// Allocation fails only if the pool is closed, the system cannot provide
// chunk memory, or the hard chunk cap is hit.
func (p *Pool) Allocate() (Slot, error) {
	if p.closed {
		return NilSlot, ErrClosed
	}

	if off, ok := p.chunks[p.current].alloc(); ok {
		return makeSlot(uint32(p.current), off), nil
	}

	for i, c := range p.chunks {
		if off, ok := c.alloc(); ok {
			p.current = i
			return makeSlot(uint32(i), off), nil
		}
	}

	c, err := p.addChunk()
	if err != nil {
		return NilSlot, err
	}
	p.current = len(p.chunks) - 1

	// A fresh chunk always has room for at least one slot.
	off, _ := c.alloc()
	return makeSlot(uint32(p.current), off), nil
}

// Free releases a slot previously returned by this pool's Allocate and not
// yet freed or invalidated by ReclaimAll. The owning chunk is found directly
// from the handle. A slot the pool never handed out is a caller error: with
// checks enabled it is reported and dropped, otherwise it is silently
// ignored when detectable and undefined when not.
func (p *Pool) Free(slot Slot) {
	ci := int(slot.chunkIndex())
	if slot == NilSlot || ci >= len(p.chunks) {
		if p.checks {
			p.logger.Error("free of slot not owned by any chunk", "slot", slot.String())
		}
		return
	}
	p.chunks[ci].free(slot.offset())
}

// Bytes returns the slot's storage: a view of exactly SlotSize bytes.
// The view stays valid until the slot is freed or the pool is reclaimed or
// closed. With checks enabled a stale or foreign slot yields nil.
func (p *Pool) Bytes(slot Slot) []byte {
	ci := int(slot.chunkIndex())
	if p.checks {
		if slot == NilSlot || ci >= len(p.chunks) || !p.chunks[ci].isLive(slot.offset()) {
			p.logger.Error("access to non-live slot", "slot", slot.String())
			return nil
		}
	}
	c := p.chunks[ci]
	off := int(slot.offset())
	return c.buf[off : off+c.slotSize : off+c.slotSize]
}

// ReclaimAll resets every chunk to empty without releasing any memory.
// All outstanding slots become invalid. Use it between independent runs when
// no previously allocated slot is referenced anymore; it costs O(chunk
// count) instead of one Free per slot.
func (p *Pool) ReclaimAll() {
	for _, c := range p.chunks {
		c.reclaim()
	}
	p.current = 0
}

// addChunk appends a new chunk, doubling the chunk table first when the soft
// limit is reached. Only chunk ownership moves; slot contents never do.
func (p *Pool) addChunk() (*chunk, error) {
	if len(p.chunks) >= MaxChunks {
		return nil, ErrTooManyChunks
	}

	if len(p.chunks) == p.maxChunks {
		p.maxChunks *= 2
		grown := make([]*chunk, len(p.chunks), p.maxChunks)
		copy(grown, p.chunks)
		p.chunks = grown
	}

	c, err := newChunk(p.slotSize, p.chunkSize, p.checks, p.logger)
	if err != nil {
		return nil, err
	}
	p.chunks = append(p.chunks, c)
	return c, nil
}

// Stats reports pool-level usage counters.
type Stats struct {
	SlotSize       int
	ChunkSize      int
	Chunks         int
	CapacitySlots  int
	LiveSlots      int
	FreedSlots     int
	FootprintBytes int
}

// Stats returns current usage counters across all chunks.
func (p *Pool) Stats() Stats {
	s := Stats{
		SlotSize:  p.slotSize,
		ChunkSize: p.chunkSize,
		Chunks:    len(p.chunks),
	}
	for _, c := range p.chunks {
		s.CapacitySlots += c.capSlots()
		s.LiveSlots += c.liveSlots()
		s.FreedSlots += len(c.freed)
	}
	s.FootprintBytes = p.Footprint()
	return s
}

// Footprint approximates the pool's owned memory in bytes: all chunk
// footprints plus the chunk table and fixed overhead. Advisory.
func (p *Pool) Footprint() int {
	bytes := poolOverhead
	bytes += 8 * cap(p.chunks)
	for _, c := range p.chunks {
		bytes += c.footprint()
	}
	return bytes
}

// String returns a human-readable dump of the pool and each chunk's
// utilization, for logging and debugging.
func (p *Pool) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pool{chunks: %d, max_chunks: %d, slot_size: %d}",
		len(p.chunks), p.maxChunks, p.slotSize)
	for _, c := range p.chunks {
		b.WriteString("\n  ")
		b.WriteString(c.String())
	}
	return b.String()
}

// Close unmaps every chunk. All slots become invalid and the pool is
// unusable afterwards. Callers must drop outstanding slot views before
// closing. Close is idempotent.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for _, c := range p.chunks {
		if err := c.release(); err != nil {
			errs = append(errs, err)
		}
	}
	p.chunks = p.chunks[:0]
	return errors.Join(errs...)
}
