package memory

import "fmt"

// Slot is an opaque handle to one fixed-size allocation unit.
//
// It encodes the owning chunk index and the byte offset within that chunk,
// which makes cross-chunk address arithmetic unrepresentable: a Slot is only
// meaningful to the Pool that returned it. The zero value refers to the first
// slot of the first chunk; treat Slot values as opaque and use NilSlot to
// represent "no slot".
type Slot uint64

// NilSlot is the sentinel for "no slot". It is never returned by a
// successful Allocate.
const NilSlot = Slot(1<<64 - 1)

func makeSlot(chunkIdx, offset uint32) Slot {
	return Slot(uint64(chunkIdx)<<32 | uint64(offset))
}

func (s Slot) chunkIndex() uint32 {
	return uint32(s >> 32)
}

func (s Slot) offset() uint32 {
	return uint32(s)
}

func (s Slot) String() string {
	if s == NilSlot {
		return "Slot(nil)"
	}
	return fmt.Sprintf("Slot(chunk=%d offset=%d)", s.chunkIndex(), s.offset())
}
