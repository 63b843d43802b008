// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Stats records aggregate occupancy of the heap, analogous to lldb's
// AllocStats (falloc.go): how many bytes and blocks are live versus free.
// Filling it requires walking every physical block, so it is O(heap size)
// and meant for tests and diagnostics, not the hot allocate/free path.
type Stats struct {
	TotalBytes int64 // heap_hi - heap_lo, excluding nothing
	AllocBytes int64 // sum of payload-bearing bytes in allocated blocks
	AllocCount int64
	FreeBytes  int64 // sum of total sizes of free blocks
	FreeCount  int64
}

// Stats walks every physical block from the prologue to the epilogue and
// tallies occupancy.
func (a *Allocator) Stats() Stats {
	var s Stats
	s.TotalBytes = a.epilogue + wordSize - (a.prologue - prologuePad)

	addr := a.prologue + prologueSize + wordSize // first block's payload address
	for hdrOff(addr) != a.epilogue {
		h := readHeaderAt(a.heap, hdrOff(addr))
		if h.alloc() {
			s.AllocBytes += h.size() - 2*wordSize
			s.AllocCount++
		} else {
			s.FreeBytes += h.size()
			s.FreeCount++
		}
		addr = nextAddr(addr, h.size())
	}

	return s
}

// Verify walks the heap and the free-list directory, checking the
// invariants this allocator must hold: matching header/footer pairs, no two
// adjacent free blocks unless the lower one carries RA (coalesce treats such
// a block as allocated), every free block linked into exactly the list its
// size class selects, and every list address-ordered. It returns the first
// violation found, or nil.
//
// The RA bit's contract (0 on a free block unless it is the reserved
// physical successor of a just-resized block, cleared by that block's
// free/extend/consuming resize) is a property of the operation history, not
// of a single heap snapshot. Resize may legitimately set RA on an already
// allocated neighbor too, a harmless no-op since the tag is simply never
// read for one, so Verify does not attempt to check it; it is exercised
// instead by realloc_test.go and churn_test.go running the sequences that
// would corrupt a reservation if coalesce's RA veto (coalesce.go) were
// wrong.
func (a *Allocator) Verify() error {
	addr := a.prologue + prologueSize + wordSize // first block's payload address
	prevFree := false
	linked := map[int64]bool{}

	for hdrOff(addr) != a.epilogue {
		h := readHeaderAt(a.heap, hdrOff(addr))
		f := readHeaderAt(a.heap, footerOff(addr, h.size()))

		if h.size() != f.size() || h.alloc() != f.alloc() {
			return &CorruptionError{Offset: hdrOff(addr), Reason: "header/footer mismatch"}
		}
		if h.size() < minBlock || h.size()%alignment != 0 {
			return &CorruptionError{Offset: hdrOff(addr), Reason: "block size not a multiple of 8 or below minimum"}
		}
		if !h.alloc() {
			if prevFree {
				return &CorruptionError{Offset: hdrOff(addr), Reason: "two adjacent free blocks"}
			}
			linked[addr] = false
		}
		prevFree = !h.alloc() && !h.tag()
		addr = nextAddr(addr, h.size())
	}

	for class, head := range a.free {
		prevAddr := int64(-1)
		for n := head; n != nullLink; n = a.pred(n) {
			if _, ok := linked[n]; !ok {
				return &CorruptionError{Offset: n, Reason: "list member is not a free block"}
			}
			linked[n] = true

			size := readHeaderAt(a.heap, hdrOff(n)).size()
			if sizeClass(size) != class {
				return &CorruptionError{Offset: n, Reason: "block linked into wrong size class"}
			}
			if prevAddr != -1 && n >= prevAddr {
				return &CorruptionError{Offset: n, Reason: "list not address-descending from head"}
			}
			prevAddr = n
		}
	}

	for addr, seen := range linked {
		if !seen {
			return &CorruptionError{Offset: addr, Reason: "free block not linked into any list"}
		}
	}

	return nil
}
