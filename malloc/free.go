// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Free releases a payload address previously returned by Allocate (or
// Resize) back to the allocator. Freeing an address not obtained from
// this allocator, or freeing twice, is undefined.
func (a *Allocator) Free(addr int64) {
	a.enter()
	defer a.leave()
	a.freeBlock(addr)
}

func (a *Allocator) freeBlock(addr int64) {
	if addr == 0 {
		return
	}

	size := readHeaderAt(a.heap, hdrOff(addr)).size()

	// A reservation dies when the block that set it is itself freed. A
	// released free reservation may sit below a free block that its RA
	// bit kept from merging, so it is coalesced upward first.
	next := nextAddr(addr, size)
	nextH := readHeaderAt(a.heap, hdrOff(next))
	clearTagAt(a.heap, hdrOff(next))
	if nextH.tag() && !nextH.alloc() {
		a.coalesce(next)
	}

	writeHeaderPreservingTagAt(a.heap, hdrOff(addr), packHeader(size, false))
	writeHeaderPreservingTagAt(a.heap, footerOff(addr, size), packHeader(size, false))

	a.insertNode(addr, size)
	a.coalesce(addr)
}
