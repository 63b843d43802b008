// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// place removes the free block at addr (of size size(addr) >= want) from
// its list and carves out a `want`-byte allocated block from it,
// splitting off the remainder as a new free block when it exceeds
// minBlock (otherwise the whole block is allocated). It returns the
// payload address of the allocated block.
func (a *Allocator) place(addr, want int64) int64 {
	size := readHeaderAt(a.heap, hdrOff(addr)).size()
	a.deleteNode(addr, size)

	remainder := size - want

	if remainder <= minBlock {
		writeHeaderPreservingTagAt(a.heap, hdrOff(addr), packHeader(size, true))
		writeHeaderPreservingTagAt(a.heap, footerOff(addr, size), packHeader(size, true))
		return addr
	}

	if want >= splitHighThreshold {
		// Lower fragment (remainder bytes) stays free; the allocated
		// block is carved from the upper end, improving locality for
		// the small allocations likely to follow.
		writeHeaderClearingTagAt(a.heap, hdrOff(addr), packHeader(remainder, false))
		writeHeaderClearingTagAt(a.heap, footerOff(addr, remainder), packHeader(remainder, false))
		a.insertNode(addr, remainder)

		upper := nextAddr(addr, remainder)
		writeHeaderClearingTagAt(a.heap, hdrOff(upper), packHeader(want, true))
		writeHeaderClearingTagAt(a.heap, footerOff(upper, want), packHeader(want, true))
		return upper
	}

	// Allocate the lower `want` bytes; the upper `remainder` becomes a
	// new free block.
	writeHeaderClearingTagAt(a.heap, hdrOff(addr), packHeader(want, true))
	writeHeaderClearingTagAt(a.heap, footerOff(addr, want), packHeader(want, true))

	upper := nextAddr(addr, want)
	writeHeaderClearingTagAt(a.heap, hdrOff(upper), packHeader(remainder, false))
	writeHeaderClearingTagAt(a.heap, footerOff(upper, remainder), packHeader(remainder, false))
	a.insertNode(upper, remainder)

	return addr
}
