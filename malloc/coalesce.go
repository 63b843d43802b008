// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// coalesce merges the free block at addr with whichever physical
// neighbors are themselves free, subject to the RA veto on the
// predecessor, then re-inserts the (possibly larger) result into its
// list and returns its address.
//
// Precondition: addr is already free and currently linked into its list.
// Callers insert it first via insertNode, then coalesce; the same order
// Free and extendHeap both follow.
func (a *Allocator) coalesce(addr int64) int64 {
	size := readHeaderAt(a.heap, hdrOff(addr)).size()

	prevFtr := readHeaderAt(a.heap, prevFooterOff(addr))
	prevHdr := readHeaderAt(a.heap, hdrOff(prevAddr(addr, prevFtr.size())))
	prevFree := !prevFtr.alloc() && !prevHdr.tag()

	nextH := readHeaderAt(a.heap, hdrOff(nextAddr(addr, size)))
	nextFree := !nextH.alloc()

	switch {
	case !prevFree && !nextFree:
		return addr

	case prevFree && !nextFree:
		p := prevAddr(addr, prevFtr.size())
		a.deleteNode(addr, size)
		a.deleteNode(p, prevFtr.size())
		merged := prevFtr.size() + size
		writeHeaderPreservingTagAt(a.heap, hdrOff(p), packHeader(merged, false))
		writeHeaderPreservingTagAt(a.heap, footerOff(p, merged), packHeader(merged, false))
		a.insertNode(p, merged)
		return p

	case !prevFree && nextFree:
		n := nextAddr(addr, size)
		a.deleteNode(addr, size)
		a.deleteNode(n, nextH.size())
		merged := size + nextH.size()
		writeHeaderPreservingTagAt(a.heap, hdrOff(addr), packHeader(merged, false))
		writeHeaderPreservingTagAt(a.heap, footerOff(addr, merged), packHeader(merged, false))
		a.insertNode(addr, merged)
		return addr

	default:
		p := prevAddr(addr, prevFtr.size())
		n := nextAddr(addr, size)
		a.deleteNode(addr, size)
		a.deleteNode(p, prevFtr.size())
		a.deleteNode(n, nextH.size())
		merged := prevFtr.size() + size + nextH.size()
		writeHeaderPreservingTagAt(a.heap, hdrOff(p), packHeader(merged, false))
		writeHeaderPreservingTagAt(a.heap, footerOff(p, merged), packHeader(merged, false))
		a.insertNode(p, merged)
		return p
	}
}
