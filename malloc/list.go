// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Segregated free lists: a fixed directory of listLimit heads, each a
// doubly-linked, address-ordered chain of free blocks threaded through the
// PRED/SUCC link words described in tag.go. Traversing a list from its
// head via PRED always visits blocks in descending address order (the
// head holds the largest address).
type lists [listLimit]int64 // heads; 0 == empty

func (a *Allocator) pred(addr int64) int64 { return readLinkAt(a.heap, addr) }
func (a *Allocator) succ(addr int64) int64 { return readLinkAt(a.heap, addr+wordSize) }

func (a *Allocator) setPred(addr, pred int64) { writeLinkAt(a.heap, addr, pred) }
func (a *Allocator) setSucc(addr, succ int64) { writeLinkAt(a.heap, addr+wordSize, succ) }

// insertNode splices a free block of size `size` into its size class's
// list, keeping the list in descending-address order from the head.
func (a *Allocator) insertNode(addr, size int64) {
	class := sizeClass(size)

	var insertAddr int64 = nullLink // last node visited whose address > addr
	search := a.free[class]
	for search != nullLink && search > addr {
		insertAddr = search
		search = a.pred(search)
	}

	switch {
	case search != nullLink && insertAddr != nullLink:
		a.setPred(addr, search)
		a.setSucc(search, addr)
		a.setSucc(addr, insertAddr)
		a.setPred(insertAddr, addr)
	case search != nullLink:
		a.setPred(addr, search)
		a.setSucc(search, addr)
		a.setSucc(addr, nullLink)
		a.free[class] = addr
	case insertAddr != nullLink:
		a.setPred(addr, nullLink)
		a.setSucc(addr, insertAddr)
		a.setPred(insertAddr, addr)
	default:
		a.setPred(addr, nullLink)
		a.setSucc(addr, nullLink)
		a.free[class] = addr
	}
}

// deleteNode unlinks an already-linked free block of the given size. The
// caller is responsible for the block's own link words afterward; they're
// left stale.
func (a *Allocator) deleteNode(addr, size int64) {
	class := sizeClass(size)
	p, s := a.pred(addr), a.succ(addr)

	switch {
	case p != nullLink && s != nullLink:
		a.setSucc(p, s)
		a.setPred(s, p)
	case p != nullLink:
		a.setSucc(p, nullLink)
		a.free[class] = p
	case s != nullLink:
		a.setPred(s, nullLink)
	default:
		a.free[class] = nullLink
	}
}
