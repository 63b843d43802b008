// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "github.com/cznic/mathutil"

// Resize grows or shrinks the block at addr to hold at least n bytes,
// returning its (possibly relocated) payload address, or 0 if n is 0 or
// the heap cannot be extended to satisfy the request. A block that grows
// is padded with extra slack so that further same-sized growth is
// absorbed without touching the heap again, and when slack runs low the
// following free block (if any) is tagged off-limits to everyone else
// until this block either consumes it or is freed.
func (a *Allocator) Resize(addr, n int64) (int64, error) {
	a.enter()
	defer a.leave()
	return a.resize(addr, n)
}

func (a *Allocator) resize(addr, n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, &InvalidArgumentError{Reason: "negative size"}
	}

	want := adjustedSize(n) + reallocBuf

	newAddr := addr
	slack := readHeaderAt(a.heap, hdrOff(addr)).size() - want

	if slack < 0 {
		next := nextAddr(addr, readHeaderAt(a.heap, hdrOff(addr)).size())
		nextH := readHeaderAt(a.heap, hdrOff(next))

		// The free neighbour is annexed when it alone covers the request,
		// or when it is the top block (or the epilogue), so that a heap
		// extension lands directly above it.
		size := readHeaderAt(a.heap, hdrOff(addr)).size()
		nextIsTop := nextH.size() == 0 || hdrOff(nextAddr(next, nextH.size())) == a.epilogue
		if nextH.size() == 0 || !nextH.alloc() && (size+nextH.size() >= want || nextIsTop) {
			remainder := size + nextH.size() - want
			if remainder < 0 {
				// This block's own reservation must not veto the
				// extension's merge with the neighbour.
				clearTagAt(a.heap, hdrOff(next))
				grow := mathutil.MaxInt64(-remainder, defaultChunkSize)
				if _, err := a.extendHeap(grow); err != nil {
					return 0, err
				}
				remainder += grow
				nextH = readHeaderAt(a.heap, hdrOff(next))
			}

			if nextH.size() > 0 {
				a.deleteNode(next, nextH.size())
			}

			merged := want + remainder
			writeHeaderClearingTagAt(a.heap, hdrOff(addr), packHeader(merged, true))
			writeHeaderClearingTagAt(a.heap, footerOff(addr, merged), packHeader(merged, true))
		} else {
			fresh, err := a.allocate(want - 2*wordSize)
			if err != nil {
				return 0, err
			}
			if fresh == 0 {
				return 0, nil
			}

			oldSize := readHeaderAt(a.heap, hdrOff(addr)).size()
			copyLen := oldSize - 2*wordSize
			if avail := want - 2*wordSize; avail < copyLen {
				copyLen = avail
			}
			copy(a.heap.At(fresh, copyLen), a.heap.At(addr, copyLen))

			a.freeBlock(addr)
			newAddr = fresh
		}

		slack = readHeaderAt(a.heap, hdrOff(newAddr)).size() - want
	}

	if slack < 2*reallocBuf {
		next := nextAddr(newAddr, readHeaderAt(a.heap, hdrOff(newAddr)).size())
		setTagAt(a.heap, hdrOff(next))
	}

	return newAddr, nil
}
