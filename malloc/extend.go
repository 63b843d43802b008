// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// extendHeap grows the underlying provider by n bytes (rounded up to 8),
// turns the new space into a free block where the old epilogue used to
// sit, writes a fresh epilogue above it, inserts the block into its list,
// and coalesces it with whatever free block preceded it.
func (a *Allocator) extendHeap(n int64) (int64, error) {
	size := align8(n)
	if size < minBlock {
		size = minBlock
	}

	oldEpilogue := a.epilogue
	if _, err := a.heap.Extend(size); err != nil {
		return 0, &HeapExhaustedError{Requested: size, Err: err}
	}

	addr := oldEpilogue + wordSize // new block's payload address
	writeHeaderClearingTagAt(a.heap, hdrOff(addr), packHeader(size, false))
	writeHeaderClearingTagAt(a.heap, footerOff(addr, size), packHeader(size, false))

	a.epilogue = nextAddr(addr, size) - wordSize
	writeHeaderRawAt(a.heap, a.epilogue, packHeader(0, true))

	a.insertNode(addr, size)
	return a.coalesce(addr), nil
}
