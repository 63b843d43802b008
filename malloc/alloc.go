// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"github.com/cznic/mathutil"

	"github.com/cznic/segalloc/heap"
)

// Allocator is the process-wide allocator context: the 20-entry
// segregated-list directory and the heap handle bundled into a single
// receiver. It is not safe for concurrent use. Callers synchronize
// externally; the allocator is single-threaded and non-suspending, and
// every public method runs to completion without yielding.
type Allocator struct {
	heap     heap.Provider
	free     lists
	prologue int64 // offset of the prologue header
	epilogue int64 // offset of the current epilogue header
	nest     int   // re-entrancy guard for the public API
}

// enter and leave guard every public entry point (Allocate, Free, Resize)
// against re-entrant invocation, e.g. a Provider callback calling back into
// the same Allocator while a method is still on the stack. Internal helpers
// call each other directly, never through the public wrapper, so legitimate
// nested use (Resize calling into the allocate/freeBlock internals) never trips
// it.
func (a *Allocator) enter() {
	a.nest++
	if a.nest != 1 {
		panic("malloc: Allocator method invoked re-entrantly")
	}
}

func (a *Allocator) leave() {
	a.nest--
}

// New initializes a fresh allocator over p: it lays down the prologue and
// epilogue and seeds one starting free block, mirroring mm_init's 16 bytes
// of bookkeeping plus an initial 64-byte extension.
func New(p heap.Provider) (*Allocator, error) {
	a := &Allocator{heap: p}

	off, err := p.Extend(initHeaderSize)
	if err != nil {
		return nil, &HeapExhaustedError{Requested: initHeaderSize, Err: err}
	}

	// off+0: alignment padding (unused, never read)
	a.prologue = off + prologuePad
	writeHeaderRawAt(p, a.prologue, packHeader(2*wordSize, true))
	writeHeaderRawAt(p, a.prologue+wordSize, packHeader(2*wordSize, true))
	a.epilogue = a.prologue + prologueSize
	writeHeaderRawAt(p, a.epilogue, packHeader(0, true))

	if _, err := a.extendHeap(initChunkSize); err != nil {
		return nil, err
	}

	return a, nil
}

// Allocate hands out a payload address owning at least n bytes, 8-byte
// aligned, or returns 0 (the null payload address) if n is 0 or the heap
// cannot be grown to satisfy the request.
func (a *Allocator) Allocate(n int64) (int64, error) {
	a.enter()
	defer a.leave()
	return a.allocate(n)
}

func (a *Allocator) allocate(n int64) (int64, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 {
		return 0, &InvalidArgumentError{Reason: "negative size"}
	}

	want := adjustedSize(n)

	if block := a.findFit(want); block != nullLink {
		return a.place(block, want), nil
	}

	grow := mathutil.MaxInt64(want, defaultChunkSize)
	block, err := a.extendHeap(grow)
	if err != nil {
		return 0, err
	}

	return a.place(block, want), nil
}

// adjustedSize computes the total block size (header+payload+footer,
// rounded to 8) needed to satisfy a client request of n bytes.
func adjustedSize(n int64) int64 {
	if n <= 2*wordSize {
		return minBlock
	}
	return align8(n + 2*wordSize)
}

func align8(n int64) int64 {
	return (n + alignment - 1) &^ (alignment - 1)
}

// findFit walks the free-list directory: starting from want's own
// class, walk upward through larger classes; within each, scan from the
// head toward smaller addresses, skipping blocks too small or RA-tagged.
func (a *Allocator) findFit(want int64) int64 {
	startClass := sizeClass(want)
	for class := startClass; class < listLimit; class++ {
		for addr := a.free[class]; addr != nullLink; addr = a.pred(addr) {
			h := readHeaderAt(a.heap, hdrOff(addr))
			if h.tag() {
				continue
			}
			if h.size() >= want {
				return addr
			}
		}
	}
	return nullLink
}

func hdrOff(payloadAddr int64) int64 { return payloadAddr - wordSize }

// Bytes returns a slice view of the n bytes at a live payload address addr,
// for clients (and tests) that need to read or write block content without
// reaching into the heap.Provider directly. The returned slice aliases the
// underlying storage the same way heap.Provider.At does.
func (a *Allocator) Bytes(addr, n int64) []byte {
	return a.heap.At(addr, n)
}
