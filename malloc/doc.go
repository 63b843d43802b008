// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package malloc implements a general-purpose allocator over a linear,
growable byte range supplied by a heap.Provider: allocate, free, and
in-place resize, backed by boundary-tagged blocks threaded into
segregated, address-ordered free lists.

Layout

The heap is a contiguous span `[heap.Lo(), heap.Hi())`. Its bottom holds a
fixed 8-byte prologue block (always allocated, never freed or merged);
its top is a zero-size epilogue header that moves up every time the heap
grows. Every other block carries a 4-byte header and a 4-byte footer
packing size, an allocation bit and a reallocation-reservation bit (RA)
into one 32-bit word (see tag.go). Free blocks additionally thread two
link words, predecessor and successor, through the first 8 bytes of
their own payload (see list.go); allocated blocks use that same space for
client data.

Size classes

Blocks are bucketed into one of 20 segregated lists by size
(classes.go). Each list is kept in descending address order from its
head; insertion, deletion and the first-fit search (list.go, alloc.go)
all walk it the same direction.

Coalescing and placement

Freeing a block, or extending the heap, always reinserts the affected
block and then attempts to merge it with its immediate physical
neighbors (coalesce.go), except a preceding neighbor carrying the RA bit,
which is treated as allocated for merging purposes: it has been promised to
whatever block asked for it via Resize. place.go decides, for a block
about to be handed to a caller, whether the leftover space after the
request is worth keeping as a separate free fragment, and if so from
which end of the block to carve the allocation.

Resize

Resize grows a block in place whenever the heap has the room, adding a
reservation buffer so that repeated, similarly-sized growth doesn't
revisit the heap-extend primitive every time (realloc.go). When there
isn't room, it falls back to allocate/copy/free.

An Allocator is single-threaded and non-suspending: Allocate, Free and
Resize guard against re-entrant invocation and panic if one is somehow
re-entered before the call on the stack below it returns (alloc.go).

*/
package malloc
