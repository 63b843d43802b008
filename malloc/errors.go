// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "fmt"

// InvalidArgumentError is returned when a caller passes a size or address
// that can never be satisfied regardless of heap state.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "malloc: invalid argument: " + e.Reason
}

// HeapExhaustedError is returned when the underlying heap.Provider cannot
// be extended far enough to satisfy a request.
type HeapExhaustedError struct {
	Requested int64
	Err       error
}

func (e *HeapExhaustedError) Error() string {
	return fmt.Sprintf("malloc: heap exhausted requesting %d bytes: %v", e.Requested, e.Err)
}

func (e *HeapExhaustedError) Unwrap() error { return e.Err }

// CorruptionError is returned by Verify when a boundary tag or free-list
// link is inconsistent with the rest of the heap.
type CorruptionError struct {
	Reason string
	Offset int64
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("malloc: heap corruption at offset %d: %s", e.Offset, e.Reason)
}
