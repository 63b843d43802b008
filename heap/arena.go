// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Arena is the default, in-process Provider: a single growable []byte,
// analogous to mem_sbrk. A trivial, always-available backing store
// suitable for both production use within a single Go process and for
// unit tests.
//
// The zero value is not ready for use; call NewArena.
type Arena struct {
	buf []byte
}

var _ Provider = (*Arena)(nil)

// NewArena returns an empty Arena. Its Lo/Hi start out equal: the first
// Extend call establishes the region's low bound.
func NewArena() *Arena {
	return &Arena{buf: make([]byte, 0, 1<<16)}
}

// Extend implements Provider.
func (a *Arena) Extend(n int64) (int64, error) {
	if err := checkExtend(n); err != nil {
		return 0, err
	}

	off := int64(len(a.buf))
	newLen := off + n
	if int64(cap(a.buf)) < newLen {
		grown := make([]byte, len(a.buf), max64(newLen, int64(cap(a.buf))*2))
		copy(grown, a.buf)
		a.buf = grown
	}
	a.buf = a.buf[:newLen]
	return off, nil
}

// Lo implements Provider. An Arena's low bound is always 0.
func (a *Arena) Lo() int64 { return 0 }

// Hi implements Provider.
func (a *Arena) Hi() int64 { return int64(len(a.buf)) }

// At implements Provider.
func (a *Arena) At(off, n int64) []byte {
	return a.buf[off : off+n]
}

func max64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}
