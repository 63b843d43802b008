//go:build linux || darwin

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.


package heap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap is a page-backed Provider. It reserves a single large anonymous
// mapping up front and hands out prefixes of it as Extend is called, so a
// stress test or benchmark can drive a multi-gigabyte heap without that
// memory being visible to the Go runtime's garbage collector as live
// objects, unlike Arena, whose backing []byte the GC does scan.
//
// This plays the same role in the module's architecture that
// lldb.OSFiler/lldb.SimpleFileFiler play for lldb: an alternate, real-OS-
// resource-backed Filer/Provider implementation, swappable for the default
// in-memory one.
type Mmap struct {
	data     []byte // the full reservation, length == reserve
	used     int64  // == Hi()
	reserve  int64
	released bool
}

var _ Provider = (*Mmap)(nil)

// NewMmap reserves `reserve` bytes of anonymous, zero-filled memory and
// returns a Provider that grows into it. reserve must be a positive
// multiple of the OS page size's worth of headroom the caller expects to
// need; Extend fails once the reservation is exhausted.
func NewMmap(reserve int64) (*Mmap, error) {
	if reserve <= 0 {
		return nil, &InvalidExtendError{N: reserve}
	}

	data, err := unix.Mmap(-1, 0, int(reserve), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &OutOfMemoryError{Requested: reserve, Err: err}
	}

	return &Mmap{data: data, reserve: reserve}, nil
}

// Extend implements Provider.
func (m *Mmap) Extend(n int64) (int64, error) {
	if err := checkExtend(n); err != nil {
		return 0, err
	}

	if m.used+n > m.reserve {
		return 0, &OutOfMemoryError{Requested: n, Err: fmt.Errorf("reservation of %d bytes exhausted (used %d)", m.reserve, m.used)}
	}

	off := m.used
	m.used += n
	return off, nil
}

// Lo implements Provider.
func (m *Mmap) Lo() int64 { return 0 }

// Hi implements Provider.
func (m *Mmap) Hi() int64 { return m.used }

// At implements Provider.
func (m *Mmap) At(off, n int64) []byte {
	return m.data[off : off+n]
}

// Close releases the reservation back to the OS. The Mmap must not be used
// afterwards.
func (m *Mmap) Close() error {
	if m.released {
		return nil
	}
	m.released = true
	return unix.Munmap(m.data)
}
