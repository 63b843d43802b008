//go:build linux || darwin

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.


package heap

import "testing"

func TestMmapExtendWithinReservation(t *testing.T) {
	m, err := NewMmap(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	off, err := m.Extend(4096)
	if err != nil {
		t.Fatal(err)
	}

	if g, e := off, int64(0); g != e {
		t.Fatal(g, e)
	}

	if g, e := m.Hi(), int64(4096); g != e {
		t.Fatal(g, e)
	}

	view := m.At(off, 4096)
	view[0] = 0x42
	if g, e := m.At(off, 1)[0], byte(0x42); g != e {
		t.Fatal(g, e)
	}
}

func TestMmapExtendPastReservationFails(t *testing.T) {
	m, err := NewMmap(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if _, err := m.Extend(4096); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Extend(8); err == nil {
		t.Fatal("expected error extending past reservation")
	}
}
