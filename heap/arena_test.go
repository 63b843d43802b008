// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"math/rand"
	"testing"
)

func TestArenaExtendGrows(t *testing.T) {
	a := NewArena()

	if g, e := a.Hi(), int64(0); g != e {
		t.Fatal(g, e)
	}

	off, err := a.Extend(64)
	if err != nil {
		t.Fatal(err)
	}

	if g, e := off, int64(0); g != e {
		t.Fatal(g, e)
	}

	if g, e := a.Hi(), int64(64); g != e {
		t.Fatal(g, e)
	}

	off2, err := a.Extend(16)
	if err != nil {
		t.Fatal(err)
	}

	if g, e := off2, int64(64); g != e {
		t.Fatal(g, e)
	}

	if g, e := a.Hi(), int64(80); g != e {
		t.Fatal(g, e)
	}
}

func TestArenaExtendRejectsBadSizes(t *testing.T) {
	a := NewArena()
	for _, n := range []int64{0, -8, 3, 7, 9} {
		if _, err := a.Extend(n); err == nil {
			t.Fatalf("Extend(%d): expected error, got nil", n)
		}
	}
}

func TestArenaAtAliasesBackingStore(t *testing.T) {
	a := NewArena()
	off, err := a.Extend(16)
	if err != nil {
		t.Fatal(err)
	}

	view := a.At(off, 16)
	for i := range view {
		view[i] = byte(i + 1)
	}

	again := a.At(off, 16)
	for i, v := range again {
		if g, e := v, byte(i+1); g != e {
			t.Fatal(i, g, e)
		}
	}
}

func TestArenaWriteReadRoundTrip(t *testing.T) {
	a := NewArena()
	rng := rand.New(rand.NewSource(42))

	var offs []int64
	var want [][]byte
	for i := 0; i < 200; i++ {
		n := int64(8 * (1 + rng.Intn(32)))
		off, err := a.Extend(n)
		if err != nil {
			t.Fatal(err)
		}

		b := make([]byte, n)
		rng.Read(b)
		copy(a.At(off, n), b)
		offs = append(offs, off)
		want = append(want, b)
	}

	for i, off := range offs {
		got := a.At(off, int64(len(want[i])))
		for j := range got {
			if got[j] != want[i][j] {
				t.Fatalf("block %d byte %d: got %x want %x", i, j, got[j], want[i][j])
			}
		}
	}
}
