// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"math/rand"
	"testing"

	"github.com/cznic/segalloc/heap"
)

func BenchmarkAllocateFree(b *testing.B) {
	a, err := New(heap.NewArena())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := a.Allocate(64)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(p)
	}
}

func BenchmarkAllocateGrowing(b *testing.B) {
	a, err := New(heap.NewArena())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var handles []int64
	for i := 0; i < b.N; i++ {
		p, err := a.Allocate(int64(16 + i%4096))
		if err != nil {
			b.Fatal(err)
		}
		handles = append(handles, p)
	}
}

func BenchmarkResize(b *testing.B) {
	a, err := New(heap.NewArena())
	if err != nil {
		b.Fatal(err)
	}

	p, err := a.Allocate(64)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := int64(64 + i%256)
		q, err := a.Resize(p, n)
		if err != nil {
			b.Fatal(err)
		}
		p = q
	}
}

func BenchmarkChurn(b *testing.B) {
	a, err := New(heap.NewArena())
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	var handles []int64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		switch {
		case len(handles) == 0 || rng.Intn(3) != 0:
			p, err := a.Allocate(int64(1 + rng.Intn(512)))
			if err != nil {
				b.Fatal(err)
			}
			handles = append(handles, p)
		default:
			idx := rng.Intn(len(handles))
			a.Free(handles[idx])
			handles[idx] = handles[len(handles)-1]
			handles = handles[:len(handles)-1]
		}
	}
}
