// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"flag"
	"math/rand"
	"testing"

	"github.com/cznic/segalloc/heap"
)

var churnOps = flag.Int("churnops", 2000, "number of allocate/resize/free operations in TestChurn")

// live tracks a currently-allocated block's address and the content it
// should contain, so each operation can be checked against ground truth.
type live struct {
	addr    int64
	content []byte
}

// TestChurn drives a long mixed sequence of allocate, resize and free
// calls with a fixed seed, checking payload content and heap invariants
// after every operation.
func TestChurn(t *testing.T) {
	a, err := New(heap.NewArena())
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	var blocks []live

	for i := 0; i < *churnOps; i++ {
		switch {
		case len(blocks) == 0 || rng.Intn(3) != 0:
			n := int64(1 + rng.Intn(512))
			p, err := a.Allocate(n)
			if err != nil {
				t.Fatalf("op %d: Allocate(%d): %v", i, n, err)
			}
			if p == 0 {
				t.Fatalf("op %d: Allocate(%d) returned null", i, n)
			}
			content := make([]byte, n)
			rng.Read(content)
			copy(a.heap.At(p, n), content)
			blocks = append(blocks, live{addr: p, content: content})

		case rng.Intn(2) == 0:
			idx := rng.Intn(len(blocks))
			n := int64(1 + rng.Intn(1024))
			p, err := a.Resize(blocks[idx].addr, n)
			if err != nil {
				t.Fatalf("op %d: Resize(%d): %v", i, n, err)
			}
			if p == 0 {
				t.Fatalf("op %d: Resize(%d) returned null", i, n)
			}
			content := make([]byte, n)
			keep := int64(len(blocks[idx].content))
			if keep > n {
				keep = n
			}
			copy(content, blocks[idx].content[:keep])
			rng.Read(content[keep:])
			copy(a.heap.At(p, n), content)
			blocks[idx] = live{addr: p, content: content}

		default:
			idx := rng.Intn(len(blocks))
			a.Free(blocks[idx].addr)
			blocks[idx] = blocks[len(blocks)-1]
			blocks = blocks[:len(blocks)-1]
		}

		if i%64 == 0 {
			if err := a.Verify(); err != nil {
				t.Fatalf("op %d: %v", i, err)
			}
		}
	}

	if err := a.Verify(); err != nil {
		t.Fatal(err)
	}

	for i, b := range blocks {
		got := a.heap.At(b.addr, int64(len(b.content)))
		for j := range b.content {
			if got[j] != b.content[j] {
				t.Fatalf("block %d byte %d: content mismatch after churn", i, j)
			}
		}
	}
}
