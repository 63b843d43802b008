// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stress drives the allocator through a long randomized sequence
// of allocate/resize/free calls and reports heap growth and timing.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/cznic/segalloc/heap"
	"github.com/cznic/segalloc/malloc"
)

var (
	maxHandles = flag.Int("n", 1000, "target number of live allocations")
	maxLen     = flag.Int("maxlen", 1<<16, "maximum payload size per allocation")
	verify     = flag.Bool("verify", false, "run Verify() after every operation (slow)")
)

func run() error {
	a, err := malloc.New(heap.NewArena())
	if err != nil {
		return err
	}

	runtime.GC()
	t0 := time.Now()
	rng := rand.New(rand.NewSource(42))
	var handles []int64
	secs := time.Tick(time.Second)

	poll := func(i int) {
		select {
		case <-secs:
			log.Printf("op %d, %d live handles", i, len(handles))
		default:
		}
	}

	op := 0
	checkpoint := func() error {
		if *verify {
			if err := a.Verify(); err != nil {
				return fmt.Errorf("op %d: %v", op, err)
			}
		}
		op++
		return nil
	}

	for len(handles) < *maxHandles {
		for nalloc := len(handles)/2 + 1; nalloc != 0; nalloc-- {
			n := int64(1 + rng.Intn(*maxLen))
			h, err := a.Allocate(n)
			if err != nil {
				return err
			}
			poll(op)
			if err := checkpoint(); err != nil {
				return err
			}
			handles = append(handles, h)
		}

		for nrealloc := len(handles) / 2; nrealloc != 0; nrealloc-- {
			i := rng.Intn(len(handles))
			n := int64(1 + rng.Intn(*maxLen))
			h, err := a.Resize(handles[i], n)
			if err != nil {
				return err
			}
			poll(op)
			if err := checkpoint(); err != nil {
				return err
			}
			handles[i] = h
		}

		for ndel := len(handles) / 4; ndel != 0 && len(handles) >= 2; ndel-- {
			i := rng.Intn(len(handles))
			a.Free(handles[i])
			last := len(handles) - 1
			handles[i] = handles[last]
			handles = handles[:last]
			poll(op)
			if err := checkpoint(); err != nil {
				return err
			}
		}
	}

	stats := a.Stats()
	fmt.Printf("%d handles, alloc %d bytes in %d blocks, free %d bytes in %d blocks, time %s\n",
		len(handles), stats.AllocBytes, stats.AllocCount, stats.FreeBytes, stats.FreeCount, time.Since(t0))

	return a.Verify()
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
