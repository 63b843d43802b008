// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// sizeClass returns the index, in [0, listLimit), of the segregated free
// list that holds blocks of the given adjusted size: floor(log2(size)),
// capped at listLimit-1. List k covers [2^k, 2^(k+1)), so the smallest
// block (minBlock, 16 bytes) lands in list 4 and lists 0-3 stay empty; the
// last list catches everything at or above 2^(listLimit-1). Insertion and deletion must
// compute the same class for the same size, so this loop, not a
// bit-length intrinsic, is the single source of truth both call into.
func sizeClass(size int64) int {
	class := 0
	n := size
	for class < listLimit-1 && n > 1 {
		n >>= 1
		class++
	}
	return class
}
