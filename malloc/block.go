// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Physical block navigation. A block's payload address is its one true
// handle; every other offset (header, footer, neighbors) is derived from
// it and the size carried in its header, keeping raw offset arithmetic
// out of the insert/delete/coalesce/place policy code.

// footerOff returns the offset of the footer word of a block of the given
// total size starting at payload address addr.
func footerOff(addr, size int64) int64 {
	return addr + size - 2*wordSize
}

// nextAddr returns the payload address of the block physically following
// one of the given size at addr.
func nextAddr(addr, size int64) int64 {
	return addr + size
}

// prevFooterOff returns the offset of the footer word belonging to the
// block physically preceding the one at addr (always valid past the
// prologue, since the prologue itself has a footer).
func prevFooterOff(addr int64) int64 {
	return addr - 2*wordSize
}

// prevAddr returns the payload address of the block physically preceding
// the one at addr, given that block's size as read from its footer.
func prevAddr(addr, prevSize int64) int64 {
	return addr - prevSize
}
