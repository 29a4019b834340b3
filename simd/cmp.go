// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"math/bits"
	"unsafe"
)

// FirstUnequal8 scans arg1[startPos:] and arg2[startPos:] for the
// first mismatching byte, returning its position if one is found, or
// the common length if all bytes match (or startPos >= len). It
// panics if the lengths are not identical, or startPos is negative.
//
// This is essentially an extension of bytes.Compare().
func FirstUnequal8(arg1, arg2 []byte, startPos int) int {
	if len(arg1) != len(arg2) || startPos < 0 {
		panic("FirstUnequal8() requires len(arg1) == len(arg2) and nonnegative startPos.")
	}
	return table().firstUnequal(arg1, arg2, startPos)
}

func firstUnequalScalar(arg1, arg2 []byte, startPos int) int {
	endPos := len(arg1)
	for pos := startPos; pos < endPos; pos++ {
		if arg1[pos] != arg2[pos] {
			return pos
		}
	}
	return endPos
}

// firstUnequalWide compares machine words and locates the mismatching
// byte inside the first unequal word with a trailing-zero count of
// the XOR. The final partial word is rechecked bytewise so the word
// load never reads past the slice.
func firstUnequalWide(arg1, arg2 []byte, startPos int) int {
	endPos := len(arg1)
	nByte := endPos - startPos
	if nByte < BytesPerWord {
		return firstUnequalScalar(arg1, arg2, startPos)
	}
	p1 := unsafe.Pointer(&arg1[0])
	p2 := unsafe.Pointer(&arg2[0])
	nWordMinus1 := (nByte - 1) >> Log2BytesPerWord
	for widx := 0; widx < nWordMinus1; widx++ {
		off := uintptr(startPos) + uintptr(widx)*BytesPerWord
		xorWord := *(*uint64)(unsafe.Add(p1, off)) ^ *(*uint64)(unsafe.Add(p2, off))
		if xorWord != 0 {
			return startPos + widx*BytesPerWord + (bits.TrailingZeros64(xorWord) >> 3)
		}
	}
	// Final word, anchored to the end of the slices so it stays in
	// bounds even when nByte is not a multiple of the word size.
	off := uintptr(endPos - BytesPerWord)
	xorWord := *(*uint64)(unsafe.Add(p1, off)) ^ *(*uint64)(unsafe.Add(p2, off))
	if xorWord == 0 {
		return endPos
	}
	// Bytes the anchored load shares with the word loop are already
	// known equal, so the trailing-zero count lands in the tail.
	return endPos - BytesPerWord + (bits.TrailingZeros64(xorWord) >> 3)
}
