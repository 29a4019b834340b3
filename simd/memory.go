// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "unsafe"

// CopyBytes copies src into dst. The slices must not overlap unless
// dst's start is at or before src's. It panics if lengths differ.
func CopyBytes(dst, src []byte) {
	if len(dst) != len(src) {
		panic("CopyBytes() requires len(dst) == len(src).")
	}
	table().copyBytes(dst, src)
}

// Memset8 sets every byte of dst to val.
func Memset8(dst []byte, val byte) {
	table().memset(dst, val)
}

func copyScalar(dst, src []byte) {
	for i := range src {
		dst[i] = src[i]
	}
}

func copyWide(dst, src []byte) {
	n := len(src)
	if n < BytesPerWord {
		copyScalar(dst, src)
		return
	}
	nWord := n >> Log2BytesPerWord
	dp := unsafe.Pointer(&dst[0])
	sp := unsafe.Pointer(&src[0])
	widx := 0
	for ; widx+4 <= nWord; widx += 4 {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = *(*uint64)(unsafe.Add(sp, off))
		*(*uint64)(unsafe.Add(dp, off+8)) = *(*uint64)(unsafe.Add(sp, off+8))
		*(*uint64)(unsafe.Add(dp, off+16)) = *(*uint64)(unsafe.Add(sp, off+16))
		*(*uint64)(unsafe.Add(dp, off+24)) = *(*uint64)(unsafe.Add(sp, off+24))
	}
	for ; widx < nWord; widx++ {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = *(*uint64)(unsafe.Add(sp, off))
	}
	for pos := nWord << Log2BytesPerWord; pos < n; pos++ {
		dst[pos] = src[pos]
	}
}

func memsetScalar(dst []byte, val byte) {
	for i := range dst {
		dst[i] = val
	}
}

func memsetWide(dst []byte, val byte) {
	n := len(dst)
	if n < BytesPerWord {
		memsetScalar(dst, val)
		return
	}
	word := uint64(val) * 0x0101010101010101
	nWord := n >> Log2BytesPerWord
	dp := unsafe.Pointer(&dst[0])
	widx := 0
	for ; widx+4 <= nWord; widx += 4 {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = word
		*(*uint64)(unsafe.Add(dp, off+8)) = word
		*(*uint64)(unsafe.Add(dp, off+16)) = word
		*(*uint64)(unsafe.Add(dp, off+24)) = word
	}
	for ; widx < nWord; widx++ {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = word
	}
	for pos := nWord << Log2BytesPerWord; pos < n; pos++ {
		dst[pos] = val
	}
}
