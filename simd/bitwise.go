// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "unsafe"

// XorBytes sets dst[pos] := a[pos] ^ b[pos] for every position in a.
// It panics if slice lengths differ.
func XorBytes(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("XorBytes() requires len(dst) == len(a) == len(b).")
	}
	table().xor(dst, a, b)
}

// XorInplace sets main[pos] := main[pos] ^ arg[pos] for every position
// in main. It panics if slice lengths differ.
func XorInplace(main, arg []byte) {
	if len(main) != len(arg) {
		panic("XorInplace() requires len(main) == len(arg).")
	}
	table().xor(main, main, arg)
}

func xorScalar(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// xorWide XORs full machine words four at a time and hands the
// trailing remainder to the scalar loop within the same call, so
// lengths that are not a multiple of the unroll width never touch
// bytes outside dst.
func xorWide(dst, a, b []byte) {
	n := len(dst)
	if n < BytesPerWord {
		xorScalar(dst, a, b)
		return
	}
	nWord := n >> Log2BytesPerWord
	dp := unsafe.Pointer(&dst[0])
	ap := unsafe.Pointer(&a[0])
	bp := unsafe.Pointer(&b[0])
	widx := 0
	for ; widx+4 <= nWord; widx += 4 {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = *(*uint64)(unsafe.Add(ap, off)) ^ *(*uint64)(unsafe.Add(bp, off))
		*(*uint64)(unsafe.Add(dp, off+8)) = *(*uint64)(unsafe.Add(ap, off+8)) ^ *(*uint64)(unsafe.Add(bp, off+8))
		*(*uint64)(unsafe.Add(dp, off+16)) = *(*uint64)(unsafe.Add(ap, off+16)) ^ *(*uint64)(unsafe.Add(bp, off+16))
		*(*uint64)(unsafe.Add(dp, off+24)) = *(*uint64)(unsafe.Add(ap, off+24)) ^ *(*uint64)(unsafe.Add(bp, off+24))
	}
	for ; widx < nWord; widx++ {
		off := uintptr(widx) * BytesPerWord
		*(*uint64)(unsafe.Add(dp, off)) = *(*uint64)(unsafe.Add(ap, off)) ^ *(*uint64)(unsafe.Add(bp, off))
	}
	for pos := nWord << Log2BytesPerWord; pos < n; pos++ {
		dst[pos] = a[pos] ^ b[pos]
	}
}
