// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "math/bits"

// RotateRight64 rotates v right by k bits. k is taken mod 64.
func RotateRight64(v uint64, k uint) uint64 {
	return table().rotr64(v, k)
}

// OnesCount64 returns the number of set bits in v.
func OnesCount64(v uint64) int {
	return table().popcount(v)
}

// TrailingZeros64 returns the number of trailing zero bits in v; 64
// when v == 0.
func TrailingZeros64(v uint64) int {
	return table().tzcnt(v)
}

// The hw variants lower to single instructions (RORX/POPCNT/TZCNT
// class) through the compiler's math/bits intrinsics; the scalar
// variants spell the same results out longhand for hardware without
// a bit-manipulation unit.

func rotr64Hw(v uint64, k uint) uint64 {
	return bits.RotateLeft64(v, -int(k&63))
}

func rotr64Scalar(v uint64, k uint) uint64 {
	k &= 63
	if k == 0 {
		return v
	}
	return (v >> k) | (v << (64 - k))
}

func popcountHw(v uint64) int {
	return bits.OnesCount64(v)
}

func popcountScalar(v uint64) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

func tzcntHw(v uint64) int {
	return bits.TrailingZeros64(v)
}

func tzcntScalar(v uint64) int {
	if v == 0 {
		return 64
	}
	n := 0
	for v&1 == 0 {
		v >>= 1
		n++
	}
	return n
}
