// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/hashforge/rxbase/simd"
)

// Slow-but-obvious reference implementations, in the style the
// dispatched primitives are validated against.

func xorStandard(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func TestXorBytes(t *testing.T) {
	maxSize := 500
	nIter := 200
	main1Arr := make([]byte, maxSize)
	main2Arr := make([]byte, maxSize+1)
	aArr := make([]byte, maxSize)
	bArr := make([]byte, maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		aSlice := aArr[sliceStart:sliceEnd]
		bSlice := bArr[sliceStart:sliceEnd]
		rand.Read(aSlice)
		rand.Read(bSlice)
		main1Slice := main1Arr[sliceStart:sliceEnd]
		main2Slice := main2Arr[sliceStart:sliceEnd]
		xorStandard(main1Slice, aSlice, bSlice)
		sentinel := byte(rand.Intn(256))
		main2Arr[sliceEnd] = sentinel
		simd.XorBytes(main2Slice, aSlice, bSlice)
		if !bytes.Equal(main1Slice, main2Slice) {
			t.Fatal("Mismatched XorBytes result.")
		}
		if main2Arr[sliceEnd] != sentinel {
			t.Fatal("XorBytes clobbered an extra byte.")
		}
	}
}

func TestXorInplace(t *testing.T) {
	maxSize := 500
	nIter := 200
	mainArr := make([]byte, maxSize)
	argArr := make([]byte, maxSize)
	wantArr := make([]byte, maxSize)
	for iter := 0; iter < nIter; iter++ {
		n := rand.Intn(maxSize)
		rand.Read(mainArr[:n])
		rand.Read(argArr[:n])
		xorStandard(wantArr[:n], mainArr[:n], argArr[:n])
		simd.XorInplace(mainArr[:n], argArr[:n])
		if !bytes.Equal(wantArr[:n], mainArr[:n]) {
			t.Fatal("Mismatched XorInplace result.")
		}
	}
}

func TestXorBytesPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("XorBytes must panic on mismatched lengths.")
		}
	}()
	simd.XorBytes(make([]byte, 3), make([]byte, 4), make([]byte, 4))
}

func TestCopyBytes(t *testing.T) {
	maxSize := 500
	nIter := 200
	srcArr := make([]byte, maxSize)
	dstArr := make([]byte, maxSize+1)
	for iter := 0; iter < nIter; iter++ {
		n := rand.Intn(maxSize)
		rand.Read(srcArr[:n])
		sentinel := byte(rand.Intn(256))
		dstArr[n] = sentinel
		simd.CopyBytes(dstArr[:n], srcArr[:n])
		if !bytes.Equal(srcArr[:n], dstArr[:n]) {
			t.Fatal("Mismatched CopyBytes result.")
		}
		if dstArr[n] != sentinel {
			t.Fatal("CopyBytes clobbered an extra byte.")
		}
	}
}

func TestMemset8(t *testing.T) {
	maxSize := 500
	nIter := 200
	mainArr := make([]byte, maxSize+1)
	wantArr := make([]byte, maxSize)
	for iter := 0; iter < nIter; iter++ {
		n := rand.Intn(maxSize)
		val := byte(rand.Intn(256))
		for i := range wantArr[:n] {
			wantArr[i] = val
		}
		sentinel := ^val
		mainArr[n] = sentinel
		simd.Memset8(mainArr[:n], val)
		if !bytes.Equal(wantArr[:n], mainArr[:n]) {
			t.Fatal("Mismatched Memset8 result.")
		}
		if mainArr[n] != sentinel {
			t.Fatal("Memset8 clobbered an extra byte.")
		}
	}
}

func TestFirstUnequal8(t *testing.T) {
	maxSize := 300
	nIter := 100
	arg1 := make([]byte, maxSize)
	arg2 := make([]byte, maxSize)
	for iter := 0; iter < nIter; iter++ {
		n := rand.Intn(maxSize)
		rand.Read(arg1[:n])
		copy(arg2[:n], arg1[:n])
		if got := simd.FirstUnequal8(arg1[:n], arg2[:n], 0); got != n {
			t.Fatalf("FirstUnequal8 on equal slices: got %d, want %d", got, n)
		}
		if n == 0 {
			continue
		}
		flip := rand.Intn(n)
		arg2[flip]++
		if got := simd.FirstUnequal8(arg1[:n], arg2[:n], 0); got != flip {
			t.Fatalf("FirstUnequal8: got %d, want %d (n=%d)", got, flip, n)
		}
		start := rand.Intn(n)
		want := flip
		if start > flip {
			want = n
		}
		if got := simd.FirstUnequal8(arg1[:n], arg2[:n], start); got != want {
			t.Fatalf("FirstUnequal8 from %d: got %d, want %d (n=%d flip=%d)", start, got, want, n, flip)
		}
		arg2[flip]--
	}
}

func TestVectorWidth(t *testing.T) {
	w := simd.VectorWidth()
	if w < 8 {
		t.Fatalf("VectorWidth() = %d; the bound width is never below the machine word", w)
	}
	if simd.Vectorized() && simd.PathName() != "wide" {
		t.Fatalf("Vectorized() inconsistent with PathName() = %q", simd.PathName())
	}
}
