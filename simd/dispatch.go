// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"sync"

	"github.com/hashforge/rxbase/cpu"
	"github.com/hashforge/rxbase/log"
)

// BytesPerWord is the number of bytes in a machine word on every
// architecture this module targets.
const BytesPerWord = 8

// Log2BytesPerWord is log2(BytesPerWord). This is relevant for manual
// bit-shifting when we know that's a safe way to divide and the
// compiler does not (e.g. dividend is of signed int type).
const Log2BytesPerWord = uint(3)

// binding maps every primitive to the implementation selected for
// this process. It is resolved once and read-only afterwards.
type binding struct {
	xor          func(dst, a, b []byte)
	copyBytes    func(dst, src []byte)
	memset       func(dst []byte, val byte)
	firstUnequal func(a, b []byte, startPos int) int

	rotr64   func(v uint64, k uint) uint64
	popcount func(v uint64) int
	tzcnt    func(v uint64) int

	fenceAcquire func()
	fenceRelease func()
	fenceFull    func()

	atomicAdd func(p *uint64, delta uint64) uint64

	prefetch func(b []byte)

	width      int
	vectorized bool
	name       string
}

var (
	bindOnce sync.Once
	bound    *binding
)

// table returns the process-wide primitive binding, resolving it from
// the capability descriptor on first use.
func table() *binding {
	bindOnce.Do(func() {
		feat := cpu.Detect()
		bound = bind(feat)
		if bound.vectorized {
			log.Debug.Printf("simd: %s primitives bound (%s)", bound.name, feat)
		} else {
			log.Printf("simd: vector unit unavailable, scalar primitives bound (%s)", feat)
		}
	})
	return bound
}

// bind computes the primitive table for the given descriptor. It is
// separated from table() so the equivalence tests can instantiate
// both bindings in one process.
func bind(f cpu.Features) *binding {
	b := &binding{
		width:      BytesPerWord,
		vectorized: f.Vector,
		name:       "scalar",

		xor:          xorScalar,
		copyBytes:    copyScalar,
		memset:       memsetScalar,
		firstUnequal: firstUnequalScalar,
		rotr64:       rotr64Scalar,
		popcount:     popcountScalar,
		tzcnt:        tzcntScalar,
		fenceAcquire: fenceFullImpl,
		fenceRelease: fenceFullImpl,
		fenceFull:    fenceFullImpl,
		atomicAdd:    atomicAddLocked,
		prefetch:     prefetchNop,
	}
	if f.Vector {
		b.name = "wide"
		b.width = f.VectorWidth
		if b.width < BytesPerWord {
			b.width = BytesPerWord
		}
		b.xor = xorWide
		b.copyBytes = copyWide
		b.memset = memsetWide
		b.firstUnequal = firstUnequalWide
		b.prefetch = prefetchTouch
	}
	if f.BitManip {
		b.rotr64 = rotr64Hw
		b.popcount = popcountHw
		b.tzcnt = tzcntHw
	}
	if f.AtomicsInline {
		b.atomicAdd = atomicAddNative
		b.fenceAcquire = fenceAcquireImpl
		b.fenceRelease = fenceReleaseImpl
	}
	return b
}

// VectorWidth returns the byte width the bulk primitives are unrolled
// to. It is the descriptor's vector register width when the wide path
// is bound, and the machine word size otherwise.
func VectorWidth() int {
	return table().width
}

// Vectorized reports whether the wide path is bound for the bulk
// primitives.
func Vectorized() bool {
	return table().vectorized
}

// PathName returns "wide" or "scalar", for advisory logging only.
func PathName() string {
	return table().name
}
