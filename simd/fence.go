// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "sync/atomic"

// Memory fences. Go exposes ordering only through the sequentially
// consistent sync/atomic operations, so all three fences are built on
// atomic accesses to a dedicated padded word:
//
//   - FenceAcquire prevents memory operations issued after it from
//     being observed before it;
//   - FenceRelease prevents memory operations issued before it from
//     being observed after it;
//   - FenceFull enforces both directions.
//
// On hardware without inline atomics the lighter fences are bound to
// the full fence instead: over-synchronization is an acceptable
// substitute, under-synchronization is not.

// fencePad keeps the fence word on its own cache line so fence
// traffic never false-shares with neighboring package state.
var fencePad struct {
	_ [64]byte
	w uint32
	_ [60]byte
}

// FenceAcquire orders subsequent loads/stores after the fence.
func FenceAcquire() {
	table().fenceAcquire()
}

// FenceRelease orders prior loads/stores before the fence.
func FenceRelease() {
	table().fenceRelease()
}

// FenceFull is a full two-way barrier. It is issued by the dataset
// initializer before publishing a generated buffer as ready.
func FenceFull() {
	table().fenceFull()
}

func fenceAcquireImpl() {
	_ = atomic.LoadUint32(&fencePad.w)
}

func fenceReleaseImpl() {
	atomic.StoreUint32(&fencePad.w, 0)
}

func fenceFullImpl() {
	atomic.AddUint32(&fencePad.w, 0)
}
