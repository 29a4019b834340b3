// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"sync"
	"sync/atomic"
)

// AtomicAdd64 atomically adds delta to *p and returns the previous
// value. With inline-atomics capability it lowers to the hardware's
// native read-modify-write instruction; otherwise it serializes
// through a lock. The add is linearizable on either path.
//
// All mutators of a given counter must go through this function: the
// locked fallback cannot synchronize with direct sync/atomic access.
func AtomicAdd64(p *uint64, delta uint64) uint64 {
	return table().atomicAdd(p, delta)
}

func atomicAddNative(p *uint64, delta uint64) uint64 {
	return atomic.AddUint64(p, delta) - delta
}

var atomicFallbackMu sync.Mutex

func atomicAddLocked(p *uint64, delta uint64) uint64 {
	atomicFallbackMu.Lock()
	old := *p
	*p = old + delta
	atomicFallbackMu.Unlock()
	return old
}
