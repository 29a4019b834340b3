// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "sync/atomic"

// Prefetch hints that the first cache line of b will be read soon.
// It is purely advisory: the no-op binding is always correct, and
// callers must not rely on any timing effect.
func Prefetch(b []byte) {
	table().prefetch(b)
}

// prefetchSink gives the touch load a side effect the compiler cannot
// elide. Atomic so concurrent workers prefetching disjoint chunks do
// not race on it.
var prefetchSink uint32

func prefetchTouch(b []byte) {
	if len(b) > 0 {
		atomic.StoreUint32(&prefetchSink, uint32(b[0]))
	}
}

func prefetchNop(b []byte) {}
