// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dataset

import "github.com/hashforge/rxbase/errors"

// An Allocator supplies the backing buffer for a dataset. The
// initializer never manipulates page tables itself: huge-page policy
// lives entirely behind this interface, and the allocator only
// reports whether the preference was honored.
type Allocator interface {
	// Allocate returns a zeroed buffer of exactly size bytes, plus
	// whether the buffer ended up backed by huge pages.
	Allocate(size int, preferHugePages bool) (buf []byte, hugePages bool, err error)
}

// A Releaser is an Allocator that must be given its buffers back.
// Dataset.Close releases through this interface when the allocator
// implements it.
type Releaser interface {
	Release(buf []byte) error
}

// HeapAllocator allocates from the Go heap. It never provides huge
// pages and never needs a release.
type HeapAllocator struct{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(size int, preferHugePages bool) ([]byte, bool, error) {
	if size <= 0 {
		return nil, false, errors.E(errors.Invalid, "allocation size must be positive")
	}
	return make([]byte, size), false, nil
}
