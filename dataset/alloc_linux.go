// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build linux

package dataset

import (
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/hashforge/rxbase/errors"
	"github.com/hashforge/rxbase/log"
)

// MmapAllocator allocates anonymous mappings directly from the
// kernel, requesting huge-page backing when asked. A refused
// huge-page request falls back to a normal mapping and is reported
// through the hugePages return, never as an error; only a plain
// mapping failure surfaces.
type MmapAllocator struct{}

// Allocate implements Allocator.
func (MmapAllocator) Allocate(size int, preferHugePages bool) ([]byte, bool, error) {
	if size <= 0 {
		return nil, false, errors.E(errors.Invalid, "allocation size must be positive")
	}
	if preferHugePages {
		buf, err := unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|unix.MAP_HUGETLB)
		if err == nil {
			return buf, true, nil
		}
		log.Debug.Printf("dataset: huge-page mapping of %d bytes refused (%v), using normal pages", size, err)
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false, pkgerrors.Wrapf(err, "mmap of %d bytes", size)
	}
	return buf, false, nil
}

// Release implements Releaser.
func (MmapAllocator) Release(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}

func defaultAllocator() Allocator { return MmapAllocator{} }
