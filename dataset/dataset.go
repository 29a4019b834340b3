// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dataset implements the parallel initializer for the large
// precomputed buffer the proof-of-work hash evaluator reads on every
// hash. Generation is the dominant startup cost, so the buffer is
// partitioned into contiguous chunks written concurrently by workers
// pinned to distinct cores, with all block moves going through the
// capability-dispatched primitives in package simd.
//
// Generation is one-shot and non-interruptible: a generate call
// spawns its workers, joins them, issues a full memory fence and only
// then publishes the buffer as ready, so any observer of Ready() also
// observes every generated byte.
package dataset

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willf/bitset"

	"github.com/hashforge/rxbase/errors"
	"github.com/hashforge/rxbase/log"
	"github.com/hashforge/rxbase/simd"
)

const (
	// ItemSize is the size of one dataset item in bytes. Items are
	// independently derivable from (seed, index).
	ItemSize = 64

	// FullSize is the dataset size used for full-memory hashing.
	FullSize = 2 << 30 // 2 GiB

	// LightSize is the reduced dataset size for memory-constrained
	// verification-only deployments.
	LightSize = 256 << 20 // 256 MiB
)

// A Dataset owns one contiguous buffer of items. The buffer is
// mutable only inside Generate; after the completion barrier it is
// read-only until the next Generate call.
type Dataset struct {
	data  []byte
	alloc Allocator
	huge  bool

	itemsDone uint64 // reset before workers spawn; then mutated only through simd.AtomicAdd64
	ready     uint32
}

// Result reports what a generate call actually did.
type Result struct {
	// Elapsed is the wall time of the whole generation, spawn to
	// barrier.
	Elapsed time.Duration
	// HugePages reports whether the buffer is huge-page backed, as
	// answered by the allocator at New time.
	HugePages bool
	// Threads is the number of workers that generated the dataset.
	Threads int
	// Items is the number of items generated.
	Items uint64
	// Completed has one bit per chunk, all set on return. Exposed for
	// progress observers wired in by the caller.
	Completed *bitset.BitSet
}

// New allocates a dataset buffer of the given size through alloc (the
// default platform allocator when nil). size must be a positive
// multiple of ItemSize. Allocation failure is the only error that
// propagates from this package; it is never retried with a smaller
// size here, since shrink-and-retry is caller policy.
func New(size int64, preferHugePages bool, alloc Allocator) (*Dataset, error) {
	if size <= 0 || size%ItemSize != 0 {
		return nil, errors.E(errors.Invalid,
			fmt.Sprintf("dataset size %d is not a positive multiple of %d", size, ItemSize))
	}
	if alloc == nil {
		alloc = defaultAllocator()
	}
	buf, huge, err := alloc.Allocate(int(size), preferHugePages)
	if err != nil {
		return nil, errors.E(errors.OOM, "allocating dataset buffer", err)
	}
	if preferHugePages && !huge {
		log.Printf("dataset: huge pages requested but not honored for %d MiB buffer", size>>20)
	}
	return &Dataset{data: buf, alloc: alloc, huge: huge}, nil
}

// Close releases the buffer when the allocator requires it. The
// dataset must not be used afterwards.
func (d *Dataset) Close() error {
	buf := d.data
	d.data = nil
	atomic.StoreUint32(&d.ready, 0)
	if r, ok := d.alloc.(Releaser); ok && buf != nil {
		return r.Release(buf)
	}
	return nil
}

// Bytes returns the dataset buffer. Callers must treat it as
// read-only once Ready reports true.
func (d *Dataset) Bytes() []byte { return d.data }

// Items returns the number of items the buffer holds.
func (d *Dataset) Items() uint64 { return uint64(len(d.data)) / ItemSize }

// Item returns the idx'th item of the buffer.
func (d *Dataset) Item(idx uint64) []byte {
	return d.data[idx*ItemSize : (idx+1)*ItemSize : (idx+1)*ItemSize]
}

// ItemsDone returns the number of items written by completed chunks
// of an in-flight generate call. Progress is advisory and advances at
// chunk granularity.
func (d *Dataset) ItemsDone() uint64 {
	return simd.AtomicAdd64(&d.itemsDone, 0)
}

// Ready reports whether a generate call has completed since the
// dataset was created. A true result is ordered after every buffer
// write of that call.
func (d *Dataset) Ready() bool {
	if atomic.LoadUint32(&d.ready) == 0 {
		return false
	}
	simd.FenceAcquire()
	return true
}

// Generate fills the dataset from seed with the default deriver. See
// GenerateWith.
func (d *Dataset) Generate(seed []byte, threadHint int) (Result, error) {
	return d.GenerateWith(Blake2Deriver{}, seed, threadHint)
}

// GenerateWith fills every item of the dataset deterministically from
// (seed, index) using the provided deriver.
//
// The item range is split into contiguous chunks, one per worker;
// workers own disjoint sub-ranges of the buffer, so the buffer itself
// needs no locking. threadHint > 0 overrides the computed worker
// count and is clamped to [1, available cores]. The call returns only
// after every worker finished and a full fence made all writes
// globally visible; the result is byte-identical for a given (deriver,
// seed) regardless of thread count.
func (d *Dataset) GenerateWith(dv Deriver, seed []byte, threadHint int) (Result, error) {
	if dv == nil {
		return Result{}, errors.E(errors.Invalid, "nil deriver")
	}
	if len(seed) == 0 {
		return Result{}, errors.E(errors.Invalid, "empty seed")
	}
	if len(d.data) == 0 {
		return Result{}, errors.E(errors.Invalid, "dataset is closed")
	}

	start := time.Now()
	atomic.StoreUint32(&d.ready, 0)
	atomic.StoreUint64(&d.itemsDone, 0)

	items := d.Items()
	workers := effectiveThreads(threadHint, runtime.NumCPU())
	chunks := partition(items, workers)

	var (
		wg        sync.WaitGroup
		panicked  errors.Once
		completed = bitset.New(uint(len(chunks)))
		doneMu    sync.Mutex
	)
	for w, c := range chunks {
		wg.Add(1)
		go func(w int, c chunk) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					panicked.Set(fmt.Errorf("dataset worker %d: %v", w, p))
				}
			}()
			// Pin for the duration of the chunk; migration mid-chunk
			// costs more than the pin syscall.
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			if err := pinThread(w); err != nil {
				log.Debug.Printf("dataset: worker %d runs unpinned: %v", w, err)
			}
			d.fillChunk(dv, seed, c)
			simd.AtomicAdd64(&d.itemsDone, c.size())
			doneMu.Lock()
			completed.Set(uint(w))
			doneMu.Unlock()
		}(w, c)
	}
	wg.Wait()
	if err := panicked.Err(); err != nil {
		// A deriver panic is a caller bug; propagate it as such
		// rather than publishing a half-written buffer.
		panic(err.Error())
	}

	// Completion barrier: everything written above is visible to any
	// thread that observes the ready flag.
	simd.FenceFull()
	atomic.StoreUint32(&d.ready, 1)

	return Result{
		Elapsed:   time.Since(start),
		HugePages: d.huge,
		Threads:   len(chunks),
		Items:     items,
		Completed: completed,
	}, nil
}

// fillChunk writes every item in c's range, prefetching the next
// item's slot while the current one is being derived.
func (d *Dataset) fillChunk(dv Deriver, seed []byte, c chunk) {
	for idx := c.start; idx < c.end; idx++ {
		if next := idx + 1; next < c.end {
			simd.Prefetch(d.data[next*ItemSize : next*ItemSize+ItemSize])
		}
		dv.DeriveItem(seed, idx, d.Item(idx))
	}
}
