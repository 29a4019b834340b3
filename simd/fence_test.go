// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hashforge/rxbase/simd"
)

// Producer writes a value, issues a release fence, then sets a flag;
// consumer busy-waits on the flag, issues an acquire fence, then
// reads the value. The read must observe the write on every run.
func TestFenceReleaseAcquireOrdering(t *testing.T) {
	const nIter = 20000
	var (
		value uint64
		flag  uint32
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := uint64(1); i <= nIter; i++ {
			value = i
			simd.FenceRelease()
			atomic.StoreUint32(&flag, uint32(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := uint64(1); i <= nIter; i++ {
			spins := 0
			for atomic.LoadUint32(&flag) < uint32(i) {
				spins++
				if spins%1024 == 0 {
					runtime.Gosched()
				}
			}
			simd.FenceAcquire()
			if got := value; got < i {
				t.Errorf("iteration %d: observed stale value %d after acquire fence", i, got)
				return
			}
		}
	}()
	wg.Wait()
}

func TestFenceFullVisibility(t *testing.T) {
	// Generation-barrier shape: worker writes a buffer, full fence,
	// ready flag; observer of the flag must see the full buffer.
	const nIter = 2000
	buf := make([]byte, 64)
	var ready uint32
	for iter := 0; iter < nIter; iter++ {
		fill := byte(iter + 1)
		atomic.StoreUint32(&ready, 0)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for atomic.LoadUint32(&ready) == 0 {
				runtime.Gosched()
			}
			simd.FenceAcquire()
			for i, b := range buf {
				if b != fill {
					t.Errorf("iter %d: byte %d = %#x, want %#x", iter, i, b, fill)
					return
				}
			}
		}()
		simd.Memset8(buf, fill)
		simd.FenceFull()
		atomic.StoreUint32(&ready, 1)
		<-done
		if t.Failed() {
			return
		}
	}
}

func TestAtomicAdd64Concurrent(t *testing.T) {
	const (
		goroutines = 8
		perG       = 10000
	)
	var counter uint64
	seen := make([]map[uint64]bool, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		seen[g] = make(map[uint64]bool, perG)
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				old := simd.AtomicAdd64(&counter, 1)
				seen[g][old] = true
			}
		}(g)
	}
	wg.Wait()
	if got := simd.AtomicAdd64(&counter, 0); got != goroutines*perG {
		t.Fatalf("counter = %d, want %d", got, goroutines*perG)
	}
	// Linearizability: every previous value in [0, total) was handed
	// out exactly once.
	all := make(map[uint64]bool, goroutines*perG)
	for g := range seen {
		for v := range seen[g] {
			if all[v] {
				t.Fatalf("previous value %d returned twice", v)
			}
			all[v] = true
		}
	}
	if len(all) != goroutines*perG {
		t.Fatalf("saw %d distinct previous values, want %d", len(all), goroutines*perG)
	}
}
