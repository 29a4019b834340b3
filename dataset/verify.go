// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hashforge/rxbase/errors"
	"github.com/hashforge/rxbase/simd"
)

// Verify recomputes every item from (seed, index) and compares it
// against the buffer, in parallel across available cores. It returns
// nil when the buffer matches, and an error naming the first
// mismatching item otherwise. Unlike generation, verification is
// cancelable: ctx is checked between items.
func (d *Dataset) Verify(ctx context.Context, dv Deriver, seed []byte) error {
	if dv == nil {
		dv = Blake2Deriver{}
	}
	if len(seed) == 0 {
		return errors.E(errors.Invalid, "empty seed")
	}
	chunks := partition(d.Items(), runtime.NumCPU())
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			var scratch [ItemSize]byte
			for idx := c.start; idx < c.end; idx++ {
				if idx%1024 == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				dv.DeriveItem(seed, idx, scratch[:])
				item := d.Item(idx)
				if pos := simd.FirstUnequal8(item, scratch[:], 0); pos != ItemSize {
					return fmt.Errorf("dataset: item %d differs at byte %d", idx, pos)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Checksum xor-folds every item into a single ItemSize-byte digest.
// The fold is order-independent, so it is a cheap way for operators
// to compare datasets generated on different machines.
func (d *Dataset) Checksum() [ItemSize]byte {
	var sum [ItemSize]byte
	items := d.Items()
	for idx := uint64(0); idx < items; idx++ {
		simd.XorInplace(sum[:], d.Item(idx))
	}
	return sum
}
