// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/hashforge/rxbase/simd"
)

// A Deriver computes the content of a single dataset item from the
// seed and the item's index. Implementations must be pure: the same
// (seed, index) pair always yields the same bytes, and DeriveItem
// must be safe to call concurrently from workers holding different
// indices. out is always exactly ItemSize bytes.
type Deriver interface {
	DeriveItem(seed []byte, index uint64, out []byte)
}

// Blake2Deriver is the default item derivation: each item is the
// BLAKE2b-512 digest of the seed followed by the little-endian item
// index. Indices are independent, so items can be produced in any
// order and from any worker.
type Blake2Deriver struct{}

// DeriveItem implements Deriver.
func (Blake2Deriver) DeriveItem(seed []byte, index uint64, out []byte) {
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], index)
	h, _ := blake2b.New512(nil)
	h.Write(seed)
	h.Write(idx[:])
	var sum [ItemSize]byte
	h.Sum(sum[:0])
	simd.CopyBytes(out, sum[:])
}
