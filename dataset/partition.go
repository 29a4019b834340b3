// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dataset

// chunk is a contiguous sub-range [start, end) of dataset item
// indices owned by exactly one worker.
type chunk struct {
	start, end uint64
}

func (c chunk) size() uint64 { return c.end - c.start }

// partition divides [0, items) into at most workers contiguous
// chunks. The union of the returned ranges covers every index exactly
// once, and no two chunks differ in size by more than one item: the
// remainder of the integer division is handed out one item per chunk
// starting from the first.
func partition(items uint64, workers int) []chunk {
	if items == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > items {
		workers = int(items)
	}
	base := items / uint64(workers)
	rem := items % uint64(workers)
	chunks := make([]chunk, workers)
	cur := uint64(0)
	for w := range chunks {
		size := base
		if uint64(w) < rem {
			size++
		}
		chunks[w] = chunk{start: cur, end: cur + size}
		cur += size
	}
	return chunks
}
