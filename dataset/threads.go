// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dataset

import "math"

// threadFraction is the share of available cores the initializer
// claims when the caller expresses no preference. Generation is
// memory-bandwidth bound well before all cores are busy, and the
// remaining cores keep concurrent hash evaluation from starving once
// the dataset starts streaming.
const threadFraction = 0.70

// effectiveThreads computes the worker count for a generate call. A
// positive hint overrides the computed value; either way the result
// is clamped to [1, cores].
func effectiveThreads(hint, cores int) int {
	if cores < 1 {
		cores = 1
	}
	n := hint
	if n <= 0 {
		n = int(math.Round(float64(cores) * threadFraction))
	}
	if n < 1 {
		n = 1
	}
	if n > cores {
		n = cores
	}
	return n
}
