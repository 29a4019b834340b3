// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides the fixed set of performance-critical
// primitives the dataset initializer is built on: bulk XOR/copy/set/
// compare over byte slices, 64-bit rotate and bit-count operations,
// memory fences, an atomic fetch-and-add, and a prefetch hint.
//
// Every primitive has exactly two implementations: a wide path that
// moves machine words (unrolled to the detected vector width) and a
// plain scalar path. The binding between primitive and implementation
// is resolved exactly once, on first use, from the capability
// descriptor returned by cpu.Detect; after that there is no per-call
// dispatch cost beyond an initial branch. The two implementations are
// required to produce byte-identical results for all valid inputs,
// and the tests in this package enforce that property across widths,
// including lengths that are not a multiple of the vector width (the
// trailing remainder is always handled by the scalar path within the
// same call, so partial-width inputs never corrupt adjacent bytes).
//
// Callers must never depend on which path is active: the choice is a
// performance matter only. Setting the environment variable consulted
// by package cpu (RXBASE_NO_SIMD) forces the scalar binding.
package simd
