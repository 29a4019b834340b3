// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cpu implements one-shot detection of the hardware
// capabilities this module's primitive layer can exploit.
//
// Detection runs at most once per process and never fails: when the
// platform's feature interface is unreadable or reports nothing, the
// returned descriptor degrades to the safest configuration (scalar
// paths only, no crypto acceleration, no inline atomics). Opting into
// an accelerated path always requires an explicitly verified flag;
// assuming acceleration is present has caused illegal-instruction
// faults on deployment targets before, so absence is the default.
package cpu

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Features is an immutable descriptor of the instruction-set
// extensions usable by the current process. It is computed once and
// shared read-only by all goroutines.
type Features struct {
	// Vector reports whether a SIMD vector unit is usable.
	Vector bool
	// BitManip reports whether hardware bit-manipulation instructions
	// (population count, trailing-zero count) are usable.
	BitManip bool
	// Crypto reports whether hardware crypto acceleration (AES-class
	// instructions) is usable.
	Crypto bool
	// AtomicsInline reports whether the hardware provides single
	// instruction atomic read-modify-write operations (e.g. ARMv8.1
	// LSE). When false, the primitive layer routes atomics through a
	// lock and fences through full barriers.
	AtomicsInline bool
	// VectorWidth is the natural vector register width in bytes, or 0
	// when Vector is false.
	VectorWidth int

	// Arch is the GOARCH the descriptor was computed for.
	Arch string
	// Raw is the feature string the flags were parsed from, when the
	// string-based source was used. Advisory only.
	Raw string
}

// String renders the descriptor for advisory logging.
func (f Features) String() string {
	var set []string
	if f.Vector {
		set = append(set, fmt.Sprintf("vector(%dB)", f.VectorWidth))
	}
	if f.BitManip {
		set = append(set, "bitmanip")
	}
	if f.Crypto {
		set = append(set, "crypto")
	}
	if f.AtomicsInline {
		set = append(set, "atomics")
	}
	if len(set) == 0 {
		set = append(set, "scalar-only")
	}
	return f.Arch + ": " + strings.Join(set, ",")
}

// Scalar reports whether the descriptor offers no acceleration at all.
func (f Features) Scalar() bool {
	return !f.Vector && !f.BitManip && !f.Crypto && !f.AtomicsInline
}

// A Source supplies the raw hardware feature description, typically
// an OS-provided feature string (the "Features"/"flags" line of
// /proc/cpuinfo, or a decoded hwcap set). This package is the sole
// parser of that string.
type Source interface {
	FeatureString() (string, error)
}

// NoSimdEnvVar, when set to a non-empty value in the environment,
// forces the degraded all-false descriptor. Useful for benchmarking
// the scalar paths and for bisecting suspected vector-path bugs.
const NoSimdEnvVar = "RXBASE_NO_SIMD"

var (
	detectOnce sync.Once
	detected   Features
)

// Detect returns the capability descriptor for the current process.
// The underlying probe runs at most once; subsequent calls return the
// cached result. Detect never fails: probe errors degrade to the
// all-false descriptor.
func Detect() Features {
	detectOnce.Do(func() {
		if os.Getenv(NoSimdEnvVar) != "" {
			detected = Features{Arch: runtime.GOARCH}
			return
		}
		detected = detectPlatform()
	})
	return detected
}

// DetectFrom computes a descriptor from an injected feature source,
// bypassing the process-wide cache. It is intended for collaborators
// that obtain the feature string themselves (and for tests).
// A source error or an empty string yields the degraded descriptor.
func DetectFrom(src Source) Features {
	raw, err := src.FeatureString()
	if err != nil {
		return Features{Arch: runtime.GOARCH}
	}
	return Parse(runtime.GOARCH, raw)
}
