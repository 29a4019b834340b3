// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// detectPlatform probes the vendor feature interface for the current
// architecture. On amd64 and arm64 the flags come straight from the
// runtime-maintained CPUID/hwcap mirrors in golang.org/x/sys/cpu; on
// other architectures the kernel's cpuinfo feature line is parsed
// instead. Any probe failure degrades to all-false flags.
func detectPlatform() Features {
	switch runtime.GOARCH {
	case "amd64":
		f := Features{Arch: "amd64"}
		if cpu.X86.HasSSE42 {
			f.Vector = true
			f.VectorWidth = 16
			if cpu.X86.HasAVX2 {
				f.VectorWidth = 32
			}
		}
		f.BitManip = cpu.X86.HasPOPCNT
		f.Crypto = f.Vector && cpu.X86.HasAES
		f.AtomicsInline = true
		return f
	case "arm64":
		f := Features{Arch: "arm64"}
		// The advanced SIMD unit is architecturally mandatory on
		// ARMv8-A, so x/sys/cpu does not even expose a flag for it.
		f.Vector = true
		f.VectorWidth = 16
		if cpu.ARM64.HasSVE {
			f.VectorWidth = 32
		}
		f.BitManip = true
		f.Crypto = cpu.ARM64.HasAES
		f.AtomicsInline = cpu.ARM64.HasATOMICS
		return f
	default:
		return DetectFrom(procSource{})
	}
}

// procSource reads the kernel's feature line for architectures where
// x/sys/cpu offers no mirror (notably riscv64, where the "isa" line
// carries the extension list). It satisfies Source.
type procSource struct{}

func (procSource) FeatureString() (string, error) {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		for _, prefix := range []string{"flags", "Features", "isa"} {
			if strings.HasPrefix(line, prefix) {
				if idx := strings.IndexByte(line, ':'); idx >= 0 {
					return strings.TrimSpace(line[idx+1:]), nil
				}
			}
		}
	}
	return "", scanner.Err()
}
