// Copyright 2026 Hashforge, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cpu

import "strings"

// Feature tokens are matched by fixed-substring presence, not by
// version ranges. The token sets mirror what the kernels of the
// respective platforms put in their feature lines.
var (
	x86VectorTokens = []string{"avx2"}
	x86BaseTokens   = []string{"sse4_2", "sse4.2"}
	x86BitTokens    = []string{"popcnt"}
	x86CryptoTokens = []string{"aes"}

	armVectorTokens = []string{"asimd", "neon"}
	armWideTokens   = []string{"sve"}
	armBitTokens    = []string{"asimd", "neon"}
	armCryptoTokens = []string{"aes"}
	armAtomicTokens = []string{"atomics", "lse"}

	riscvVectorTokens = []string{"zve32", "zve64"}
	riscvBitTokens    = []string{"zbb"}
	riscvCryptoTokens = []string{"zknd", "zkne", "zbkb"}
	riscvAtomicTokens = []string{"zaamo", "zalrsc"}
)

// riscvLetters extracts the single-letter extension set from an ISA
// string field of the form rv64imafdcv. The shorthand g expands to
// imafd plus the mandatory csr/fence extensions.
func riscvLetters(fields []string) map[rune]bool {
	set := make(map[rune]bool)
	for _, field := range fields {
		if !strings.HasPrefix(field, "rv64") && !strings.HasPrefix(field, "rv32") {
			continue
		}
		for _, r := range field[4:] {
			if r < 'a' || r > 'y' {
				break
			}
			if r == 'g' {
				for _, g := range "imafd" {
					set[g] = true
				}
				continue
			}
			set[r] = true
		}
	}
	return set
}

func hasToken(fields []string, tokens []string) bool {
	for _, f := range fields {
		for _, t := range tokens {
			if f == t {
				return true
			}
		}
	}
	return false
}

func hasSubstring(raw string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(raw, t) {
			return true
		}
	}
	return false
}

// Parse computes a capability descriptor from a raw feature string
// for the given architecture. Parsing never fails: an empty or
// malformed string simply produces all-false flags.
//
// Two prerequisite rules apply, following the probing hazards the
// deployment targets have actually hit:
//
//   - a vector flag is honored only when the required base extension
//     is also present (x86: AVX2 without SSE4.2 is treated as absent;
//     RISC-V: the V extension without the base integer ISA);
//   - the crypto flag is honored only when the vector flag is, since
//     the AES-class instructions operate on vector registers.
func Parse(arch, raw string) Features {
	f := Features{Arch: arch, Raw: raw}
	raw = strings.ToLower(raw)
	if strings.TrimSpace(raw) == "" {
		return f
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})

	switch arch {
	case "amd64", "386":
		base := hasToken(fields, x86BaseTokens)
		if base {
			f.Vector = true
			f.VectorWidth = 16
			if hasToken(fields, x86VectorTokens) {
				f.VectorWidth = 32
			}
		}
		f.BitManip = hasToken(fields, x86BitTokens)
		f.Crypto = f.Vector && hasToken(fields, x86CryptoTokens)
		// x86 LOCK-prefixed RMW instructions are baseline.
		f.AtomicsInline = true
	case "arm64", "arm":
		if hasToken(fields, armVectorTokens) {
			f.Vector = true
			f.VectorWidth = 16
			if hasToken(fields, armWideTokens) {
				f.VectorWidth = 32
			}
		}
		f.BitManip = hasToken(fields, armBitTokens)
		f.Crypto = f.Vector && hasToken(fields, armCryptoTokens)
		f.AtomicsInline = hasToken(fields, armAtomicTokens)
	case "riscv64":
		// The kernel's isa line joins named extensions with
		// underscores (rv64imafdcv_zicsr_zbb), so resplit on those
		// as well before token matching.
		exts := strings.FieldsFunc(raw, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '_'
		})
		letters := riscvLetters(exts)
		if letters['v'] || hasSubstring(raw, riscvVectorTokens) {
			f.Vector = true
			f.VectorWidth = 16
		}
		f.BitManip = letters['b'] || hasToken(exts, riscvBitTokens)
		f.Crypto = f.Vector && hasSubstring(raw, riscvCryptoTokens)
		f.AtomicsInline = letters['a'] || hasToken(exts, riscvAtomicTokens)
	default:
		// Unknown architecture: leave everything false.
	}
	return f
}
