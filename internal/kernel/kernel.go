/*
 * dramstorm - SIMD kernel dispatch.
 *
 * Copyright 2026, The dramstorm authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package kernel implements the two primitive vector operations every
// sweep is built from: a single W-wide, W-aligned non-temporal store,
// and a W-wide aligned load followed by a byte-equality compare
// against an expected vector.
//
// Two widths are wired up, one per ISA path: 32 bytes (wide-256 /
// AVX2) and 64 bytes (wide-512 / AVX-512 F+BW). The amd64 build backs
// both with non-temporal-store assembly (kernel_avx2_amd64.s /
// kernel_avx512_amd64.s; see internal/avogen for the avo source that
// produces them). Non-amd64 builds fall back to a portable Go
// reference implementation so the sweep/pattern layers above stay
// architecture-independent and testable off amd64.
package kernel

// Kernel is the primitive-kernel contract a sweep operates on.
type Kernel interface {
	// Width is the vector size in bytes (32 or 64).
	Width() int

	// StoreVec performs a single Width-byte, Width-aligned
	// non-temporal store of v into buf at offset. Panics if offset is
	// not Width-aligned or v is shorter than Width.
	StoreVec(buf []byte, offset int, v []byte)

	// LoadAndCompareVec performs a single Width-byte, Width-aligned
	// load from buf at offset and compares it against expected.
	// mismatches is the number of differing bytes: exact on the
	// wide-512 path (the compare mask gives it directly), at least 1
	// on the wide-256 path, where the test-all-zeros reduction is
	// boolean. mask is the wide-512 byte-compare mask (0 on the
	// wide-256 path, where none is computed).
	LoadAndCompareVec(buf []byte, offset int, expected []byte) (mismatches uint64, mask uint64, differ bool)

	// Fence retires in-flight non-temporal stores so a later
	// LoadAndCompareVec call cannot observe a stale cache line. Called
	// at every fill join point.
	Fence()
}

// For returns the Kernel for vector width w (32 or 64 bytes). It
// panics for any other width: the catalog only ever asks for the two
// widths the ISA probe can select.
func For(width int) Kernel {
	switch width {
	case 64:
		return newWide512Kernel()
	case 32:
		return newWide256Kernel()
	default:
		panic("kernel: unsupported vector width")
	}
}
