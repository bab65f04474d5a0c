//go:build amd64

/*
 * dramstorm - SIMD kernel, amd64 backend.
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

package kernel

import (
	"math/bits"
)

// storeVec256Asm performs a 32-byte non-temporal store: VMOVNTDQ
// [dst], ymm(v). See kernel_avx2_amd64.s.
//
//go:noescape
func storeVec256Asm(dst *byte, v *byte)

// storeVec512Asm performs a 64-byte non-temporal store: VMOVNTDQ
// [dst], zmm(v). See kernel_avx512_amd64.s.
//
//go:noescape
func storeVec512Asm(dst *byte, v *byte)

// compareVec256Asm loads 32 bytes at actual, compares byte-wise against
// expected, and returns 0 if every byte is equal (VPTEST of the XOR
// against itself), 1 otherwise. The wide-256 path cannot cheaply
// recover an exact mismatch count from a boolean test-all-zeros
// reduction.
//
//go:noescape
func compareVec256Asm(actual *byte, expected *byte) uint32

// compareVec512Asm loads 64 bytes at actual, compares byte-wise against
// expected using VPCMPB, and returns the resulting 64-bit compare mask
// (one bit per mismatching byte). An LFENCE is executed first to
// defeat speculative reordering of the load across the streaming
// stores of the previous phase.
//
//go:noescape
func compareVec512Asm(actual *byte, expected *byte) uint64

// storeFenceAsm issues SFENCE, retiring in-flight non-temporal stores.
//
//go:noescape
func storeFenceAsm()

type avxKernel struct {
	width int
}

func newWide256Kernel() Kernel { return &avxKernel{width: 32} }
func newWide512Kernel() Kernel { return &avxKernel{width: 64} }

func (k *avxKernel) Width() int { return k.width }

func (k *avxKernel) StoreVec(buf []byte, offset int, v []byte) {
	checkAligned(offset, k.width)
	if len(v) < k.width {
		panic("kernel: vector shorter than width")
	}
	dst := &buf[offset]
	src := &v[0]
	if k.width == 64 {
		storeVec512Asm(dst, src)
	} else {
		storeVec256Asm(dst, src)
	}
}

func (k *avxKernel) LoadAndCompareVec(buf []byte, offset int, expected []byte) (mismatches, mask uint64, differ bool) {
	checkAligned(offset, k.width)
	actual := &buf[offset]
	exp := &expected[0]

	if k.width == 64 {
		mask = compareVec512Asm(actual, exp)
		mismatches = uint64(bits.OnesCount64(mask))
		return mismatches, mask, mask != 0
	}

	nz := compareVec256Asm(actual, exp)
	if nz == 0 {
		return 0, 0, false
	}
	return 1, 0, true
}

func (k *avxKernel) Fence() {
	storeFenceAsm()
}

func checkAligned(offset, width int) {
	if offset%width != 0 {
		panic("kernel: unaligned vector access")
	}
}
