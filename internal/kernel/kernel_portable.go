//go:build !amd64

/*
 * dramstorm - SIMD kernel, portable backend.
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

import "math/bits"

// portableKernel is the non-amd64 reference implementation: a plain
// byte-slice copy standing in for the non-temporal store (there is no
// portable non-caching store in Go), and a byte-wise compare. It
// reproduces the wide-256/wide-512 error-counting asymmetry even
// though a software compare could trivially return an exact count on
// both paths, so behavior stays identical to the amd64 asm backend
// for testing.
type portableKernel struct {
	width int
}

func newWide512Kernel() Kernel { return &portableKernel{width: 64} }
func newWide256Kernel() Kernel { return &portableKernel{width: 32} }

func (k *portableKernel) Width() int { return k.width }

func (k *portableKernel) StoreVec(buf []byte, offset int, v []byte) {
	checkAligned(offset, k.width)
	if len(v) < k.width {
		panic("kernel: vector shorter than width")
	}
	copy(buf[offset:offset+k.width], v[:k.width])
}

func (k *portableKernel) LoadAndCompareVec(buf []byte, offset int, expected []byte) (mismatches, mask uint64, differ bool) {
	checkAligned(offset, k.width)
	actual := buf[offset : offset+k.width]

	if k.width == 64 {
		for i := 0; i < 64; i++ {
			if actual[i] != expected[i] {
				mask |= 1 << uint(i)
			}
		}
		mismatches = uint64(bits.OnesCount64(mask))
		return mismatches, mask, mask != 0
	}

	for i := 0; i < k.width; i++ {
		if actual[i] != expected[i] {
			return 1, 0, true
		}
	}
	return 0, 0, false
}

func (k *portableKernel) Fence() {}

func checkAligned(offset, width int) {
	if offset%width != 0 {
		panic("kernel: unaligned vector access")
	}
}
