/*
 * dramstorm - ISA probe.
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

// Package isa implements the ISA probe: decide once per process which
// SIMD width the pattern engine will target.
package isa

// Kind is the widest vector ISA the engine will drive.
type Kind int

const (
	// None means no usable wide-SIMD store/load path was found; the
	// engine must refuse to run (dramerr.ErrNoSIMD).
	None Kind = iota
	// Wide256 is the AVX2 path: 32-byte vectors.
	Wide256
	// Wide512 is the AVX-512 (Foundation + Byte/Word) path: 64-byte
	// vectors.
	Wide512
)

func (k Kind) String() string {
	switch k {
	case Wide512:
		return "wide-512"
	case Wide256:
		return "wide-256"
	default:
		return "none"
	}
}

// Width returns the vector width in bytes for k (0 for None).
func (k Kind) Width() int {
	switch k {
	case Wide512:
		return 64
	case Wide256:
		return 32
	default:
		return 0
	}
}

// Detect decides the widest available ISA once per process. AVX-512
// requires both Foundation and Byte/Word support; otherwise AVX2
// requires 256-bit integer SIMD; otherwise None.
func Detect() Kind {
	return detect()
}
