/*
 * dramstorm - Vectorized xorshift128+ RNG.
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

// Package simdrand implements the vectorized xorshift128+ generator:
// one call to Next produces W bytes of pseudorandom output, W/8
// independent lanes evolving in lockstep.
//
// Lanes are plain []uint64 rather than vector registers: the RNG is
// single-producer and runs between parallel sweeps, so there is no
// throughput reason to hand-write lane-parallel assembly for it,
// unlike store_vec / load_and_compare_vec, which run on the hot path
// and live in internal/kernel.
package simdrand

// jumpPoly is the canonical xorshift128+ jump polynomial: advances a
// (s0, s1) pair by one independent stream.
var jumpPoly = [2]uint64{0x8a5cd789635d2dff, 0x121fd2155c472f96}

// next advances the scalar output state (s0, s1) by one step and
// returns the output word. The 18-bit right shift applies to the
// singly-mutated intermediate t = s1 ^ (s1 << 23), before the other
// state word is mixed in:
//
//	t = s1 ^ (s1 << 23)
//	s1' = t ^ s1 ^ (t >> 18) ^ (s1 >> 5)
//	output = s1' + s1
//	s0' = s1
func next(s0, s1 *uint64) uint64 {
	y := *s1
	*s0 = y
	t := y ^ (y << 23)
	t = t ^ y ^ (t >> 18) ^ (y >> 5)
	*s1 = t
	return t + y
}

// seedStep is the state-advance recurrence used only while deriving
// lane seeds. It differs from next: both words feed the mix, the
// shifted word swaps slots, and the 18-bit shift applies to the raw
// pre-mutation word.
func seedStep(s0, s1 *uint64) {
	x := *s0
	y := *s1
	*s0 = y
	*s1 = x ^ (x << 23) ^ y ^ (x >> 18) ^ (y >> 5)
}

// jump advances (s0, s1) by the jump polynomial, producing the seed
// of the next independent lane: step the seeding recurrence 128
// times, XOR-accumulating the pre-step state whenever the
// corresponding jump-polynomial bit is set.
func jump(s0, s1 uint64) (uint64, uint64) {
	var ns0, ns1 uint64
	in0, in1 := s0, s1
	for _, word := range jumpPoly {
		for b := 0; b < 64; b++ {
			if word&(1<<uint(b)) != 0 {
				ns0 ^= in0
				ns1 ^= in1
			}
			seedStep(&in0, &in1)
		}
	}
	return ns0, ns1
}

// RNG is the vectorized xorshift128+ generator. Not safe for
// concurrent use: only the main thread calls Next, between sweeps.
type RNG struct {
	width int // vector width in bytes (32 or 64)
	s0    []uint64
	s1    []uint64
}

// New creates an RNG producing width-byte vectors (32 for wide-256, 64
// for wide-512) seeded from (seed0, seed1). The caller must ensure
// seed0 and seed1 are not both zero (the all-zero state is a fixed
// point of xorshift128+). Lane 0 gets the seed verbatim; lane k
// gets the seed jump-advanced k times.
func New(width int, seed0, seed1 uint64) *RNG {
	lanes := width / 8
	r := &RNG{width: width, s0: make([]uint64, lanes), s1: make([]uint64, lanes)}
	r.s0[0], r.s1[0] = seed0, seed1
	for k := 1; k < lanes; k++ {
		r.s0[k], r.s1[k] = jump(r.s0[k-1], r.s1[k-1])
	}
	return r
}

// Width returns the vector width in bytes this RNG produces per call.
func (r *RNG) Width() int {
	return r.width
}

// Next produces one vector's worth of pseudorandom bytes, advancing
// every lane by one xorshift128+ step.
func (r *RNG) Next() []byte {
	out := make([]byte, r.width)
	for lane := 0; lane < len(r.s0); lane++ {
		v := next(&r.s0[lane], &r.s1[lane])
		putUint64LE(out[lane*8:], v)
	}
	return out
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
