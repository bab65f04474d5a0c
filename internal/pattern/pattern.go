/*
 * dramstorm - Pattern test catalog.
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

// Package pattern implements the fourteen named test kernels of the
// catalog on top of internal/sweep's fill/verify primitives. Each
// kernel is a (buffer, size) -> void pass built from fill-then-verify
// pairs, sometimes both directions, sometimes with an intermediate
// inverse fill.
package pattern

import (
	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/sweep"
)

// basicBytes is the byte set for BasicTests.
var basicBytes = []byte{0x00, 0xFF, 0x0F, 0xF0, 0x55, 0xAA}

// antiPatternBytes is the 34-byte set for AntiPatterns.
var antiPatternBytes = []byte{
	0x00, 0xFF, 0x0F, 0xF0, 0x55, 0xAA, 0x33, 0xCC, 0x11, 0xEE,
	0x22, 0xDD, 0x44, 0xBB, 0x66, 0x99, 0x77, 0x88, 0x01, 0xFE,
	0x02, 0xFD, 0x04, 0xFB, 0x08, 0xF7, 0x10, 0xEF, 0x20, 0xDF,
	0x40, 0xBF, 0x80, 0x7F,
}

// BasicTests runs fill/verify in both directions for each byte in
// basicBytes.
func BasicTests(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for _, b := range basicBytes {
		v := splatByte(width, b)
		sweep.FillUp(ctx, v)
		sweep.VerifyUp(ctx, v)
		sweep.FillDown(ctx, v)
		sweep.VerifyDown(ctx, v)
	}
}

// RandomInversions repeats 16 times: draw p from the RNG, fill/verify
// p, then fill/verify ~p.
func RandomInversions(ctx *engine.Context) {
	for i := 0; i < 16; i++ {
		p := ctx.RNG.Next()
		sweep.FillUp(ctx, p)
		sweep.VerifyUp(ctx, p)
		notP := invert(p)
		sweep.FillUp(ctx, notP)
		sweep.VerifyUp(ctx, notP)
	}
}

// MovingInversionsLeft64 walks p = 0x1 << k over k in [0,64), splatted
// per 64-bit lane.
func MovingInversionsLeft64(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 64; k++ {
		p := splatLane64(width, uint64(1)<<k)
		movingInversionPass(ctx, p)
	}
}

// MovingInversionsRight32 walks p = 0x80000000 >> k over k in [0,32),
// a 32-bit splat repeated into each 64-bit lane.
func MovingInversionsRight32(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 32; k++ {
		half := uint32(0x80000000) >> k
		lane := uint64(half)<<32 | uint64(half)
		p := splatLane64(width, lane)
		movingInversionPass(ctx, p)
	}
}

// MovingInversionsLeft16 walks p = 0x0001 << k over k in [0,16), a
// 16-bit splat.
func MovingInversionsLeft16(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 16; k++ {
		quarter := uint16(0x0001) << k
		lane := repeat16(quarter)
		p := splatLane64(width, lane)
		movingInversionPass(ctx, p)
	}
}

// MovingInversionsRight8 walks p = 0x80 >> k over k in [0,8), an
// 8-bit splat over a 64-bit lane.
func MovingInversionsRight8(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 8; k++ {
		b := uint8(0x80) >> k
		lane := repeat8(b)
		p := splatLane64(width, lane)
		movingInversionPass(ctx, p)
	}
}

// MovingInversionsLeft4 walks p = 0x11 << k over k in [0,4), an 8-bit
// splat.
func MovingInversionsLeft4(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 4; k++ {
		b := uint8(0x11) << k
		lane := repeat8(b)
		p := splatLane64(width, lane)
		movingInversionPass(ctx, p)
	}
}

func movingInversionPass(ctx *engine.Context, p []byte) {
	sweep.FillUp(ctx, p)
	sweep.VerifyUp(ctx, p)
	notP := invert(p)
	sweep.FillUp(ctx, notP)
	sweep.VerifyUp(ctx, notP)
}

// MovingSaturationsRight16 exercises bit-cell retention across
// polarity flips: for each of 16 shifts of p = 0x8000 >> k, runs
// fill/verify(p), fill/verify(0), fill/verify(p), fill/verify(~0).
func MovingSaturationsRight16(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 16; k++ {
		quarter := uint16(0x8000) >> k
		lane := repeat16(quarter)
		p := splatLane64(width, lane)
		saturationPass(ctx, p)
	}
}

// MovingSaturationsLeft8 is the same shape over 8 iterations with
// p = 0x01 << k.
func MovingSaturationsLeft8(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for k := uint(0); k < 8; k++ {
		b := uint8(0x01) << k
		lane := repeat8(b)
		p := splatLane64(width, lane)
		saturationPass(ctx, p)
	}
}

func saturationPass(ctx *engine.Context, p []byte) {
	zero := make([]byte, len(p))
	ones := invert(zero)

	sweep.FillUp(ctx, p)
	sweep.VerifyUp(ctx, p)
	sweep.FillUp(ctx, zero)
	sweep.VerifyUp(ctx, zero)
	sweep.FillUp(ctx, p)
	sweep.VerifyUp(ctx, p)
	sweep.FillUp(ctx, ones)
	sweep.VerifyUp(ctx, ones)
}

// Walking1 walks a single set bit through each 64-bit lane position
// and its inverse.
func Walking1(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for bit := uint(0); bit < 64; bit++ {
		p := splatLane64(width, uint64(1)<<bit)
		movingInversionPass(ctx, p)
	}
}

// Walking0 is Walking1 but starting from the inverse of a single set
// bit.
func Walking0(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for bit := uint(0); bit < 64; bit++ {
		p := splatLane64(width, ^(uint64(1) << bit))
		movingInversionPass(ctx, p)
	}
}

// Checkerboard alternates 0xAA and 0x55 per W-aligned slot across the
// buffer, fills then verifies, then swaps the polarity and repeats.
// Unlike every other kernel this value is not uniform across the
// buffer, so it cannot be built from a single
// sweep.Fill* call: it dispatches its own chunked pass directly.
func Checkerboard(ctx *engine.Context) {
	checkerboardPass(ctx, false)
	checkerboardPass(ctx, true)
}

func checkerboardPass(ctx *engine.Context, swapped bool) {
	buf := ctx.Buf.Base()
	width := ctx.Kernel.Width()
	chunk := len(buf) / ctx.CPUCount

	even, odd := splatByte(width, 0xAA), splatByte(width, 0x55)
	if swapped {
		even, odd = odd, even
	}

	ctx.Pool.ParallelFor(ctx.CPUCount, func(i int) {
		base := i * chunk
		for j := 0; j < chunk; j += width {
			addr := base + j
			slot := addr / width
			if slot%2 == 0 {
				ctx.Kernel.StoreVec(buf, addr, even)
			} else {
				ctx.Kernel.StoreVec(buf, addr, odd)
			}
		}
	})
	ctx.Kernel.Fence()

	ctx.Pool.ParallelFor(ctx.CPUCount, func(i int) {
		base := i * chunk
		for j := 0; j < chunk; j += width {
			addr := base + j
			slot := addr / width
			expected := even
			if slot%2 != 0 {
				expected = odd
			}
			mismatches, mask, differ := ctx.Kernel.LoadAndCompareVec(buf, addr, expected)
			if differ {
				ctx.AddErrors(mismatches)
				sweep.LogMismatch(addr, mismatches, mask)
			}
		}
	})
}

// AntiPatterns runs both directions, both polarities, for each byte in
// antiPatternBytes.
func AntiPatterns(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for _, b := range antiPatternBytes {
		p := splatByte(width, b)
		notP := invert(p)
		sweep.FillUp(ctx, p)
		sweep.VerifyUp(ctx, p)
		sweep.FillUp(ctx, notP)
		sweep.VerifyUp(ctx, notP)
		sweep.FillDown(ctx, p)
		sweep.VerifyDown(ctx, p)
		sweep.FillDown(ctx, notP)
		sweep.VerifyDown(ctx, notP)
	}
}

// InverseDataPatterns runs three sub-sweeps of byte-, halfword- and
// word-granularity inverse masks.
func InverseDataPatterns(ctx *engine.Context) {
	width := ctx.Kernel.Width()
	for i := uint(0); i < 8; i++ {
		lane := ^uint64(0) ^ (uint64(0xFF) << (8 * i))
		movingInversionPass(ctx, splatLane64(width, lane))
	}
	for i := uint(0); i < 4; i++ {
		lane := ^uint64(0) ^ (uint64(0xFFFF) << (16 * i))
		movingInversionPass(ctx, splatLane64(width, lane))
	}
	for i := uint(0); i < 2; i++ {
		lane := ^uint64(0) ^ (uint64(0xFFFFFFFF) << (32 * i))
		movingInversionPass(ctx, splatLane64(width, lane))
	}
}
