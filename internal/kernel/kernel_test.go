package kernel

/*
 * dramstorm - SIMD kernel tests.
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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dramstorm/dramstorm/internal/buffer"
	"github.com/dramstorm/dramstorm/internal/platform"
)

// allocAligned returns an n-byte prefix of a pinned, platform-aligned
// buffer (alignment = cpu_count * page_size, always a multiple of
// every vector width this package supports). The asm backend's
// VMOVNTDQ stores fault on a destination that isn't W-aligned, so
// tests must not hand it a plain make([]byte, ...) slice.
func allocAligned(t *testing.T, n int) []byte {
	t.Helper()
	buf, err := buffer.Acquire(platform.Alignment())
	if err != nil {
		t.Skipf("could not acquire a pinned, aligned test buffer: %v", err)
	}
	t.Cleanup(buf.Release)
	return buf.Base()[:n]
}

func splat(width int, b byte) []byte {
	v := make([]byte, width)
	for i := range v {
		v[i] = b
	}
	return v
}

func TestFillThenVerifyIsFixpoint(t *testing.T) {
	for _, width := range []int{32, 64} {
		k := For(width)
		buf := allocAligned(t, width*4)
		pattern := splat(width, 0xAA)

		k.StoreVec(buf, width, pattern)
		k.Fence()

		mismatches, _, differ := k.LoadAndCompareVec(buf, width, pattern)
		require.Falsef(t, differ, "width %d: fill(0xAA) then verify(0xAA) should be a fixpoint", width)
		require.Zerof(t, mismatches, "width %d: fixpoint must report zero mismatches", width)
	}
}

func TestInverseOverwriteClearsMismatches(t *testing.T) {
	for _, width := range []int{32, 64} {
		k := For(width)
		buf := allocAligned(t, width*2)
		p := splat(width, 0x55)
		notP := invert(p)

		k.StoreVec(buf, 0, p)
		k.Fence()
		k.StoreVec(buf, 0, notP)
		k.Fence()

		mismatches, _, differ := k.LoadAndCompareVec(buf, 0, notP)
		require.Falsef(t, differ, "width %d: fill(p); fill(~p); verify(~p) must not mismatch", width)
		require.Zero(t, mismatches)
	}
}

func TestMiscompareIsDetected(t *testing.T) {
	for _, width := range []int{32, 64} {
		k := For(width)
		buf := allocAligned(t, width)
		expected := splat(width, 0xAA)
		k.StoreVec(buf, 0, expected)
		k.Fence()

		buf[width/2] = 0x55 // flip a single byte

		mismatches, _, differ := k.LoadAndCompareVec(buf, 0, expected)
		require.Truef(t, differ, "width %d: single-byte corruption not detected", width)
		if width == 64 {
			require.EqualValuesf(t, 1, mismatches, "width 64 reports an exact mismatch count")
		} else {
			require.GreaterOrEqualf(t, mismatches, uint64(1), "width 32 reports an at-least-1 mismatch count")
		}
	}
}

func TestUnalignedAccessPanics(t *testing.T) {
	for _, width := range []int{32, 64} {
		t.Run("", func(t *testing.T) {
			k := For(width)
			buf := allocAligned(t, width*2)
			v := splat(width, 0)

			require.Panicsf(t, func() { k.StoreVec(buf, 1, v) }, "width %d: unaligned StoreVec must panic", width)
		})
	}
}

func invert(v []byte) []byte {
	out := make([]byte, len(v))
	for i, b := range v {
		out[i] = ^b
	}
	return out
}
