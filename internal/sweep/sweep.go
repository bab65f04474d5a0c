/*
 * dramstorm - Address-sweep primitives.
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

// Package sweep implements the four buffer-sweep primitives:
// fill_up, fill_down, verify_up, verify_down. Each partitions the
// buffer into cpu_count equal chunks and dispatches one work item per
// chunk to the context's worker pool, forward or backward within each
// chunk.
package sweep

import (
	"log/slog"

	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/rlog"
)

// FillUp writes v to every W-aligned offset in the buffer, ascending
// within each worker's chunk.
func FillUp(ctx *engine.Context, v []byte) {
	fill(ctx, v, false)
}

// FillDown writes v to every W-aligned offset in the buffer,
// descending within each worker's chunk.
func FillDown(ctx *engine.Context, v []byte) {
	fill(ctx, v, true)
}

// VerifyUp reads every W-aligned offset in the buffer and compares it
// against v, ascending within each worker's chunk.
func VerifyUp(ctx *engine.Context, v []byte) {
	verify(ctx, v, false)
}

// VerifyDown reads every W-aligned offset in the buffer and compares
// it against v, descending within each worker's chunk.
func VerifyDown(ctx *engine.Context, v []byte) {
	verify(ctx, v, true)
}

func fill(ctx *engine.Context, v []byte, descending bool) {
	buf := ctx.Buf.Base()
	width := ctx.Kernel.Width()
	chunk := len(buf) / ctx.CPUCount

	ctx.Pool.ParallelFor(ctx.CPUCount, func(i int) {
		base := i * chunk
		for _, j := range offsets(chunk, width, descending) {
			ctx.Kernel.StoreVec(buf, base+j, v)
		}
	})

	// Join-point barrier: ParallelFor already waited for every worker.
	// A store-fence here retires the non-temporal stores of this sweep
	// before any load of the following sweep can observe them.
	ctx.Kernel.Fence()
}

func verify(ctx *engine.Context, v []byte, descending bool) {
	buf := ctx.Buf.Base()
	width := ctx.Kernel.Width()
	chunk := len(buf) / ctx.CPUCount

	ctx.Pool.ParallelFor(ctx.CPUCount, func(i int) {
		base := i * chunk
		for _, j := range offsets(chunk, width, descending) {
			addr := base + j
			mismatches, mask, differ := ctx.Kernel.LoadAndCompareVec(buf, addr, v)
			if differ {
				ctx.AddErrors(mismatches)
				LogMismatch(addr, mismatches, mask)
			}
		}
	})
}

// offsets enumerates the W-aligned offsets within a chunk of length
// chunkLen, in ascending or descending order. The down-direction
// iteration starts at ((chunk_len/W)*W) - W and
// decreases by W.
func offsets(chunkLen, width int, descending bool) []int {
	n := chunkLen / width
	out := make([]int, n)
	if !descending {
		for k := 0; k < n; k++ {
			out[k] = k * width
		}
		return out
	}
	for k := 0; k < n; k++ {
		out[k] = (n - 1 - k) * width
	}
	return out
}

// LogMismatch reports a detected miscompare: offset, count and (on the
// wide-512 path, where it is nonzero) the compare mask, at warn
// level so it survives the default log level. Exported for internal/pattern's
// hand-rolled Checkerboard pass, which cannot go through Fill*/Verify*.
func LogMismatch(addr int, mismatches uint64, mask uint64) {
	attrs := []any{
		rlog.Offset(uint64(addr)),
		slog.Uint64("count", mismatches),
	}
	if mask != 0 {
		attrs = append(attrs, rlog.Mask(mask))
	}
	slog.Warn("data mismatch", attrs...)
}
