package sweep

/*
 * dramstorm - Address-sweep primitives tests.
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

	"github.com/dramstorm/dramstorm/internal/buffer"
	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/kernel"
	"github.com/dramstorm/dramstorm/internal/platform"
)

func newTestContext(t *testing.T, chunks int) *engine.Context {
	t.Helper()
	k := kernel.For(64)
	alignment := platform.Alignment()
	buf, err := buffer.Acquire(alignment * int64(4*chunks))
	if err != nil {
		t.Skipf("could not acquire a pinned test buffer: %v", err)
	}
	t.Cleanup(buf.Release)

	return &engine.Context{
		Buf:      buf,
		Kernel:   k,
		Pool:     platform.NewWorkerPool(chunks),
		CPUCount: chunks,
	}
}

func fill64(b byte) []byte {
	v := make([]byte, 64)
	for i := range v {
		v[i] = b
	}
	return v
}

func TestFillUpThenVerifyUpIsFixpoint(t *testing.T) {
	ctx := newTestContext(t, 2)
	defer ctx.Pool.Close()

	v := fill64(0xAA)
	FillUp(ctx, v)
	VerifyUp(ctx, v)

	if got := ctx.Errors(); got != 0 {
		t.Fatalf("fill_up then verify_up reported %d errors, want 0", got)
	}
}

func TestFillDownThenVerifyDownIsFixpoint(t *testing.T) {
	ctx := newTestContext(t, 2)
	defer ctx.Pool.Close()

	v := fill64(0x55)
	FillDown(ctx, v)
	VerifyDown(ctx, v)

	if got := ctx.Errors(); got != 0 {
		t.Fatalf("fill_down then verify_down reported %d errors, want 0", got)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	ctx := newTestContext(t, 1)
	defer ctx.Pool.Close()

	v := fill64(0xAA)
	FillUp(ctx, v)

	// Corrupt a single byte in the middle of the buffer.
	ctx.Buf.Base()[len(ctx.Buf.Base())/2] ^= 0xFF

	VerifyUp(ctx, v)

	if got := ctx.Errors(); got == 0 {
		t.Fatalf("verify_up did not report any error after corruption")
	}
}

func TestOffsetsDescendingCoversChunk(t *testing.T) {
	chunkLen := 256
	width := 64
	up := offsets(chunkLen, width, false)
	down := offsets(chunkLen, width, true)
	if len(up) != len(down) {
		t.Fatalf("ascending/descending offset counts differ: %d vs %d", len(up), len(down))
	}
	if down[0] != chunkLen-width {
		t.Fatalf("descending offsets must start at chunkLen-width, got %d", down[0])
	}
	if down[len(down)-1] != 0 {
		t.Fatalf("descending offsets must end at 0, got %d", down[len(down)-1])
	}
}
