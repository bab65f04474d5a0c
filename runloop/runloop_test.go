package runloop

/*
 * dramstorm - Test run loop tests.
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
	"sync/atomic"
	"testing"
	"time"

	"github.com/dramstorm/dramstorm/internal/buffer"
	"github.com/dramstorm/dramstorm/internal/catalog"
	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/kernel"
	"github.com/dramstorm/dramstorm/internal/platform"
)

func newTestContext(t *testing.T) *engine.Context {
	t.Helper()
	buf, err := buffer.Acquire(platform.Alignment())
	if err != nil {
		t.Skipf("could not acquire a pinned test buffer: %v", err)
	}
	t.Cleanup(buf.Release)

	pool := platform.NewWorkerPool(1)
	t.Cleanup(pool.Close)

	return &engine.Context{
		Buf:      buf,
		Kernel:   kernel.For(64),
		Pool:     pool,
		CPUCount: 1,
	}
}

func TestRunReturnsImmediatelyWhenStopPreSet(t *testing.T) {
	ctx := newTestContext(t)

	invoked := false
	tests := []catalog.TestDefinition{{
		Kind: catalog.BasicTests, Passes: 4, Iters: 6, Loops: 1,
		Kernel: func(*engine.Context) { invoked = true },
	}}

	var stop atomic.Bool
	stop.Store(true)
	Run(ctx, tests, &stop)

	if invoked {
		t.Fatalf("kernel invoked despite the stop flag being set before Run")
	}
}

func TestLoopsInvokeKernelThatManyTimes(t *testing.T) {
	ctx := newTestContext(t)

	var stop atomic.Bool
	var n int
	tests := []catalog.TestDefinition{{
		Kind: catalog.Checkerboard, Passes: 4, Iters: 1, Loops: 3,
		Kernel: func(*engine.Context) {
			n++
			if n == 3 {
				stop.Store(true)
			}
		},
	}}

	Run(ctx, tests, &stop)

	if n != 3 {
		t.Fatalf("kernel invoked %d times, want 3 (loops=3)", n)
	}
}

func TestZeroLoopsSkipsKernel(t *testing.T) {
	ctx := newTestContext(t)

	var stop atomic.Bool
	skippedRan := false
	tests := []catalog.TestDefinition{
		{
			Kind: catalog.Walking1, Passes: 4, Iters: 64, Loops: 0,
			Kernel: func(*engine.Context) { skippedRan = true },
		},
		{
			Kind: catalog.BasicTests, Passes: 4, Iters: 6, Loops: 1,
			Kernel: func(*engine.Context) { stop.Store(true) },
		},
	}

	Run(ctx, tests, &stop)

	if skippedRan {
		t.Fatalf("loops=0 test was invoked; it must be skipped")
	}
}

func TestStopBetweenLoopInvocations(t *testing.T) {
	ctx := newTestContext(t)

	var stop atomic.Bool
	var n int
	tests := []catalog.TestDefinition{{
		Kind: catalog.Checkerboard, Passes: 4, Iters: 1, Loops: 8,
		Kernel: func(*engine.Context) {
			n++
			stop.Store(true)
		},
	}}

	Run(ctx, tests, &stop)

	if n != 1 {
		t.Fatalf("kernel invoked %d times after stop was set on the first invocation, want 1", n)
	}
}

func TestBandwidthMBps(t *testing.T) {
	cases := []struct {
		bytes   uint64
		elapsed time.Duration
		want    float64
	}{
		{1_000_000, time.Second, 1},
		{500_000_000, time.Second, 500},
		{1_000_000, 500 * time.Millisecond, 2},
		{1_000_000, 0, 0},
	}
	for _, c := range cases {
		if got := bandwidthMBps(c.bytes, c.elapsed); got != c.want {
			t.Fatalf("bandwidthMBps(%d, %v) = %v, want %v", c.bytes, c.elapsed, got, c.want)
		}
	}
}
