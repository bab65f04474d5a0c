/*
 * dramstorm - Test run loop.
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

// Package runloop implements the outer run loop: an open-ended
// sequence of iterations over the selected tests, honoring a
// cooperative stop flag, reporting running and per-iteration
// bandwidth estimates, and surfacing the shared error counter.
package runloop

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dramstorm/dramstorm/internal/catalog"
	"github.com/dramstorm/dramstorm/internal/engine"
)

// decimalMB is the divisor for the decimal-MB/s bandwidth convention:
// 1,000,000 bytes, not 1,048,576.
const decimalMB = 1_000_000

// Run executes outer iterations over tests until stop is set. Each
// iteration runs every selected test in order, checking stop between
// tests and between loop invocations within a test.
func Run(ctx *engine.Context, tests []catalog.TestDefinition, stop *atomic.Bool) {
	for {
		if stop.Load() {
			return
		}
		runIteration(ctx, tests, stop)
	}
}

func runIteration(ctx *engine.Context, tests []catalog.TestDefinition, stop *atomic.Bool) {
	start := time.Now()
	var units uint64

	for _, def := range tests {
		if stop.Load() {
			break
		}
		runTest(ctx, def, stop)
		units += uint64(def.Passes) * uint64(def.Iters) * uint64(def.Loops)
	}

	elapsed := time.Since(start)
	if errs := ctx.Errors(); errs != 0 {
		slog.Error("iteration completed with errors", slog.Uint64("errors", errs))
	}

	totalBandwidth := bandwidthMBps(units*uint64(ctx.Buf.Size()), elapsed)
	slog.Info("iteration summary",
		slog.Float64("bandwidth_mb_s", totalBandwidth),
		slog.Uint64("errors", ctx.Errors()),
		slog.Duration("elapsed", elapsed),
	)
}

func runTest(ctx *engine.Context, def catalog.TestDefinition, stop *atomic.Bool) {
	if def.Loops == 0 {
		slog.Info(fmt.Sprintf("Skipping %s", def.Name()))
		return
	}
	if def.Loops > 1 {
		slog.Info(fmt.Sprintf("Running %s (%d×)", def.Name(), def.Loops))
	} else {
		slog.Info(fmt.Sprintf("Running %s", def.Name()))
	}

	unitBytes := uint64(def.Passes) * uint64(def.Iters) * uint64(ctx.Buf.Size())
	for i := 0; i < def.Loops; i++ {
		if stop.Load() {
			return
		}
		invStart := time.Now()
		def.Kernel(ctx)
		if i > 0 {
			bw := bandwidthMBps(unitBytes, time.Since(invStart))
			slog.Info("running bandwidth estimate",
				slog.String("test", def.Name()),
				slog.Float64("bandwidth_mb_s", bw),
			)
		}
	}
}

// bandwidthMBps converts a byte count and a duration into decimal
// MB/s.
func bandwidthMBps(bytes uint64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(bytes) / decimalMB / seconds
}
