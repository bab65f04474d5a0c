/*
 * dramstorm - Engine run context.
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

// Package engine holds the per-run Context: everything a pattern
// kernel needs (buffer, vector kernel, RNG, worker pool, error counter,
// cpu count) without threading each one through every call
// individually, and without resorting to package-level globals. A
// single Context value is created once per run and passed to every
// kernel.
package engine

import (
	"sync/atomic"

	"github.com/dramstorm/dramstorm/internal/buffer"
	"github.com/dramstorm/dramstorm/internal/isa"
	"github.com/dramstorm/dramstorm/internal/kernel"
	"github.com/dramstorm/dramstorm/internal/platform"
	"github.com/dramstorm/dramstorm/internal/simdrand"
)

// Context bundles the per-run state every pattern/sweep call needs.
type Context struct {
	Buf      *buffer.Buffer
	Kernel   kernel.Kernel
	RNG      *simdrand.RNG
	Pool     *platform.WorkerPool
	CPUCount int

	// errors is the process-wide miscompare counter: monotonically
	// non-decreasing, incremented with fetch-add, never reset by the
	// run loop.
	errors atomic.Uint64
}

// New builds a Context for the given ISA over an already-acquired,
// pinned buffer. seed0/seed1 seed the SIMD RNG and must not both be
// zero.
func New(kind isa.Kind, buf *buffer.Buffer, seed0, seed1 uint64) *Context {
	cpuCount := platform.CPUCount()
	return &Context{
		Buf:      buf,
		Kernel:   kernel.For(kind.Width()),
		RNG:      simdrand.New(kind.Width(), seed0, seed1),
		Pool:     platform.NewWorkerPool(cpuCount),
		CPUCount: cpuCount,
	}
}

// AddErrors increments the shared error counter by n. Only the
// eventual value matters; there is no causality requirement with
// buffer contents.
func (c *Context) AddErrors(n uint64) {
	c.errors.Add(n)
}

// Errors reads the current value of the shared error counter.
func (c *Context) Errors() uint64 {
	return c.errors.Load()
}

// Close releases the worker pool. The buffer is released separately by
// whoever acquired it.
func (c *Context) Close() {
	c.Pool.Close()
}
