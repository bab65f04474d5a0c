/*
 * dramstorm - Platform-independent host queries.
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

// Package platform is the glue between the engine and the host OS:
// page size, logical CPU count, aligned alloc/free, physical-memory
// pinning, and host memory totals.
package platform

import "runtime"

// ShrinkStep is how much a requested buffer size is reduced by between
// failed pin attempts.
const ShrinkStep = 256 * 1024 * 1024

// CPUCount returns the number of logical CPUs the process may use.
// The linux build uses an affinity-aware count
// (sched_getaffinity); other platforms fall back to runtime.NumCPU.
func CPUCount() int {
	if n := cpuCountAffinity(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Alignment returns the required buffer base-address alignment:
// cpu_count * page_size.
func Alignment() int64 {
	return int64(CPUCount()) * int64(PageSize())
}
