/*
 * dramstorm - Per-CPU worker pool.
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

package platform

import "sync"

// WorkerPool is a fixed set of pre-spawned goroutines, one per logical
// CPU, used by internal/sweep to fork-join each fill/verify pass.
// There is no per-iteration thread creation: workers are spawned once
// in NewWorkerPool and parked on a job channel between dispatches.
type WorkerPool struct {
	jobs chan func(worker int)
	wg   sync.WaitGroup
	n    int
}

// NewWorkerPool spawns n persistent workers.
func NewWorkerPool(n int) *WorkerPool {
	if n < 1 {
		n = 1
	}
	p := &WorkerPool{
		jobs: make(chan func(worker int)),
		n:    n,
	}
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

func (p *WorkerPool) loop() {
	for fn := range p.jobs {
		fn(0)
	}
}

// ParallelFor dispatches fn(i) for every i in [0,n) across the pool's
// workers and blocks until all have returned: the fork-join
// join-point barrier every pair of consecutive sweeps relies on. n
// need not equal the pool's worker count; excess work items queue
// behind busy workers.
func (p *WorkerPool) ParallelFor(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		p.jobs <- func(int) {
			defer wg.Done()
			fn(i)
		}
	}
	wg.Wait()
}

// Close shuts down the pool's workers. The pool is not reused after
// Close.
func (p *WorkerPool) Close() {
	close(p.jobs)
}

// Size returns the number of pre-spawned workers.
func (p *WorkerPool) Size() int {
	return p.n
}
