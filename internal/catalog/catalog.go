/*
 * dramstorm - Test catalog and selection binder.
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

// Package catalog maps each TestKind to its TestDefinition (the
// canonical passes/iters/loops per test) and binds a host-supplied
// selection against it.
package catalog

import (
	"fmt"
	"sort"

	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/pattern"
)

// TestKind is one of the fourteen named kernels, identified by the
// wire name config files use.
type TestKind int

const (
	BasicTests TestKind = iota
	RandomInversions
	MovingInversionsLeft64
	MovingInversionsRight32
	MovingInversionsLeft16
	MovingInversionsRight8
	MovingInversionsLeft4
	MovingSaturationsRight16
	MovingSaturationsLeft8
	Walking1
	Walking0
	Checkerboard
	AntiPatterns
	InverseDataPatterns

	numTestKinds
)

var wireNames = [numTestKinds]string{
	BasicTests:               "basic_tests",
	RandomInversions:         "random_inversions",
	MovingInversionsLeft64:   "moving_inversions_left_64",
	MovingInversionsRight32:  "moving_inversions_right_32",
	MovingInversionsLeft16:   "moving_inversions_left_16",
	MovingInversionsRight8:   "moving_inversions_right_8",
	MovingInversionsLeft4:    "moving_inversions_left_4",
	MovingSaturationsRight16: "moving_saturations_right_16",
	MovingSaturationsLeft8:   "moving_saturations_left_8",
	Walking1:                 "walking1",
	Walking0:                 "walking0",
	Checkerboard:             "checkerboard",
	AntiPatterns:             "anti_patterns",
	InverseDataPatterns:      "inverse_data_patterns",
}

// String returns the wire name used in config files and log lines.
func (k TestKind) String() string {
	if k < 0 || k >= numTestKinds {
		return fmt.Sprintf("TestKind(%d)", int(k))
	}
	return wireNames[k]
}

// ParseTestKind looks up a TestKind by its wire name.
func ParseTestKind(name string) (TestKind, bool) {
	for k, n := range wireNames {
		if n == name {
			return TestKind(k), true
		}
	}
	return 0, false
}

// TestDefinition is one catalog entry: the canonical iteration shape
// for a kernel plus the kernel function itself.
type TestDefinition struct {
	Kind   TestKind
	Passes int
	Iters  int
	Loops  int
	Kernel func(ctx *engine.Context)
}

// Name returns the wire name of the definition's kind.
func (d TestDefinition) Name() string {
	return d.Kind.String()
}

// canonical holds the passes/iters/loops/kernel quadruple for every
// TestKind. These values do not vary by ISA;
// only the kernel's internal vector width does, and that is read from
// the engine.Context at invocation time, not baked into the catalog.
var canonical = [numTestKinds]TestDefinition{
	BasicTests:               {Kind: BasicTests, Passes: 4, Iters: 6, Loops: 1, Kernel: pattern.BasicTests},
	RandomInversions:         {Kind: RandomInversions, Passes: 4, Iters: 16, Loops: 1, Kernel: pattern.RandomInversions},
	MovingInversionsLeft64:   {Kind: MovingInversionsLeft64, Passes: 4, Iters: 64, Loops: 1, Kernel: pattern.MovingInversionsLeft64},
	MovingInversionsRight32:  {Kind: MovingInversionsRight32, Passes: 4, Iters: 32, Loops: 1, Kernel: pattern.MovingInversionsRight32},
	MovingInversionsLeft16:   {Kind: MovingInversionsLeft16, Passes: 4, Iters: 16, Loops: 1, Kernel: pattern.MovingInversionsLeft16},
	MovingInversionsRight8:   {Kind: MovingInversionsRight8, Passes: 4, Iters: 8, Loops: 1, Kernel: pattern.MovingInversionsRight8},
	MovingInversionsLeft4:    {Kind: MovingInversionsLeft4, Passes: 4, Iters: 4, Loops: 1, Kernel: pattern.MovingInversionsLeft4},
	MovingSaturationsRight16: {Kind: MovingSaturationsRight16, Passes: 8, Iters: 16, Loops: 1, Kernel: pattern.MovingSaturationsRight16},
	MovingSaturationsLeft8:   {Kind: MovingSaturationsLeft8, Passes: 8, Iters: 8, Loops: 1, Kernel: pattern.MovingSaturationsLeft8},
	Walking1:                 {Kind: Walking1, Passes: 4, Iters: 64, Loops: 1, Kernel: pattern.Walking1},
	Walking0:                 {Kind: Walking0, Passes: 4, Iters: 64, Loops: 1, Kernel: pattern.Walking0},
	Checkerboard:             {Kind: Checkerboard, Passes: 4, Iters: 1, Loops: 8, Kernel: pattern.Checkerboard},
	AntiPatterns:             {Kind: AntiPatterns, Passes: 8, Iters: 34, Loops: 1, Kernel: pattern.AntiPatterns},
	InverseDataPatterns:      {Kind: InverseDataPatterns, Passes: 4, Iters: 14, Loops: 1, Kernel: pattern.InverseDataPatterns},
}

// All returns the full catalog, sorted by wire name.
func All() []TestDefinition {
	out := make([]TestDefinition, numTestKinds)
	copy(out, canonical[:])
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Lookup returns the canonical definition for a TestKind.
func Lookup(kind TestKind) TestDefinition {
	return canonical[kind]
}

// Selection is one entry of a host-supplied test list: a TestKind
// plus an optional loops override.
type Selection struct {
	Kind          TestKind
	LoopsOverride *int
}

// Bind applies the binder contract: given the (possibly empty) user
// selection, return the chosen definitions in the order given, with
// any loops override substituted in place of the catalog's canonical
// loops value. An empty selection returns every catalog entry sorted
// by name.
func Bind(selection []Selection) []TestDefinition {
	if len(selection) == 0 {
		return All()
	}
	out := make([]TestDefinition, 0, len(selection))
	for _, sel := range selection {
		def := Lookup(sel.Kind)
		if sel.LoopsOverride != nil {
			def.Loops = *sel.LoopsOverride
		}
		out = append(out, def)
	}
	return out
}
