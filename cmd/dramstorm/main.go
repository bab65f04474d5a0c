/*
 * dramstorm - Main process.
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

// Command dramstorm is the outer process harness for the DRAM
// stress-and-validation engine: flag parsing, log setup, signal
// handling and exit codes. A SIGINT/SIGTERM stops runloop.Run
// cooperatively via a shared *atomic.Bool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/dramstorm/dramstorm/config/sizespec"
	"github.com/dramstorm/dramstorm/config/testselect"
	"github.com/dramstorm/dramstorm/internal/buffer"
	"github.com/dramstorm/dramstorm/internal/catalog"
	"github.com/dramstorm/dramstorm/internal/dramerr"
	"github.com/dramstorm/dramstorm/internal/engine"
	"github.com/dramstorm/dramstorm/internal/isa"
	"github.com/dramstorm/dramstorm/internal/platform"
	"github.com/dramstorm/dramstorm/internal/rlog"
	"github.com/dramstorm/dramstorm/runloop"
)

func main() {
	optSize := getopt.StringLong("size", 's', "80%", "Buffer size (e.g. 4Gi, 50%, 80%t)")
	optConfig := getopt.StringLong("config", 'c', "dramstorm.cfg", "Test-selection configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHideSerials := getopt.BoolLong("hide-serials", 'H', "Hide DIMM/CPU serials in informational banners")
	optDebug := getopt.BoolLong("debug", 'd', "Verbose logging to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var sink io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dramstorm:", err)
			os.Exit(1)
		}
		sink = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	logger := slog.New(rlog.NewHandler(sink, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(logger)

	logger.Info("dramstorm started")

	if err := run(*optSize, *optConfig, *optHideSerials); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// run wires the boundary collaborators (size-spec parsing, test
// selection, buffer acquisition, ISA probe) to the core engine and
// drives runloop.Run until a SIGINT/SIGTERM is observed.
func run(sizeSpec, configPath string, hideSerials bool) error {
	size, err := sizespec.Parse(sizeSpec)
	if err != nil {
		return fmt.Errorf("parsing size spec: %w", err)
	}

	if _, statErr := os.Stat(configPath); statErr != nil {
		slog.Warn("config file missing, defaulting to every test",
			slog.String("path", configPath))
	}
	selection, err := testselect.ParseFile(configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", dramerr.ErrBadConfigLine, err)
	}
	tests := catalog.Bind(selection)

	kind := isa.Detect()
	if kind == isa.None {
		return dramerr.ErrNoSIMD
	}
	slog.Info("ISA probe selected width", slog.String("isa", kind.String()))

	buf, err := buffer.Acquire(int64(size))
	if err != nil {
		return err
	}
	defer buf.Release()
	slog.Info("buffer acquired",
		slog.Int64("bytes", buf.Size()),
		slog.Int("cpu_count", platform.CPUCount()),
	)

	seed0, seed1 := seedPair()
	ctx := engine.New(kind, buf, seed0, seed1)
	defer ctx.Close()

	_ = hideSerials // threaded through opaquely; consumed by the (out-of-scope) banner printer

	var stop atomic.Bool
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("stop signal received, finishing current test")
		stop.Store(true)
	}()

	runloop.Run(ctx, tests, &stop)
	slog.Info("run stopped", slog.Uint64("errors", ctx.Errors()))
	return nil
}

// seedPair draws a nonzero (s0, s1) pair for the SIMD RNG from the
// runtime's entropy source (not both seeds may be zero).
func seedPair() (uint64, uint64) {
	for {
		s0, s1 := rand.Uint64(), rand.Uint64()
		if s0 != 0 || s1 != 0 {
			return s0, s1
		}
	}
}
