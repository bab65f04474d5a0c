/*
 * dramstorm - Test-selection config file parser.
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

// Package testselect parses the test-selection config file format:
// one TestKind wire name per line, optionally followed by a
// `loops=<n>` override, `#` starting a trailing comment. A missing
// file yields an empty selection, which internal/catalog.Bind then
// expands to every catalog entry. Any unrecognized token is a hard
// parse error; no partial selection is ever returned.
package testselect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dramstorm/dramstorm/internal/catalog"
)

// ParseFile reads a selection file. A missing file is not an error: it
// returns a nil selection, which the binder treats as "run everything".
func ParseFile(name string) ([]catalog.Selection, error) {
	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads a selection from r.
func Parse(r io.Reader) ([]catalog.Selection, error) {
	var out []catalog.Selection
	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, err := reader.ReadString('\n')
		lineNumber++
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		sel, ok, perr := parseLine(line)
		if perr != nil {
			return nil, fmt.Errorf("testselect: line %d: %w", lineNumber, perr)
		}
		if ok {
			out = append(out, sel)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return out, nil
}

// parseLine parses one config line, stripping any trailing `#`
// comment. Returns ok=false for a blank or comment-only line.
func parseLine(line string) (catalog.Selection, bool, error) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return catalog.Selection{}, false, nil
	}

	kind, ok := catalog.ParseTestKind(fields[0])
	if !ok {
		return catalog.Selection{}, false, fmt.Errorf("unknown test %q", fields[0])
	}
	sel := catalog.Selection{Kind: kind}

	for _, tok := range fields[1:] {
		n, ok := parseLoopsToken(tok)
		if !ok {
			return catalog.Selection{}, false, fmt.Errorf("unexpected token %q after %q", tok, fields[0])
		}
		sel.LoopsOverride = &n
	}
	return sel, true, nil
}

func parseLoopsToken(tok string) (int, bool) {
	const prefix = "loops="
	if !strings.HasPrefix(tok, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(tok, prefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
