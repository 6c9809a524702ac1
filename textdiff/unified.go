// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textdiff

import (
	"fmt"
	"strings"

	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/internal/config"
	"github.com/textkit-dev/textkit/internal/indentheuristic"
	"github.com/textkit-dev/textkit/internal/myers"
	"github.com/textkit-dev/textkit/internal/rvecs"
	"github.com/textkit-dev/textkit/internal/tokenize"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format. The output only contains hunks, no file headers. If x and y are
// identical, the output is empty.
//
// The following options are supported: [diff.Context], [diff.Optimal], [IndentHeuristic]
func Unified(x, y string, opts ...diff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.IndentHeuristic)

	xlines, ylines := tokenize.Lines(x), tokenize.Lines(y)
	rx, ry := myers.Diff(xlines, ylines, cfg)
	if cfg.IndentHeuristic {
		indentheuristic.Apply(xlines, ylines, rx, ry)
	}

	var b strings.Builder
	for h := range rvecs.Hunks(rx, ry, cfg) {
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(h.S0, h.S1), hunkRange(h.T0, h.T1))
		for s, t := h.S0, h.T0; s < h.S1 || t < h.T1; {
			for s < h.S1 && rx[s] {
				writeLine(&b, prefixDelete, xlines[s])
				s++
			}
			for t < h.T1 && ry[t] {
				writeLine(&b, prefixInsert, ylines[t])
				t++
			}
			for s < h.S1 && t < h.T1 && !rx[s] && !ry[t] {
				writeLine(&b, prefixMatch, xlines[s])
				s++
				t++
			}
		}
	}
	return b.String()
}

// hunkRange formats the 1-based range of lines [lo, hi). An empty range refers to the line
// before it.
func hunkRange(lo, hi int) string {
	if lo == hi {
		return fmt.Sprintf("%d,0", lo)
	}
	return fmt.Sprintf("%d,%d", lo+1, hi-lo)
}

func writeLine(b *strings.Builder, prefix, line string) {
	b.WriteString(prefix)
	if strings.HasSuffix(line, "\n") {
		b.WriteString(line)
		return
	}
	// Only the last line of an input can lack the line break.
	b.WriteString(line)
	b.WriteString(missingNewline)
}
