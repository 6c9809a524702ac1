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

// eval validates the comparison functions on real files: it pairs the files of two directory
// trees by relative path, compares every pair at all granularities and checks that the parts
// reproduce both inputs, that they agree with the generic functions of the diff package and that
// the unified diff applied with the unix patch tool reproduces the modified file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/internal/tokenize"
	"github.com/textkit-dev/textkit/internal/unixpatch"
	"github.com/textkit-dev/textkit/textdiff"
)

type config struct {
	original string
	modified string
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "CSV file to store stats in")
	flag.BoolVar(&cfg.validate, "validate", true, "if unified diffs should be validated with the patch tool")
	flag.Parse()

	if len(flag.CommandLine.Args()) != 2 {
		fmt.Fprintf(os.Stderr, "usage: eval [flags] ORIGINAL_DIR MODIFIED_DIR\n")
		os.Exit(1)
	}
	cfg.original, cfg.modified = flag.Arg(0), flag.Arg(1)
	if cfg.validate && !unixpatch.Available() {
		fmt.Fprintf(os.Stderr, "error: patch is not installed, run with -validate=false\n")
		os.Exit(1)
	}

	if err := run(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

// pair is a file present in at least one of the trees. A missing file is empty.
type pair struct {
	name     string
	original string
	modified string
}

type result struct {
	file        string
	granularity textdiff.Granularity
	variant     string
	N, M        int
	D           int
	duration    time.Duration
}

var variants = []struct {
	name string
	opts []diff.Option
}{
	{"exact", nil},
	{"ignore-case", []diff.Option{textdiff.IgnoreCase()}},
	{"ignore-whitespace", []diff.Option{textdiff.IgnoreWhitespace()}},
}

func run(cfg *config) error {
	start := time.Now()

	names, err := pairNames(cfg.original, cfg.modified)
	if err != nil {
		return err
	}

	var stats *os.File
	if cfg.stats != "" {
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	notes := make(chan note)
	done := make(chan struct{})
	var processed atomic.Int64

	// Read files.
	pairs := make(chan pair)
	go func() {
		defer close(pairs)
		for _, name := range names {
			p, ok, err := readPair(cfg.original, cfg.modified, name)
			if err != nil {
				notes <- note{prefix: name, msg: fmt.Sprintf("error reading file: %v", err)}
			}
			if !ok {
				processed.Add(1)
				continue
			}
			pairs <- p
		}
	}()

	// Process pairs.
	var processWG sync.WaitGroup
	var results chan result
	if stats != nil {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for p := range pairs {
				for _, msg := range evaluate(p, results) {
					notes <- note{prefix: p.name, msg: msg}
				}
				if cfg.validate {
					if msg := validateUnified(context.Background(), p); msg != "" {
						notes <- note{prefix: p.name, msg: msg}
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		processed := processed.Load()
		progress := 1.0
		if len(names) > 0 {
			progress = float64(processed) / float64(len(names))
		}
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var filesPerSec int
		if processed > 0 {
			filesPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d files/s) ", width, bar, 100*progress, filesPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("file,granularity,variant,N,M,D,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%d\n", result.file, result.granularity, result.variant, result.N, result.M, result.D, result.duration.Nanoseconds())
				if err != nil {
					notes <- note{
						prefix: result.file,
						msg:    fmt.Sprintf("failed to write stats: %v", err),
					}
				}
			}
			if err := w.Flush(); err != nil {
				notes <- note{
					prefix: "",
					msg:    fmt.Sprintf("failed to flush stats: %v", err),
				}
			}
		}()
	}

	// Shutdown
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	return nil
}

// pairNames returns the sorted union of the relative paths of all regular files in both trees.
func pairNames(original, modified string) ([]string, error) {
	seen := map[string]bool{}
	for _, root := range []string{original, modified} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			seen[rel] = true
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %v", root, err)
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// readPair reads both versions of name. It reports false for files that aren't UTF-8 text.
func readPair(original, modified, name string) (pair, bool, error) {
	p := pair{name: name}
	for i, root := range []string{original, modified} {
		b, err := os.ReadFile(filepath.Join(root, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return pair{}, false, err
		}
		if !utf8.Valid(b) || slices.Contains(b, 0) {
			return pair{}, false, nil
		}
		if i == 0 {
			p.original = string(b)
		} else {
			p.modified = string(b)
		}
	}
	return p, true, nil
}

// evaluate compares p with all granularities and variants and returns a message for every
// violated invariant. If results is not nil, stats for every comparison are sent to it.
func evaluate(p pair, results chan<- result) []string {
	var msgs []string
	for _, g := range []textdiff.Granularity{textdiff.Chars, textdiff.Words, textdiff.Lines} {
		for _, v := range variants {
			start := time.Now()
			parts := textdiff.Compare(p.original, p.modified, g, v.opts...)
			duration := time.Since(start)

			prefix := g.String() + "/" + v.name
			if v.opts == nil {
				if got := textdiff.Original(parts); got != p.original {
					msgs = append(msgs, fmt.Sprintf("%s: parts don't reproduce the original. got:\n%s\nwant:\n%s", prefix, got, p.original))
				}
				if got := textdiff.Modified(parts); got != p.modified {
					msgs = append(msgs, fmt.Sprintf("%s: parts don't reproduce the modified text. got:\n%s\nwant:\n%s", prefix, got, p.modified))
				}
			}
			msgs = append(msgs, crossCheck(p, g, v.name, parts)...)
			for i := 1; i < len(parts); i++ {
				if parts[i].Op == parts[i-1].Op {
					msgs = append(msgs, fmt.Sprintf("%s: parts %d and %d have the same kind", prefix, i-1, i))
					break
				}
			}

			if results != nil {
				var n, m, d int
				for _, part := range parts {
					switch {
					case part.Added():
						m += part.Count
						d += part.Count
					case part.Removed():
						n += part.Count
						d += part.Count
					default:
						n += part.Count
						m += part.Count
					}
				}
				results <- result{
					file:        p.name,
					granularity: g,
					variant:     v.name,
					N:           n,
					M:           m,
					D:           d,
					duration:    duration,
				}
			}
		}
	}
	return msgs
}

// crossCheck compares parts with the results of the diff package for the same tokens. All of them
// are minimal, so they must agree on the number of changed tokens.
func crossCheck(p pair, g textdiff.Granularity, variant string, parts []textdiff.Part) []string {
	var changed int
	for _, part := range parts {
		if !part.Unchanged() {
			changed += part.Count
		}
	}

	x, y := tokens(g, p.original), tokens(g, p.modified)
	prefix := g.String() + "/" + variant
	var msgs []string
	switch {
	case variant == "exact":
		if n := countEdits(diff.Edits(x, y, diff.Optimal())); n != changed {
			msgs = append(msgs, fmt.Sprintf("%s: diff.Edits changes %d tokens, the parts %d", prefix, n, changed))
		}
		if g != textdiff.Lines {
			break
		}
		unified := textdiff.Unified(p.original, p.modified, diff.Optimal())
		headers := 0
		for line := range strings.Lines(unified) {
			if strings.HasPrefix(line, "@@ -") {
				headers++
			}
		}
		if n := len(diff.Hunks(x, y, diff.Optimal())); n != headers {
			msgs = append(msgs, fmt.Sprintf("%s: diff.Hunks returns %d hunks, the unified diff has %d", prefix, n, headers))
		}
	case variant == "ignore-whitespace" && g == textdiff.Lines:
		eq := func(a, b string) bool { return tokenize.LineKey(a) == tokenize.LineKey(b) }
		if n := countEdits(diff.EditsFunc(x, y, eq, diff.Optimal())); n != changed {
			msgs = append(msgs, fmt.Sprintf("%s: diff.EditsFunc changes %d lines, the parts %d", prefix, n, changed))
		}
	}
	return msgs
}

func tokens(g textdiff.Granularity, s string) []string {
	switch g {
	case textdiff.Chars:
		return tokenize.Chars(s, false)
	case textdiff.Words:
		return tokenize.Words(s)
	default:
		return tokenize.Lines(s)
	}
}

func countEdits(edits []diff.Edit[string]) int {
	n := 0
	for _, e := range edits {
		if e.Op != diff.Match {
			n++
		}
	}
	return n
}

// validateUnified checks that applying the unified diff of p to the original produces the
// modified file.
func validateUnified(ctx context.Context, p pair) string {
	for _, opts := range [][]diff.Option{nil, {diff.Optimal()}} {
		unified := textdiff.Unified(p.original, p.modified, opts...)
		patched, err := unixpatch.Patch(ctx, p.original, unified)
		if err != nil {
			return fmt.Sprintf("failed to run patch: %v", err)
		}
		if patched != p.modified {
			return fmt.Sprintf("file is different after applying patch. got:\n%s\nwant:\n%s", patched, p.modified)
		}
	}
	return ""
}
