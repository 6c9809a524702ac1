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

// Package textdiff compares text by characters, words or lines.
//
// [Compare] returns the difference as a sequence of [Part] values, runs of tokens that were
// removed, added or left unchanged. Dropping the added parts reconstructs the original text and
// dropping the removed parts reconstructs the modified text. [CompareLines] is a line comparison
// for display and [Unified] renders a line diff in unified format.
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

// Granularity selects the tokens text is split into before comparing.
type Granularity int

const (
	Chars Granularity = iota // Grapheme clusters
	Words                    // Runs of whitespace and runs of other characters
	Lines                    // Lines including their line break
)

func (g Granularity) String() string {
	switch g {
	case Chars:
		return "chars"
	case Words:
		return "words"
	case Lines:
		return "lines"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity parses "chars", "words" or "lines", ignoring case and surrounding whitespace.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chars", "char", "characters":
		return Chars, nil
	case "words", "word":
		return Words, nil
	case "lines", "line":
		return Lines, nil
	default:
		return 0, fmt.Errorf("unknown granularity %q, want chars, words or lines", s)
	}
}

// Set implements [flag.Value] and the cobra flag interface.
func (g *Granularity) Set(s string) error {
	v, err := ParseGranularity(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Type implements the cobra flag interface.
func (g *Granularity) Type() string { return "granularity" }

func (g Granularity) split(s string, mergeSpace bool) []string {
	switch g {
	case Chars:
		return tokenize.Chars(s, mergeSpace)
	case Words:
		return tokenize.Words(s)
	case Lines:
		return tokenize.Lines(s)
	default:
		panic("unknown " + g.String())
	}
}

func (g Granularity) key() func(string) string {
	if g == Lines {
		return tokenize.LineKey
	}
	return tokenize.SpaceKey
}

// Part is a run of tokens that were removed, added or left unchanged.
type Part struct {
	Op    diff.Op // diff.Match, diff.Delete or diff.Insert
	Text  string  // Concatenated tokens
	Count int     // Number of tokens
}

// Added reports whether the part only exists in the modified text.
func (p Part) Added() bool { return p.Op == diff.Insert }

// Removed reports whether the part only exists in the original text.
func (p Part) Removed() bool { return p.Op == diff.Delete }

// Unchanged reports whether the part exists in both texts.
func (p Part) Unchanged() bool { return p.Op == diff.Match }

// Compare splits original and modified into tokens of granularity g and returns a minimal
// sequence of parts that transforms one into the other. Matches are aligned as early as possible
// in the original and within a change the removed part comes before the added part.
//
// Two empty inputs produce no parts and identical inputs produce a single unchanged part.
//
// The following options are supported: [IgnoreCase], [IgnoreWhitespace]
//
// The text of unchanged parts is taken from modified. With IgnoreCase, all part texts are lower
// case.
func Compare(original, modified string, g Granularity, opts ...diff.Option) []Part {
	cfg := config.FromOptions(opts, config.IgnoreCase|config.IgnoreWhitespace)

	if cfg.IgnoreCase {
		original, modified = strings.ToLower(original), strings.ToLower(modified)
	}
	x := g.split(original, cfg.IgnoreWhitespace)
	y := g.split(modified, cfg.IgnoreWhitespace)
	xk, yk := x, y
	if cfg.IgnoreWhitespace {
		key := g.key()
		xk, yk = mapTokens(x, key), mapTokens(y, key)
	}

	b := partBuilder{x: x, y: y}
	for _, run := range diff.Runs(xk, yk, diff.Earliest()) {
		b.add(run.Op, max(len(run.X), len(run.Y)))
	}
	return b.parts
}

// CompareLines compares original and modified line by line for display. Unlike [Compare], it
// doesn't insist on the earliest alignment of matches, so the placement of changes can be
// improved with [IndentHeuristic].
//
// The following options are supported: [IgnoreCase], [IgnoreWhitespace], [IndentHeuristic],
// [diff.Optimal]
func CompareLines(original, modified string, opts ...diff.Option) []Part {
	cfg := config.FromOptions(opts, config.IgnoreCase|config.IgnoreWhitespace|config.IndentHeuristic|config.Optimal)

	if cfg.IgnoreCase {
		original, modified = strings.ToLower(original), strings.ToLower(modified)
	}
	x, y := tokenize.Lines(original), tokenize.Lines(modified)
	xk, yk := x, y
	if cfg.IgnoreWhitespace {
		xk, yk = mapTokens(x, tokenize.LineKey), mapTokens(y, tokenize.LineKey)
	}

	rx, ry := myers.Diff(xk, yk, cfg)
	if cfg.IndentHeuristic {
		indentheuristic.Apply(xk, yk, rx, ry)
	}

	b := partBuilder{x: x, y: y}
	for run := range rvecs.Runs(rx, ry) {
		switch run.Kind {
		case rvecs.Match:
			b.add(diff.Match, run.S1-run.S0)
		case rvecs.Delete:
			b.add(diff.Delete, run.S1-run.S0)
		case rvecs.Insert:
			b.add(diff.Insert, run.T1-run.T0)
		}
	}
	return b.parts
}

// partBuilder turns a sequence of runs into parts. The text of deleted tokens comes from x, the
// text of matching and inserted tokens from y.
type partBuilder struct {
	x, y  []string
	s, t  int
	parts []Part
}

func (b *partBuilder) add(op diff.Op, n int) {
	var text string
	switch op {
	case diff.Match:
		text = strings.Join(b.y[b.t:b.t+n], "")
		b.s += n
		b.t += n
	case diff.Delete:
		text = strings.Join(b.x[b.s:b.s+n], "")
		b.s += n
	case diff.Insert:
		text = strings.Join(b.y[b.t:b.t+n], "")
		b.t += n
	}
	b.parts = append(b.parts, Part{op, text, n})
}

func mapTokens(toks []string, key func(string) string) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = key(tok)
	}
	return out
}

// Original joins the text of all parts that aren't added.
func Original(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if !p.Added() {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// Modified joins the text of all parts that aren't removed.
func Modified(parts []Part) string {
	var sb strings.Builder
	for _, p := range parts {
		if !p.Removed() {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// Identical reports whether parts contains no additions or removals.
func Identical(parts []Part) bool {
	for _, p := range parts {
		if !p.Unchanged() {
			return false
		}
	}
	return true
}
