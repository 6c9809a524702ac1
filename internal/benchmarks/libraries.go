// Package benchmarks compares textkit with other Go diff libraries. Every library splits both
// texts into the tokens of a granularity and reports how many tokens it deletes and inserts.
package benchmarks

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/internal/tokenize"
	"github.com/textkit-dev/textkit/textdiff"
)

// Edits counts the tokens of x a comparison deletes and the tokens of y it inserts.
type Edits struct {
	Deleted, Inserted int
}

// Total returns the number of edits.
func (e Edits) Total() int { return e.Deleted + e.Inserted }

// Comparator is one library comparing texts at one granularity.
type Comparator struct {
	Name    string
	By      textdiff.Granularity
	Compare func(x, y string) Edits
}

// Granularities lists the granularities in the order they are benchmarked.
var Granularities = []textdiff.Granularity{textdiff.Chars, textdiff.Words, textdiff.Lines}

// Comparators returns the comparators for g.
func Comparators(g textdiff.Granularity) []Comparator {
	cs := []Comparator{
		{"textkit", g, func(x, y string) Edits { return countParts(textdiff.Compare(x, y, g)) }},
		{"textkit-edits", g, func(x, y string) Edits { return textkitEdits(Split(g, x), Split(g, y)) }},
		{"diffmatchpatch", g, func(x, y string) Edits { return dmpEdits(Split(g, x), Split(g, y)) }},
		{"godebug", g, func(x, y string) Edits { return godebugEdits(Split(g, x), Split(g, y)) }},
		{"mb0", g, func(x, y string) Edits { return mb0Edits(Split(g, x), Split(g, y)) }},
	}
	if g != textdiff.Lines {
		return cs
	}
	return append(cs,
		Comparator{"textkit-lines", g, func(x, y string) Edits {
			return countParts(textdiff.CompareLines(x, y, textdiff.IndentHeuristic(), diff.Optimal()))
		}},
		Comparator{"textkit-unified", g, func(x, y string) Edits {
			return countUnified(textdiff.Unified(x, y))
		}},
		Comparator{"go-internal", g, func(x, y string) Edits {
			return countUnified(string(gointernal.Diff("x", []byte(x), "y", []byte(y))))
		}},
		Comparator{"udiff", g, func(x, y string) Edits {
			return countUnified(udiff.Unified("x", "y", x, y))
		}},
	)
}

// Split returns the tokens of s at granularity g, the way textkit splits them.
func Split(g textdiff.Granularity, s string) []string {
	switch g {
	case textdiff.Chars:
		return tokenize.Chars(s, false)
	case textdiff.Words:
		return tokenize.Words(s)
	default:
		return tokenize.Lines(s)
	}
}

func countParts(parts []textdiff.Part) Edits {
	var e Edits
	for _, p := range parts {
		switch p.Op {
		case diff.Delete:
			e.Deleted += p.Count
		case diff.Insert:
			e.Inserted += p.Count
		}
	}
	return e
}

func textkitEdits(x, y []string) Edits {
	var e Edits
	for _, edit := range diff.Edits(x, y, diff.Optimal()) {
		switch edit.Op {
		case diff.Delete:
			e.Deleted++
		case diff.Insert:
			e.Inserted++
		}
	}
	return e
}

// countUnified counts the changed lines of a unified diff. Everything before the first hunk is a
// header.
func countUnified(out string) Edits {
	var e Edits
	inHunk := false
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(nil, len(out)+1)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case !inHunk:
		case strings.HasPrefix(line, "-"):
			e.Deleted++
		case strings.HasPrefix(line, "+"):
			e.Inserted++
		}
	}
	return e
}

// dmpEdits maps every distinct token to a rune, the way diffmatchpatch compares lines.
func dmpEdits(x, y []string) Edits {
	ids := make(map[string]rune)
	encode := func(toks []string) []rune {
		out := make([]rune, len(toks))
		for i, tok := range toks {
			r, ok := ids[tok]
			if !ok {
				r = rune(len(ids) + 1)
				if r >= 0xD800 {
					// Skip surrogates.
					r += 0x800
				}
				ids[tok] = r
			}
			out[i] = r
		}
		return out
	}
	rx, ry := encode(x), encode(y)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	var e Edits
	for _, d := range dmp.DiffMainRunes(rx, ry, false) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			e.Deleted += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffInsert:
			e.Inserted += utf8.RuneCountInString(d.Text)
		}
	}
	return e
}

func godebugEdits(x, y []string) Edits {
	var e Edits
	for _, c := range godebug.DiffChunks(x, y) {
		e.Deleted += len(c.Deleted)
		e.Inserted += len(c.Added)
	}
	return e
}

type mb0tokens struct {
	x, y []string
}

func (d mb0tokens) Equal(i, j int) bool { return d.x[i] == d.y[j] }

func mb0Edits(x, y []string) Edits {
	var e Edits
	for _, ch := range mb0.Diff(len(x), len(y), mb0tokens{x, y}) {
		e.Deleted += ch.Del
		e.Inserted += ch.Ins
	}
	return e
}
