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

// Package indentheuristic moves the boundaries of line changes to places a reader would expect,
// following the indent heuristic by Michael Haggerty (https://github.com/mhagger/diff-slider-tools)
// that git uses for --indent-heuristic.
//
// A block of deleted (or inserted) lines can often slide up or down without changing the cost of
// the edit script: if the line before the block equals its last line, the block can move up by
// one line, and if the line after it equals its first line, it can move down. Apply uses that
// freedom in three steps for every block:
//
//  1. Slide the block up and down as far as it goes, merging it with neighboring blocks.
//  2. If some position puts it right next to a change block on the other side, use that.
//  3. Otherwise pick the position whose boundaries score best based on blank lines and
//     indentation around them.
package indentheuristic

import "cmp"

const (
	// Blocks never move further than this.
	maxSliding = 100

	// Indentation is clamped to this value.
	maxIndent = 200

	// Runs of blank lines are only counted up to this length.
	maxBlanks = 20
)

// Weights and penalties for a boundary (a position between two lines). Lower is better.
const (
	startOfFilePenalty              = 1   // Only blank lines before the boundary
	endOfFilePenalty                = 21  // Only blank lines after the boundary
	totalBlankWeight                = -30 // Per blank line around the boundary
	postBlankWeight                 = 6   // Per blank line after the boundary
	relativeIndentPenalty           = -4  // Line after is indented more than the line before
	relativeIndentWithBlankPenalty  = 10  // Same, with blank lines around the boundary
	relativeOutdentPenalty          = 24  // Line after is indented less, and the next one more
	relativeOutdentWithBlankPenalty = 17  // Same, with blank lines around the boundary
	relativeDedentPenalty           = 23  // Line after is indented less than the line before
	relativeDedentWithBlankPenalty  = 17  // Same, with blank lines around the boundary
)

// Scores compare the summed indentation around boundaries first, with this weight.
const indentWeight = 60

// Apply slides the change blocks of the edit script described by the result vectors rx and ry.
// x and y are the lines (including line breaks) the script was computed for. Both vectors carry one
// extra element past the end of their input. The number of edits doesn't change.
func Apply(x, y []string, rx, ry []bool) {
	slide(x, y, rx, ry)
	slide(y, x, ry, rx)
}

// slide moves the blocks in r, the result vector of lines. ro is the result vector of the other
// input, the blocks of both sides are walked in lockstep.
func slide(lines, other []string, r, ro []bool) {
	b, bo := newBlock(lines, r), newBlock(other, ro)
	for b.next() {
		mustMove(bo.next())
		if b.size() == 0 {
			continue
		}

		// top is the smallest end the block can slide to, aligned the largest end that puts it
		// next to a block on the other side.
		top, aligned := b.end, -1
		for n := -1; n != b.size(); {
			n = b.size()
			aligned = -1

			for b.up() {
				mustMove(bo.prev())
			}
			top = b.end
			if bo.size() > 0 {
				aligned = b.end
			}

			for b.down() {
				mustMove(bo.next())
				if bo.size() > 0 {
					aligned = b.end
				}
			}
		}

		// The block is now at its lowest position.
		target := b.end
		switch {
		case top == b.end:
			continue
		case aligned != -1:
			target = aligned
		default:
			var best score
			target = -1
			for end := max(top, b.end-b.size()-1, b.end-maxSliding); end <= b.end; end++ {
				var sc score
				sc.add(measure(lines, end))
				sc.add(measure(lines, end-b.size()))
				if target == -1 || sc.compare(best) <= 0 {
					target, best = end, sc
				}
			}
		}
		for b.end > target {
			mustMove(b.up())
			mustMove(bo.prev())
		}
	}
	mustMove(!bo.next())
}

// mustMove panics if the blocks of both sides lost track of each other.
func mustMove(ok bool) {
	if !ok {
		panic("change blocks out of sync")
	}
}

// block is a window over a result vector: r[start:end] is a maximal run of changed lines, or
// empty with start == end at an unchanged line.
type block struct {
	start, end int
	lines      []string
	r          []bool
}

func newBlock(lines []string, r []bool) *block {
	return &block{start: -1, end: -1, lines: lines, r: r}
}

func (b *block) size() int { return b.end - b.start }

// next moves to the following block and reports whether there was one.
func (b *block) next() bool {
	n := len(b.r) - 1
	if b.end == n {
		return false
	}
	b.start = b.end + 1
	b.end = b.start
	for b.end < n && b.r[b.end] {
		b.end++
	}
	return true
}

// prev moves to the preceding block and reports whether there was one.
func (b *block) prev() bool {
	if b.start == 0 {
		return false
	}
	b.end = b.start - 1
	b.start = b.end
	for b.start > 0 && b.r[b.start-1] {
		b.start--
	}
	return true
}

// down moves the block one line down if its first line equals the line after it. A block that
// touches the following block afterwards absorbs it.
func (b *block) down() bool {
	n := len(b.r) - 1
	if b.end == n || b.lines[b.start] != b.lines[b.end] {
		return false
	}
	b.r[b.start], b.r[b.end] = false, true
	b.start++
	b.end++
	for b.end < n && b.r[b.end] {
		b.end++
	}
	return true
}

// up moves the block one line up if its last line equals the line before it. A block that touches
// the preceding block afterwards absorbs it.
func (b *block) up() bool {
	if b.start == 0 || b.lines[b.start-1] != b.lines[b.end-1] {
		return false
	}
	b.r[b.start-1], b.r[b.end-1] = true, false
	b.start--
	b.end--
	for b.start > 0 && b.r[b.start-1] {
		b.start--
	}
	return true
}

// boundary describes the surroundings of the position before line i.
type boundary struct {
	eof        bool // No line at i
	indent     int  // Indentation of line i, -1 if blank
	preBlank   int  // Blank lines right before i
	preIndent  int  // Indentation of the first non-blank line before i, -1 if none
	postBlank  int  // Blank lines right after i
	postIndent int  // Indentation of the first non-blank line after i, -1 if none
}

func measure(lines []string, i int) boundary {
	var m boundary
	if i >= len(lines) {
		m.eof = true
		m.indent = -1
	} else {
		m.indent = indentation(lines[i])
	}

	m.preIndent = -1
	for j := i - 1; j >= 0; j-- {
		if m.preIndent = indentation(lines[j]); m.preIndent != -1 {
			break
		}
		if m.preBlank++; m.preBlank == maxBlanks {
			m.preIndent = 0
			break
		}
	}

	m.postIndent = -1
	for j := i + 1; j < len(lines); j++ {
		if m.postIndent = indentation(lines[j]); m.postIndent != -1 {
			break
		}
		if m.postBlank++; m.postBlank == maxBlanks {
			m.postIndent = 0
			break
		}
	}
	return m
}

// indentation returns the width of the leading whitespace of line with tab stops every 8 columns,
// or -1 if the line is blank.
func indentation(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			n++
		case '\t':
			n += 8 - n%8
		case '\n', '\r', '\v', '\f':
		default:
			return n
		}
		if n >= maxIndent {
			return maxIndent
		}
	}
	return -1
}

type score struct {
	indent  int // Sum of effective indentation
	penalty int
}

func (s *score) add(m boundary) {
	if m.preIndent == -1 && m.preBlank == 0 {
		s.penalty += startOfFilePenalty
	}
	if m.eof {
		s.penalty += endOfFilePenalty
	}

	postBlank := 0
	if m.indent == -1 {
		postBlank = 1 + m.postBlank
	}
	blanks := m.preBlank + postBlank
	s.penalty += totalBlankWeight*blanks + postBlankWeight*postBlank

	indent := m.indent
	if indent == -1 {
		indent = m.postIndent
	}
	s.indent += indent

	switch {
	case indent == -1 || m.preIndent == -1 || indent == m.preIndent:
	case indent > m.preIndent:
		s.penalty += pick(blanks, relativeIndentWithBlankPenalty, relativeIndentPenalty)
	case m.postIndent != -1 && m.postIndent > indent:
		// Probably the start of a new block, like an else branch.
		s.penalty += pick(blanks, relativeOutdentWithBlankPenalty, relativeOutdentPenalty)
	default:
		s.penalty += pick(blanks, relativeDedentWithBlankPenalty, relativeDedentPenalty)
	}
}

func pick(blanks, withBlank, without int) int {
	if blanks != 0 {
		return withBlank
	}
	return without
}

// compare returns a negative number if s is better than t and a positive number if it's worse.
func (s score) compare(t score) int {
	return indentWeight*cmp.Compare(s.indent, t.indent) + s.penalty - t.penalty
}
