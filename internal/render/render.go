// Copyright 2025 The textkit Authors
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

// Package render prints diffs, statistics and formatted code for terminals.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/textdiff"
	"github.com/tidwall/pretty"
)

var (
	addColor    = lipgloss.Color("#9ece6a")
	deleteColor = lipgloss.Color("#f7768e")
	mutedColor  = lipgloss.Color("#565f89")
)

// Renderer renders for one output. Without color, changes are marked with [-...-] and {+...+}
// like git's word diff.
type Renderer struct {
	color bool

	added, deleted, muted lipgloss.Style
}

// New returns a renderer for w. If color is set, the color profile is detected from w.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}
	return newRenderer(lr, color)
}

func newRenderer(lr *lipgloss.Renderer, color bool) *Renderer {
	return &Renderer{
		color:   color,
		added:   lr.NewStyle().Foreground(addColor).Underline(true),
		deleted: lr.NewStyle().Foreground(deleteColor).Strikethrough(true),
		muted:   lr.NewStyle().Foreground(mutedColor),
	}
}

// Color reports whether the renderer emits escape sequences.
func (r *Renderer) Color() bool { return r.color }

// Inline renders the parts as running text with the changes highlighted.
func (r *Renderer) Inline(parts []textdiff.Part) string {
	var b strings.Builder
	for _, p := range parts {
		switch p.Op {
		case diff.Match:
			b.WriteString(p.Text)
		case diff.Delete:
			b.WriteString(r.mark(r.deleted, "[-", p.Text, "-]"))
		case diff.Insert:
			b.WriteString(r.mark(r.added, "{+", p.Text, "+}"))
		}
	}
	return b.String()
}

// mark styles text, line by line so that styles don't bleed over line breaks.
func (r *Renderer) mark(style lipgloss.Style, prefix, text, suffix string) string {
	if !r.color {
		return prefix + text + suffix
	}
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		body, nl := strings.CutSuffix(line, "\n")
		if body != "" {
			body = style.Render(body)
		}
		if nl {
			body += "\n"
		}
		lines[i] = body
	}
	return strings.Join(lines, "")
}

// Stats renders the statistics as a single line.
func (r *Renderer) Stats(st textdiff.Stats) string {
	return fmt.Sprintf("%s %s %s",
		r.added.UnsetUnderline().Render(fmt.Sprintf("+%d", st.Additions)),
		r.deleted.UnsetStrikethrough().Render(fmt.Sprintf("-%d", st.Deletions)),
		r.muted.Render(fmt.Sprintf("=%d", st.Unchanged)),
	)
}

// SideBySide renders a line based comparison in two columns that fit into width cells. The gutter
// between the columns shows '|' for a changed line, '<' for a deleted line and '>' for an inserted
// line.
func (r *Renderer) SideBySide(parts []textdiff.Part, width int) string {
	colWidth := max(1, (width-3)/2)
	var b strings.Builder
	row := func(left, right string, gutter byte, ls, rs *lipgloss.Style) {
		l := runewidth.FillRight(runewidth.Truncate(expandTabs(left), colWidth, "…"), colWidth)
		rt := runewidth.Truncate(expandTabs(right), colWidth, "…")
		if r.color {
			if ls != nil {
				l = ls.Render(l)
			}
			if rs != nil && rt != "" {
				rt = rs.Render(rt)
			}
		}
		b.WriteString(l)
		b.WriteByte(' ')
		b.WriteByte(gutter)
		if rt != "" {
			b.WriteByte(' ')
			b.WriteString(rt)
		}
		b.WriteByte('\n')
	}

	var deleted []string
	flush := func(inserted []string) {
		for i := range max(len(deleted), len(inserted)) {
			switch {
			case i < len(deleted) && i < len(inserted):
				row(deleted[i], inserted[i], '|', &r.deleted, &r.added)
			case i < len(deleted):
				row(deleted[i], "", '<', &r.deleted, nil)
			default:
				row("", inserted[i], '>', nil, &r.added)
			}
		}
		deleted = nil
	}

	for _, p := range parts {
		lines := splitLines(p.Text)
		switch p.Op {
		case diff.Match:
			flush(nil)
			for _, line := range lines {
				row(line, line, ' ', nil, nil)
			}
		case diff.Delete:
			deleted = append(deleted, lines...)
		case diff.Insert:
			flush(lines)
		}
	}
	flush(nil)
	return b.String()
}

// splitLines splits s into lines without their line breaks. A lone "\n" is one empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i], _ = strings.CutSuffix(line, "\n")
	}
	return lines
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// Highlight colors src as source code in language lang ("sql", "html", "xml", "json", ...).
// Without color, or if there is no lexer for lang, src is returned as is.
func (r *Renderer) Highlight(src, lang string) string {
	if !r.color {
		return src
	}
	if lang == "json" {
		return string(pretty.Color([]byte(src), pretty.TerminalStyle))
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return src
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := formatters.TTY256.Format(&buf, styles.Get("monokai"), it); err != nil {
		return src
	}
	return buf.String()
}
