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

package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/textkit-dev/textkit/textdiff"
)

func colorRenderer() *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI256)
	return newRenderer(lr, true)
}

func TestInline(t *testing.T) {
	r := New(io.Discard, false)
	parts := textdiff.Compare("kitten", "sitting", textdiff.Chars)
	assert.Equal(t, "[-k-]{+s+}itt[-e-]{+i+}n{+g+}", r.Inline(parts))
	assert.Equal(t, "", r.Inline(nil))
}

func TestInline_color(t *testing.T) {
	r := colorRenderer()
	got := r.Inline(textdiff.Compare("a\nb\n", "a\nc\n", textdiff.Lines))
	assert.Contains(t, got, "\x1b[")
	assert.True(t, strings.HasPrefix(got, "a\n"))
	assert.Equal(t, 3, strings.Count(got, "\n"), "line breaks must be kept")
}

func TestStats(t *testing.T) {
	r := New(io.Discard, false)
	assert.Equal(t, "+1 -2 =3", r.Stats(textdiff.Stats{Additions: 1, Deletions: 2, Unchanged: 3}))
}

func TestSideBySide(t *testing.T) {
	r := New(io.Discard, false)
	pad := func(s string) string { return s + strings.Repeat(" ", 10-len(s)) }

	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "changed",
			x:    "a\nb\nc",
			y:    "a\nx\nc",
			want: pad("a") + "   a\n" + pad("b") + " | x\n" + pad("c") + "   c\n",
		},
		{
			name: "deleted",
			x:    "a\nb\n",
			y:    "a\n",
			want: pad("a") + "   a\n" + pad("b") + " <\n",
		},
		{
			name: "inserted",
			x:    "",
			y:    "x\n",
			want: pad("") + " > x\n",
		},
		{
			name: "blank-lines",
			x:    "a\n\nb\n",
			y:    "x\n\ny\n",
			want: pad("a") + " | x\n" + pad("") + "  \n" + pad("b") + " | y\n",
		},
		{
			name: "blank-line-inserted",
			x:    "a\n",
			y:    "a\n\n",
			want: pad("a") + "   a\n" + pad("") + " >\n",
		},
		{
			name: "truncated",
			x:    "abcdefghijklmno\n",
			y:    "abcdefghijklmno\n",
			want: "abcdefghi…   abcdefghi…\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SideBySide(textdiff.Compare(tt.x, tt.y, textdiff.Lines), 23)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "SELECT 1", New(io.Discard, false).Highlight("SELECT 1", "sql"))

	r := colorRenderer()
	assert.Contains(t, r.Highlight("SELECT 1", "sql"), "\x1b[")
	assert.Contains(t, r.Highlight(`{"a":1}`, "json"), "\x1b[")
	assert.Equal(t, "plain", r.Highlight("plain", "no-such-language"))
}
