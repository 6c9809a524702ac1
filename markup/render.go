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

package markup

import (
	"regexp"
	"strings"
)

const indentUnit = "  "

var blankLines = regexp.MustCompile(`\n\s*\n`)

// Render prints nodes with one tag, text or comment per line, indented by two spaces per level.
//
//   - Text is trimmed and omitted if empty.
//   - A comment prints as <!-- data -->.
//   - An element without element children and without non-whitespace text prints as a single
//     opening tag.
//   - Any other element prints as an opening tag, its children one level deeper and a closing
//     tag.
//
// Attributes are printed in order as name="value". The output contains no blank lines and ends
// with a newline unless it is empty.
func Render(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		render(&b, n, 0)
	}
	return blankLines.ReplaceAllString(b.String(), "\n")
}

func render(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	switch n := n.(type) {
	case *Text:
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(indent)
			b.WriteString(text)
			b.WriteByte('\n')
		}
	case *Comment:
		b.WriteString(indent)
		b.WriteString("<!-- ")
		b.WriteString(n.Data)
		b.WriteString(" -->\n")
	case *Element:
		b.WriteString(indent)
		writeOpenTag(b, n)
		if !n.hasElementChild() && strings.TrimSpace(n.textContent()) == "" {
			return
		}
		for _, c := range n.Children {
			render(b, c, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteString(">\n")
	}
}

func writeOpenTag(b *strings.Builder, e *Element) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteString(">\n")
}
