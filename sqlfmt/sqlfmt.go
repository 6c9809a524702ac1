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

// Package sqlfmt re-indents SQL text with keyword heuristics.
//
// It is not a parser. Every keyword starts a new line and parentheses or BEGIN/END change the
// indentation, no matter if they are part of a string literal, a comment or the statement
// structure. Any input, SQL or not, produces some output.
package sqlfmt

import (
	"regexp"
	"strings"
)

// Keywords that start a new line. Multi-word keywords come first so that they win over any
// keyword they end with.
var keywords = []string{
	"LEFT JOIN", "RIGHT JOIN", "INNER JOIN", "OUTER JOIN", "GROUP BY", "ORDER BY",
	"SELECT", "FROM", "WHERE", "HAVING", "JOIN", "ON", "AS", "AND", "OR", "NOT", "IN", "EXISTS",
	"UNION", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP", "TABLE", "VIEW", "INDEX",
	"PROCEDURE", "FUNCTION", "TRIGGER", "IF", "ELSE", "CASE", "WHEN", "THEN", "END", "BEGIN",
}

var (
	keywordRE = regexp.MustCompile(`(?i)\b(` + strings.Join(keywords, "|") + `)\b`)
	beginRE   = regexp.MustCompile(`\bBEGIN\b`)
	endRE     = regexp.MustCompile(`\bEND\b`)
)

const indentUnit = "  "

// Line is one line of formatted SQL.
type Line struct {
	Indent int // Never negative.
	Text   string
}

func (l Line) String() string {
	return strings.Repeat(indentUnit, l.Indent) + l.Text
}

// Lines splits sql into indented lines.
//
// Whitespace runs are collapsed to a single space and a line break is inserted before every
// keyword, which is upper-cased. The indentation level starts at 0. It drops by one (but not
// below 0) on a line that contains END or a closing parenthesis and rises by one after a line
// that contains BEGIN or an opening parenthesis.
func Lines(sql string) []Line {
	collapsed := strings.Join(strings.Fields(sql), " ")
	marked := keywordRE.ReplaceAllStringFunc(collapsed, func(kw string) string {
		return "\n" + strings.ToUpper(kw)
	})

	var out []Line
	level := 0
	for text := range strings.SplitSeq(marked, "\n") {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		upper := strings.ToUpper(text)
		if endRE.MatchString(upper) || strings.Contains(text, ")") {
			level = max(0, level-1)
		}
		out = append(out, Line{Indent: level, Text: text})
		if beginRE.MatchString(upper) || strings.Contains(text, "(") {
			level++
		}
	}
	return out
}

// Format re-indents sql, see [Lines]. The result has no trailing newline.
func Format(sql string) string {
	lines := Lines(sql)
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.String())
	}
	return b.String()
}
