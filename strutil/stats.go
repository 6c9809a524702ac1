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

package strutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// TextStats are the statistics of a text.
type TextStats struct {
	Chars         int // Grapheme clusters.
	CharsNoSpaces int // Grapheme clusters that are not whitespace.
	Words         int
	Lines         int
	Sentences     int
	Paragraphs    int
}

var (
	sentenceEnd  = regexp.MustCompile(`[.!?]+`)
	paragraphSep = regexp.MustCompile(`\n\n+`)
)

// Stats computes the statistics of s.
//
// Words are separated by whitespace. Lines are separated by "\n"; the empty text has no lines.
// Sentences end with a run of '.', '!' or '?'; paragraphs end with a blank line. Sentences and
// paragraphs that only contain whitespace are not counted.
func Stats(s string) TextStats {
	var st TextStats
	g := graphemes.FromString(s)
	for g.Next() {
		st.Chars++
		if strings.IndexFunc(g.Value(), func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			st.CharsNoSpaces++
		}
	}
	st.Words = len(strings.Fields(s))
	if s != "" {
		st.Lines = strings.Count(s, "\n") + 1
	}
	st.Sentences = countNonBlank(sentenceEnd.Split(s, -1))
	st.Paragraphs = countNonBlank(paragraphSep.Split(s, -1))
	return st
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}
