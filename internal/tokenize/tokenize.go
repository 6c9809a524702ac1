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

// Package tokenize splits text into the tokens compared by textdiff. All functions return
// substrings of their input and the concatenation of the tokens is always the input itself.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Chars splits s into grapheme clusters. If mergeSpace is set, consecutive whitespace clusters
// form a single token.
func Chars(s string, mergeSpace bool) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	start, prevSpace := -1, false
	iter := graphemes.FromString(s)
	for iter.Next() {
		g := iter.Value()
		space := IsSpace(g)
		if mergeSpace && space && prevSpace {
			// Extend the previous whitespace token.
			out[len(out)-1] = s[start:iter.End()]
			continue
		}
		out = append(out, g)
		start, prevSpace = iter.Start(), space
	}
	return out
}

// Words splits s into alternating runs of whitespace and non-whitespace characters.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	first, _ := utf8.DecodeRuneInString(s)
	inSpace := unicode.IsSpace(first)
	for i, r := range s {
		if space := unicode.IsSpace(r); space != inSpace {
			out = append(out, s[start:i])
			start, inSpace = i, space
		}
	}
	return append(out, s[start:])
}

// Lines splits s after every '\n'. The last line has no trailing newline if s doesn't end with
// one.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsSpace reports whether s is non-empty and consists of whitespace only.
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// SpaceKey returns the comparison key of a character or word token when differences in
// whitespace are ignored: whitespace tokens compare equal to each other.
func SpaceKey(tok string) string {
	if IsSpace(tok) {
		return " "
	}
	return tok
}

// LineKey returns the comparison key of a line when differences in whitespace are ignored:
// leading and trailing whitespace (the line break included) is dropped and inner whitespace runs
// are collapsed to a single space.
func LineKey(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
