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
	"strings"
	"unicode"
)

// RemoveExtraSpaces collapses every whitespace run to a single space and trims both ends.
func RemoveExtraSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveSpaces drops all whitespace, line breaks included.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveLineBreaks joins all lines with a single space. Other whitespace runs are collapsed as
// well, see [RemoveExtraSpaces].
func RemoveLineBreaks(s string) string {
	return RemoveExtraSpaces(s)
}

// RemoveNumbers drops all ASCII digits.
func RemoveNumbers(s string) string {
	return strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return -1
		}
		return r
	}, s)
}

// RemoveSpecial keeps ASCII letters, digits and whitespace and drops everything else.
func RemoveSpecial(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', unicode.IsSpace(r):
			return r
		}
		return -1
	}, s)
}

// RemoveDuplicateLines keeps the first occurrence of every line.
func RemoveDuplicateLines(s string) string {
	seen := make(map[string]bool)
	var out []string
	for line := range strings.SplitSeq(s, "\n") {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RemoveEmptyLines drops lines that are empty or only contain whitespace.
func RemoveEmptyLines(s string) string {
	var out []string
	for line := range strings.SplitSeq(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Remove deletes every occurrence of text from s.
func Remove(s, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyPattern
	}
	return strings.ReplaceAll(s, text, ""), nil
}

// Replace replaces every non-overlapping occurrence of find in s by repl and returns the result
// and the number of replacements.
func Replace(s, find, repl string) (string, int, error) {
	if find == "" {
		return "", 0, ErrEmptyPattern
	}
	return strings.ReplaceAll(s, find, repl), strings.Count(s, find), nil
}
