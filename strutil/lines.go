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
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Reverse reverses s by grapheme cluster, so combining marks and emoji sequences stay intact.
func Reverse(s string) string {
	var clusters []string
	g := graphemes.FromString(s)
	for g.Next() {
		clusters = append(clusters, g.Value())
	}
	slices.Reverse(clusters)
	return strings.Join(clusters, "")
}

// ReverseWords reverses the order of the space separated fields of s. Runs of spaces produce
// empty fields, which are reversed as well.
func ReverseWords(s string) string {
	return reverseFields(s, " ")
}

// ReverseLines reverses the order of the lines.
func ReverseLines(s string) string {
	return reverseFields(s, "\n")
}

func reverseFields(s, sep string) string {
	fields := strings.Split(s, sep)
	slices.Reverse(fields)
	return strings.Join(fields, sep)
}

// SortLines sorts the lines of s in ascending order using the Unicode collation algorithm with
// the root locale, so "Émile" sorts between "Eagle" and "zebra".
func SortLines(s string) string {
	return sortLines(s, false)
}

// SortLinesDesc is like [SortLines] but sorts in descending order.
func SortLinesDesc(s string) string {
	return sortLines(s, true)
}

func sortLines(s string, desc bool) string {
	c := collate.New(language.Und)
	lines := strings.Split(s, "\n")
	slices.SortStableFunc(lines, func(a, b string) int {
		if desc {
			a, b = b, a
		}
		return c.CompareString(a, b)
	})
	return strings.Join(lines, "\n")
}

// Shuffle returns the lines of s in random order.
func Shuffle(s string, rng *rand.Rand) string {
	lines := strings.Split(s, "\n")
	rng.Shuffle(len(lines), func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})
	return strings.Join(lines, "\n")
}

// TrimLines removes leading and trailing whitespace from every line.
func TrimLines(s string) string {
	return mapLines(s, strings.TrimSpace)
}

// NumberLines prefixes every line with its 1-based number, "1. ".
func NumberLines(s string) string {
	n := 0
	return mapLines(s, func(line string) string {
		n++
		return fmt.Sprintf("%d. %s", n, line)
	})
}

// AddPrefix prepends prefix to every line.
func AddPrefix(s, prefix string) string {
	return mapLines(s, func(line string) string { return prefix + line })
}

// AddSuffix appends suffix to every line.
func AddSuffix(s, suffix string) string {
	return mapLines(s, func(line string) string { return line + suffix })
}

func mapLines(s string, f func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = f(line)
	}
	return strings.Join(lines, "\n")
}
