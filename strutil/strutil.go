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

// Package strutil contains text statistics and simple whole-text transformations: case
// conversion, removal of characters or lines, reordering, and extraction of emails, URLs and
// numbers.
//
// Line based functions split on "\n" and join with "\n"; a trailing newline yields an empty last
// line.
package strutil

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

// ErrEmptyPattern is returned if the text to find or remove is empty.
var ErrEmptyPattern = errors.New("strutil: empty pattern")

// Func is a transformation without parameters.
type Func func(string) string

var funcs = map[string]Func{
	"upper":                  Upper,
	"lower":                  Lower,
	"title":                  Title,
	"sentence":               Sentence,
	"camel":                  Camel,
	"snake":                  Snake,
	"kebab":                  Kebab,
	"toggle":                 Toggle,
	"remove-extra-spaces":    RemoveExtraSpaces,
	"remove-spaces":          RemoveSpaces,
	"remove-line-breaks":     RemoveLineBreaks,
	"remove-numbers":         RemoveNumbers,
	"remove-special":         RemoveSpecial,
	"remove-duplicate-lines": RemoveDuplicateLines,
	"remove-empty-lines":     RemoveEmptyLines,
	"reverse":                Reverse,
	"reverse-words":          ReverseWords,
	"reverse-lines":          ReverseLines,
	"sort":                   SortLines,
	"sort-desc":              SortLinesDesc,
	"trim-lines":             TrimLines,
	"number-lines":           NumberLines,
	"extract-emails":         joinLines(ExtractEmails),
	"extract-urls":           joinLines(ExtractURLs),
	"extract-numbers":        joinLines(ExtractNumbers),
}

func joinLines(f func(string) []string) Func {
	return func(s string) string {
		return strings.Join(f(s), "\n")
	}
}

// Lookup returns the transformation with the given name.
func Lookup(name string) (Func, bool) {
	f, ok := funcs[name]
	return f, ok
}

// Names returns the names of all transformations known to [Lookup] in sorted order.
func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// replaceSubmatchFunc replaces all matches of re in s by the result of repl, which is called with
// the submatches of each match (index 0 is the whole match).
func replaceSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
