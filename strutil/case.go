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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper converts s to upper case with the full Unicode mapping, "ß" becomes "SS".
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower converts s to lower case.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

var titleWord = regexp.MustCompile(`\w\S*`)

// Title upper-cases the first letter of every word and lower-cases the rest. A word starts with
// an ASCII letter, digit or underscore and runs up to the next whitespace.
func Title(s string) string {
	lower := cases.Lower(language.Und)
	return titleWord.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + lower.String(w[1:])
	})
}

var sentenceStart = regexp.MustCompile(`^\s*\w|[.!?]\s*\w`)

// Sentence lower-cases s and upper-cases the first word character of the text and the first
// word character after each '.', '!' or '?'.
func Sentence(s string) string {
	return sentenceStart.ReplaceAllStringFunc(Lower(s), strings.ToUpper)
}

var camelSep = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)

// Camel lower-cases s, drops every run of characters other than ASCII letters and digits and
// upper-cases the character following it.
func Camel(s string) string {
	return replaceSubmatchFunc(camelSep, Lower(s), func(groups []string) string {
		return strings.ToUpper(groups[1])
	})
}

var (
	spaceRun = regexp.MustCompile(`\s+`)
	lowerUp  = regexp.MustCompile(`([a-z])([A-Z])`)
	notSnake = regexp.MustCompile(`[^a-z0-9_]`)
	notKebab = regexp.MustCompile(`[^a-z0-9-]`)
)

// Snake joins the words of s with underscores and splits lowerUpper pairs. Only lower case ASCII
// letters, digits and underscores remain.
func Snake(s string) string {
	return delimit(s, "_", notSnake)
}

// Kebab is like [Snake] but uses hyphens.
func Kebab(s string) string {
	return delimit(s, "-", notKebab)
}

func delimit(s, sep string, drop *regexp.Regexp) string {
	s = spaceRun.ReplaceAllString(s, sep)
	s = lowerUp.ReplaceAllString(s, "${1}"+sep+"${2}")
	return drop.ReplaceAllString(Lower(s), "")
}

// Toggle swaps the case of every letter.
func Toggle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c := string(r)
		if up := strings.ToUpper(c); up == c {
			b.WriteString(strings.ToLower(c))
		} else {
			b.WriteString(up)
		}
	}
	return b.String()
}
