// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textdiff

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Stats summarizes a comparison.
type Stats struct {
	Additions int
	Deletions int
	Unchanged int
}

// ComputeStats counts the lines (for [Lines]) or characters (for [Chars] and [Words]) in parts.
// Only non-empty lines are counted. Characters are grapheme clusters.
func ComputeStats(parts []Part, g Granularity) Stats {
	var st Stats
	for _, p := range parts {
		var n int
		if g == Lines {
			n = countLines(p.Text)
		} else {
			n = countChars(p.Text)
		}
		switch {
		case p.Added():
			st.Additions += n
		case p.Removed():
			st.Deletions += n
		default:
			st.Unchanged += n
		}
	}
	return st
}

func countLines(s string) int {
	n := 0
	for line := range strings.SplitSeq(s, "\n") {
		if line != "" {
			n++
		}
	}
	return n
}

func countChars(s string) int {
	n := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		n++
	}
	return n
}
