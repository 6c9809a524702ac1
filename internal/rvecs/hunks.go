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

package rvecs

import (
	"iter"

	"github.com/textkit-dev/textkit/internal/config"
)

// Hunk describes a sequence of consecutive edits surrounded by up to cfg.Context matches.
type Hunk struct {
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
	Edits  int // Number of edits in this hunk, matches included.
}

// Hunks iterates over all hunks of an edit script. Hunks whose context would overlap are merged.
func Hunks(rx, ry []bool, cfg config.Config) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		context := cfg.Context
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0     // current position in x and y
		s0, t0 := -1, -1 // start of the open hunk, -1 if there is none
		d := 0           // edits in the open hunk
		run := 0         // consecutive matches since the last change
		for s < n || t < m {
			if rx[s] || ry[t] {
				run = 0
				if s0 < 0 {
					// Open a new hunk, reaching back for up to context matches.
					s0, t0 = max(0, s-context), max(0, t-context)
					d = s - s0
				}
				for s < n && rx[s] {
					s++
					d++
				}
				for t < m && ry[t] {
					t++
					d++
				}
			} else {
				for s < n && t < m && !rx[s] && !ry[t] {
					s++
					t++
					run++
					d++
				}
			}

			// Close the open hunk once the matches since the last change can't be shared with a
			// following hunk anymore or the input is exhausted.
			if s0 >= 0 && (run > 2*context || s == n && t == m) {
				trim := min(0, context-run)
				if !yield(Hunk{s0, s + trim, t0, t + trim, d + trim}) {
					return
				}
				s0, t0 = -1, -1
			}
		}
	}
}
