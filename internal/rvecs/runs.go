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

import "iter"

// Kind is the kind of a [Run].
type Kind int

const (
	Match Kind = iota
	Delete
	Insert
)

// Run describes a maximal sequence of edits of the same kind. For Delete runs T0 == T1 and for
// Insert runs S0 == S1.
type Run struct {
	Kind   Kind
	S0, S1 int // Start and end of the run in x.
	T0, T1 int // Start and end of the run in y.
}

// Runs iterates over the runs of an edit script in order. Within a change, the deletions come
// before the insertions.
func Runs(rx, ry []bool) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			if rx[s] {
				s0 := s
				for s < n && rx[s] {
					s++
				}
				if !yield(Run{Delete, s0, s, t, t}) {
					return
				}
			}
			if ry[t] {
				t0 := t
				for t < m && ry[t] {
					t++
				}
				if !yield(Run{Insert, s, s, t0, t}) {
					return
				}
			}
			if s < n && t < m && !rx[s] && !ry[t] {
				s0, t0 := s, t
				for s < n && t < m && !rx[s] && !ry[t] {
					s++
					t++
				}
				if !yield(Run{Match, s0, s, t0, t}) {
					return
				}
			}
		}
	}
}
