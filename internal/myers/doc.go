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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation uses the linear space variant described in section 4.2 of the paper. The
// divide and conquer step of that variant is driven by an explicit stack of sub-rectangles of the
// edit graph instead of recursive calls, so very long inputs never translate into deep call
// stacks. Optionally, the TOO_EXPENSIVE heuristic by Paul Eggert limits the time spent on large
// inputs with many differences.
//
// # Edit graph
//
// For x = "ABCABBA" and y = "CBABAC", all possible edits that transform x into y form the grid
// below. Moving right deletes an element of x, moving down inserts an element of y, and a
// diagonal edge exists wherever x[s] == y[t]:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A minimal edit script is a path from the top left to the bottom right with the fewest
// horizontal and vertical edges. We use s and t for the horizontal and vertical coordinates and k
// = s - t to number diagonals. A d-path is a path with exactly d non-diagonal edges.
//
// Lemma 1: A d-path ends on a diagonal k in {-d, -d+2, ..., d-2, d}.
//
// Lemma 2: A furthest reaching d-path on diagonal k is a furthest reaching (d-1)-path on diagonal
// k-1 followed by a horizontal edge, or one on diagonal k+1 followed by a vertical edge, in both
// cases followed by the longest possible run of diagonal edges.
//
// Lemma 3: There is a d-path from (0,0) to (N,M) if and only if there is a ⌈d/2⌉-path from (0,0)
// and a ⌊d/2⌋-path from (N,M) backwards that overlap on the same diagonal.
//
// Searching forwards and backwards at the same time finds the middle of an optimal path with O(N+M)
// memory. The middle splits the grid into two smaller rectangles that are solved the same way.
//
// # Tie breaking
//
// When the furthest reaching paths on diagonals k-1 and k+1 reach equally far, both searches take
// the deletion. Matches are therefore aligned as early as possible in x, which is the conventional
// output of mainstream diff tools.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// # Heuristics
//
// TOO_EXPENSIVE: If the search for the middle of an optimal path exceeds a cost limit (in terms of
// d), it is aborted and the furthest reaching d-path that maximizes s + t is used as a split
// point. The heuristic reduces the time complexity to O(N^1.5 log N) at the cost of suboptimal
// diffs and is never used in minimal mode.
package myers
