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

package myers

import (
	"math"
	"math/bits"
	"slices"

	"github.com/textkit-dev/textkit/internal/rvecs"
)

// maxTraceCost is the largest cost for which [Earliest] keeps the full trace of a backward search.
// The trace needs memory quadratic in the cost. Inputs with more differences fall back to
// bit-parallel LCS rows, which need time proportional to the product of the input sizes.
const maxTraceCost = 2048

// Earliest compares x and y and returns result vectors (see [Diff]) for a minimal edit script.
// Among all minimal edit scripts, it selects the one that matches the lexicographically smallest
// set of positions in x: every match is aligned as early as possible in x.
func Earliest[T comparable](x, y []T) (rx, ry []bool) {
	return earliestLimit(x, y, maxTraceCost)
}

func earliestLimit[T comparable](x, y []T, limit int) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	// A common prefix is always part of the earliest alignment. A common suffix isn't, an earlier
	// element of x might take its place.
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	if trivial(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	x0, y0, xidx, yidx, nids := reduce(x, y, smin, smax, tmin, tmax, rx, ry)
	e := earliest{x: x0, y: y0, xidx: xidx, yidx: yidx, rx: rx, ry: ry}
	e.solve(nids, limit)
	return rx, ry
}

// suffixLCS answers questions about the longest common subsequences of suffixes of x and y.
type suffixLCS interface {
	// atLeast reports whether x[s:] and y[t:] have a common subsequence of length r, for
	// s < len(x), t < len(y) and r > 0.
	atLeast(s, t, r int) bool
}

type earliest struct {
	x, y       []int
	xidx, yidx []int
	rx, ry     []bool
	occ        [][]int // Positions in y by ID
	suffix     suffixLCS
}

func (e *earliest) solve(nids, limit int) {
	e.occ = make([][]int, nids)
	for t, id := range e.y {
		e.occ[id] = append(e.occ[id], t)
	}

	var r int
	if tr, ok := newTrace(e.x, e.y, limit); ok {
		e.suffix = tr
		r = (len(e.x) + len(e.y) - tr.cost()) / 2
	} else {
		rows := newLCSRows(e.x, e.y, nids)
		e.suffix = rows
		r = rows.total()
	}

	// Select matches greedily: the next match is the one with the smallest position in x that
	// still leaves room for r-1 further matches. Of all positions in y that fit, the first one
	// leaves the most room.
	s, t := 0, 0
	for ; r > 0; r-- {
		s1, t1 := s, t
		if e.x[s] != e.y[t] {
			s1, t1 = e.next(s, t, r)
		}
		for ; s < s1; s++ {
			e.rx[e.xidx[s]] = true
		}
		for ; t < t1; t++ {
			e.ry[e.yidx[t]] = true
		}
		s++
		t++
	}
	for ; s < len(e.x); s++ {
		e.rx[e.xidx[s]] = true
	}
	for ; t < len(e.y); t++ {
		e.ry[e.yidx[t]] = true
	}
}

// next returns the earliest match (s1, t1) with s1 >= s and t1 >= t such that x[s1+1:] and
// y[t1+1:] have a common subsequence of length r-1.
func (e *earliest) next(s, t, r int) (s1, t1 int) {
	for s1 = s; e.atLeast(s1, t, r); s1++ {
		occ := e.occ[e.x[s1]]
		i, _ := slices.BinarySearch(occ, t)
		if i == len(occ) {
			continue
		}
		if t1 = occ[i]; e.atLeast(s1+1, t1+1, r-1) {
			return s1, t1
		}
	}
	panic("no common subsequence of the expected length")
}

func (e *earliest) atLeast(s, t, r int) bool {
	switch {
	case r <= 0:
		return true
	case s >= len(e.x) || t >= len(e.y):
		return false
	default:
		return e.suffix.atLeast(s, t, r)
	}
}

// unreached marks diagonals without a furthest reaching point.
const unreached = math.MaxInt32

// trace holds the furthest reaching points of a backward search from the end of x and y to the
// start. v[d][i] is the smallest s on diagonal k = s-t, k = n-m-d+2i, from which the end can be
// reached with cost d. Points further down a diagonal never need more edits, so the cost of the
// remaining script from (s, t) is at most d exactly if v[d][i] <= s.
type trace struct {
	n, m int
	v    [][]int32
}

// newTrace runs the backward search until it reaches the start of x and y. It gives up when the
// cost exceeds limit.
func newTrace(x, y []int, limit int) (*trace, bool) {
	n, m := len(x), len(y)
	tr := &trace{n: n, m: m}
	kend := n - m
	var prev []int32
	for d := 0; d <= limit; d++ {
		curr := make([]int32, d+1)
		done := false
		for i := range curr {
			curr[i] = unreached
			k := kend - d + 2*i
			if k < -m || k > n {
				continue
			}

			s := unreached
			if d == 0 {
				s = n
			} else {
				// Delete x[s-1], coming from diagonal k+1.
				if i < d && prev[i] != unreached && prev[i] > 0 {
					s = int(prev[i]) - 1
				}
				// Insert y[t-1], coming from diagonal k-1.
				if i > 0 && prev[i-1] != unreached {
					if s0 := int(prev[i-1]); s0-(k-1) > 0 && s0 < s {
						s = s0
					}
				}
				if s == unreached {
					continue
				}
			}

			t := s - k
			for s > 0 && t > 0 && x[s-1] == y[t-1] {
				s--
				t--
			}
			curr[i] = int32(s)
			if s == 0 && t == 0 {
				done = true
			}
		}
		tr.v = append(tr.v, curr)
		if done {
			return tr, true
		}
		prev = curr
	}
	return nil, false
}

// cost returns the cost of a minimal edit script.
func (tr *trace) cost() int { return len(tr.v) - 1 }

func (tr *trace) atLeast(s, t, r int) bool {
	// The suffixes have a common subsequence of length r iff the cost from (s, t) to the end is
	// at most d. The cost from any point on the search path never exceeds the total cost.
	d := (tr.n - s) + (tr.m - t) - 2*r
	if c := tr.cost(); d > c {
		d -= (d - c + 1) &^ 1
	}
	if d < 0 {
		return false
	}
	i := (s - t) - (tr.n - tr.m - d)
	if i < 0 || i > 2*d {
		return false
	}
	return int(tr.v[d][i/2]) <= s
}

// lcsRows computes LCS lengths for suffixes of x and y with the bit-parallel algorithm by Hyyrö.
// Row s is a bit vector over y in reverse order; the number of zero bits among the first j bits
// is the length of the LCS of x[s:] and the last j elements of y. Only every k-th row is stored,
// rows in between are recomputed one block at a time when they are queried.
type lcsRows struct {
	x     []int
	m     int
	peq   [][]uint64 // Match masks by ID
	k     int
	saved [][]uint64 // saved[j] is row j*k
	block [][]uint64 // Rows of the current block
	b     int        // Current block
}

func newLCSRows(x, y []int, nids int) *lcsRows {
	n, m := len(x), len(y)
	words := (m + 63) / 64
	l := &lcsRows{
		x:   x,
		m:   m,
		peq: make([][]uint64, nids),
		k:   max(1, int(math.Sqrt(float64(n)))),
		b:   -1,
	}
	for id := range l.peq {
		l.peq[id] = make([]uint64, words)
	}
	for t, id := range y {
		j := m - 1 - t
		l.peq[id][j/64] |= 1 << (j % 64)
	}

	l.saved = make([][]uint64, n/l.k+1)
	row := l.ones()
	for s := n; s >= 0; s-- {
		if s < n {
			l.step(row, row, x[s])
		}
		if s%l.k == 0 {
			l.saved[s/l.k] = slices.Clone(row)
		}
	}
	return l
}

func (l *lcsRows) ones() []uint64 {
	row := make([]uint64, (l.m+63)/64)
	for i := range row {
		row[i] = math.MaxUint64
	}
	return row
}

// step computes the row for one more element of x: V' = (V + (V & M)) | (V & ^M).
func (l *lcsRows) step(dst, src []uint64, id int) {
	p := l.peq[id]
	var carry uint64
	for i, v := range src {
		var sum uint64
		sum, carry = bits.Add64(v, v&p[i], carry)
		dst[i] = sum | v&^p[i]
	}
}

func (l *lcsRows) row(s int) []uint64 {
	b := s / l.k
	if b != l.b {
		lo, hi := b*l.k, min(b*l.k+l.k, len(l.x))
		var prev []uint64
		if hi == len(l.x) {
			prev = l.ones()
		} else {
			prev = l.saved[hi/l.k]
		}
		if l.block == nil {
			l.block = make([][]uint64, l.k)
		}
		for s := hi - 1; s >= lo; s-- {
			if l.block[s-lo] == nil {
				l.block[s-lo] = make([]uint64, len(prev))
			}
			l.step(l.block[s-lo], prev, l.x[s])
			prev = l.block[s-lo]
		}
		l.b = b
	}
	return l.block[s-b*l.k]
}

// zeros counts the zero bits among the first n bits of row.
func zeros(row []uint64, n int) int {
	cnt := 0
	full := n / 64
	for _, w := range row[:full] {
		cnt += 64 - bits.OnesCount64(w)
	}
	if rem := n % 64; rem != 0 {
		cnt += rem - bits.OnesCount64(row[full]&(1<<rem-1))
	}
	return cnt
}

func (l *lcsRows) total() int {
	return zeros(l.saved[0], l.m)
}

func (l *lcsRows) atLeast(s, t, r int) bool {
	return zeros(l.row(s), l.m-t) >= r
}
