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

import "math"

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for the forwards and backwards searches. v[v0+k] holds the s-coordinate of the
	// furthest reaching endpoint on diagonal k = s - t. The arrays are shared by all rectangles
	// because every rectangle lies inside the one set up by setup.
	vf, vb []int
	v0     int

	// Threshold in d for the TOO_EXPENSIVE heuristic.
	costLimit int

	// Optional mapping from s and t to indices into the result vectors. nil means identity.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

// rect is a sub-rectangle of the edit graph still waiting to be solved.
type rect struct {
	smin, smax int
	tmin, tmax int
	optimal    bool
}

// setup strips the common prefix and suffix of x and y and allocates the v-arrays for the
// remaining rectangle. It returns that rectangle.
func (m *myers[T]) setup(optimal bool) rect {
	smin, smax, tmin, tmax := bounds(m.x, m.y, m.eq)

	// k ranges from smin-tmax to smax-tmin. Two extra elements hold the borders.
	kmin, kmax := smin-tmax, smax-tmin
	vlen := kmax - kmin + 3
	buf := make([]int, 2*vlen)
	m.vf, m.vb = buf[:vlen], buf[vlen:]
	m.v0 = 1 - kmin

	// Approximate square root of the number of diagonals, bounded below by minCostLimit.
	costLimit := 1
	for i := kmax - kmin; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)

	return rect{smin, smax, tmin, tmax, optimal}
}

// solve marks all deletions and insertions in the result vectors.
func (m *myers[T]) solve(optimal bool) {
	r := m.setup(optimal)
	if r.smin == r.smax && r.tmin == r.tmax {
		return
	}

	stack := []rect{r}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Sub-rectangles produced by split usually start and end with a mismatch, but the
		// heuristic split doesn't guarantee it.
		for r.smin < r.smax && r.tmin < r.tmax && m.eq(m.x[r.smin], m.y[r.tmin]) {
			r.smin++
			r.tmin++
		}
		for r.smax > r.smin && r.tmax > r.tmin && m.eq(m.x[r.smax-1], m.y[r.tmax-1]) {
			r.smax--
			r.tmax--
		}

		switch {
		case r.smin == r.smax:
			for t := r.tmin; t < r.tmax; t++ {
				m.insert(t)
			}
		case r.tmin == r.tmax:
			for s := r.smin; s < r.smax; s++ {
				m.delete(s)
			}
		default:
			// split divides the rectangle into three parts:
			//
			//   (1) a possibly empty rectangle from (smin, tmin) to (s0, t0)
			//   (2) a possibly empty run of matches from (s0, t0) to (s1, t1)
			//   (3) a possibly empty rectangle from (s1, t1) to (smax, tmax)
			//
			// (3) is pushed first so that (1) is solved next.
			s0, s1, t0, t1, opt0, opt1 := m.split(r)
			stack = append(stack,
				rect{s1, r.smax, t1, r.tmax, opt1},
				rect{r.smin, s0, r.tmin, t0, opt0},
			)
		}
	}
}

func (m *myers[T]) delete(s int) {
	if m.xidx != nil {
		s = m.xidx[s]
	}
	m.rx[s] = true
}

func (m *myers[T]) insert(t int) {
	if m.yidx != nil {
		t = m.yidx[t]
	}
	m.ry[t] = true
}

// split finds the endpoints of a possibly empty run of matches in the middle of an optimal path
// through r.
//
// r must not start or end with a match and at least one side must be non-empty.
func (m *myers[T]) split(r rect) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	smin, smax, tmin, tmax := r.smin, r.smax, r.tmin, r.tmax
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	kmin, kmax := smin-tmax, smax-tmin

	// Diagonals are numbered consistently for both directions, the searches are centered on
	// different diagonals instead. That way no conversion is needed to check for an overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// A d-path ends on a diagonal with the parity of d. The forward search therefore meets the
	// backward one in the forward pass if the difference in length is odd and in the backward
	// pass otherwise.
	odd := ((smax-smin)-(tmax-tmin))%2 != 0

	// There is no 0-path because r starts with a mismatch.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		// Grow the range of diagonals by one in each direction unless that leaves the grid. In
		// that case, shrink it by one to keep the parity. A border element outside the range makes
		// the edges of the grid look like any other diagonal in the loop below.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := v0 + k

			// Extend the furthest reaching (d-1)-path of a neighboring diagonal. On a tie, the
			// deletion wins.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true, true
			}
		}

		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := v0 + k

			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s1, t1 := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, s1, t, t1, true, true
			}
		}

		if !r.optimal && d >= m.costLimit {
			return m.tooExpensive(r, fmin, fmax, bmin, bmax)
		}
	}
}

// tooExpensive picks a split point from the current state of the searches: the forward d-path
// that maximizes s+t or the backward d-path that minimizes s+t, whichever got further. The side
// of the split that was derived from the chosen path is solved optimally, the other side isn't.
func (m *myers[T]) tooExpensive(r rect, fmin, fmax, bmin, bmax int) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	smin, smax, tmin, tmax := r.smin, r.smax, r.tmin, r.tmax
	vf, vb := m.vf, m.vb
	v0 := m.v0

	fbest, fbestk := math.MinInt, 0
	for k := fmin; k <= fmax; k += 2 {
		s := vf[v0+k]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
			fbest, fbestk = s+t, k
		}
	}

	bbest, bbestk := math.MaxInt, 0
	for k := bmin; k <= bmax; k += 2 {
		s := vb[v0+k]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
			bbest, bbestk = s+t, k
		}
	}

	if fbest != math.MinInt && (bbest == math.MaxInt || (smax+tmax)-bbest < fbest-(smin+tmin)) {
		k := fbestk
		s := vf[v0+k]
		t := s - k

		// Repeat the decision of the forward search to find the diagonal the path came from. The
		// step from there is followed by the run of matches that ends in (s, t).
		pk := k - 1
		if vf[v0+k-1] < vf[v0+k+1] {
			pk = k + 1
		}
		ps := vf[v0+pk]
		pt := ps - pk
		n := min(s-ps, t-pt)
		return s - n, s, t - n, t, true, false
	}

	if bbest == math.MaxInt {
		panic("no split point found")
	}

	k := bbestk
	s := vb[v0+k]
	t := s - k
	pk := k + 1
	if vb[v0+k-1] < vb[v0+k+1] {
		pk = k - 1
	}
	ps := vb[v0+pk]
	pt := ps - pk
	n := min(ps-s, pt-t)
	return s, s + n, t, t + n, false, true
}
