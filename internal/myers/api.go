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
	"github.com/textkit-dev/textkit/internal/config"
	"github.com/textkit-dev/textkit/internal/rvecs"
)

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other as result vectors: rx[s] is set if x[s] is deleted and ry[t] is set if y[t] is
// inserted. Both vectors carry one extra unset element at the end.
//
// With [config.ModeEarliest], Diff returns the result of [Earliest].
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool) {
	if cfg.Mode == config.ModeEarliest {
		return Earliest(x, y)
	}
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := bounds(x, y, func(a, b T) bool { return a == b })
	if trivial(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	x0, y0, xidx, yidx, _ := reduce(x, y, smin, smax, tmin, tmax, rx, ry)

	m := myers[int]{
		x:    x0,
		y:    y0,
		eq:   func(a, b int) bool { return a == b },
		xidx: xidx,
		yidx: yidx,
		rx:   rx,
		ry:   ry,
	}
	m.solve(cfg.Mode == config.ModeMinimal)
	return rx, ry
}

// DiffFunc compares the contents of x and y using eq and returns the changes necessary to convert
// from one to the other. See [Diff] for a description of the result.
//
// Note that this function has generally worse performance than [Diff] for diffs with many changes.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := bounds(x, y, eq)
	if trivial(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	m := myers[T]{
		x:  x,
		y:  y,
		eq: eq,
		rx: rx,
		ry: ry,
	}
	m.solve(cfg.Mode == config.ModeMinimal)
	return rx, ry
}

// reduce shrinks the problem before running an algorithm on it: elements that only appear in x
// are always deletions and elements that only appear in y are always insertions. Both are marked
// in the result vectors right away. The remaining elements of x[smin:smax] and y[tmin:tmax] are
// replaced by dense integer IDs in [0, nids), which are cheaper to compare than T. xidx and yidx
// map positions in x0 and y0 back to x and y.
func reduce[T comparable](x, y []T, smin, smax, tmin, tmax int, rx, ry []bool) (x0, y0, xidx, yidx []int, nids int) {
	ids := make(map[T]int, smax-smin)
	xids := make([]int, 0, smax-smin)
	for s := smin; s < smax; s++ {
		id, ok := ids[x[s]]
		if !ok {
			id = len(ids)
			ids[x[s]] = id
		}
		xids = append(xids, id)
	}

	// Shared IDs are renumbered so that they are dense as well.
	shared := make([]int, len(ids))
	for i := range shared {
		shared[i] = -1
	}
	y0 = make([]int, 0, tmax-tmin)
	yidx = make([]int, 0, tmax-tmin)
	for t := tmin; t < tmax; t++ {
		id, ok := ids[y[t]]
		if !ok {
			ry[t] = true
			continue
		}
		if shared[id] < 0 {
			shared[id] = nids
			nids++
		}
		y0 = append(y0, shared[id])
		yidx = append(yidx, t)
	}
	x0 = xids[:0]
	xidx = make([]int, 0, len(xids))
	for i, id := range xids {
		if shared[id] < 0 {
			rx[smin+i] = true
			continue
		}
		x0 = append(x0, shared[id])
		xidx = append(xidx, smin+i)
	}
	return x0, y0, xidx, yidx, nids
}

// bounds returns the upper and lower bounds for the changed portion of the inputs.
func bounds[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	return
}

// trivial marks the result vectors if one of the changed portions is empty and reports whether
// it did so.
func trivial(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}
