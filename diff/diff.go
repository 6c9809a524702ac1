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


package diff

import (
	"github.com/textkit-dev/textkit/internal/config"
	"github.com/textkit-dev/textkit/internal/myers"
	"github.com/textkit-dev/textkit/internal/rvecs"
)

// Op is the kind of an edit.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // The element is in x and y
	Delete           // The element is only in x
	Insert           // The element is only in y
)

// Edit is one step of an edit script. A Match carries the element of both inputs, a Delete only
// X and an Insert only Y; the other field is left at its zero value.
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk is a block of changes together with the matches around it. Its edits turn x[PosX:EndX]
// into y[PosY:EndY].
type Hunk[T any] struct {
	PosX, EndX int
	PosY, EndY int
	Edits      []Edit[T]
}

// Run is a maximal sequence of edits with the same Op. A Match run holds the matching parts of
// both inputs, a Delete run only X and an Insert run only Y. X and Y share memory with the inputs.
type Run[T any] struct {
	Op   Op
	X, Y []T
}

// Edits returns the edit script that turns x into y, one edit per element of x and y. Within a
// change, deletions come before insertions. Inputs that are both empty give no edits.
//
// The following options are supported: [Optimal], [Earliest]
func Edits[T comparable](x, y []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal|config.Earliest)
	rx, ry := myers.Diff(x, y, cfg)
	return edits(x, y, rx, ry)
}

// EditsFunc is like [Edits] for elements that are compared with eq. It is generally slower than
// Edits for inputs with many changes.
//
// The following option is supported: [Optimal]
func EditsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := myers.DiffFunc(x, y, eq, cfg)
	return edits(x, y, rx, ry)
}

// Hunks returns the changes between x and y grouped into hunks, like the blocks of a unified diff.
// Changes that are separated by no more than twice the context share a hunk. Identical inputs
// give no hunks.
//
// The following options are supported: [Context], [Optimal], [Earliest]
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal|config.Earliest)
	rx, ry := myers.Diff(x, y, cfg)
	return hunks(x, y, rx, ry, cfg)
}

// HunksFunc is like [Hunks] for elements that are compared with eq. It is generally slower than
// Hunks for inputs with many changes.
//
// The following options are supported: [Context], [Optimal]
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context|config.Optimal)
	rx, ry := myers.DiffFunc(x, y, eq, cfg)
	return hunks(x, y, rx, ry, cfg)
}

// Runs returns the edit script that turns x into y with consecutive edits of the same kind
// grouped together. Identical non-empty inputs give a single Match run.
//
// The following options are supported: [Optimal], [Earliest]
func Runs[T comparable](x, y []T, opts ...Option) []Run[T] {
	cfg := config.FromOptions(opts, config.Optimal|config.Earliest)
	rx, ry := myers.Diff(x, y, cfg)
	return runs(x, y, rx, ry)
}

// RunsFunc is like [Runs] for elements that are compared with eq. The X and Y of a Match run are
// equal according to eq, but not necessarily identical.
//
// The following option is supported: [Optimal]
func RunsFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Run[T] {
	cfg := config.FromOptions(opts, config.Optimal)
	rx, ry := myers.DiffFunc(x, y, eq, cfg)
	return runs(x, y, rx, ry)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Every deleted or inserted element is one edit, every matching pair another one.
	n := len(y)
	for _, del := range rx[:len(x)] {
		if del {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return appendEdits(make([]Edit[T], 0, n), x, y, rx, ry, 0, len(x), 0, len(y))
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	var out []Hunk[T]
	for h := range rvecs.Hunks(rx, ry, cfg) {
		out = append(out, Hunk[T]{
			PosX:  h.S0,
			EndX:  h.S1,
			PosY:  h.T0,
			EndY:  h.T1,
			Edits: appendEdits(make([]Edit[T], 0, h.Edits), x, y, rx, ry, h.S0, h.S1, h.T0, h.T1),
		})
	}
	return out
}

// appendEdits appends the edits for x[s:s1] and y[t:t1] to out.
func appendEdits[T any](out []Edit[T], x, y []T, rx, ry []bool, s, s1, t, t1 int) []Edit[T] {
	for s < s1 || t < t1 {
		switch {
		case s < s1 && rx[s]:
			out = append(out, Edit[T]{Op: Delete, X: x[s]})
			s++
		case t < t1 && ry[t]:
			out = append(out, Edit[T]{Op: Insert, Y: y[t]})
			t++
		default:
			out = append(out, Edit[T]{Op: Match, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	return out
}

func runs[T any](x, y []T, rx, ry []bool) []Run[T] {
	var out []Run[T]
	for r := range rvecs.Runs(rx, ry) {
		run := Run[T]{Op: Match}
		switch r.Kind {
		case rvecs.Delete:
			run.Op = Delete
		case rvecs.Insert:
			run.Op = Insert
		}
		if run.Op != Insert {
			run.X = x[r.S0:r.S1:r.S1]
		}
		if run.Op != Delete {
			run.Y = y[r.T0:r.T1:r.T1]
		}
		out = append(out, run)
	}
	return out
}
