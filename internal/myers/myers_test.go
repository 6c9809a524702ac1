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
	"crypto/sha256"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/textkit-dev/textkit/internal/config"
)

var minimal = config.Config{Mode: config.ModeMinimal}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "both-empty",
			want: "",
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DIMDMMDMI",
		},
		{
			name: "replace-middle",
			x:    []string{"a", "b", "c"},
			y:    []string{"a", "x", "c"},
			want: "MDIM",
		},
		{
			name: "insert-middle",
			x:    []string{"a", "c"},
			y:    []string{"a", "b", "c"},
			want: "MIM",
		},
		{
			name: "delete-prefers-early-match",
			x:    strings.Split("aXa", ""),
			y:    strings.Split("a", ""),
			want: "MDD",
		},
		{
			name: "unique-elements",
			x:    []string{"a", "only-x", "b", "c"},
			y:    []string{"b", "only-y", "a", "c"},
			want: "IIMDDM",
		},
		{
			name: "long-run-of-matches",
			x:    strings.Split("x"+strings.Repeat("a", 64)+"y", ""),
			y:    strings.Split("w"+strings.Repeat("a", 64)+"it", ""),
			want: "DI" + strings.Repeat("M", 64) + "DII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, cfg := range []config.Config{config.Default, minimal} {
				rx, ry := Diff(tt.x, tt.y, cfg)
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
				}

				rx, ry = DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }, cfg)
				got = render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
				}
			}
		})
	}
}

// TestDiffMinimal checks that random inputs produce a valid edit script whose length matches the
// one derived from a dynamic programming LCS.
func TestDiffMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		x := randomInput(rng, rng.IntN(40), 1+rng.IntN(6))
		y := randomInput(rng, rng.IntN(40), 1+rng.IntN(6))

		want := len(x) + len(y) - 2*lcs(x, y)
		check := func(name string, rx, ry []bool) {
			t.Helper()
			if got := apply(x, y, rx, ry); !slices.Equal(got, y) {
				t.Fatalf("%s: iteration %d: applying edits to %q gives %q, want %q", name, i, x, got, y)
			}
			if got := countEdits(rx, ry); got != want {
				t.Errorf("%s: iteration %d: %q -> %q has %d edits, want %d", name, i, x, y, got, want)
			}
		}

		rx, ry := Diff(x, y, minimal)
		check("Diff", rx, ry)
		rx, ry = DiffFunc(x, y, func(a, b byte) bool { return a == b }, minimal)
		check("DiffFunc", rx, ry)
	}
}

func TestEarliest(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"empty", "", "", ""},
		{"identical", "abc", "abc", "MMM"},
		{"match-moves-left", "aab", "ba", "IMDD"},
		{"suffix-not-stripped", "aa", "a", "MD"},
		{"unique-elements", "aXbc", "bYac", "IIMDDM"},
		{"ABCABBA_to_CBABAC", "ABCABBA", "CBABAC", "DIMDMMDMI"},
		{"earlier-than-suffix", "abbcbbbcaab", "abab", "MMDDDDDDMDM"},
		{"swap", "ba", "ab", "IMD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := []byte(tt.x), []byte(tt.y)
			for _, limit := range []int{maxTraceCost, -1} {
				rx, ry := earliestLimit(x, y, limit)
				if diff := cmp.Diff(tt.want, render(rx, ry, len(x), len(y))); diff != "" {
					t.Errorf("earliestLimit(%q, %q, %d) differs [-want,+got]:\n%s", x, y, limit, diff)
				}
			}
		})
	}
}

// TestEarliestRandom compares the matched positions against a dynamic programming solution that
// picks the lexicographically smallest positions in x among all longest common subsequences.
func TestEarliestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := range 2000 {
		x := randomInput(rng, rng.IntN(40), 1+rng.IntN(4))
		y := randomInput(rng, rng.IntN(40), 1+rng.IntN(4))
		want := earliestMatches(x, y)

		// A limit of -1 forces the bit-parallel rows, 3 lets larger inputs switch midway.
		for _, limit := range []int{maxTraceCost, 3, -1} {
			rx, ry := earliestLimit(x, y, limit)
			if got := apply(x, y, rx, ry); !slices.Equal(got, y) {
				t.Fatalf("iteration %d, limit %d: applying edits to %q gives %q, want %q", i, limit, x, got, y)
			}
			var got []int
			for s := range x {
				if !rx[s] {
					got = append(got, s)
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("iteration %d, limit %d: matched positions for %q -> %q differ [-want,+got]:\n%s", i, limit, x, y, diff)
			}
		}
	}
}

func TestEarliest_large(t *testing.T) {
	// Enough differences to exceed maxTraceCost, the result must still be minimal.
	rng := rand.New(rand.NewPCG(23, 29))
	x := randomInput(rng, 6000, 3)
	y := randomInput(rng, 5000, 3)
	rx, ry := Earliest(x, y)
	if got := apply(x, y, rx, ry); !slices.Equal(got, y) {
		t.Fatal("applying edits doesn't reproduce y")
	}
	if got, want := countEdits(rx, ry), len(x)+len(y)-2*lcs(x, y); got != want {
		t.Errorf("Earliest(...) has %d edits, want %d", got, want)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		inX, inY     string
		wantX, wantY string
	}{
		// Ranges are written as brackets inside the inputs. The input defines the rectangle to
		// split, the output the two rectangles left and right of the middle run of matches.
		//
		//     inX          inY          wantX         wantY
		{"[ABCABBA]", "[CBABAC]", "[ABC]AB[BA]", "[CB]AB[AC]"},
		{"[ABC]ABBA", "[CB]ABAC", "[A]B[C]ABBA", "[C]B[]ABAC"},
		{"[A]BCABBA", "[C]BABAC", "[][A]BCABBA", "[C][]BABAC"},

		{"[axxxxxxxxb]", "[cxxxxxxxxd]", "[a]xxxxxxxx[b]", "[c]xxxxxxxx[d]"},
		{"[axxxyyxxxb]", "[cxxxzzxxxd]", "[axxx][yyxxxb]", "[cxxxzz][xxxd]"},

		{"abcdefg[0]", "abcdefg[]", "abcdefg[0][]", "abcdefg[][]"},
		{"[0]abcdefg", "[]abcdefg", "[0][]abcdefg", "[][]abcdefg"},

		// Inputs of different sizes make the searches run into the edges of the grid.
		{"[abcdefghijklmnoparstuvzxyz]", "[x]", "[abcdefghijklm][noparstuvzxyz]", "[][x]"},
		{"[x]", "[abcdefghijklmnoparstuvzxyz]", "[][x]", "[abcdefghijklm][noparstuvzxyz]"},
		{"[]", "[abcdefghijklmnoparstuvzxyz]", "[][]", "[abcdefghijklm][noparstuvzxyz]"},
	}

	for _, tt := range tests {
		x, smin, smax := parseRange(tt.inX)
		y, tmin, tmax := parseRange(tt.inY)

		m := myers[byte]{x: []byte(x), y: []byte(y), eq: func(a, b byte) bool { return a == b }}
		full := m.setup(true)
		if smin < full.smin || smax > full.smax || tmin < full.tmin || tmax > full.tmax {
			t.Fatalf("invalid test case %v, %v: range outside of %+v", tt.inX, tt.inY, full)
		}
		s0, s1, t0, t1, _, _ := m.split(rect{smin, smax, tmin, tmax, true})

		gotX := renderRanges(x, smin, s0, s1, smax)
		gotY := renderRanges(y, tmin, t0, t1, tmax)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("splitting %v, %v -> %v, %v, want %v, %v", tt.inX, tt.inY, gotX, gotY, tt.wantX, tt.wantY)
		}
		if x[s0:s1] != y[t0:t1] {
			t.Errorf("splitting %v, %v resulted in inconsistent middle: %v != %v", tt.inX, tt.inY, x[s0:s1], y[t0:t1])
		}
	}
}

func TestSplit_tooExpensive(t *testing.T) {
	for i := range 8 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed[:4]), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			// Large enough to exceed minCostLimit.
			x := make([]int32, 1<<16-rng.IntN(1<<10))
			for s := range x {
				x[s] = int32(rng.IntN(10))
			}
			y := make([]int32, 1<<16-rng.IntN(1<<10))
			for t := range y {
				y[t] = int32(rng.IntN(10))
			}

			m := myers[int32]{x: x, y: y, eq: func(a, b int32) bool { return a == b }}
			r := m.setup(false)
			s0, s1, t0, t1, opt0, opt1 := m.split(r)
			if !slices.Equal(x[s0:s1], y[t0:t1]) {
				t.Errorf("non-matching middle [s0=%d, s1=%d, t0=%d, t1=%d, opt0=%v, opt1=%v]", s0, s1, t0, t1, opt0, opt1)
			}
		})
	}
}

func FuzzDiff(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"), true)
	f.Add([]byte("abc"), []byte(""), false)
	f.Fuzz(func(t *testing.T, x, y []byte, optimal bool) {
		cfg := config.Default
		if optimal {
			cfg = minimal
		}
		rx, ry := DiffFunc(x, y, func(a, b byte) bool { return a == b }, cfg)
		if got := apply(x, y, rx, ry); !slices.Equal(got, y) {
			t.Errorf("applying edits to %q gives %q, want %q", x, got, y)
		}
	})
}

func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		switch {
		case rx[s]:
			sb.WriteByte('D')
			s++
		case ry[t]:
			sb.WriteByte('I')
			t++
		default:
			sb.WriteByte('M')
			s++
			t++
		}
	}
	return sb.String()
}

// apply rebuilds y from x using the result vectors.
func apply[T any](x, y []T, rx, ry []bool) []T {
	var out []T
	for s, t := 0, 0; s < len(x) || t < len(y); {
		switch {
		case rx[s]:
			s++
		case ry[t]:
			out = append(out, y[t])
			t++
		default:
			if s == len(x) || t == len(y) {
				// Matches past the end of either input mean the vectors are inconsistent.
				return out
			}
			out = append(out, x[s])
			s++
			t++
		}
	}
	return out
}

func countEdits(rx, ry []bool) int {
	n := 0
	for _, r := range rx {
		if r {
			n++
		}
	}
	for _, r := range ry {
		if r {
			n++
		}
	}
	return n
}

func lcs(x, y []byte) int {
	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for s := range x {
		for t := range y {
			if x[s] == y[t] {
				curr[t+1] = prev[t] + 1
			} else {
				curr[t+1] = max(prev[t+1], curr[t])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// earliestMatches returns the lexicographically smallest list of positions in x that form a
// longest common subsequence with y.
func earliestMatches(x, y []byte) []int {
	// f[s][t] is the LCS length of x[s:] and y[t:].
	f := make([][]int, len(x)+1)
	for s := range f {
		f[s] = make([]int, len(y)+1)
	}
	for s := len(x) - 1; s >= 0; s-- {
		for t := len(y) - 1; t >= 0; t-- {
			if x[s] == y[t] {
				f[s][t] = f[s+1][t+1] + 1
			} else {
				f[s][t] = max(f[s+1][t], f[s][t+1])
			}
		}
	}

	var out []int
	s, t := 0, 0
	for r := f[0][0]; r > 0; r-- {
	search:
		for s1 := s; s1 < len(x); s1++ {
			for t1 := t; t1 < len(y); t1++ {
				if x[s1] == y[t1] && f[s1+1][t1+1] == r-1 {
					out = append(out, s1)
					s, t = s1+1, t1+1
					break search
				}
			}
		}
	}
	return out
}

func randomInput(rng *rand.Rand, n, alphabet int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('a' + rng.IntN(alphabet))
	}
	return out
}

func parseRange(in string) (out string, lo, hi int) {
	var sb strings.Builder
	lo, hi = math.MinInt, math.MaxInt
	offs := 0
	for i, c := range in {
		switch c {
		case '[':
			if lo != math.MinInt {
				panic("invalid range: " + in)
			}
			lo = i
			offs++
		case ']':
			if hi != math.MaxInt {
				panic("invalid range: " + in)
			}
			hi = i - offs
			offs++
		default:
			sb.WriteRune(c)
		}
	}
	if lo == math.MinInt || hi == math.MaxInt {
		panic("invalid range: " + in)
	}
	return sb.String(), lo, hi
}

func renderRanges(in string, min0, max0, min1, max1 int) string {
	var sb strings.Builder
	for i := min(min0, 0); i < max(max1+1, len(in)); i++ {
		if min0 == i {
			sb.WriteByte('[')
		}
		if max0 == i {
			sb.WriteByte(']')
		}
		if min1 == i {
			sb.WriteByte('[')
		}
		if max1 == i {
			sb.WriteByte(']')
		}
		if i >= 0 && i < len(in) {
			sb.WriteByte(in[i])
		}
	}
	return sb.String()
}
