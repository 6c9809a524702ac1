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

package sqlfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "simple",
			in:   "select a from t where b=1",
			want: "SELECT a\nFROM t\nWHERE b=1",
		},
		{
			name: "whitespace-collapses",
			in:   "  SELECT   a,\n\tb  FROM t  ",
			want: "SELECT a, b\nFROM t",
		},
		{
			name: "multi-word-keywords",
			in:   "select * from a left join b on a.id = b.id group by x order by y",
			want: "SELECT *\nFROM a\nLEFT JOIN b\nON a.id = b.id\nGROUP BY x\nORDER BY y",
		},
		{
			name: "keywords-inside-words-are-ignored",
			in:   "select ascending, inner_id from orders",
			want: "SELECT ascending, inner_id\nFROM orders",
		},
		{
			name: "parentheses",
			in:   "select a from t where b in (select c from u)",
			want: "SELECT a\nFROM t\nWHERE b\nIN (\n  SELECT c\nFROM u)",
		},
		{
			name: "begin-end",
			in:   "begin select 1; end",
			want: "BEGIN\n  SELECT 1;\nEND",
		},
		{
			name: "end-must-be-a-word",
			in:   "begin x append y",
			want: "BEGIN\n  x append y",
		},
		{
			name: "indent-never-negative",
			in:   ") ) select",
			want: ") )\nSELECT",
		},
		{
			name: "case",
			in:   "case when a then b else c end",
			want: "CASE\nWHEN a\nTHEN b\nELSE c\nEND",
		},
		{
			name: "not-sql",
			in:   "hello world",
			want: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
			if again := Format(got); again != got {
				t.Errorf("Format is not idempotent for %q: %q != %q", tt.in, again, got)
			}
		})
	}
}

func TestLines(t *testing.T) {
	got := Lines("create table t (a int, b int)")
	want := []Line{
		{Indent: 0, Text: "CREATE"},
		{Indent: 0, Text: "TABLE t (a int, b int)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() differs [-want,+got]:\n%s", diff)
	}

	got = Lines("begin if x then begin y end end")
	want = []Line{
		{Indent: 0, Text: "BEGIN"},
		{Indent: 1, Text: "IF x"},
		{Indent: 1, Text: "THEN"},
		{Indent: 1, Text: "BEGIN y"},
		{Indent: 1, Text: "END"},
		{Indent: 0, Text: "END"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() differs [-want,+got]:\n%s", diff)
	}
}
