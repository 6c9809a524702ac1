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

package markup

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var update = flag.Bool("update", false, "update golden files")

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
			name: "whitespace-only",
			in:   " \n\t ",
			want: "",
		},
		{
			name: "nested",
			in:   "<div><p>Hi</p></div>",
			want: "<div>\n  <p>\n    Hi\n  </p>\n</div>\n",
		},
		{
			name: "attributes-in-order",
			in:   `<a href="x" class="y">link</a>`,
			want: "<a href=\"x\" class=\"y\">\n  link\n</a>\n",
		},
		{
			name: "empty-element",
			in:   "<p>   </p>",
			want: "<p>\n",
		},
		{
			name: "comment-in-empty-element-is-dropped",
			in:   "<div><!-- gone --></div>",
			want: "<div>\n",
		},
		{
			name: "top-level-comment",
			in:   "<!--c-->",
			want: "<!-- c -->\n",
		},
		{
			name: "text-only",
			in:   "  plain text  ",
			want: "plain text\n",
		},
		{
			name: "blank-lines-collapse",
			in:   "<p>a\n\n  b</p>",
			want: "<p>\n  a\n  b\n</p>\n",
		},
		{
			name: "unclosed-tags-are-repaired",
			in:   "<ul><li>one<li>two</ul>",
			want: "<ul>\n  <li>\n    one\n  </li>\n  <li>\n    two\n  </li>\n</ul>\n",
		},
		{
			name: "document-detection-is-case-insensitive",
			in:   "  <HTML><body></body></HTML>",
			want: "<html>\n  <head>\n  <body>\n</html>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.in)
			if err != nil {
				t.Fatalf("Format(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestFormat_idempotent(t *testing.T) {
	for _, in := range []string{
		"<div><p>Hi</p></div>",
		`<section class="a"><h2>Title</h2><p>Some <em>text</em> here.</p></section>`,
	} {
		once, err := Format(in)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Format(once)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("formatting %q twice differs [-once,+twice]:\n%s", in, diff)
		}
	}
}

func TestFormatReader(t *testing.T) {
	got, err := FormatReader(strings.NewReader("<b>x</b>"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<b>\n  x\n</b>\n"; got != want {
		t.Errorf("FormatReader() = %q, want %q", got, want)
	}

	errRead := errors.New("read failed")
	_, err = FormatReader(iotest.ErrReader(errRead))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("FormatReader() error = %v, want *ParseError", err)
	}
	if !errors.Is(err, errRead) {
		t.Errorf("FormatReader() error = %v, want it to wrap %v", err, errRead)
	}
}

func TestParse(t *testing.T) {
	nodes, err := Parse(`<p id="x">a<!--b--></p>text`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Node{
		&Element{
			Tag:   "p",
			Attrs: []Attribute{{Name: "id", Value: "x"}},
			Children: []Node{
				&Text{Data: "a"},
				&Comment{Data: "b"},
			},
		},
		&Text{Data: "text"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("Parse() differs [-want,+got]:\n%s", diff)
	}
}

func TestParseXML(t *testing.T) {
	nodes, err := ParseXML(`<root a="1"><item>x</item><item/></root>`)
	if err != nil {
		t.Fatal(err)
	}
	want := []Node{
		&Element{
			Tag:   "root",
			Attrs: []Attribute{{Name: "a", Value: "1"}},
			Children: []Node{
				&Element{Tag: "item", Children: []Node{&Text{Data: "x"}}},
				&Element{Tag: "item"},
			},
		},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("ParseXML() differs [-want,+got]:\n%s", diff)
	}
	if got := Root(nodes); got != nodes[0] {
		t.Errorf("Root() = %v, want %v", got, nodes[0])
	}
}

func TestParseXML_errors(t *testing.T) {
	for _, in := range []string{
		"",
		"just text",
		"<a>",
		"<a><b></a>",
		"<a/><b/>",
		"<a x=1/>",
	} {
		_, err := ParseXML(in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseXML(%q) error = %v, want *ParseError", in, err)
		}
	}

	if _, err := ParseXML(""); !errors.Is(err, errNoRoot) {
		t.Errorf("ParseXML(\"\") error = %v, want %v", err, errNoRoot)
	}
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var in string
			for _, f := range ar.Files {
				if f.Name == "input" {
					in = string(f.Data)
				}
			}

			for i, f := range ar.Files {
				var (
					got string
					err error
				)
				switch f.Name {
				case "input":
					continue
				case "html":
					got, err = Format(in)
				case "xml":
					got, err = FormatXML(in)
				default:
					t.Fatalf("unknown section %q", f.Name)
				}
				if err != nil {
					t.Fatalf("%s: %v", f.Name, err)
				}
				if diff := cmp.Diff(string(f.Data), got); diff != "" {
					t.Errorf("%s differs [-want,+got]:\n%s", f.Name, diff)
				}
				if *update {
					ar.Files[i].Data = []byte(got)
				}
			}

			if *update {
				if err := os.WriteFile(file, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			}
		})
	}
}
