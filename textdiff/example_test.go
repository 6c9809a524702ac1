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

package textdiff_test

import (
	"fmt"

	"github.com/textkit-dev/textkit/textdiff"
)

func ExampleCompare() {
	parts := textdiff.Compare("a\nb\nc", "a\nx\nc", textdiff.Lines)
	for _, p := range parts {
		fmt.Printf("%-6v %q\n", p.Op, p.Text)
	}
	fmt.Printf("%+v\n", textdiff.ComputeStats(parts, textdiff.Lines))
	// Output:
	// Match  "a\n"
	// Delete "b\n"
	// Insert "x\n"
	// Match  "c"
	// {Additions:1 Deletions:1 Unchanged:2}
}

func ExampleIgnoreCase() {
	parts := textdiff.Compare("Hello", "hello", textdiff.Chars, textdiff.IgnoreCase())
	fmt.Println(len(parts), parts[0].Unchanged(), parts[0].Text)
	// Output:
	// 1 true hello
}

func ExampleUnified() {
	x := "this paragraph\nis not\nchanged\n\nthis line\nis removed\n"
	y := "a new line\n\nthis paragraph\nis not\nchanged\n"
	fmt.Print(textdiff.Unified(x, y))
	// Output:
	// @@ -1,6 +1,5 @@
	// +a new line
	// +
	//  this paragraph
	//  is not
	//  changed
	// -
	// -this line
	// -is removed
}

func ExampleIndentHeuristic() {
	x := `// ...
["foo", "bar", "baz"].map do |i|
  i.upcase
end
`
	y := `// ...
["foo", "bar", "baz"].map do |i|
  i
end

["foo", "bar", "baz"].map do |i|
  i.upcase
end
`
	fmt.Print(textdiff.Unified(x, y, textdiff.IndentHeuristic()))
	// Output:
	// @@ -1,4 +1,8 @@
	//  // ...
	// +["foo", "bar", "baz"].map do |i|
	// +  i
	// +end
	// +
	//  ["foo", "bar", "baz"].map do |i|
	//    i.upcase
	//  end
}
