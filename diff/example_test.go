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

package diff_test

import (
	"fmt"
	"strings"

	"github.com/textkit-dev/textkit/diff"
)

// Compare two lists of lines and print the changes in hunks with one line of context.
func ExampleHunks() {
	x := strings.Split("alpha\nbeta\ngamma\ndelta\nepsilon\nzeta", "\n")
	y := strings.Split("alpha\nBETA\ngamma\ndelta\nepsilon\nzeta\neta", "\n")
	for _, h := range diff.Hunks(x, y, diff.Context(1)) {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosX+1, h.EndX-h.PosX, h.PosY+1, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case diff.Match:
				fmt.Printf(" %s\n", edit.X)
			case diff.Delete:
				fmt.Printf("-%s\n", edit.X)
			case diff.Insert:
				fmt.Printf("+%s\n", edit.Y)
			}
		}
	}
	// Output:
	// @@ -1,3 +1,3 @@
	//  alpha
	// -beta
	// +BETA
	//  gamma
	// @@ -6,1 +6,2 @@
	//  zeta
	// +eta
}

// Compare two strings rune by rune.
func ExampleEdits() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	for _, edit := range diff.Edits(x, y) {
		switch edit.Op {
		case diff.Match:
			fmt.Printf("%s", string(edit.X))
		case diff.Delete:
			fmt.Printf("-%s", string(edit.X))
		case diff.Insert:
			fmt.Printf("+%s", string(edit.Y))
		}
	}
	// Output:
	// Hello, -W-o-r-l-d+世+界
}

// Group the changes between two words into runs.
func ExampleRuns() {
	for _, run := range diff.Runs([]byte("kitten"), []byte("sitting")) {
		switch run.Op {
		case diff.Match:
			fmt.Printf("=%s ", run.X)
		case diff.Delete:
			fmt.Printf("-%s ", run.X)
		case diff.Insert:
			fmt.Printf("+%s ", run.Y)
		}
	}
	fmt.Println()
	// Output:
	// -k +s =itt -e +i =n +g
}
