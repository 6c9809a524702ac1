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

// Package diff compares two slices and reports the edits that transform one into the other.
//
// [Edits] returns every individual change, [Runs] groups consecutive changes of the same kind and
// [Hunks] groups changes into blocks with surrounding context, similar to the Unix diff tool. Each
// function has a Func variant for element types that aren't comparable.
//
// By default, a heuristic limits the cost for very large inputs with many differences. Use
// [Optimal] when you need the shortest possible edit script.
//
// Performance: Default complexity is O(N^1.5 log N) time and O(N) space. With [Optimal], time
// complexity is O(ND) where N = len(x) + len(y) and D is the number of edits.
//
// For comparing text, see the textdiff package.
package diff
