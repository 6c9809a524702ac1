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

// Package textkit is a collection of text utilities built around a minimal diff engine.
//
//   - [github.com/textkit-dev/textkit/diff] compares arbitrary slices.
//   - [github.com/textkit-dev/textkit/textdiff] compares text by characters, words or lines and
//     renders unified diffs.
//   - [github.com/textkit-dev/textkit/markup] and [github.com/textkit-dev/textkit/sqlfmt] pretty
//     print HTML, XML and SQL.
//   - [github.com/textkit-dev/textkit/encode] converts between encodings and JSON layouts.
//   - [github.com/textkit-dev/textkit/convert] and [github.com/textkit-dev/textkit/pdf] convert
//     between markdown, HTML and PDF.
//   - [github.com/textkit-dev/textkit/strutil] transforms text and computes statistics.
//
// The textkit command in cmd/textkit exposes all of them on the command line.
package textkit
