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

package textdiff

import (
	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/internal/config"
)

// IgnoreCase lower-cases both inputs before they are compared. The text of the returned parts is
// the lower-cased text.
func IgnoreCase() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreCase = true
		return config.IgnoreCase
	}
}

// IgnoreWhitespace treats tokens as equal if they only differ in whitespace.
//
// For characters and words, all whitespace tokens are equal and consecutive whitespace characters
// form a single token. Lines are compared with leading and trailing whitespace removed and inner
// whitespace runs collapsed to a single space.
func IgnoreWhitespace() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// IndentHeuristic moves the boundaries of line changes to where a reader expects them, for example
// to let an inserted function end with its own closing brace. It is a heuristic based on the
// indentation of the lines around a change and never changes the number of edits.
func IndentHeuristic() diff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = true
		return config.IndentHeuristic
	}
}
