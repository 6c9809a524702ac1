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

import "github.com/textkit-dev/textkit/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks] and [HunksFunc]. The default is 3. Negative values are treated as 0.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Optimal finds a minimal diff irrespective of the cost. By default, the comparison functions in
// this package limit the cost for large inputs with many differences by applying a heuristic that
// reduces the time complexity.
//
// With this option, the runtime is O(ND) where N = len(x) + len(y), and D is the number of
// differences between x and y.
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeMinimal
		return config.Optimal
	}
}

// Earliest finds a minimal diff whose matches are aligned as early as possible in x: of all
// minimal edit scripts, it returns the one that matches the lexicographically smallest set of
// positions in x. Earliest overrides [Optimal] and is only supported for comparable elements.
func Earliest() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeEarliest
		return config.Earliest
	}
}
