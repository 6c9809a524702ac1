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

// Package config provides shared configuration mechanisms for the comparison packages of this
// module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Mode describes the mode of the diff algorithm.
type Mode int

const (
	// Limit the cost for large inputs with many differences by applying a heuristic that reduces
	// the time complexity at the cost of non-minimal diffs.
	ModeDefault Mode = iota

	// Find a minimal diff irrespective of the cost.
	ModeMinimal

	// Find a minimal diff whose matches are as early as possible in x.
	ModeEarliest
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// Diff algorithm mode.
	Mode Mode

	// If set, textdiff compares lower-cased inputs.
	IgnoreCase bool

	// If set, textdiff compares tokens with whitespace runs collapsed.
	IgnoreWhitespace bool

	// If set, line changes are moved to indentation boundaries.
	IndentHeuristic bool
}

// Default is the default configuration.
var Default = Config{
	Context:          3,
	Mode:             ModeDefault,
	IgnoreCase:       false,
	IgnoreWhitespace: false,
	IndentHeuristic:  false,
}

// Flag describes a single config entry. It's used to detect options that are passed to functions
// that don't support them.
type Flag int

const (
	Context Flag = 1 << iota
	Optimal
	IgnoreCase
	IgnoreWhitespace
	IndentHeuristic
	Earliest
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case Optimal:
		return "diff.Optimal"
	case IgnoreCase:
		return "textdiff.IgnoreCase"
	case IgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	case IndentHeuristic:
		return "textdiff.IndentHeuristic"
	case Earliest:
		return "diff.Earliest"
	default:
		panic("never reached")
	}
}
