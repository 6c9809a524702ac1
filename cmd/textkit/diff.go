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

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/diff"
	"github.com/textkit-dev/textkit/textdiff"
)

type diffFlags struct {
	by               textdiff.Granularity
	ignoreCase       bool
	ignoreWhitespace bool
	unified          bool
	context          int
	sideBySide       bool
	indentHeuristic  bool
	width            int
	stats            bool
	exitCode         bool
}

func (a *app) diffCmd() *cobra.Command {
	var f diffFlags
	cmd := &cobra.Command{
		Use:   "diff [flags] A B",
		Short: "Compare two texts",
		Long: `Compare the files A and B. One of them may be "-" to read from stdin.

By default the result is printed as running text with removals marked as [-...-] and additions
as {+...+} (or colored on a terminal).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return errors.New("only one input can be read from stdin")
			}
			flags := cmd.Flags()
			if !flags.Changed("by") {
				f.by = a.settings.Granularity
			}
			if !flags.Changed("ignore-case") {
				f.ignoreCase = a.settings.IgnoreCase
			}
			if !flags.Changed("ignore-whitespace") {
				f.ignoreWhitespace = a.settings.IgnoreWhitespace
			}
			if !flags.Changed("context") {
				f.context = a.settings.Context
			}
			if f.unified && f.sideBySide {
				return errors.New("--unified and --side-by-side are mutually exclusive")
			}
			if f.unified {
				if flags.Changed("ignore-case") || flags.Changed("ignore-whitespace") {
					return errors.New("--unified does not support --ignore-case or --ignore-whitespace")
				}
				if f.ignoreCase || f.ignoreWhitespace {
					a.logger.Debug("--unified ignores the settings for case and whitespace")
					f.ignoreCase, f.ignoreWhitespace = false, false
				}
			}

			x, err := a.read(args[0])
			if err != nil {
				return err
			}
			y, err := a.read(args[1])
			if err != nil {
				return err
			}
			return a.diff(x, y, args[0], args[1], &f)
		},
	}
	flags := cmd.Flags()
	flags.Var(&f.by, "by", "granularity: chars, words or lines")
	flags.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case differences")
	flags.BoolVarP(&f.ignoreWhitespace, "ignore-whitespace", "w", false, "ignore whitespace differences")
	flags.BoolVarP(&f.unified, "unified", "u", false, "print a line based diff in unified format")
	flags.IntVarP(&f.context, "context", "U", 3, "number of context lines for --unified")
	flags.BoolVarP(&f.sideBySide, "side-by-side", "y", false, "print a line based diff in two columns")
	flags.BoolVar(&f.indentHeuristic, "indent-heuristic", true, "shift line changes to match the indentation for --unified and --side-by-side")
	flags.IntVar(&f.width, "width", 120, "total width for --side-by-side")
	flags.BoolVar(&f.stats, "stats", false, "print statistics after the comparison")
	flags.BoolVar(&f.exitCode, "exit-code", false, "exit with status 1 if the inputs differ")
	return cmd
}

func (a *app) diff(x, y, xname, yname string, f *diffFlags) error {
	var opts []diff.Option
	if f.ignoreCase {
		opts = append(opts, textdiff.IgnoreCase())
	}
	if f.ignoreWhitespace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}

	g := f.by
	if f.unified || f.sideBySide {
		g = textdiff.Lines
	}
	a.logger.Debug("comparing", "granularity", g, "ignore_case", f.ignoreCase, "ignore_whitespace", f.ignoreWhitespace)
	var parts []textdiff.Part
	if (f.unified || f.sideBySide) && f.indentHeuristic {
		parts = textdiff.CompareLines(x, y, append(opts, textdiff.IndentHeuristic())...)
	} else {
		parts = textdiff.Compare(x, y, g, opts...)
	}

	r := a.renderer()
	var err error
	switch {
	case f.unified:
		uopts := []diff.Option{diff.Context(f.context)}
		if f.indentHeuristic {
			uopts = append(uopts, textdiff.IndentHeuristic())
		}
		if out := textdiff.Unified(x, y, uopts...); out != "" {
			err = a.write(fmt.Sprintf("--- %s\n+++ %s\n%s", xname, yname, out))
		}
	case f.sideBySide:
		err = a.write(r.SideBySide(parts, f.width))
	default:
		err = a.write(r.Inline(parts))
	}
	if err != nil {
		return err
	}

	if f.stats {
		if err := a.write(r.Stats(textdiff.ComputeStats(parts, g))); err != nil {
			return err
		}
	}
	if f.exitCode && !textdiff.Identical(parts) {
		return errDifferent
	}
	return nil
}
