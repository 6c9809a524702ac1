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
	"fmt"
	"math/rand/v2"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/textkit-dev/textkit/strutil"
)

func (a *app) strCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "str",
		Short: "Transform text or print statistics about it",
	}
	for _, name := range strutil.Names() {
		f, _ := strutil.Lookup(name)
		cmd.AddCommand(a.transformCmd(name, "Apply "+strings.ReplaceAll(name, "-", " "), func(s string) (string, error) {
			return f(s), nil
		}))
	}

	var text string
	remove := a.transformCmd("remove", "Remove every occurrence of --text", func(s string) (string, error) {
		return strutil.Remove(s, text)
	})
	remove.Flags().StringVar(&text, "text", "", "text to remove")

	var find, with string
	replace := a.transformCmd("replace", "Replace every occurrence of --find with --with", func(s string) (string, error) {
		out, n, err := strutil.Replace(s, find, with)
		if err != nil {
			return "", err
		}
		a.logger.Info("replaced", "occurrences", n)
		return out, nil
	})
	replace.Flags().StringVar(&find, "find", "", "text to find")
	replace.Flags().StringVar(&with, "with", "", "replacement")

	var prefix, suffix string
	addPrefix := a.transformCmd("prefix", "Add --text in front of every line", func(s string) (string, error) {
		return strutil.AddPrefix(s, prefix), nil
	})
	addPrefix.Flags().StringVar(&prefix, "text", "", "prefix to add")
	addSuffix := a.transformCmd("suffix", "Add --text at the end of every line", func(s string) (string, error) {
		return strutil.AddSuffix(s, suffix), nil
	})
	addSuffix.Flags().StringVar(&suffix, "text", "", "suffix to add")

	var seed uint64
	shuffle := a.transformCmd("shuffle", "Shuffle the lines", func(s string) (string, error) {
		src := rand.NewPCG(rand.Uint64(), rand.Uint64())
		if seed != 0 {
			src = rand.NewPCG(seed, seed)
		}
		return strutil.Shuffle(s, rand.New(src)), nil
	})
	shuffle.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible order (0 picks a random one)")

	stats := &cobra.Command{
		Use:   "stats [file]",
		Short: "Count characters, words, lines, sentences and paragraphs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readInput(args)
			if err != nil {
				return err
			}
			st := strutil.Stats(src)
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 1, ' ', 0)
			for _, row := range []struct {
				name string
				n    int
			}{
				{"characters", st.Chars},
				{"characters (no spaces)", st.CharsNoSpaces},
				{"words", st.Words},
				{"lines", st.Lines},
				{"sentences", st.Sentences},
				{"paragraphs", st.Paragraphs},
			} {
				fmt.Fprintf(tw, "%s:\t%d\n", row.name, row.n)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(remove, replace, addPrefix, addSuffix, shuffle, stats)
	return cmd
}
