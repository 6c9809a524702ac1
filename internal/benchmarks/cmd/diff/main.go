// diff prints how many tokens each benchmarked library deletes and inserts for two texts.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/textkit-dev/textkit/internal/benchmarks"
	"github.com/textkit-dev/textkit/textdiff"
	"golang.org/x/tools/txtar"
)

type config struct {
	lib   string
	by    textdiff.Granularity
	all   bool
	x, y  string
	txtar string
}

func main() {
	cfg := config{by: textdiff.Lines}
	flag.StringVar(&cfg.lib, "lib", "", "only run this library")
	flag.Var(&cfg.by, "by", "granularity: chars, words or lines")
	flag.BoolVar(&cfg.all, "all", false, "run all granularities")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	x, y, err := load(cfg)
	if err != nil {
		return err
	}

	grans := []textdiff.Granularity{cfg.by}
	if cfg.all {
		grans = benchmarks.Granularities
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "by\tlibrary\tdeleted\tinserted")
	found := false
	for _, g := range grans {
		for _, c := range benchmarks.Comparators(g) {
			if cfg.lib != "" && c.Name != cfg.lib {
				continue
			}
			found = true
			e := c.Compare(x, y)
			fmt.Fprintf(w, "%v\t%s\t%d\t%d\n", g, c.Name, e.Deleted, e.Inserted)
		}
	}
	if !found {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}
	return w.Flush()
}

func load(cfg config) (x, y string, err error) {
	if cfg.txtar == "" {
		bx, err := os.ReadFile(cfg.x)
		if err != nil {
			return "", "", err
		}
		by, err := os.ReadFile(cfg.y)
		if err != nil {
			return "", "", err
		}
		return string(bx), string(by), nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return "", "", err
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = string(f.Data)
		case "y":
			y = string(f.Data)
		}
	}
	return x, y, nil
}
