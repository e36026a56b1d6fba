package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"sortbench/src/bench"
	"sortbench/src/dataset"
	"sortbench/src/sort"
)

const rule = "----------------------------------------"

func CmdBench() *cli.Command {
	return &cli.Command{
		Name:      "bench",
		Action:    benchFiles,
		Category:  "BENCHMARK",
		Usage:     "time sorting algorithms over dataset files",
		ArgsUsage: "FILE...",
		Description: `
Loads every FILE, then sorts a fresh copy of it with each selected algorithm
and reports the elapsed time. A file that cannot be opened aborts the run.

Examples:
$ sortbench bench datasets/dataset_25000.txt
$ sortbench bench -a quick -a merge --comparisons datasets/sorted_desc_dataset_25000.txt`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "algorithm to run: " + strings.Join(sort.Keys(), ", ") + " (default: all)",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "fail when an algorithm leaves the data unsorted",
			},
			&cli.BoolFlag{
				Name:  "comparisons",
				Usage: "also count comparisons with an untimed second run",
			},
		},
	}
}

func benchFiles(ctx *cli.Context) error {
	if err := setup(ctx, 1); err != nil {
		return err
	}
	algs, err := selectAlgorithms(ctx.StringSlice("algorithm"))
	if err != nil {
		return err
	}
	opts := bench.Options{Verify: ctx.Bool("verify"), CountComparisons: ctx.Bool("comparisons")}

	for _, path := range ctx.Args().Slice() {
		data, err := dataset.Load(path)
		if err != nil {
			return err
		}
		logger.Debugf("loaded %d values from %s", len(data), path)
		for _, alg := range algs {
			res := bench.Benchmark(alg, filepath.Base(path), data, opts)
			printResult(ctx.App.Writer, res)
			if res.Verified && !res.Sorted {
				return fmt.Errorf("%s left %s unsorted", res.Algorithm, res.Dataset)
			}
		}
	}
	return nil
}

func selectAlgorithms(keys []string) ([]sort.Algorithm, error) {
	if len(keys) == 0 {
		return sort.Algorithms(), nil
	}
	algs := make([]sort.Algorithm, 0, len(keys))
	for _, key := range keys {
		alg, ok := sort.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q, expected one of %s", key, strings.Join(sort.Keys(), ", "))
		}
		algs = append(algs, alg)
	}
	return algs, nil
}

func printResult(w io.Writer, res bench.Result) {
	fmt.Fprintf(w, "\n%s\n%s\n", rule, res)
	if res.Comparisons > 0 {
		fmt.Fprintf(w, "%d comparisons over %d values\n", res.Comparisons, res.Len)
	}
	if res.Verified {
		status := "sorted"
		if !res.Sorted {
			status = "NOT sorted"
		}
		fmt.Fprintf(w, "output %s\n", status)
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}
