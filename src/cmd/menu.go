package cmd

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"sortbench/src/bench"
	"sortbench/src/dataset"
	"sortbench/src/sort"
	"sortbench/src/utils"
)

const banner = "========================================"

func CmdMenu() *cli.Command {
	return &cli.Command{
		Name:      "menu",
		Action:    runMenu,
		Category:  "BENCHMARK",
		Usage:     "interactive benchmark over the dataset catalog",
		ArgsUsage: "",
		Description: `
Asks for a dataset ordering once, then repeatedly for a dataset and an
algorithm, and reports how long the sort took. Any exit or unknown choice
ends the session. A dataset file that cannot be opened is fatal.

Examples:
$ sortbench generate --category all
$ sortbench menu`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: dataset.DefaultDir,
				Usage: "directory holding the catalog datasets",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "check every sort result is in order",
			},
		},
	}
}

type menu struct {
	in   *bufio.Reader
	out  io.Writer
	dir  string
	tty  bool
	opts bench.Options
}

func runMenu(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	m := &menu{
		in:   bufio.NewReader(ctx.App.Reader),
		out:  ctx.App.Writer,
		dir:  ctx.String("dir"),
		tty:  utils.IsTerminal(ctx.App.Writer),
		opts: bench.Options{Verify: ctx.Bool("verify")},
	}
	return m.run()
}

func (m *menu) run() error {
	m.header("SORTING ALGORITHM BENCHMARK TEST")

	cat, ok := m.chooseCategory()
	if !ok {
		m.goodbye()
		return nil
	}

	for {
		name, ok := m.chooseDataset(cat)
		if !ok {
			m.goodbye()
			return nil
		}

		data, err := dataset.Load(filepath.Join(m.dir, name))
		if err != nil {
			return err
		}

		alg, ok := m.chooseAlgorithm()
		if !ok {
			m.goodbye()
			return nil
		}
		m.benchmark(alg, name, data)
	}
}

// readChoice reads the next integer. Anything unreadable counts as 0, which
// no menu accepts.
func (m *menu) readChoice() int {
	fmt.Fprint(m.out, "Enter your choice: ")
	var choice int
	if _, err := fmt.Fscan(m.in, &choice); err != nil {
		logger.Debugf("read choice: %v", err)
		return 0
	}
	return choice
}

func (m *menu) header(title string) {
	pad := (len(banner) - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(m.out, "\n%s\n%s%s\n%s\n", banner, strings.Repeat(" ", pad), title, banner)
}

func (m *menu) options(items []string) {
	for i, item := range items {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, item)
	}
	fmt.Fprintf(m.out, "%d. Exit\n%s\n", len(items)+1, rule)
}

func (m *menu) chooseCategory() (dataset.Category, bool) {
	m.header("SELECT DATASET TYPE")
	cats := dataset.Categories()
	titles := make([]string, len(cats))
	for i, c := range cats {
		titles[i] = c.Title()
	}
	m.options(titles)

	choice := m.readChoice()
	if choice < 1 || choice > len(cats) {
		return 0, false
	}
	return cats[choice-1], true
}

func (m *menu) chooseDataset(c dataset.Category) (string, bool) {
	m.header("SELECT A DATASET")
	names := dataset.Catalog(c)
	m.options(names)

	choice := m.readChoice()
	if choice < 1 || choice > len(names) {
		return "", false
	}
	return names[choice-1], true
}

func (m *menu) chooseAlgorithm() (sort.Algorithm, bool) {
	m.header("SELECT A SORTING ALGORITHM")
	algs := sort.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	m.options(names)
	return sort.ByIndex(m.readChoice())
}

func (m *menu) benchmark(alg sort.Algorithm, name string, data []int) {
	fmt.Fprintf(m.out, "\n%s\n   Sorting in progress. Please be patient...\n%s\n", rule, rule)
	res := bench.Benchmark(alg, name, data, m.opts)
	if m.tty {
		fmt.Fprintf(m.out, "\r%s\r", strings.Repeat(" ", len(banner)+2))
	}
	logger.Debugf("%s sorted %d values in %s", alg.Name, res.Len, res.Elapsed)
	printResult(m.out, res)
}

func (m *menu) goodbye() {
	fmt.Fprintf(m.out, "\nExiting the program. Goodbye!\n%s\n", banner)
}
