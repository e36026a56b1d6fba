package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"

	"sortbench/src/dataset"
)

func CmdGenerate() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Action:    generate,
		Category:  "DATASET",
		Usage:     "generate datasets of unique random integers",
		ArgsUsage: "[FILE]",
		Description: `
Draws unique integers uniformly from [0, BOUND] and writes them one per line.
Without --size every catalog size is written; without --category only the
random (unsorted) datasets are written. With FILE a single dataset is written
to that path, using the first --size (default 25000) and first --category.

Examples:
$ sortbench generate
$ sortbench generate --category all --dir /tmp/datasets
$ sortbench generate --category descending --size 1000 --seed 42
$ sortbench generate --size 100 /tmp/small.txt`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: dataset.DefaultDir,
				Usage: "directory the datasets are written to",
			},
			&cli.StringSliceFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "dataset ordering: random, ascending, descending or all",
			},
			&cli.IntSliceFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "number of values per dataset (default: 25000, 75000, 120000, 350000, 500000)",
			},
			&cli.IntFlag{
				Name:  "bound",
				Value: dataset.DefaultUpperBound,
				Usage: "largest value that may be drawn",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed (default: current time)",
			},
		},
	}
}

func generate(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}

	cats, err := parseCategories(ctx.StringSlice("category"), dataset.Random)
	if err != nil {
		return err
	}
	sizes := ctx.IntSlice("size")
	if len(sizes) == 0 {
		sizes = dataset.Sizes
	}
	seed := time.Now().UnixNano()
	if ctx.IsSet("seed") {
		seed = ctx.Int64("seed")
	}
	logger.Debugf("generate seed=%d bound=%d categories=%v sizes=%v", seed, ctx.Int("bound"), cats, sizes)

	r := rand.New(rand.NewSource(seed))
	if ctx.NArg() > 0 {
		return generateFile(ctx, r, ctx.Args().First(), cats[0], sizes[0])
	}
	dir := ctx.String("dir")
	for _, c := range cats {
		for _, size := range sizes {
			if err := generateFile(ctx, r, dataset.Path(dir, c, size), c, size); err != nil {
				return err
			}
		}
	}
	return nil
}

func generateFile(ctx *cli.Context, r *rand.Rand, path string, c dataset.Category, size int) error {
	values, err := dataset.Generate(r, c, size, ctx.Int("bound"))
	if err != nil {
		return err
	}
	if err := dataset.Save(path, values); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "Dataset %s created with %d unique numbers.\n", path, len(values))
	return nil
}

// parseCategories resolves category names; "all" selects every category and
// an empty list selects def.
func parseCategories(names []string, def dataset.Category) ([]dataset.Category, error) {
	if len(names) == 0 {
		return []dataset.Category{def}, nil
	}
	var cats []dataset.Category
	seen := make(map[dataset.Category]bool)
	for _, name := range names {
		if name == "all" {
			return dataset.Categories(), nil
		}
		c, err := dataset.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats, nil
}
