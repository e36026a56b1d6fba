package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"sortbench/src/dataset"
	"sortbench/src/utils"
)

func CmdList() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Action:    list,
		Category:  "DATASET",
		Usage:     "displays the dataset catalog",
		ArgsUsage: "",
		Description: `It is used to display every catalog dataset and whether it exists on disk.

Examples:
$ sortbench list
$ sortbench list --tree --dir /tmp/datasets`,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "the tree structure displays the catalog grouped by ordering",
			},

			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Value:   true,
				Usage:   "display the catalog in list format",
			},

			&cli.StringFlag{
				Name:  "dir",
				Value: dataset.DefaultDir,
				Usage: "directory holding the catalog datasets",
			},
		},
	}
}

func list(ctx *cli.Context) error {
	if err := setup(ctx, 0); err != nil {
		return err
	}
	dir := ctx.String("dir")
	if _, err := os.Stat(dir); err != nil {
		logger.Warnf("dataset directory %s: %v", dir, err)
	}

	root := &utils.FileNode{FileName: dir}
	for _, c := range dataset.Categories() {
		for _, size := range dataset.Sizes {
			name := dataset.FileName(c, size)
			status := fileStatus(filepath.Join(dir, name))
			if ctx.Bool("list") && !ctx.Bool("tree") {
				fmt.Fprintf(ctx.App.Writer, "%-11s %-34s %s\n", c, name, status)
			}
			root.Insert(c.String() + "/" + name).Note = status
		}
	}

	if ctx.Bool("tree") {
		root.ShowTree(ctx.App.Writer, "")
	}
	return nil
}

func fileStatus(path string) string {
	fi, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "missing"
	case err != nil:
		return err.Error()
	case fi.IsDir():
		return "not a file"
	}
	return fmt.Sprintf("%d bytes", fi.Size())
}
