package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

// NewApp assembles the sortbench command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:                 "sortbench",
		Usage:                "benchmark classical sorting algorithms over integer datasets",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdGenerate(),
			CmdBench(),
			CmdMenu(),
			CmdList(),
		},
	}
}

// Main runs the application with the given process arguments.
func Main(args []string) error {
	return NewApp().Run(args)
}
