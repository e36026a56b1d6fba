package main

import (
	"os"

	"sortbench/src/cmd"
	"sortbench/src/utils"
)

var logger = utils.GetLogger("sortbench")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
