package main

import (
	"os"

	"github.com/woliveiras/godd/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
