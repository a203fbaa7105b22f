package main

import (
	"context"
	"os"

	"github.com/release-tools/poetry-release/pkg/cli"
	"github.com/release-tools/poetry-release/pkg/domain/types"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
