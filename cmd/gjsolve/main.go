// SPDX-License-Identifier: MIT

// Command gjsolve solves N x N linear systems read from text files.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/gaussjordan/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
