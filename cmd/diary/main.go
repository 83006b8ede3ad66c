// Command diary is the mood diary command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/mooddiary-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		stop()
		os.Exit(1)
	}
}
