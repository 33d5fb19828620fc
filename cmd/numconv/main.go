// Command numconv runs the numeric operations from the command line.
//
//	numconv roman 1994
//	numconv --output json prime 91
//	numconv batch -f requests.yaml
package main

import (
	"context"
	"os"
	"os/signal"

	"numconv/internal/cli"
	"numconv/internal/usecase/calc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, &calc.Service{}, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
