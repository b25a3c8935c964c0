// Command is evaluates a single predicate and reports the result through
// its exit status, as a readable replacement for test(1).
package main

import (
	"context"
	"os"

	"github.com/patbeagan1/is-test/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
