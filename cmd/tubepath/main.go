// Command tubepath answers shortest-route questions over a transit network
// loaded from a CSV edge list, and analyses journey distributions before and
// after planned closures.
//
// Usage:
//
//	tubepath route "Baker Street" "Waterloo"
//	tubepath route "Baker Street" "Waterloo" --stops --solver bfs
//	tubepath journeys --bins 30
//	tubepath closure --config tubepath.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: stdout, errOut: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(context.Background()); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, styles.Error.Render("error:"), err)
		return 1
	}

	return 0
}
