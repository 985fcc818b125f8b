package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"tubeqr/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, cli.Run)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer, app func(context.Context, []string) error) (code int) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(stderr, "\nUnexpected error: %v\n%s", p, debug.Stack())
			code = 1
		}
	}()

	err := app(ctx, args)
	switch {
	case err == nil, errors.Is(err, cli.ErrDeclined):
	case cli.IsInterrupt(err):
		fmt.Fprintln(stderr, "\n\nProgram aborted by user.")
	default:
		fmt.Fprintln(stderr, "error:", err)
		if hint := cli.Hint(err); hint != "" {
			fmt.Fprintln(stderr, hint)
		}
	}
	return cli.ExitCode(err)
}
