package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"freetext/internal/preview"
)

// servePreview is a test seam for running the preview server.
var servePreview = preview.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:8000", "Address to listen on")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		dir := fs.Arg(0)
		if dir == "" {
			fmt.Fprintln(stderr, "Missing <site-dir>")
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if _, err := os.Stat(dir); err != nil {
			fmt.Fprintf(stderr, "Site directory not found: %v\n", err)
			return ExitError
		}

		cfg := preview.Config{
			Addr: *addr,
			Dir:  dir,
		}
		fmt.Fprintf(stdout, "Serving %s at http://%s\n", dir, cfg.Addr)
		if err := servePreview(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
