package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"freetext/internal/plugin"
	"freetext/internal/site"
)

// runProcess builds the handler for the process command.
func runProcess(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to options file (default: freetext.yml when present)")
		format := fs.String("format", "md", "Input format: md or html")
		outPath := fs.String("o", "", "Output path (default: stdout)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		inputPath := fs.Arg(0)
		if inputPath == "" {
			fmt.Fprintln(stderr, "Missing <input>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *format != "md" && *format != "html" {
			fmt.Fprintf(stderr, "invalid format %q (expected md or html)\n", *format)
			return ExitUsage
		}

		opts, err := loadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load options: %v\n", err)
			return ExitError
		}

		input, err := os.ReadFile(inputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Process failed: %v\n", err)
			return ExitError
		}

		logger := newLogger(stderr, false)
		defer func() { _ = logger.Sync() }()

		var doc string
		if *format == "md" {
			builder := site.NewBuilder(opts, logger)
			doc, _, err = builder.BuildPage(input, inputPath)
		} else {
			processor := plugin.New(opts, logger)
			var result plugin.PageResult
			result, err = processor.OnPageContent(string(input), inputPath)
			if err == nil {
				doc = processor.OnPostPage(result.HTML, result)
			}
		}
		if err != nil {
			fmt.Fprintf(stderr, "Process failed: %v\n", err)
			return ExitError
		}

		if *outPath == "" {
			fmt.Fprint(stdout, doc)
			return ExitOK
		}
		if err := os.WriteFile(*outPath, []byte(doc), 0o644); err != nil {
			fmt.Fprintf(stderr, "Process failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}
