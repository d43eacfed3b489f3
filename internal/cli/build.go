package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"freetext/internal/site"
	"freetext/internal/ui/live"
)

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to options file (default: freetext.yml when present)")
		srcDir := fs.String("src", "docs", "Directory with markdown pages")
		outDir := fs.String("out", "site", "Directory for built pages")
		uiMode := fs.String("ui", "auto", "Progress UI: auto, live or plain")
		verbose := fs.Bool("verbose", false, "Verbose logging")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		opts, err := loadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load options: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger := newLogger(stderr, *verbose)
		defer func() { _ = logger.Sync() }()

		builder := site.NewBuilder(opts, logger)
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			builder.Observer = controller
		} else {
			builder.Observer = &plainObserver{w: stdout}
		}

		summary, buildErr := builder.BuildDir(*srcDir, *outDir)
		if controller != nil {
			controller.Close()
			controller.Wait()
		}

		printBuildSummary(stdout, summary, isTerminal(stdout))
		if buildErr != nil {
			fmt.Fprintf(stderr, "Build failed: %v\n", buildErr)
			return ExitError
		}
		return ExitOK
	}
}

// plainObserver prints one line per built page.
type plainObserver struct {
	w io.Writer
}

func (o *plainObserver) OnBuildStart(pages int) {
	fmt.Fprintf(o.w, "Building %d pages\n", pages)
}

func (o *plainObserver) OnPageStart(page string) {}

func (o *plainObserver) OnPageDone(result site.PageBuild) {
	if result.Err != nil {
		fmt.Fprintf(o.w, "FAIL %s: %v\n", result.Page, result.Err)
		return
	}
	line := fmt.Sprintf("ok   %s (%d questions, %d assessments)", result.Page, result.Questions, result.Assessments)
	if result.Warnings > 0 {
		line += fmt.Sprintf(", %d warnings", result.Warnings)
	}
	fmt.Fprintln(o.w, line)
}

func (o *plainObserver) OnBuildEnd(summary site.Summary) {}

// printBuildSummary writes build totals, styled when stdout is a terminal.
func printBuildSummary(w io.Writer, summary site.Summary, styled bool) {
	line := fmt.Sprintf("Built %d of %d pages (%d questions, %d assessments, %d warnings) in %s",
		summary.Pages-summary.Failed, summary.Pages,
		summary.Questions, summary.Assessments, summary.Warnings,
		summary.Duration.Round(time.Millisecond))
	if styled {
		line = lipgloss.NewStyle().Bold(true).Render(line)
	}
	fmt.Fprintln(w, line)
	if summary.Failed > 0 {
		failed := fmt.Sprintf("%d pages failed", summary.Failed)
		if styled {
			failed = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(failed)
		}
		fmt.Fprintln(w, failed)
	}
}
