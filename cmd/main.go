package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-solver/application"
	"github.com/luca-patrignani/poker-solver/domain/deck"
	"github.com/luca-patrignani/poker-solver/domain/poker"
)

type options struct {
	verbose bool
	debug   bool
	deal    string
	players int
	seed    string
	line    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("poker-solver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: poker-solver [flags] [<variant> <cards>...]\n")
		fmt.Fprintf(stderr, "without a request, one request per line is read from stdin\n\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.verbose, "v", false, "print a showdown report for every request")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.StringVar(&opts.deal, "deal", "", "deal a random request for the given variant instead of reading one")
	fs.IntVar(&opts.players, "players", 2, "number of players to deal with -deal")
	fs.StringVar(&opts.seed, "seed", "", "seed for -deal, for reproducible tables")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.line = strings.Join(fs.Args(), " ")
	return opts, nil
}

func newLogger(stderr io.Writer, debug bool) *slog.Logger {
	plog := pterm.DefaultLogger.WithWriter(stderr)
	if debug {
		plog = plog.WithLevel(pterm.LogLevelDebug)
	}
	return slog.New(pterm.NewSlogHandler(plog))
}

// run executes the command and returns the process exit code: 0 when every
// request was solved, 1 when at least one failed, 2 on bad usage.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	logger := newLogger(stderr, opts.debug)
	solver := application.NewSolver(logger)

	if opts.verbose {
		fmt.Fprintln(stdout, renderBanner())
	}

	if opts.deal != "" {
		line, err := dealLine(opts)
		if err != nil {
			logger.Error("failed to deal a table", "error", err)
			return 2
		}
		fmt.Fprintln(stdout, line)
		if !opts.verbose {
			return 0
		}
		return solveLines(solver, logger, strings.NewReader(line), stdout, true)
	}

	if opts.line != "" {
		return solveLines(solver, logger, strings.NewReader(opts.line), stdout, opts.verbose)
	}
	return solveLines(solver, logger, stdin, stdout, opts.verbose)
}

func dealLine(opts options) (string, error) {
	variant, err := poker.ParseVariant(opts.deal)
	if err != nil {
		return "", err
	}
	d := poker.NewPokerDeck(nil)
	if opts.seed != "" {
		d = poker.NewPokerDeck(deck.SeededStream(opts.seed))
	}
	table, err := d.DealTable(variant, opts.players)
	if err != nil {
		return "", err
	}
	return table.Line(), nil
}

// solveLines solves every non blank line of in. A failing line is logged and
// skipped.
func solveLines(solver *application.Solver, logger *slog.Logger, in io.Reader, out io.Writer, verbose bool) int {
	code := 0
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n++
		res, err := solver.Solve(line)
		if err != nil {
			logger.Error("failed to rank request", "line", n, "error", err)
			code = 1
			continue
		}
		if verbose {
			report, err := renderReport(res)
			if err != nil {
				logger.Error("failed to render report", "line", n, "error", err)
				code = 1
			}
			fmt.Fprintln(out, report)
		}
		fmt.Fprintln(out, res.String())
	}
	if err := scanner.Err(); err != nil {
		logger.Error("failed to read input", "error", err)
		return 1
	}
	return code
}
