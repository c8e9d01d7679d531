package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/arnodel/tokencheck"
	"github.com/arnodel/tokencheck/fixture"
	"github.com/arnodel/tokencheck/htmlstream"
)

func main() {
	// Parse the command line arguments
	var filename string
	var dirname string
	var verbose bool
	var colorizer *tokencheck.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})

	flag.StringVar(&filename, "file", "", "conformance suite file to run")
	flag.StringVar(&dirname, "dir", "", "directory of conformance suite files to run")
	flag.BoolVar(&verbose, "v", false, "report passing and skipped cases too")
	flag.Parse()

	paths, err := suitePaths(filename, dirname)
	if err != nil {
		fatalError("%s\n", err)
	}
	if len(paths) == 0 {
		fatalError("no suite files given (use -file or -dir)\n")
	}

	// Set up stdout for handling colors

	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	reporter := &tokencheck.Reporter{
		Out:     stdout,
		Colors:  colorizer,
		Verbose: verbose,
	}

	for _, path := range paths {
		suite, err := fixture.LoadSuiteFile(path)
		if err != nil {
			fatalError("error loading %q: %s\n", path, err)
		}
		runSuite(reporter, filepath.Base(path), suite)
	}
	reporter.Summary()

	if reporter.Failed() {
		os.Exit(1)
	}
}

func runSuite(reporter *tokencheck.Reporter, name string, suite *fixture.Suite) {
	for _, c := range suite.Tests {
		caseName := fmt.Sprintf("%s: %s", name, c.Description)
		if !runnable(&c) {
			reporter.Skip(caseName, "requires a non-default initial state")
			continue
		}
		diff, err := runCase(&c)
		switch {
		case err != nil:
			reporter.Fail(caseName, fmt.Sprintf("tokenizer error: %s", err))
		case diff != "":
			reporter.Fail(caseName, diff)
		default:
			reporter.Pass(caseName)
		}
	}
}

// runCase tokenizes the case's input and compares the accumulated canonical
// tokens with the expected ones.  It returns a non-empty diff on mismatch.
func runCase(c *fixture.TestCase) (string, error) {
	var list tokencheck.TokenList
	var produceErr error
	src := htmlstream.New(strings.NewReader(c.Input))
	stream := tokencheck.StartStream(src, func(err error) {
		produceErr = err
	})
	if err := tokencheck.ConsumeStream(stream, &list); err != nil {
		return "", err
	}
	if produceErr != nil {
		return "", produceErr
	}
	actual := list.Tokens()
	if tokencheck.Equal(c.Output, actual) {
		return "", nil
	}
	return tokencheck.Diff(c.Output, actual), nil
}

// runnable reports whether the backing tokenizer can execute the case: it
// always starts in the Data state and cannot be primed with a last start
// tag.
func runnable(c *fixture.TestCase) bool {
	if c.LastStartTag != "" {
		return false
	}
	if len(c.InitialStates) == 0 {
		return true
	}
	for _, state := range c.InitialStates {
		if state == "Data state" {
			return true
		}
	}
	return false
}

func suitePaths(filename, dirname string) ([]string, error) {
	var paths []string
	if filename != "" {
		paths = append(paths, filename)
	}
	if dirname != "" {
		entries, err := os.ReadDir(dirname)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && (strings.HasSuffix(entry.Name(), ".test") || strings.HasSuffix(entry.Name(), ".json")) {
				paths = append(paths, filepath.Join(dirname, entry.Name()))
			}
		}
		sort.Strings(paths)
	}
	return paths, nil
}

func fatalError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Red    = []byte("\033[31m")
	Green  = []byte("\033[32m")
	Yellow = []byte("\033[33m")
)

var defaultColorizer = tokencheck.Colorizer{
	PassCode:  Green,
	FailCode:  Red,
	SkipCode:  Yellow,
	ResetCode: Reset,
}
