// Command tabulate prints delimited data as a table with aligned columns.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/internal/logging"
)

const usage = `Usage: tabulate [flags] [input]

Outputs delimited data as a table with columns in alignment. The whole input
is buffered in memory before anything is written. Reads stdin when input is
omitted or "-".

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tabulate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.IntP("width", "w", 2, "minimum width of each column")
	pad := fs.IntP("pad", "p", 2, "minimum number of spaces between columns")
	condense := fs.IntP("condense", "c", 0, "limit each field to this many code points (bytes if not UTF-8)")
	delim := fs.StringP("delimiter", "d", ",", `input field delimiter, a single character or \t`)
	output := fs.StringP("output", "o", "", "write output to this file instead of stdout")
	cellWidth := fs.Bool("cells", false, "measure fields in terminal cells instead of code points")
	configPath := fs.String("config", "", "YAML file with default option values")
	logLevel := fs.String("log-level", "warn", "diagnostics level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	logger := logging.New(stderr, *logLevel)

	opts := tabulate.DefaultOptions()
	outPath := *output
	if *configPath != "" {
		cfg, err := tabulate.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "tabulate: %s\n", err)
			return 2
		}
		if opts, err = cfg.Apply(opts); err != nil {
			fmt.Fprintf(stderr, "tabulate: %s: %s\n", *configPath, err)
			return 2
		}
		if !fs.Changed("output") && cfg.Output != "" {
			outPath = cfg.Output
		}
	}
	if fs.Changed("width") {
		opts.MinWidth = *width
	}
	if fs.Changed("pad") {
		opts.Pad = *pad
	}
	if fs.Changed("condense") {
		opts.Condense = *condense
	}
	if fs.Changed("delimiter") {
		d, err := tabulate.ParseDelimiter(*delim)
		if err != nil {
			fmt.Fprintf(stderr, "tabulate: %s\n", err)
			return 2
		}
		opts.Delimiter = d
	}
	if *cellWidth {
		opts.Width = tabulate.WidthCells
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "tabulate: %s\n", err)
		return 2
	}
	logger.Debug("options",
		"width", opts.MinWidth,
		"pad", opts.Pad,
		"condense", opts.Condense,
		"delimiter", string(opts.Delimiter),
		"mode", opts.Width,
	)

	in, name, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tabulate: %s\n", err)
		return 1
	}
	defer in.Close()
	if name == stdinName && isTerminal(stdin) {
		logger.Info("reading from terminal, end input with Ctrl-D")
	}

	out := &sink{path: outPath, w: stdout}
	if err := tabulate.Copy(out, in, opts); err != nil {
		out.abort()
		fmt.Fprintf(stderr, "tabulate: %s: %s\n", name, err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "tabulate: %s\n", err)
		return 1
	}
	logger.Debug("table written", "input", name, "output", outPath)
	return 0
}

const stdinName = "<stdin>"

func openInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), stdinName, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}
