// Command printf renders a template with typed arguments.
//
//	printf [-o file] [-n] [-args file.yaml] FORMAT [ARG...]
//
// Arguments are strings unless prefixed with int:, double:, bool:, char: or
// str:. With -args the arguments are read from a YAML file instead; a
// sequence of sequences renders FORMAT once per inner sequence.
//
// Logging is configured from PRINTF_LOG_* environment variables.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/natefinch/atomic"
	"golang.org/x/term"
	"pkt.systems/pslog"

	"github.com/bjaus/printf"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	output    string
	noNewline bool
	argsFile  string
	format    string
	args      []string
}

func main() {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvPrefix("PRINTF_LOG_"),
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{MinLevel: pslog.InfoLevel}),
	)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, logger))
}

func parseOptions(argv []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("printf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.output, "o", "", "write output to `file` atomically")
	fs.BoolVar(&opts.noNewline, "n", false, "never append a newline")
	fs.StringVar(&opts.argsFile, "args", "", "read arguments from a YAML `file`")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: printf [-o file] [-n] [-args file.yaml] FORMAT [ARG...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return opts, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return opts, errors.New("missing FORMAT")
	}
	opts.format = fs.Arg(0)
	opts.args = fs.Args()[1:]
	if opts.argsFile != "" && len(opts.args) > 0 {
		fs.Usage()
		return opts, errors.New("-args cannot be combined with positional arguments")
	}
	return opts, nil
}

func run(argv []string, stdout, stderr io.Writer, logger pslog.Logger) int {
	opts, err := parseOptions(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Error("printf.usage", "err", err)
		return exitUsage
	}

	tuples, err := opts.tuples()
	if err != nil {
		logger.Error("printf.args.invalid", "err", err, "file", opts.argsFile)
		return exitError
	}
	logger.Debug("printf.render", "format", opts.format, "tuples", len(tuples))

	if opts.output != "" {
		var buf bytes.Buffer
		if err := render(&buf, opts.format, tuples); err != nil {
			logger.Error("printf.render.failed", "err", err)
			return exitError
		}
		if err := atomic.WriteFile(opts.output, &buf); err != nil {
			logger.Error("printf.output.write.failed", "err", err, "path", opts.output)
			return exitError
		}
		logger.Debug("printf.output.written", "path", opts.output, "bytes", buf.Len())
		return exitOK
	}

	bw := bufio.NewWriter(stdout)
	err = render(bw, opts.format, tuples)
	if err == nil && !opts.noNewline && isTerminal(stdout) {
		err = bw.WriteByte('\n')
	}
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		logger.Error("printf.render.failed", "err", err)
		return exitError
	}
	return exitOK
}

func (o options) tuples() ([][]any, error) {
	if o.argsFile == "" {
		args, err := parseArgs(o.args)
		if err != nil {
			return nil, err
		}
		return [][]any{args}, nil
	}
	f, err := os.Open(o.argsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadTuples(f)
}

func render(w io.Writer, format string, tuples [][]any) error {
	return printf.FprintfIter(w, format, slices.Values(tuples))
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
