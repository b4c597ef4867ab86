// Command plorth is the reference command-line front-end for the
// interpreter core in the root package: argument scanning, file
// reading, module search path configuration and the REPL are all host
// concerns the core package deliberately leaves external.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	plorth "github.com/plorth-lang/plorth"
	"github.com/plorth-lang/plorth/internal/fileinput"
	"github.com/plorth-lang/plorth/internal/flushio"
	"github.com/plorth-lang/plorth/internal/logio"
)

const (
	exitSuccess = 0
	exitUsage   = 64
	exitFailure = 1
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cfg, args, err := parseFlags(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if cfg == nil {
		return exitSuccess // --version or --help already printed
	}

	if len(args) > 0 {
		cfg.programFile = args[0]
		cfg.args = args[1:]
	} else {
		cfg.args = args
	}

	opts := []plorth.RuntimeOption{
		plorth.WithArgs(cfg.args),
		plorth.WithModulePaths(modulePaths(cfg.programFile)),
		plorth.WithOutput(flushio.NewWriteFlusher(os.Stdout)),
	}
	if cfg.trace {
		logger := &logio.Logger{}
		logger.SetOutput(ioWriteNopCloser{os.Stderr})
		opts = append(opts, plorth.WithLogf(logger.Leveledf("TRACE")))
	}
	if cfg.memLimit != 0 {
		opts = append(opts, plorth.WithMemLimit(cfg.memLimit))
	}

	rt := plorth.NewRuntime(opts...)
	ctx := plorth.NewContext(rt, "<command-line>")

	for _, name := range cfg.imports {
		if !ctx.Import(name, readModuleFile) {
			reportError(ctx)
			return exitFailure
		}
	}

	for _, src := range cfg.inline {
		if !ctx.Eval(src, "<command-line>", 1) {
			reportError(ctx)
			return exitFailure
		}
	}

	if cfg.programFile != "" {
		src, rerr := readSource(cfg.programFile)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", rerr)
			return exitFailure
		}
		if cfg.checkOnly {
			if _, cerr := plorth.Tokenize(string(src), cfg.programFile, 1); cerr != nil {
				fmt.Fprintf(os.Stderr, "%v\n", cerr.Diagnostic())
				return exitFailure
			}
			return exitSuccess
		}
		if !ctx.Eval(string(src), cfg.programFile, 1) {
			reportError(ctx)
			return exitFailure
		}
		return exitSuccess
	}

	if len(cfg.inline) > 0 || len(cfg.imports) > 0 {
		return exitSuccess
	}

	runREPL(ctx, os.Stdin, os.Stdout)
	return exitSuccess
}

func reportError(ctx *plorth.Context) {
	if err := ctx.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err.Diagnostic())
	}
}

func readModuleFile(path string) (string, error) {
	return readSource(path)
}

// readSource reads path in full through a fileinput.Input, the same
// line-tracking reader gothird used for its own source files; plorth
// has no need of the Last/Scan line bookkeeping mid-read, but routing
// file reads through it keeps one reader implementation for both the
// module loader and the program-file path instead of a second one
// built on ioutil.ReadFile.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	in := &fileinput.Input{Queue: []io.Reader{f}}
	var b strings.Builder
	for {
		r, _, rerr := in.ReadRune()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", rerr
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// parseFlags parses argv per spec section 6.1; returns (nil, nil, nil)
// after already having printed --version/--help output.
func parseFlags(argv []string) (*cliConfig, []string, error) {
	fs := flag.NewFlagSet("plorth", flag.ContinueOnError)
	fs.SetOutput(ioutil.Discard) // we print our own usage on error

	var cfg cliConfig
	var inline stringList
	var imports stringList
	var showVersion, showHelp bool

	fs.Var(&inline, "e", "evaluate inline source (repeatable)")
	fs.Var(&imports, "r", "import a module before running (repeatable)")
	fs.BoolVar(&cfg.checkOnly, "c", false, "check syntax only, do not run")
	fs.BoolVar(&cfg.fork, "f", false, "fork to background if supported")
	fs.BoolVar(&cfg.trace, "trace", false, "enable trace logging")
	fs.UintVar(&cfg.memLimit, "mem-limit", 0, "limit live allocations")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&showHelp, "help", false, "print usage and exit")

	if err := fs.Parse(argv); err != nil {
		fmt.Fprintln(os.Stderr, usage())
		return nil, nil, err
	}
	if showHelp {
		fmt.Println(usage())
		return nil, nil, nil
	}
	if showVersion {
		fmt.Println("plorth " + version)
		return nil, nil, nil
	}

	cfg.inline = inline
	cfg.imports = imports
	return &cfg, fs.Args(), nil
}

func usage() string {
	return `usage: plorth [options] [programfile] [arguments...]

  -c             check syntax only
  -e <source>    evaluate inline source (repeatable)
  -r <path>      import a module before running (repeatable)
  -f             fork to background if supported
  --version      print version and exit
  --help         print this message and exit
  --             end of options`
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type ioWriteNopCloser struct{ w *os.File }

func (w ioWriteNopCloser) Write(p []byte) (int, error) { return w.w.Write(p) }
func (w ioWriteNopCloser) Close() error                { return nil }
