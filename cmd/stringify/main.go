package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/dhoelle/stringify"
	"github.com/dhoelle/stringify/internal/conformance"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "fmt":
		err = fmtCmd(os.Args[2:])
	case "conformance":
		err = conformanceCmd(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	var failed errFailedCases
	switch {
	case errors.As(err, &failed):
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "stringify\n\nUsage:\n  stringify fmt [-indent N | -gap STR] [-keys k1,k2] [-escape standard|quotes] [-v] [file]\n  stringify conformance [-cases file.yaml] [-v]\n\nfmt reads a YAML or JSON document (stdin when no file is given) and writes it as JSON.")
}

// fmtOptions are the flags of the fmt subcommand.
type fmtOptions struct {
	indent  int
	gap     string
	keys    string
	escape  string
	verbose bool
}

func fmtCmd(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var opts fmtOptions
	fs.IntVar(&opts.indent, "indent", -1, "indent with N spaces (capped at 10)")
	fs.StringVar(&opts.gap, "gap", "", "indent with this string (truncated to 10 characters)")
	fs.StringVar(&opts.keys, "keys", "", "comma-separated allowlist of object keys")
	fs.StringVar(&opts.escape, "escape", "standard", "string escaping: standard or quotes")
	fs.BoolVar(&opts.verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)

	log, err := setupLogging(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := opts.config(term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	name := "stdin"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	log.Debug("read input", zap.String("source", name), zap.Int("bytes", len(data)))

	v, err := stringify.FromYAML(data)
	if err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}
	text, ok, err := stringify.Stringify(v, cfg)
	if err != nil {
		return fmt.Errorf("stringify: %w", err)
	}
	if !ok {
		log.Warn("document produces no output", zap.String("source", name), zap.Stringer("kind", v.Kind()))
		return nil
	}
	fmt.Println(text)
	return nil
}

// config builds the encoder configuration. Without an explicit indentation,
// output to a terminal is indented with two spaces.
func (o fmtOptions) config(tty bool) (*stringify.Config, error) {
	cfg := &stringify.Config{}

	switch {
	case o.indent >= 0 && o.gap != "":
		return nil, errors.New("-indent and -gap are mutually exclusive")
	case o.indent >= 0:
		cfg.Indent = stringify.Spaces(o.indent)
	case o.gap != "":
		cfg.Indent = stringify.Gap(o.gap)
	case tty:
		cfg.Indent = stringify.Spaces(2)
	}

	if o.keys != "" {
		cfg.Replacer = stringify.KeyAllowlist(splitCSV(o.keys))
	}

	switch o.escape {
	case "standard":
		cfg.Escaping = stringify.EscapeStandard
	case "quotes":
		cfg.Escaping = stringify.EscapeQuotesOnly
	default:
		return nil, fmt.Errorf("unknown -escape value %q", o.escape)
	}
	return cfg, nil
}

func conformanceCmd(args []string) error {
	fs := flag.NewFlagSet("conformance", flag.ExitOnError)
	var casesFile string
	var verbose bool
	fs.StringVar(&casesFile, "cases", "", "YAML file of cases (default: built-in suite)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)

	log, err := setupLogging(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var cases []conformance.Case
	if casesFile == "" {
		cases, err = conformance.Default()
	} else {
		var data []byte
		data, err = os.ReadFile(casesFile)
		if err != nil {
			return fmt.Errorf("read cases: %w", err)
		}
		cases, err = conformance.Load(data)
	}
	if err != nil {
		return err
	}

	report := conformance.Run(cases)
	printReport(os.Stdout, report)
	if n := report.Failed(); n > 0 {
		return errFailedCases{failed: n}
	}
	return nil
}

// errFailedCases reports failing conformance cases. The report already
// describes them, so main only sets the exit status.
type errFailedCases struct {
	failed int
}

func (e errFailedCases) Error() string {
	return fmt.Sprintf("%d conformance cases failed", e.failed)
}

// setupLogging installs a logger in the stringify packages: a development
// logger when verbose, otherwise one that only reports warnings.
func setupLogging(verbose bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		log, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	stringify.SetLogger(log.Named("stringify"))
	conformance.SetLogger(log.Named("conformance"))
	return log, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
