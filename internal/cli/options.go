// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"dnadiff-core/organism"
	"dnadiff-core/stream"

	"dnadiff/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	First  string
	Second string

	// Comparison
	ChunkSize   int
	Chromosomes int // expected per genome; 0 accepts any
	All         bool

	// Performance
	Threads int

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header

	// Misc
	LogLevel string
	Quiet    bool
	Version  bool
}

// Formats accepted by --output.
var Formats = []string{"text", "json", "jsonl"}

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: chromosome-by-chromosome genome diff

Version: %s

Usage: %s [flags] --first A.fa --second B.fa
       %s [flags] A.fa B.fa
`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers all flags on fs, parses argv and validates the result.
// Flags and the two genome paths may be given in any order.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.First, "first", "", "first genome FASTA, one record per chromosome, or '-' [*]")
	fs.StringVar(&opt.First, "a", "", "alias of --first")
	fs.StringVar(&opt.Second, "second", "", "second genome FASTA [*]")
	fs.StringVar(&opt.Second, "b", "", "alias of --second")

	fs.IntVar(&opt.ChunkSize, "chunk-size", stream.DefaultChunkSize, fmt.Sprintf("reader chunk size in bytes, 4 bases each [%d]", stream.DefaultChunkSize))
	fs.IntVar(&opt.Chromosomes, "chromosomes", organism.DefaultChromosomes, fmt.Sprintf("expected chromosomes per genome (0 = any) [%d]", organism.DefaultChromosomes))
	fs.BoolVar(&opt.All, "all", false, "compare the last (sex) chromosome even when the sexes differ [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "order output by chromosome [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.StringVar(&opt.LogLevel, "log-level", "warn", "log level: panic | fatal | error | warn | info | debug | trace [warn]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := splitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	for _, p := range posArgs {
		switch {
		case opt.First == "":
			opt.First = p
		case opt.Second == "":
			opt.Second = p
		default:
			return opt, fmt.Errorf("unexpected argument %q: two genomes already given", p)
		}
	}
	return opt, Validate(opt)
}

// Validate checks option values that flag parsing alone cannot reject.
func Validate(opt Options) error {
	if opt.First == "" || opt.Second == "" {
		return errors.New("two genomes are required: --first and --second (or two positional files)")
	}
	if opt.First == "-" && opt.Second == "-" {
		return errors.New("only one genome can be read from stdin")
	}
	if opt.ChunkSize < 1 {
		return errors.New("--chunk-size must be ≥ 1")
	}
	if opt.Chromosomes < 0 {
		return errors.New("--chromosomes must be ≥ 0")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	valid := false
	for _, f := range Formats {
		valid = valid || f == opt.Output
	}
	if !valid {
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	if _, err := logrus.ParseLevel(opt.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}
