package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// Built-in folders and output naming, used when neither a flag nor the
// config file sets them.
const (
	defaultInputDir  = "parse_data"
	defaultOutputDir = "output_data"
	defaultPrefix    = "output_"
)

// commonFlags holds logging and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// runFlags holds all command-line flags. Empty strings mean "not set".
type runFlags struct {
	common  commonFlags
	input   string
	output  string
	style   string
	dryRun  bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timings")
}

// parseFlags parses the command line. args[0] is the program name.
// Returns flag.ErrHelp after printing usage for -h/--help.
func parseFlags(args []string, env *Environment) (*runFlags, error) {
	fs := flag.NewFlagSet("simplex2docx", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &runFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "folder of .html reports")
	fs.StringVarP(&f.output, "output", "o", "", "folder for .docx documents")
	fs.StringVarP(&f.style, "style", "s", "", "Word style sheet name")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "parse and transform without writing")
	fs.BoolVar(&f.version, "version", false, "print version")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(env.Stderr) }

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	return f, nil
}
