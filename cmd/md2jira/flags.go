package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2jira command.
type cliFlags struct {
	config  string
	input   string
	output  string
	html    bool
	verbose bool
	quiet   bool
	version bool
}

// parseFlags parses command-line arguments. args includes the program name.
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2jira", flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&flags.input, "input", "i", "", "input file (default: stdin)")
	fs.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&flags.html, "html", false, "treat input as a rich HTML document")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "emit stage tracing to stderr")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-output messages")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return flags, nil
}
