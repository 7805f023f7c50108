package main

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2jira "github.com/alnah/go-md2jira"
	"github.com/alnah/go-md2jira/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Printf("md2jira %s\n", Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := config.Default()
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	opts := buildOptions(flags, cfg)
	conv := md2jira.NewConverter(opts...)

	if err := run(flags, cfg, conv, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildOptions translates flags and config into converter options.
func buildOptions(flags *cliFlags, cfg *config.Config) []md2jira.Option {
	var opts []md2jira.Option

	if (flags.verbose || cfg.Trace.Verbose) && !flags.quiet {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, md2jira.WithLogger(logger))
	}

	if len(cfg.Emoticons.Extra) > 0 {
		opts = append(opts, md2jira.WithEmoticons(cfg.Emoticons.Extra...))
	}

	if cfg.Code.NormalizeLanguages {
		opts = append(opts, md2jira.WithLanguageNormalization())
	}

	return opts
}
