// Package config loads the optional YAML configuration for the md2jira CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2jira/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidEmoticon = errors.New("invalid emoticon token")
)

// MaxEmoticonLength bounds custom emoticon tokens; Jira's own catalog tops
// out at nine characters ("(flagoff)").
const MaxEmoticonLength = 12

// Config holds all configuration for the CLI.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Trace     TraceConfig     `yaml:"trace"`
	Emoticons EmoticonsConfig `yaml:"emoticons"`
	Code      CodeConfig      `yaml:"code"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Path string `yaml:"path"` // default input file (empty = stdin)
	HTML bool   `yaml:"html"` // always treat input as a rich HTML document
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // default output file (empty = stdout)
}

// TraceConfig defines stage-tracing options.
type TraceConfig struct {
	Verbose bool `yaml:"verbose"` // emit Debug-level stage tracing to stderr
}

// EmoticonsConfig extends the emoticon escape catalog.
type EmoticonsConfig struct {
	Extra []string `yaml:"extra"` // additional tokens to escape, e.g. "(heart)"
}

// CodeConfig defines code block options.
type CodeConfig struct {
	NormalizeLanguages bool `yaml:"normalizeLanguages"` // canonicalize fence language tags
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	for _, token := range c.Emoticons.Extra {
		if err := validateEmoticon(token); err != nil {
			return err
		}
	}
	return nil
}

// validateEmoticon checks that a custom token has the parenthetical shape
// the escape rule relies on.
func validateEmoticon(token string) error {
	if len(token) < 3 || len(token) > MaxEmoticonLength {
		return fmt.Errorf("%w: %q (must be 3 to %d characters)", ErrInvalidEmoticon, token, MaxEmoticonLength)
	}
	if !strings.HasPrefix(token, "(") || !strings.HasSuffix(token, ")") {
		return fmt.Errorf("%w: %q (must be parenthesized)", ErrInvalidEmoticon, token)
	}
	return nil
}
