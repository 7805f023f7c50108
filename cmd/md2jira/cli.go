package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-md2jira/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// outputFileMode is the permission set for files written by the CLI.
const outputFileMode = 0o644

// converter is the interface for the conversion service.
type converter interface {
	Convert(text string) string
	ConvertHTML(doc string) string
}

// run reads the source document, converts it, and delivers the result.
// Input comes from --input, the config file's input path, or stdin; output
// goes to --output, the config file's output path, or stdout.
func run(flags *cliFlags, cfg *config.Config, conv converter, stdin io.Reader, stdout io.Writer) error {
	text, err := readInput(flags, cfg, stdin)
	if err != nil {
		return err
	}

	var result string
	if flags.html || cfg.Input.HTML || looksLikeRichDocument(text) {
		result = conv.ConvertHTML(text)
	} else {
		result = conv.Convert(text)
	}

	return writeOutput(flags, cfg, stdout, result)
}

// readInput resolves the input source and reads it whole; the converter
// works on a single in-memory text blob.
func readInput(flags *cliFlags, cfg *config.Config, stdin io.Reader) (string, error) {
	path := flags.input
	if path == "" {
		path = cfg.Input.Path
	}

	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// writeOutput resolves the output destination and writes the result,
// terminated with a newline when one is missing.
func writeOutput(flags *cliFlags, cfg *config.Config, stdout io.Writer, result string) error {
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	path := flags.output
	if path == "" {
		path = cfg.Output.Path
	}

	if path == "" {
		if _, err := io.WriteString(stdout, result); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(result), outputFileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// looksLikeRichDocument sniffs HTML clipboard payloads: tagged markup, a
// clipboard-format envelope, or the raw-markdown attribute editors attach.
func looksLikeRichDocument(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<") ||
		strings.HasPrefix(trimmed, "Version:") ||
		strings.Contains(text, "data-markdown-raw")
}
