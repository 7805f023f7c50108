package md2jira

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2jira/internal/extract"
	"github.com/alnah/go-md2jira/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ listNormalizer     = (*pipeline.ListNormalizer)(nil)
	_ blockConverter     = (*pipeline.BlockClassifier)(nil)
	_ plainTextExtractor = (*extract.Extractor)(nil)
)

// listNormalizer rewrites list constructs into Jira nesting syntax.
type listNormalizer interface {
	NormalizeLists(lines []string) []string
}

// blockConverter classifies lines into block constructs and rewrites them.
type blockConverter interface {
	ConvertBlocks(lines []string) []string
}

// plainTextExtractor recovers markdown text from a rich HTML document.
type plainTextExtractor interface {
	PlainText(doc string) string
}

// Converter transforms Markdown-flavored text into Jira wiki markup.
// The zero value is not usable; create one with NewConverter.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	logger             *slog.Logger
	extraEmoticons     []string
	normalizeLanguages bool

	lists     listNormalizer
	blocks    blockConverter
	extractor plainTextExtractor
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLogger, WithEmoticons).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	inline := pipeline.NewInlineRewriter(c.logger, c.extraEmoticons...)
	c.lists = &pipeline.ListNormalizer{Logger: c.logger}
	c.blocks = &pipeline.BlockClassifier{
		Logger:             c.logger,
		Inline:             inline,
		NormalizeLanguages: c.normalizeLanguages,
	}
	c.extractor = &extract.Extractor{Logger: c.logger}

	return c
}

// Convert rewrites a Markdown-flavored document as Jira wiki markup.
// Every input produces some output: malformed constructs degrade to
// passthrough rather than failing the conversion.
func (c *Converter) Convert(text string) string {
	lines := strings.Split(pipeline.NormalizeLineEndings(text), "\n")
	lines = c.lists.NormalizeLists(lines)
	lines = c.blocks.ConvertBlocks(lines)
	return pipeline.ResolveNestedBullets(strings.Join(lines, "\n"))
}

// ExtractPlainText recovers markdown-conventions text from a rich HTML
// document, such as an HTML clipboard payload. Malformed markup is tolerated
// by falling back through successively looser extraction strategies; the
// result is whatever text could be salvaged, possibly empty.
func (c *Converter) ExtractPlainText(doc string) string {
	return c.extractor.PlainText(doc)
}

// ConvertHTML extracts markdown from a rich HTML document and converts it to
// Jira wiki markup in one call.
func (c *Converter) ConvertHTML(doc string) string {
	return c.Convert(c.ExtractPlainText(doc))
}
