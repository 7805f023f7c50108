package md2jira

import "log/slog"

// Option configures a Converter.
type Option func(*Converter)

// WithLogger routes per-stage trace events through the given logger at Debug
// level. Tracing is observability only; it never changes conversion output.
// Panics if logger is nil (programmer error, similar to time.NewTicker).
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("md2jira: WithLogger logger must be non-nil")
	}
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithEmoticons extends the catalog of Jira emoticon tokens that are escaped
// during conversion. Tokens are matched longest-first alongside the built-in
// catalog, so "(flagoff)" style tokens never lose to a shorter prefix.
func WithEmoticons(tokens ...string) Option {
	return func(c *Converter) {
		c.extraEmoticons = append(c.extraEmoticons, tokens...)
	}
}

// WithLanguageNormalization canonicalizes fence language tags through the
// chroma lexer registry, so "golang" and "js" emit as {code:go} and
// {code:javascript}. Off by default: tags pass through unchanged.
func WithLanguageNormalization() Option {
	return func(c *Converter) {
		c.normalizeLanguages = true
	}
}
