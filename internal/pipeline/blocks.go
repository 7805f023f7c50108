package pipeline

import (
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// codeFence is the fenced code block delimiter prefix.
const codeFence = "```"

// BlockClassifier consumes the normalized line sequence, maintains code-fence
// and table run state, and emits output lines. Lines not consumed by a block
// rule are delegated to the inline rewriter.
type BlockClassifier struct {
	Logger *slog.Logger
	Inline *InlineRewriter

	// NormalizeLanguages canonicalizes fence language tags through the
	// chroma lexer registry before emitting {code:<lang>}.
	NormalizeLanguages bool
}

// ConvertBlocks classifies each line and rewrites it. Code-fence content is
// copied verbatim so markup rules can never corrupt it; table separator rows
// are dropped. An unterminated fence simply runs to the end of the document.
func (c *BlockClassifier) ConvertBlocks(lines []string) []string {
	out := make([]string, 0, len(lines))
	inFence := false
	inTable := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, codeFence) {
			if inFence {
				out = append(out, "{code}")
				inFence = false
				continue
			}
			lang := strings.TrimSpace(trimmed[len(codeFence):])
			if lang != "" && c.NormalizeLanguages {
				lang = canonicalLanguage(lang)
			}
			if lang != "" {
				out = append(out, "{code:"+lang+"}")
			} else {
				out = append(out, "{code}")
			}
			if c.Logger != nil {
				c.Logger.Debug("code fence opened", "language", lang)
			}
			inFence = true
			continue
		}

		if inFence {
			out = append(out, line)
			continue
		}

		if strings.Contains(line, "|") && strings.HasPrefix(trimmed, "|") {
			if !inTable {
				inTable = true
				if c.Logger != nil {
					c.Logger.Debug("table started", "line", i)
				}
			}
			if trimmed == "|" || tableSeparatorRow.MatchString(trimmed) {
				// Separator rows have no Jira equivalent.
				continue
			}
			out = append(out, convertTableRow(line, separatorFollows(lines, i)))
			continue
		}
		inTable = false

		out = append(out, c.Inline.RewriteLine(line))
	}

	return out
}

// canonicalLanguage maps a fence language tag to the chroma lexer registry's
// canonical name, so aliases such as "golang" or "js" emit a consistent
// {code:<lang>} macro. Unknown tags pass through unchanged.
func canonicalLanguage(tag string) string {
	lexer := lexers.Get(tag)
	if lexer == nil {
		return tag
	}
	return strings.ToLower(lexer.Config().Name)
}
