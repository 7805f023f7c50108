package pipeline

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Escape token formats. Tokens shield content from later, more general
// rewrite passes; NUL delimiters plus a per-line auto-incrementing index
// guarantee they collide with no substring a document could contain.
const (
	emoticonTokenFormat = "\x00emoticon:%d\x00"
	strongTokenFormat   = "\x00strong:%d\x00"
)

// jiraEmoticons lists the short parenthetical tokens Jira renders as icons.
// Each occurrence is escaped with a leading backslash so it survives as
// literal text. Matching is longest-first, so "(flagoff)" wins over "(flag)"
// and "(*r)" over "(*)".
var jiraEmoticons = []string{
	"(y)",       // thumbs up
	"(n)",       // thumbs down
	"(i)",       // information
	"(!)",       // warning
	"(?)",       // question
	"(on)",      // lightbulb on
	"(off)",     // lightbulb off
	"(*)",       // star, yellow
	"(*r)",      // star, red
	"(*g)",      // star, green
	"(*b)",      // star, blue
	"(*y)",      // star, yellow
	"(flag)",    // flag
	"(flagoff)", // flag off
	"(+)",       // plus
	"(-)",       // minus
	"(x)",       // cross
	"(/)",       // checkmark
}

// Precompiled regex patterns for performance.
var (
	// Strong emphasis must be extracted before italic so the two inner
	// asterisks of a bold span are never read as two italic delimiters.
	strongSpan = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpan = regexp.MustCompile(`\*([^*\n]+?)\*`)

	inlineCodeSpan = regexp.MustCompile("`(.+?)`")
	linkSpan       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strikeSpan     = regexp.MustCompile(`~~(.+?)~~`)

	// ATX headers h2-h6; a single "#" is ordered-list syntax, never h1.
	headerLine = regexp.MustCompile(`^(#{2,6}) (.+)$`)

	bulletLine     = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	orderedLine    = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	ruleLine       = regexp.MustCompile(`^---$`)
	blockquoteLine = regexp.MustCompile(`^>\s*(.+)$`)
)

// escapeToken pairs a sentinel with the literal text it resolves to.
type escapeToken struct {
	token   string
	literal string
}

// InlineRewriter applies intra-line substitutions to non-structural text.
// Create one with NewInlineRewriter; the emoticon catalog is fixed at
// construction and shared safely across goroutines.
type InlineRewriter struct {
	logger    *slog.Logger
	emoticons []string // longest-first
}

// NewInlineRewriter builds a rewriter whose escape catalog is the built-in
// Jira emoticon set extended with extra tokens, sorted longest-first.
func NewInlineRewriter(logger *slog.Logger, extra ...string) *InlineRewriter {
	catalog := make([]string, 0, len(jiraEmoticons)+len(extra))
	catalog = append(catalog, jiraEmoticons...)
	catalog = append(catalog, extra...)
	sort.SliceStable(catalog, func(i, j int) bool {
		return len(catalog[i]) > len(catalog[j])
	})
	return &InlineRewriter{logger: logger, emoticons: catalog}
}

// RewriteLine converts all inline constructs on one line of non-block text.
// Ordered sub-passes, each shielding its output from the next:
//
//  1. Emoticon tokens are replaced by sentinels holding their escaped form.
//     Runs first because some tokens contain the emphasis character.
//  2. Bold spans move to sentinels holding the Jira strong form, then the
//     italic rule runs on what remains, then bold sentinels resolve.
//  3. Remaining patterns: headers, inline code, leftover list markers,
//     links, horizontal rules, blockquotes, strikethrough.
//  4. Emoticon sentinels resolve to their escaped literal text.
func (r *InlineRewriter) RewriteLine(line string) string {
	rewritten, emoticons := r.escapeEmoticons(line)

	rewritten, strongs := extractStrongSpans(rewritten)
	rewritten = italicSpan.ReplaceAllString(rewritten, "_${1}_")
	rewritten = resolveTokens(rewritten, strongs)

	rewritten = applyLinePatterns(rewritten)

	return resolveTokens(rewritten, emoticons)
}

// escapeEmoticons replaces every cataloged emoticon with a sentinel holding
// its backslash-escaped form. Longest-first iteration keeps longer tokens
// from being shadowed by a shorter prefix token.
func (r *InlineRewriter) escapeEmoticons(line string) (string, []escapeToken) {
	var tokens []escapeToken
	for _, emoticon := range r.emoticons {
		if !strings.Contains(line, emoticon) {
			continue
		}
		token := fmt.Sprintf(emoticonTokenFormat, len(tokens))
		tokens = append(tokens, escapeToken{token: token, literal: `\` + emoticon})
		line = strings.ReplaceAll(line, emoticon, token)
		if r.logger != nil {
			r.logger.Debug("emoticon escaped", "token", emoticon)
		}
	}
	return line, tokens
}

// extractStrongSpans moves every "**text**" span to a sentinel holding the
// Jira strong form "*text*".
func extractStrongSpans(line string) (string, []escapeToken) {
	var tokens []escapeToken
	for {
		m := strongSpan.FindStringSubmatch(line)
		if m == nil {
			return line, tokens
		}
		token := fmt.Sprintf(strongTokenFormat, len(tokens))
		tokens = append(tokens, escapeToken{token: token, literal: "*" + m[1] + "*"})
		line = strings.Replace(line, m[0], token, 1)
	}
}

// resolveTokens substitutes sentinels back to their literal text.
func resolveTokens(line string, tokens []escapeToken) string {
	for _, t := range tokens {
		line = strings.ReplaceAll(line, t.token, t.literal)
	}
	return line
}

// applyLinePatterns runs the remaining pattern substitutions in a fixed
// order. Table rows and code fences never reach this point; they are
// consumed structurally by the block classifier.
func applyLinePatterns(line string) string {
	if m := headerLine.FindStringSubmatch(line); m != nil {
		line = fmt.Sprintf("h%d. %s", len(m[1]), m[2])
	}

	line = inlineCodeSpan.ReplaceAllString(line, "{{$1}}")

	// Leftover list markers; already-converted "**" and "#*" lines are
	// final and must not be rewritten again.
	if !strings.HasPrefix(line, "**") && !strings.HasPrefix(line, "#*") {
		line = bulletLine.ReplaceAllString(line, "* $1")
	}
	line = orderedLine.ReplaceAllString(line, "# $1")

	line = linkSpan.ReplaceAllString(line, "[$1|$2]")
	line = ruleLine.ReplaceAllString(line, "----")
	line = blockquoteLine.ReplaceAllString(line, "{quote}$1{quote}")
	line = strikeSpan.ReplaceAllString(line, "-$1-")

	return line
}
