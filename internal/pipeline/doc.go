// Package pipeline implements the Markdown-to-Jira-markup conversion stages.
//
// The document model is flat: an ordered slice of lines, no parse tree.
// Three stages run in order over it:
//
//   - List normalization (ListNormalizer): ordered items, nested bullets,
//     and blank-line removal inside list runs.
//   - Block classification (BlockClassifier): fenced code blocks and tables,
//     each tracked with its own run state.
//   - Inline rewriting (InlineRewriter): emphasis, inline code, links,
//     strikethrough, headers, blockquotes, horizontal rules, and emoticon
//     escaping, applied to every line not consumed by a block rule.
//
// Content that must survive a later, more general rewrite (escaped emoticon
// tokens, resolved bold spans, deeply nested bullet markers) is shielded
// behind NUL-delimited sentinel tokens and substituted back once the
// remaining rules have run. Rich-document extraction is handled separately
// by internal/extract; this package only sees plain text.
package pipeline
