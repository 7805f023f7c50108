// Package md2jira converts Markdown-flavored text, as emitted by AI coding
// assistants, into Jira wiki markup.
//
// # Quick Start
//
// Create a converter and feed it a document:
//
//	conv := md2jira.NewConverter()
//	jira := conv.Convert("## Status\n\n1. First\n   - detail")
//	fmt.Println(jira)
//	// h2. Status
//	//
//	// # First
//	// #* detail
//
// Convert is a pure function of its input: it never fails, never performs
// I/O, and a single Converter is safe for concurrent use.
//
// # Conversion Pipeline
//
// The conversion runs three line-oriented stages:
//
//  1. List normalization: ordered items become "#" lines, nested bullets
//     become "#*"/"#**" lines, and blank lines inside a list run are removed.
//  2. Block classification: fenced code blocks become {code}/{code:lang}
//     sections copied verbatim, table rows are re-piped and separator rows
//     dropped.
//  3. Inline rewriting: emphasis, inline code, links, strikethrough, headers,
//     blockquotes, and horizontal rules, with Jira emoticon tokens like (y)
//     escaped so the wiki renderer leaves them as text.
//
// Malformed input degrades to passthrough; there is no error path.
//
// # Rich Documents
//
// When the source is an HTML clipboard payload rather than plain text, use
// ExtractPlainText to recover the markdown (editors such as Cursor attach the
// raw source in data-markdown-raw attributes), or ConvertHTML to extract and
// convert in one call:
//
//	jira := conv.ConvertHTML(htmlPayload)
//
// Extraction tolerates malformed markup by falling back through successively
// looser strategies and returns whatever text could be salvaged.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2jira.NewConverter(
//	    md2jira.WithLogger(logger),          // Debug-level stage tracing
//	    md2jira.WithEmoticons("(heart)"),    // extend the escape catalog
//	    md2jira.WithLanguageNormalization(), // canonicalize fence languages
//	)
package md2jira
