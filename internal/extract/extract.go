// Package extract recovers markdown-conventions text from rich HTML
// documents, such as HTML clipboard payloads produced by editors.
//
// Extraction never fails. It walks three successively looser tiers: a strict
// XML parse collecting data-markdown-raw attributes, a tolerant HTML parse
// that scans the same attributes and then recognizable block elements, and a
// final regex scavenge. Whatever text could be salvaged is returned,
// possibly empty.
package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// rawMarkdownAttr is the attribute editors use to carry the raw markdown
// source of a rendered block.
const rawMarkdownAttr = "data-markdown-raw"

// Precompiled queries and patterns.
var (
	rawMarkdownQuery = xpath.MustCompile(`//*[@` + rawMarkdownAttr + `]`)

	rawMarkdownAttrPattern = regexp.MustCompile(rawMarkdownAttr + `="([^"]*)"`)
	headerElementPattern   = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	htmlTagPattern         = regexp.MustCompile(`<[^>]+>`)
)

// entityDecoder resolves the entities that commonly survive into attribute
// text pulled out by regex, where no parser has decoded them.
var entityDecoder = strings.NewReplacer(
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&#39;", "'",
	"&apos;", "'",
	"&#10;", "\n",
	"&amp;", "&",
)

// Extractor pulls markdown text out of rich HTML documents.
type Extractor struct {
	Logger *slog.Logger
}

// PlainText extracts markdown-conventions text from doc. Clipboard-format
// envelopes ("Version:..." headers before the <html> tag) are trimmed first.
func (e *Extractor) PlainText(doc string) string {
	doc = trimClipboardEnvelope(doc)

	// Strict tier: a well-formed document with raw-markdown attributes.
	if root, err := xmlquery.Parse(strings.NewReader(doc)); err == nil {
		if sections := rawMarkdownSections(root); len(sections) > 0 {
			e.debug("extracted raw markdown attributes", "tier", "strict", "sections", len(sections))
			return strings.Join(sections, "\n\n")
		}
	} else {
		e.debug("strict parse failed", "error", err)
	}

	// Lenient tier: the HTML parser accepts arbitrarily malformed markup.
	if node, err := html.Parse(strings.NewReader(doc)); err == nil {
		if sections := rawMarkdownSectionsHTML(node); len(sections) > 0 {
			e.debug("extracted raw markdown attributes", "tier", "lenient", "sections", len(sections))
			return strings.Join(sections, "\n\n")
		}
		if text := markdownFromTree(node); text != "" {
			e.debug("extracted block elements", "tier", "lenient", "chars", len(text))
			return text
		}
	}

	return e.scavenge(doc)
}

// trimClipboardEnvelope cuts a CF_HTML style clipboard header ("Version:..."
// plus offsets) down to the document itself.
func trimClipboardEnvelope(doc string) string {
	if !strings.HasPrefix(doc, "Version:") {
		return doc
	}
	if idx := strings.Index(doc, "<html>"); idx != -1 {
		return doc[idx:]
	}
	return doc
}

// rawMarkdownSections collects non-empty data-markdown-raw attribute values
// in document order.
func rawMarkdownSections(root *xmlquery.Node) []string {
	var sections []string
	for _, node := range xmlquery.QuerySelectorAll(root, rawMarkdownQuery) {
		if raw := strings.TrimSpace(node.SelectAttr(rawMarkdownAttr)); raw != "" {
			sections = append(sections, raw)
		}
	}
	return sections
}

// rawMarkdownSectionsHTML is the attribute scan over a tolerant HTML parse.
func rawMarkdownSectionsHTML(root *html.Node) []string {
	var sections []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == rawMarkdownAttr {
					if raw := strings.TrimSpace(attr.Val); raw != "" {
						sections = append(sections, raw)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return sections
}

// markdownFromTree converts recognizable block elements to markdown parts.
// This is a salvage pass, not a faithful HTML-to-markdown conversion: each
// element contributes its flattened text with the obvious marker.
func markdownFromTree(root *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if md := headingMarkdown(n); md != "" {
					parts = append(parts, md)
				}
			case "p", "blockquote":
				if text := innerText(n); text != "" {
					if n.Data == "blockquote" {
						text = "> " + text
					}
					parts = append(parts, text)
				}
			case "strong", "b":
				if text := innerText(n); text != "" {
					parts = append(parts, "**"+text+"**")
				}
			case "em", "i":
				if text := innerText(n); text != "" {
					parts = append(parts, "*"+text+"*")
				}
			case "code":
				if text := innerText(n); text != "" {
					parts = append(parts, "`"+text+"`")
				}
			case "ul":
				for _, item := range listItems(n) {
					parts = append(parts, "- "+item)
				}
			case "ol":
				for i, item := range listItems(n) {
					parts = append(parts, fmt.Sprintf("%d. %s", i+1, item))
				}
			case "a":
				text := innerText(n)
				href := attrValue(n, "href")
				switch {
				case text != "" && href != "":
					parts = append(parts, "["+text+"]("+href+")")
				case text != "":
					parts = append(parts, text)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, "\n\n")
}

// headingMarkdown renders an h1-h6 element, preserving bold styling carried
// either by a nested strong/b element or by editor style attributes.
func headingMarkdown(n *html.Node) string {
	text := innerText(n)
	if text == "" {
		return ""
	}
	level := int(n.Data[1] - '0')
	hashes := strings.Repeat("#", level)
	if hasBoldStyling(n) {
		return hashes + " **" + text + "**"
	}
	return hashes + " " + text
}

// hasBoldStyling reports whether the element or any descendant carries bold
// markup or bold editor styling.
func hasBoldStyling(n *html.Node) bool {
	if n.Type == html.ElementNode {
		if n.Data == "strong" || n.Data == "b" {
			return true
		}
		if strings.Contains(attrValue(n, "class"), "bold") {
			return true
		}
		style := attrValue(n, "style")
		if strings.Contains(style, "font-weight: 600") || strings.Contains(style, "font-weight:600") {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasBoldStyling(c) {
			return true
		}
	}
	return false
}

// listItems returns the trimmed text of each li descendant.
func listItems(n *html.Node) []string {
	var items []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "li" {
			if text := innerText(node); text != "" {
				items = append(items, text)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return items
}

// innerText flattens all descendant text nodes and trims the result.
func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// scavenge is the last tier: regex extraction of raw-markdown attributes,
// then of header element text, from markup no parser accepted.
func (e *Extractor) scavenge(doc string) string {
	var sections []string
	for _, m := range rawMarkdownAttrPattern.FindAllStringSubmatch(doc, -1) {
		if cleaned := strings.TrimSpace(entityDecoder.Replace(m[1])); cleaned != "" {
			sections = append(sections, cleaned)
		}
	}
	if len(sections) > 0 {
		e.debug("scavenged raw markdown attributes", "sections", len(sections))
		return strings.Join(sections, "\n\n")
	}

	var parts []string
	for _, m := range headerElementPattern.FindAllStringSubmatch(doc, -1) {
		body := m[2]
		text := strings.TrimSpace(entityDecoder.Replace(htmlTagPattern.ReplaceAllString(body, "")))
		if text == "" {
			continue
		}
		hashes := strings.Repeat("#", int(m[1][0]-'0'))
		if strings.Contains(body, "font-weight: 600") || strings.Contains(body, "markdown-bold-text") {
			parts = append(parts, hashes+" **"+text+"**")
		} else {
			parts = append(parts, hashes+" "+text)
		}
	}
	e.debug("scavenged header elements", "headers", len(parts))
	return strings.Join(parts, "\n\n")
}

func (e *Extractor) debug(msg string, args ...any) {
	if e.Logger != nil {
		e.Logger.Debug(msg, args...)
	}
}
