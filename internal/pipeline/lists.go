package pipeline

import (
	"log/slog"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Ordered list item in markdown numbering ("1. text")
	orderedItemMarker = regexp.MustCompile(`^\d+\.\s+`)

	// Unordered list item, space required after the marker so "**bold**"
	// and "---" are not mistaken for bullets
	bulletItem = regexp.MustCompile(`^\s*[-*+]\s+`)
)

// Indentation tiers, measured in space-equivalents.
const (
	// nestedBulletWidth is the indentation at which a top-level bullet run
	// becomes a second-level "**" item.
	nestedBulletWidth = 2

	// deepSubItemWidth is the indentation at which a sub-item under an
	// ordered item becomes "#**" instead of "#*".
	deepSubItemWidth = 6

	// tabWidth makes a tab count as the deeper tier on its own.
	tabWidth = 6
)

// nestedBulletToken stands in for a depth-2 bullet marker ("** ") until every
// other rule has run; emitting the asterisks directly would collide with the
// bold-emphasis rewrite.
const nestedBulletToken = "\x00bullet2\x00"

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ResolveNestedBullets substitutes the depth-2 bullet sentinel back to Jira
// "** " syntax. Must run after all other line rules.
func ResolveNestedBullets(text string) string {
	return strings.ReplaceAll(text, nestedBulletToken, "** ")
}

// ListNormalizer rewrites list constructs into Jira list syntax, flattening
// nesting into prefix-depth markers and removing blank lines inside a run.
type ListNormalizer struct {
	Logger *slog.Logger
}

// NormalizeLists returns a new line sequence with every recognizable list
// construct converted. An ordered item ("1. text" or "# text") starts a run;
// the run greedily consumes following bullet lines as "#*"/"#**" sub-items,
// skipping interior blank lines. A "---" line terminates the run and forces
// one blank line before it. Bullets outside a run stay "*" at depth 1 or move
// to the depth-2 sentinel when indented two or more space-equivalents.
func (n *ListNormalizer) NormalizeLists(lines []string) []string {
	out := make([]string, 0, len(lines))

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case isOrderedItem(trimmed):
			out = append(out, "# "+orderedItemPayload(trimmed))
			next, terminatedByRule := n.consumeSubItems(lines, i+1, &out)
			if terminatedByRule {
				// Blank line between the run and the rule, so Jira does not
				// glue the rule onto the last item.
				out = append(out, "")
			}
			i = next

		case bulletItem.MatchString(line) && !strings.HasPrefix(trimmed, "---"):
			content := strings.TrimSpace(trimmed[1:])
			if indentWidth(line) >= nestedBulletWidth {
				out = append(out, nestedBulletToken+content)
			} else {
				out = append(out, "* "+content)
			}
			i++

		default:
			out = append(out, line)
			i++
		}
	}

	if n.Logger != nil {
		n.Logger.Debug("lists normalized", "linesIn", len(lines), "linesOut", len(out))
	}
	return out
}

// consumeSubItems appends sub-item lines for the run starting at lines[start]
// and reports the index of the first unconsumed line, plus whether the run
// was terminated by a horizontal rule.
func (n *ListNormalizer) consumeSubItems(lines []string, start int, out *[]string) (next int, terminatedByRule bool) {
	j := start
	for j < len(lines) {
		line := lines[j]
		trimmed := strings.TrimSpace(line)

		if trimmed == "---" {
			return j, true
		}

		if isBulletMarker(trimmed) {
			content := strings.TrimSpace(trimmed[1:])
			if indentWidth(line) >= deepSubItemWidth {
				*out = append(*out, "#** "+content)
			} else {
				*out = append(*out, "#* "+content)
			}
			j++
			continue
		}

		if isOrderedItem(trimmed) {
			// Next ordered item; the outer loop handles it.
			return j, false
		}

		if trimmed == "" {
			// Blank line inside the run: drop it so Jira keeps the list.
			j++
			continue
		}

		return j, false
	}
	return j, false
}

// isOrderedItem reports whether a trimmed line is an ordered list item:
// either markdown numbering ("1. text") or a single leading "#". Two or more
// leading "#" is header syntax, and "#*" is an already-converted sub-item;
// both are left alone so converted output survives reconversion.
func isOrderedItem(trimmed string) bool {
	if strings.HasPrefix(trimmed, "#") &&
		!strings.HasPrefix(trimmed, "##") &&
		!strings.HasPrefix(trimmed, "#*") {
		return true
	}
	return orderedItemMarker.MatchString(trimmed)
}

// orderedItemPayload strips the ordered-item marker from a trimmed line.
func orderedItemPayload(trimmed string) string {
	if strings.HasPrefix(trimmed, "#") {
		return strings.TrimSpace(trimmed[1:])
	}
	return orderedItemMarker.ReplaceAllString(trimmed, "")
}

// isBulletMarker reports whether a trimmed line begins with a bullet rune.
// Inside a list run no space is required after the marker; the run consumes
// any "-", "*", or "+" line that is not a rule or an ordered item.
func isBulletMarker(trimmed string) bool {
	return strings.HasPrefix(trimmed, "*") ||
		strings.HasPrefix(trimmed, "-") ||
		strings.HasPrefix(trimmed, "+")
}

// indentWidth measures leading whitespace in space-equivalents. A tab counts
// as the deeper tier on its own.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width
		}
	}
	return width
}
