package pipeline

import (
	"regexp"
	"strings"
)

// tableSeparatorRow matches markdown alignment rows ("|---|---|"), which are
// dropped: Jira tables have no separator row.
var tableSeparatorRow = regexp.MustCompile(`^\|[\s\-|]+\|$`)

// convertTableRow strips a row's outer pipes, trims the cells, and rejoins
// them with Jira delimiters. A row is a header row when its source contains
// a literal "||" anywhere, or when it is immediately followed by a markdown
// separator row; every other row is a data row. Rows without both outer
// pipes pass through unchanged.
func convertTableRow(line string, beforeSeparator bool) string {
	content := strings.TrimSpace(line)
	if !strings.HasPrefix(content, "|") || !strings.HasSuffix(content, "|") || len(content) < 2 {
		return line
	}

	cells := strings.Split(content[1:len(content)-1], "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	if strings.Contains(line, "||") || beforeSeparator {
		return "||" + strings.Join(cells, "||") + "||"
	}
	return "|" + strings.Join(cells, "|") + "|"
}

// separatorFollows reports whether the line after lines[i] is a markdown
// separator row, which marks lines[i] as the table's header row.
func separatorFollows(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	next := strings.TrimSpace(lines[i+1])
	return strings.Contains(next, "-") && tableSeparatorRow.MatchString(next)
}
