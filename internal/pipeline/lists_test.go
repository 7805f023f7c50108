package pipeline

import (
	"reflect"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2",
			expected: "line1\nline2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizeLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "numbered list",
			input:    []string{"1. first item", "2. second item", "3. third item"},
			expected: []string{"# first item", "# second item", "# third item"},
		},
		{
			name:     "hash format list unchanged",
			input:    []string{"# first item", "# second item"},
			expected: []string{"# first item", "# second item"},
		},
		{
			name:     "indented dash sub-items",
			input:    []string{"1. Item", "   - sub"},
			expected: []string{"# Item", "#* sub"},
		},
		{
			name:     "six space indentation nests deeper",
			input:    []string{"1. Item", "      - deep sub"},
			expected: []string{"# Item", "#** deep sub"},
		},
		{
			name:     "tab indentation counts as the deeper tier",
			input:    []string{"1. Item", "\t- sub"},
			expected: []string{"# Item", "#** sub"},
		},
		{
			name:     "mixed bullet markers under ordered item",
			input:    []string{"1. Item", "   * a", "   - b", "   + c"},
			expected: []string{"# Item", "#* a", "#* b", "#* c"},
		},
		{
			name:     "unindented asterisk sub-items consumed by the run",
			input:    []string{"# First item", "* sub 1.1", "* sub 1.2"},
			expected: []string{"# First item", "#* sub 1.1", "#* sub 1.2"},
		},
		{
			name:     "blank lines between ordered items removed",
			input:    []string{"1. First", "   - sub 1.1", "", "2. Second", "   - sub 2.1"},
			expected: []string{"# First", "#* sub 1.1", "# Second", "#* sub 2.1"},
		},
		{
			name:     "blank lines within sub-items removed",
			input:    []string{"1. First", "   - sub 1.1", "", "   - sub 1.2"},
			expected: []string{"# First", "#* sub 1.1", "#* sub 1.2"},
		},
		{
			name:     "blank line before trailing paragraph dropped with the run",
			input:    []string{"1. First", "   - sub", "", "paragraph"},
			expected: []string{"# First", "#* sub", "paragraph"},
		},
		{
			name:     "horizontal rule terminates run with blank line",
			input:    []string{"1. Item one", "   - sub item", "", "---"},
			expected: []string{"# Item one", "#* sub item", "", "---"},
		},
		{
			name:     "top-level bullet list",
			input:    []string{"- Item 1", "- Item 2"},
			expected: []string{"* Item 1", "* Item 2"},
		},
		{
			name:     "indented bullets use the nested sentinel",
			input:    []string{"- Item", "  - Sub-item"},
			expected: []string{"* Item", nestedBulletToken + "Sub-item"},
		},
		{
			name:     "rule line is not a bullet",
			input:    []string{"---"},
			expected: []string{"---"},
		},
		{
			name:     "headers left for the line classifier",
			input:    []string{"## This is a header", "# This is a list item", "### Another header"},
			expected: []string{"## This is a header", "# This is a list item", "### Another header"},
		},
		{
			name:     "converted sub-items survive renormalization",
			input:    []string{"# Item", "#* sub", "#** deep"},
			expected: []string{"# Item", "#* sub", "#** deep"},
		},
		{
			name:     "plain text passes through",
			input:    []string{"just a paragraph", "", "another one"},
			expected: []string{"just a paragraph", "", "another one"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := &ListNormalizer{}
			got := n.NormalizeLists(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResolveNestedBullets(t *testing.T) {
	t.Parallel()

	got := ResolveNestedBullets(nestedBulletToken + "Sub-item")
	if got != "** Sub-item" {
		t.Errorf("ResolveNestedBullets() = %q, want %q", got, "** Sub-item")
	}
}

func TestIndentWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected int
	}{
		{name: "no indentation", line: "- x", expected: 0},
		{name: "three spaces", line: "   - x", expected: 3},
		{name: "tab counts as deeper tier", line: "\t- x", expected: 6},
		{name: "tab plus space", line: "\t - x", expected: 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := indentWidth(tt.line); got != tt.expected {
				t.Errorf("indentWidth(%q) = %d, want %d", tt.line, got, tt.expected)
			}
		})
	}
}
