package sorter

import "regexp"

// importPattern matches a single static import statement, with or without a
// binding clause, including named-binding blocks that span several lines.
// The character classes forbid quotes and semicolons between the keyword and
// the path literal so that a match can never swallow a neighboring
// statement. Dynamic import() calls are excluded by rejecting parentheses
// ahead of the binding block.
var importPattern = regexp.MustCompile(`\bimport\b[^'"{};()]*(?:\{[^{}]*\}[^'";]*)?['"][^'"]+['"][ \t]*;?`)

// Extract scans raw source text and returns every substring that looks like
// an import statement, in order of appearance. Text that does not match is
// discarded. Extract never fails; an input without imports yields an empty
// slice.
func Extract(text string) []string {
	return importPattern.FindAllString(text, -1)
}

// ExtractSpans returns the byte offsets of the statements Extract would
// report, as start/end pairs into text.
func ExtractSpans(text string) [][]int {
	return importPattern.FindAllStringIndex(text, -1)
}
