// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strings"

	"github.com/pdiddy/resume-press/pkg/types"
)

// MaxReportedHotspots caps how many hotspots the human-readable report and
// the report artifact carry; the positional scan itself is unbounded.
const MaxReportedHotspots = 10

// Imbalance returns the residual brace depth of text: the count of { minus
// the count of }. Positive means unclosed opens, negative means stray
// closers, zero means balanced. The counter is a single left-to-right pass
// with no awareness of comment or verbatim syntax; a brace inside a comment
// counts like any other. That is a deliberate simplification, matched by the
// positional scan so the two never disagree.
func Imbalance(text string) int {
	return strings.Count(text, "{") - strings.Count(text, "}")
}

// Hotspots locates suspicious brace positions: every { that never receives a
// matching }, and every } met at depth zero. Lines and columns are 1-based;
// each hotspot carries its trimmed source line as context. Stray closers
// appear in document order followed by the unclosed opens in document order.
// Uses the same comment-unaware rule as Imbalance.
func Hotspots(text string) []types.BraceHotspot {
	type openBrace struct {
		line, col int
		context   string
	}

	var stack []openBrace
	var strays []types.BraceHotspot

	for lineNo, line := range strings.Split(text, "\n") {
		context := strings.TrimSpace(line)
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case '{':
				stack = append(stack, openBrace{line: lineNo + 1, col: col + 1, context: context})
			case '}':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
					continue
				}
				strays = append(strays, types.BraceHotspot{
					Line:    lineNo + 1,
					Column:  col + 1,
					Kind:    types.HotspotStrayClose,
					Context: context,
				})
			}
		}
	}

	out := strays
	for _, ob := range stack {
		out = append(out, types.BraceHotspot{
			Line:    ob.line,
			Column:  ob.col,
			Kind:    types.HotspotUnclosed,
			Context: ob.context,
		})
	}
	return out
}

// AutoFix appends exactly imbalance closing braces, one per line, just
// before \end{document} (at end of text when the document has no such line).
// It never removes or reorders existing braces, and it never repairs a
// negative imbalance; when imbalance is zero or negative the text is
// returned untouched. Returns the patched text and the number of braces
// inserted.
func AutoFix(text string, imbalance int) (string, int) {
	if imbalance <= 0 {
		return text, 0
	}

	lines := splitLines(text)

	insertAt := len(lines)
	for idx, line := range lines {
		if endDocRe.MatchString(line) {
			insertAt = idx
			break
		}
	}

	closers := make([]string, imbalance)
	for i := range closers {
		closers[i] = "}"
	}

	patched := make([]string, 0, len(lines)+imbalance)
	patched = append(patched, lines[:insertAt]...)
	patched = append(patched, closers...)
	patched = append(patched, lines[insertAt:]...)

	return joinLines(patched), imbalance
}
