// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"regexp"
)

// balancedEnvs is the set of environments whose begin/end pairing is
// repaired. Math and verbatim environments are deliberately absent: their
// content is opaque and inserting an \end could change meaning.
var balancedEnvs = map[string]bool{
	"itemize":     true,
	"enumerate":   true,
	"description": true,
	"tabular":     true,
	"tabular*":    true,
	"center":      true,
	"flushleft":   true,
	"flushright":  true,
	"quote":       true,
	"quotation":   true,
	"list":        true,
}

var (
	beginEnvRe  = regexp.MustCompile(`\\begin\{([A-Za-z*]+)\}`)
	endEnvRe    = regexp.MustCompile(`\\end\{([A-Za-z*]+)\}`)
	endDocRe    = regexp.MustCompile(`^\s*\\end\{document\}\s*$`)
	listBeginRe = regexp.MustCompile(`\\begin\{(itemize|enumerate)\}`)
	listEndRe   = regexp.MustCompile(`\\end\{(itemize|enumerate)\}`)
	itemLineRe  = regexp.MustCompile(`^\s*\\item\b`)
)

// BalanceEnvironments closes environments left open at the end of the
// document. A stack tracks \begin/\end pairs for the balanced set;
// pure-comment lines are skipped. An \end only pops the stack when it
// matches the innermost open environment; anything else is counted as
// unmatched and left in place, never removed. Missing \end lines are
// inserted in reverse stack order just before \end{document}, or appended
// when the document has no such line. Returns the rewritten text, the number
// of inserted ends, and the number of unmatched ends.
func BalanceEnvironments(text string) (string, int, int) {
	lines := splitLines(text)

	var stack []string
	unmatched := 0

	for _, line := range lines {
		if isCommentLine(line) {
			continue
		}
		for _, m := range beginEnvRe.FindAllStringSubmatch(line, -1) {
			if balancedEnvs[m[1]] {
				stack = append(stack, m[1])
			}
		}
		for _, m := range endEnvRe.FindAllStringSubmatch(line, -1) {
			if !balancedEnvs[m[1]] {
				continue
			}
			if len(stack) > 0 && stack[len(stack)-1] == m[1] {
				stack = stack[:len(stack)-1]
				continue
			}
			unmatched++
		}
	}

	if len(stack) == 0 {
		return joinLines(lines), 0, unmatched
	}

	missing := make([]string, 0, len(stack))
	for j := len(stack) - 1; j >= 0; j-- {
		missing = append(missing, fmt.Sprintf(`\end{%s}`, stack[j]))
	}

	insertAt := len(lines)
	for idx, line := range lines {
		if endDocRe.MatchString(line) {
			insertAt = idx
			break
		}
	}

	patched := make([]string, 0, len(lines)+len(missing))
	patched = append(patched, lines[:insertAt]...)
	patched = append(patched, missing...)
	patched = append(patched, lines[insertAt:]...)

	return joinLines(patched), len(missing), unmatched
}

// EnsureListItems inserts an \item line after a \begin{itemize} or
// \begin{enumerate} when no \item line appears before the next list \end.
// An empty list is a hard LaTeX error after the resume wrappers are
// rewritten, so a placeholder item keeps the document compilable. Returns
// the rewritten text and the insertion count.
func EnsureListItems(text string) (string, int) {
	lines := splitLines(text)
	inserted := 0

	for i := 0; i < len(lines); i++ {
		if !listBeginRe.MatchString(lines[i]) {
			continue
		}
		found := false
		for j := i + 1; j < len(lines) && !listEndRe.MatchString(lines[j]); j++ {
			if itemLineRe.MatchString(lines[j]) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		rest := append([]string{`\item`}, lines[i+1:]...)
		lines = append(lines[:i+1], rest...)
		inserted++
		i++ // step past the inserted item
	}

	return joinLines(lines), inserted
}
