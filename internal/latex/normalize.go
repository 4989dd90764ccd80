// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex rewrites resume-flavored LaTeX into plain LaTeX that an
// external converter can digest, and audits brace balance before conversion
// is allowed. Implements: prd002-normalization (R1-R5), prd003-braces (R1-R4);
//
//	docs/ARCHITECTURE § Normalization, § Brace Audit.
package latex

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-press/pkg/types"
)

// glyphInputRe matches a line whose only content is \input{glyphtounicode}
// (with or without the .tex suffix). Pandoc chokes on the bare \input when
// the file is not shipped alongside the source.
var glyphInputRe = regexp.MustCompile(`(?m)^\s*\\input\{glyphtounicode(\.tex)?\}\s*$`)

// guardedGlyphInput is the drop-in replacement: loads the file when present,
// silently proceeds when absent.
const guardedGlyphInput = `\InputIfFileExists{glyphtounicode.tex}{}{} % guarded for Pandoc`

// Normalize runs the full rewrite pipeline in stage order: guard fragile
// inputs, strip resume macro definitions, replace their invocations, close
// dangling environments, and seed empty lists. The result always ends with a
// single trailing newline. Normalization is deterministic: equal input yields
// equal output.
func Normalize(src string) (string, types.NormalizeStats) {
	var stats types.NormalizeStats

	out, n := GuardGlyphInputs(src)
	stats.GuardedInputs = n

	out, n = StripMacroDefinitions(out)
	stats.StrippedMacros = n

	out, n = ReplaceInvocations(out)
	stats.ReplacedInvocations = n

	out, inserted, unmatched := BalanceEnvironments(out)
	stats.InsertedEnvEnds = inserted
	stats.UnmatchedEnvEnds = unmatched

	out, n = EnsureListItems(out)
	stats.InsertedItems = n

	return out, stats
}

// GuardGlyphInputs replaces bare glyphtounicode input lines with a guarded
// form and returns the rewritten text with the replacement count.
func GuardGlyphInputs(text string) (string, int) {
	n := len(glyphInputRe.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return glyphInputRe.ReplaceAllLiteralString(text, guardedGlyphInput), n
}

// splitLines splits on newlines the way the line-oriented stages expect:
// a trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// joinLines is the inverse of splitLines; output ends with one newline.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// isCommentLine reports whether the line is a pure LaTeX comment.
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "%")
}
