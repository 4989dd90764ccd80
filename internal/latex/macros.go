// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strings"
)

// macroStartRe matches the commands that introduce a macro definition.
var macroStartRe = regexp.MustCompile(`\\(newcommand|renewcommand|providecommand|def)\b`)

// resumeHintRes mark a definition as resume-template machinery. The hints are
// matched against a bounded window starting at the definition so that only
// list- and resume-related macros are stripped, never general-purpose ones.
var resumeHintRes = []*regexp.Regexp{
	regexp.MustCompile(`\\resume[A-Za-z]+`),
	regexp.MustCompile(`\\begin\{itemize\}`),
	regexp.MustCompile(`\\end\{itemize\}`),
	regexp.MustCompile(`\\labelitemi`),
}

// hintWindow bounds how far into a definition the resume hints are searched.
const hintWindow = 500

// strippedMarker replaces each removed definition so the surrounding line
// structure stays readable.
const strippedMarker = "% (stripped macro definition)\n"

// StripMacroDefinitions removes \newcommand, \renewcommand, \providecommand,
// and \def blocks that define resume-template machinery, leaving a comment
// marker in each one's place. The whole definition is consumed: the command
// name, any optional [..] arguments, and the balanced {..} body, so partial
// bodies never leak into the output. Returns the rewritten text and the
// number of stripped definitions.
func StripMacroDefinitions(text string) (string, int) {
	var b strings.Builder
	b.Grow(len(text))

	stripped := 0
	i := 0
	for i < len(text) {
		loc := macroStartRe.FindStringIndex(text[i:])
		if loc == nil {
			b.WriteString(text[i:])
			break
		}
		start, end := i+loc[0], i+loc[1]
		b.WriteString(text[i:start])

		window := text[start:min(start+hintWindow, len(text))]
		if !matchesResumeHint(window) {
			b.WriteString(text[start:end])
			i = end
			continue
		}

		defEnd, ok := skipDefinition(text, end)
		if !ok {
			// No balanced body anywhere after the command: comment out the
			// definition line only.
			defEnd = len(text)
			if nl := strings.IndexByte(text[end:], '\n'); nl >= 0 {
				defEnd = end + nl + 1
			}
		}
		i = defEnd
		b.WriteString(strippedMarker)
		stripped++
	}

	return b.String(), stripped
}

func matchesResumeHint(window string) bool {
	for _, re := range resumeHintRes {
		if re.MatchString(window) {
			return true
		}
	}
	return false
}

// skipDefinition consumes a macro definition starting right after the
// defining command: optional *, the macro name as {\name} or \name, any
// number of [..] option groups (and, for \def, raw parameter text), then the
// first balanced {..} body. Returns the index just past the body and whether
// a body was found at all.
func skipDefinition(text string, i int) (int, bool) {
	i = skipSpaces(text, i)
	if i < len(text) && text[i] == '*' {
		i++
	}
	i = skipSpaces(text, i)

	// Macro name.
	if i < len(text) {
		switch text[i] {
		case '{':
			i = skipBalanced(text, i, '{', '}')
		case '\\':
			i++
			for i < len(text) && isLetter(text[i]) {
				i++
			}
		}
	}

	// Option groups and \def parameter text, up to the body.
	for i < len(text) {
		switch text[i] {
		case '[':
			i = skipBalanced(text, i, '[', ']')
		case '{':
			return skipBalanced(text, i, '{', '}'), true
		default:
			i++
		}
	}
	return i, false
}

// skipBalanced consumes a balanced group assuming text[i] is the opener.
// Returns the index just past the matching closer, or len(text) when the
// group never closes.
func skipBalanced(text string, i int, opener, closer byte) int {
	depth := 0
	for ; i < len(text); i++ {
		switch text[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return i
}

// matchingBrace returns the index of the } matching the { at open, or -1
// when the group never closes.
func matchingBrace(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func skipSpaces(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// listMarkerReplacements rewrites the paired resume list wrappers. Applied
// before item rewriting so the \resumeItemList names never shadow
// \resumeItem.
var listMarkerReplacements = [...]struct{ from, to string }{
	{`\resumeSubHeadingListStart`, `\begin{itemize}`},
	{`\resumeSubHeadingListEnd`, `\end{itemize}`},
	{`\resumeItemListStart`, `\begin{itemize}`},
	{`\resumeItemListEnd`, `\end{itemize}`},
}

// itemInvocationRe finds \resumeItem{ and \resumeSubItem{ openers; the
// argument itself is extracted with a balanced scan so nested braces
// survive.
var itemInvocationRe = regexp.MustCompile(`\\resume(?:Sub)?Item\{`)

// subheadingRe matches the four-argument subheading invocation; arguments
// may span lines.
var subheadingRe = regexp.MustCompile(`(?s)\\resumeSubheading\s*\{(.*?)\}\s*\{(.*?)\}\s*\{(.*?)\}\s*\{(.*?)\}`)

const subheadingReplacement = `\item \textbf{${1}}\hfill\textit{${2}}\\\textit{${3}}\hfill\textit{${4}}`

// ReplaceInvocations rewrites resume macro invocations into plain list
// LaTeX: list wrappers become itemize environments, \resumeItem and
// \resumeSubItem become \item lines (opening an itemize first when invoked
// outside any itemize), and \resumeSubheading becomes a bold/italic \item
// line. Returns the rewritten text and the total replacement count.
func ReplaceInvocations(text string) (string, int) {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))

	count := 0
	depth := 0 // itemize nesting
	for _, line := range lines {
		for _, r := range listMarkerReplacements {
			if n := strings.Count(line, r.from); n > 0 {
				line = strings.ReplaceAll(line, r.from, r.to)
				count += n
			}
		}

		depth += strings.Count(line, `\begin{itemize}`)
		if ends := strings.Count(line, `\end{itemize}`); ends > 0 {
			depth -= ends
			if depth < 0 {
				depth = 0
			}
		}

		rewritten, n := rewriteItemLine(line)
		if n > 0 {
			if depth == 0 {
				out = append(out, `\begin{itemize}`)
				depth++
			}
			count += n
		}
		out = append(out, rewritten)
	}

	result := joinLines(out)

	if n := len(subheadingRe.FindAllStringIndex(result, -1)); n > 0 {
		result = subheadingRe.ReplaceAllString(result, subheadingReplacement)
		count += n
	}

	return result, count
}

// rewriteItemLine replaces every balanced \resumeItem{...} and
// \resumeSubItem{...} on one line with \item <arg>. An opener whose argument
// never closes on the line is left untouched.
func rewriteItemLine(line string) (string, int) {
	n := 0
	for {
		loc := itemInvocationRe.FindStringIndex(line)
		if loc == nil {
			return line, n
		}
		openIdx := loc[1] - 1
		closeIdx := matchingBrace(line, openIdx)
		if closeIdx < 0 {
			// Unterminated argument; leave the line alone.
			return line, n
		}
		arg := line[openIdx+1 : closeIdx]
		line = line[:loc[0]] + `\item ` + arg + line[closeIdx+1:]
		n++
	}
}
