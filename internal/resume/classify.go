// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/resume-press/pkg/types"
)

// defaultMaxTitleWords bounds how long the first paragraph may be and still
// count as the candidate name line.
const defaultMaxTitleWords = 6

// headingMaxLen is the longest cleaned text still considered for the
// title-case heading heuristic.
const headingMaxLen = 32

// sectionTitles are resume section names recognized as headings regardless
// of style.
var sectionTitles = map[string]bool{
	"profile":          true,
	"summary":          true,
	"experience":       true,
	"work experience":  true,
	"projects":         true,
	"skills":           true,
	"technical skills": true,
	"education":        true,
	"certifications":   true,
	"publications":     true,
	"awards":           true,
}

var numberMarkerRe = regexp.MustCompile(`^\d{1,3}[.)]\s+`)

// classify assigns a kind to every source paragraph. The first record
// becomes the title when it is short enough; section headings win over list
// markers; everything else is bullet, numbered, or plain body text.
func classify(records []sourceParagraph, maxTitleWords int) []types.ResumeParagraph {
	if maxTitleWords <= 0 {
		maxTitleWords = defaultMaxTitleWords
	}

	out := make([]types.ResumeParagraph, 0, len(records))
	for i, rec := range records {
		text := rec.text
		var kind types.ParagraphKind
		switch {
		case i == 0 && len(strings.Fields(text)) <= maxTitleWords:
			kind = types.KindTitle
		case isHeading(text, rec.styleName):
			kind = types.KindHeading
		default:
			kind, text = listClass(rec)
		}
		out = append(out, types.ResumeParagraph{Text: text, StyleName: rec.styleName, Kind: kind})
	}
	return out
}

// isHeading reports whether a paragraph reads as a section heading: a
// Heading style, a known section title, or a short all-Title-Case line.
func isHeading(text, styleName string) bool {
	txt := strings.ToLower(strings.TrimSpace(strings.Trim(text, ":")))
	if txt == "" {
		return false
	}
	if strings.HasPrefix(strings.ToLower(styleName), "heading") {
		return true
	}
	if sectionTitles[txt] {
		return true
	}
	return len(txt) <= headingMaxLen && allTitleCase(text)
}

// allTitleCase reports whether every word containing a letter starts with
// an uppercase rune. Words without letters (years, dashes) are ignored.
func allTitleCase(text string) bool {
	seen := 0
	for _, word := range strings.Fields(text) {
		if !strings.ContainsFunc(word, unicode.IsLetter) {
			continue
		}
		seen++
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return seen > 0
}

// listClass decides bullet, numbered, or body, and strips a literal list
// marker when that marker is what classified the line. Style names are
// consulted first, then numbering properties (bullet is the safe default
// since the numbering part is not resolved), then leading glyphs.
func listClass(rec sourceParagraph) (types.ParagraphKind, string) {
	style := strings.ToLower(rec.styleName)
	switch {
	case strings.Contains(style, "list bullet"),
		strings.Contains(style, "bullet") && strings.Contains(style, "list"):
		return types.KindBullet, rec.text
	case strings.Contains(style, "list number"),
		strings.Contains(style, "number"):
		return types.KindNumbered, rec.text
	}

	if rec.numbered {
		return types.KindBullet, rec.text
	}

	if rest, ok := stripBulletMarker(rec.text); ok {
		return types.KindBullet, rest
	}
	if rest, ok := stripNumberMarker(rec.text); ok {
		return types.KindNumbered, rest
	}
	return types.KindBody, rec.text
}

func stripBulletMarker(text string) (string, bool) {
	for _, marker := range []string{"• ", "- ", "* "} {
		if strings.HasPrefix(text, marker) {
			return strings.TrimSpace(strings.TrimPrefix(text, marker)), true
		}
	}
	return text, false
}

func stripNumberMarker(text string) (string, bool) {
	if m := numberMarkerRe.FindString(text); m != "" {
		return strings.TrimSpace(text[len(m):]), true
	}
	return text, false
}

func countKinds(paras []types.ResumeParagraph) types.KindCounts {
	var counts types.KindCounts
	for _, p := range paras {
		switch p.Kind {
		case types.KindTitle:
			counts.Title++
		case types.KindHeading:
			counts.Heading++
		case types.KindBullet:
			counts.Bullet++
		case types.KindNumbered:
			counts.Numbered++
		default:
			counts.Body++
		}
	}
	return counts
}
