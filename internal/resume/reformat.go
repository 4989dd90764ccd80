// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resume reads a DOCX resume, classifies each paragraph as title,
// section heading, list item, or body text, and writes a cleanly formatted
// copy.
// Implements: prd001-reformat (R1, R2, R3);
//
//	docs/ARCHITECTURE § Reformat.
package resume

import (
	"fmt"
	"io"
	"os"

	"github.com/fumiama/go-docx"

	"github.com/pdiddy/resume-press/pkg/types"
)

const bulletGlyph = "• "

// Run sizes in half-points: a 16pt name line and 14pt section headings.
const (
	titleSize   = "32"
	headingSize = "28"
)

// Reformat reads the resume at inPath, classifies its paragraphs, and
// writes the reformatted document to outPath. Progress goes to w; the
// returned counts summarize what was written.
func Reformat(cfg types.ReformatConfig, inPath, outPath string, w io.Writer) (types.KindCounts, error) {
	records, err := readSource(inPath)
	if err != nil {
		return types.KindCounts{}, err
	}
	if len(records) == 0 {
		return types.KindCounts{}, &types.FileError{Message: fmt.Sprintf("no paragraphs found in %s", inPath)}
	}

	paras := classify(records, cfg.MaxTitleWords)
	counts := countKinds(paras)

	doc, err := buildDocument(paras, cfg.TemplatePath)
	if err != nil {
		return types.KindCounts{}, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return types.KindCounts{}, &types.WriteError{Message: fmt.Sprintf("creating %s", outPath), Cause: err}
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return types.KindCounts{}, &types.WriteError{Message: fmt.Sprintf("writing %s", outPath), Cause: err}
	}
	if err := f.Close(); err != nil {
		return types.KindCounts{}, &types.WriteError{Message: fmt.Sprintf("closing %s", outPath), Cause: err}
	}

	fmt.Fprintf(w, "reformatted: %s (%d paragraphs: %d title, %d headings, %d bullets, %d numbered, %d body)\n",
		outPath, counts.Total(), counts.Title, counts.Heading, counts.Bullet, counts.Numbered, counts.Body)
	return counts, nil
}

// buildDocument renders classified paragraphs into a new document, or onto
// a parsed template when one is given. List items come out as glyph-prefixed
// paragraphs; numbered runs restart after every break in the sequence.
func buildDocument(paras []types.ResumeParagraph, templatePath string) (*docx.Docx, error) {
	var doc *docx.Docx
	if templatePath != "" {
		parsed, err := openTemplate(templatePath)
		if err != nil {
			return nil, err
		}
		doc = parsed
	} else {
		doc = docx.New().WithDefaultTheme()
	}

	num := 0
	for _, para := range paras {
		switch para.Kind {
		case types.KindTitle:
			num = 0
			p := doc.AddParagraph().Justification("center")
			p.AddText(para.Text).Size(titleSize).Bold()
		case types.KindHeading:
			num = 0
			doc.AddParagraph().AddText(para.Text).Size(headingSize).Bold()
		case types.KindBullet:
			num = 0
			doc.AddParagraph().AddText(bulletGlyph + para.Text)
		case types.KindNumbered:
			num++
			doc.AddParagraph().AddText(fmt.Sprintf("%d. %s", num, para.Text))
		default:
			num = 0
			doc.AddParagraph().AddText(para.Text)
		}
	}
	return doc, nil
}
