// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resume

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/pdiddy/resume-press/pkg/types"
)

// sourceParagraph is one non-empty paragraph lifted out of the input
// document before classification.
type sourceParagraph struct {
	text      string
	styleName string
	numbered  bool // carries numbering properties
}

// readSource parses the input DOCX into paragraph records. Empty paragraphs
// are dropped and whitespace runs collapse to single spaces. Table content
// is not carried over.
func readSource(path string) ([]sourceParagraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("opening %s", path), Cause: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("inspecting %s", path), Cause: err}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("parsing %s", path), Cause: err}
	}

	var records []sourceParagraph
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := collapse(p.String())
		if text == "" {
			continue
		}
		records = append(records, sourceParagraph{
			text:      text,
			styleName: paragraphStyle(p),
			numbered:  hasNumbering(p),
		})
	}
	return records, nil
}

// openTemplate parses a DOCX to append the reformatted content to. Used for
// templates that carry page-number fields or letterhead.
func openTemplate(path string) (*docx.Docx, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("opening template %s", path), Cause: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("inspecting template %s", path), Cause: err}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, &types.FileError{Message: fmt.Sprintf("parsing template %s", path), Cause: err}
	}
	return doc, nil
}

func paragraphStyle(p *docx.Paragraph) string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

func hasNumbering(p *docx.Paragraph) bool {
	return p.Properties != nil && p.Properties.NumProperties != nil
}

// collapse squeezes whitespace runs to single spaces and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
