// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refdoc generates the pandoc reference document that carries a
// font scheme into converted DOCX output.
//
// A reference document is an ordinary DOCX archive whose style sheet pandoc
// copies into the documents it writes. Only the styles pandoc consults are
// emitted: Normal, the first three heading levels, Block Text, Verbatim
// Char, and Source Code. The serif face covers body and headings, the mono
// face covers verbatim and code; the sans face is carried in the scheme for
// tooling but no emitted style binds it.
//
// Implements: prd005-fonts (R4-R6); docs/ARCHITECTURE § Font Schemes.
package refdoc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pdiddy/resume-press/pkg/types"
)

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>
`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`

// documentXML holds a two-paragraph body so the archive opens as a normal
// document: a centered bold title line and one line of body text.
const documentXML = xml.Header + `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:jc w:val="center"/></w:pPr>
      <w:r><w:rPr><w:b/></w:rPr><w:t>Reference Styles</w:t></w:r>
    </w:p>
    <w:p><w:r><w:t>Normal body</w:t></w:r></w:p>
    <w:sectPr/>
  </w:body>
</w:document>
`

// Generate writes a reference document for the scheme to a temporary file
// and returns its path. The caller owns the file and removes it when the
// conversion finishes. A non-positive baseSize falls back to the default.
func Generate(scheme types.FontScheme, baseSize float64) (string, error) {
	if baseSize <= 0 {
		baseSize = types.DefaultBaseSize
	}

	f, err := os.CreateTemp("", "ref_*.docx")
	if err != nil {
		return "", &types.WriteError{Message: "creating reference document", Cause: err}
	}

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML(scheme, baseSize)},
	}

	zw := zip.NewWriter(f)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err == nil {
			_, err = w.Write([]byte(part.body))
		}
		if err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", &types.WriteError{Message: fmt.Sprintf("writing reference part %s", part.name), Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", &types.WriteError{Message: "finalizing reference document", Cause: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", &types.WriteError{Message: "closing reference document", Cause: err}
	}
	return f.Name(), nil
}

// styleSpec describes one emitted style.
type styleSpec struct {
	id        string
	name      string
	font      string
	sizePt    float64 // zero leaves the size unset
	bold      bool
	italic    bool
	character bool // character style instead of paragraph
	isDefault bool
}

func styleSpecs(scheme types.FontScheme, baseSize float64) []styleSpec {
	return []styleSpec{
		{id: "Normal", name: "Normal", font: scheme.Serif, sizePt: baseSize, isDefault: true},
		{id: "Heading1", name: "heading 1", font: scheme.Serif, sizePt: baseSize + types.HeadingBumps[0], bold: true},
		{id: "Heading2", name: "heading 2", font: scheme.Serif, sizePt: baseSize + types.HeadingBumps[1], bold: true},
		{id: "Heading3", name: "heading 3", font: scheme.Serif, sizePt: baseSize + types.HeadingBumps[2], bold: true},
		{id: "BlockText", name: "Block Text", font: scheme.Serif, sizePt: baseSize, italic: true},
		{id: "VerbatimChar", name: "Verbatim Char", font: scheme.Mono, character: true},
		{id: "SourceCode", name: "Source Code", font: scheme.Mono, sizePt: baseSize},
	}
}

func stylesXML(scheme types.FontScheme, baseSize float64) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	for _, spec := range styleSpecs(scheme, baseSize) {
		writeStyle(&b, spec)
	}
	b.WriteString("</w:styles>\n")
	return b.String()
}

func writeStyle(b *strings.Builder, s styleSpec) {
	kind := "paragraph"
	if s.character {
		kind = "character"
	}
	fmt.Fprintf(b, `  <w:style w:type="%s" w:styleId="%s"`, kind, s.id)
	if s.isDefault {
		b.WriteString(` w:default="1"`)
	}
	b.WriteString(">\n")
	fmt.Fprintf(b, "    <w:name w:val=\"%s\"/>\n", escapeXML(s.name))
	if !s.isDefault && !s.character {
		b.WriteString("    <w:basedOn w:val=\"Normal\"/>\n")
	}
	b.WriteString("    <w:qFormat/>\n")
	b.WriteString("    <w:rPr>\n")
	font := escapeXML(s.font)
	fmt.Fprintf(b, "      <w:rFonts w:ascii=\"%s\" w:hAnsi=\"%s\" w:cs=\"%s\"/>\n", font, font, font)
	if s.bold {
		b.WriteString("      <w:b/>\n")
	}
	if s.italic {
		b.WriteString("      <w:i/>\n")
	}
	if s.sizePt > 0 {
		hp := halfPoints(s.sizePt)
		fmt.Fprintf(b, "      <w:sz w:val=\"%d\"/>\n", hp)
		fmt.Fprintf(b, "      <w:szCs w:val=\"%d\"/>\n", hp)
	}
	b.WriteString("    </w:rPr>\n")
	b.WriteString("  </w:style>\n")
}

// halfPoints converts a point size to the half-point units w:sz expects.
func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
