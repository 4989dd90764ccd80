// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParagraphKind classifies a resume paragraph for rebuilding.
// Per prd001-reformat R2.1.
type ParagraphKind string

const (
	KindTitle    ParagraphKind = "title"
	KindHeading  ParagraphKind = "heading"
	KindBullet   ParagraphKind = "bullet"
	KindNumbered ParagraphKind = "numbered"
	KindBody     ParagraphKind = "body"
)

// ResumeParagraph is one nonempty paragraph extracted from a source resume.
// Per prd001-reformat R2.2: text, source style name, and classified kind.
type ResumeParagraph struct {
	// Text is the paragraph text with whitespace collapsed.
	Text string `json:"text" yaml:"text"`

	// StyleName is the source paragraph style identifier, empty when the
	// paragraph carries no explicit style.
	StyleName string `json:"style_name,omitempty" yaml:"style_name,omitempty"`

	// Kind is the classification used when rebuilding the document.
	Kind ParagraphKind `json:"kind" yaml:"kind"`
}

// KindCounts tallies classified paragraphs per kind.
type KindCounts struct {
	Title    int `json:"title" yaml:"title"`
	Heading  int `json:"heading" yaml:"heading"`
	Bullet   int `json:"bullet" yaml:"bullet"`
	Numbered int `json:"numbered" yaml:"numbered"`
	Body     int `json:"body" yaml:"body"`
}

// Total returns the number of paragraphs counted.
func (c KindCounts) Total() int {
	return c.Title + c.Heading + c.Bullet + c.Numbered + c.Body
}
