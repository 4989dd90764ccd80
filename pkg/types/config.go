// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the resume-press tools.
// Implements: prd004-conversion (ConvertConfig, R1.1-R1.4);
//
//	prd001-reformat (ReformatConfig, ResumeParagraph, R1.1-R1.3, R2.1-R2.2);
//	prd005-fonts (FontScheme, R1.1, R2.2);
//	prd002-normalization (NormalizeStats, R5.1);
//	prd003-braces (BraceHotspot, R3.1-R3.2);
//	prd006-reports (AuditReport, error kinds, R1.1-R1.4, R4.1).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

// ConvertConfig holds settings for the LaTeX-to-DOCX conversion pipeline.
// Per prd004-conversion R1.1-R1.4. Commands build one from flags and config
// file values and pass it down; no stage reads configuration on its own.
type ConvertConfig struct {
	// PandocPath is an explicit path to the pandoc binary. When empty the
	// binary is resolved from $PATH.
	PandocPath string `json:"pandoc_path,omitempty" yaml:"pandoc_path,omitempty"`

	// FontScheme names the font scheme for the reference template
	// (default "cmu").
	FontScheme string `json:"font_scheme" yaml:"font_scheme"`

	// BaseSize is the body text size in points (default 11).
	BaseSize float64 `json:"base_size" yaml:"base_size"`

	// SchemesDir is an optional directory of extra font scheme YAML files,
	// one scheme per file.
	SchemesDir string `json:"schemes_dir,omitempty" yaml:"schemes_dir,omitempty"`

	// DebugBraces enables the positional brace hotspot report.
	DebugBraces bool `json:"debug_braces" yaml:"debug_braces"`

	// AutoFixBraces appends closing braces when the audited imbalance is
	// positive. Negative imbalance is never auto-fixed.
	AutoFixBraces bool `json:"auto_fix_braces" yaml:"auto_fix_braces"`
}

// ReformatConfig holds settings for the DOCX resume reformatter.
// Per prd001-reformat R1.1-R1.3.
type ReformatConfig struct {
	// TemplatePath is an optional DOCX whose body the rebuilt resume is
	// appended to. When empty a fresh document with the default theme is used.
	TemplatePath string `json:"template_path,omitempty" yaml:"template_path,omitempty"`

	// MaxTitleWords is the word-count ceiling for treating the first
	// paragraph as the resume title (default 6).
	MaxTitleWords int `json:"max_title_words" yaml:"max_title_words"`
}

// Config groups all tool configurations. This is the shape of the optional
// resume-press.yaml config file.
type Config struct {
	Convert  ConvertConfig  `json:"convert" yaml:"convert"`
	Reformat ReformatConfig `json:"reformat" yaml:"reformat"`
}
