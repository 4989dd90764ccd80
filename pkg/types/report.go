// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HotspotKind distinguishes the two suspicious brace positions the
// positional scan can flag. Per prd003-braces R3.2.
type HotspotKind string

const (
	// HotspotUnclosed marks a { that never receives a matching }.
	HotspotUnclosed HotspotKind = "unclosed"

	// HotspotStrayClose marks a } encountered at depth zero.
	HotspotStrayClose HotspotKind = "stray-close"
)

// BraceHotspot is one suspicious position found by the positional scan.
// Line and Column are 1-based.
type BraceHotspot struct {
	Line    int         `json:"line" yaml:"line"`
	Column  int         `json:"column" yaml:"column"`
	Kind    HotspotKind `json:"kind" yaml:"kind"`
	Context string      `json:"context" yaml:"context"`
}

// NormalizeStats counts the edits each normalization stage performed.
// Per prd002-normalization R5.1.
type NormalizeStats struct {
	// GuardedInputs counts \input{glyphtounicode} lines rewritten to the
	// guarded form.
	GuardedInputs int `json:"guarded_inputs" yaml:"guarded_inputs"`

	// StrippedMacros counts removed resume macro definition blocks.
	StrippedMacros int `json:"stripped_macros" yaml:"stripped_macros"`

	// ReplacedInvocations counts rewritten resume macro invocations.
	ReplacedInvocations int `json:"replaced_invocations" yaml:"replaced_invocations"`

	// InsertedEnvEnds counts \end{...} lines inserted to close environments
	// left open at end of document.
	InsertedEnvEnds int `json:"inserted_env_ends" yaml:"inserted_env_ends"`

	// UnmatchedEnvEnds counts \end{...} lines with no matching \begin.
	// These are reported but never removed.
	UnmatchedEnvEnds int `json:"unmatched_env_ends" yaml:"unmatched_env_ends"`

	// InsertedItems counts \item lines inserted into empty list environments.
	InsertedItems int `json:"inserted_items" yaml:"inserted_items"`
}

// AuditReport is the full record of one conversion pipeline run: what
// normalization changed, what the brace audit found, and whether conversion
// ran. Written as the --report artifact and validated against the bundled
// report schema. Per prd006-reports R1.1-R1.4.
type AuditReport struct {
	// Input is the source .tex path.
	Input string `json:"input" yaml:"input"`

	// NormalizedPath is where the normalized source was written, empty when
	// only a temporary file was used.
	NormalizedPath string `json:"normalized_path,omitempty" yaml:"normalized_path,omitempty"`

	Stats NormalizeStats `json:"stats" yaml:"stats"`

	// Imbalance is the residual brace depth after normalization and any
	// auto-fix: positive for unclosed opens, negative for stray closers.
	Imbalance int `json:"imbalance" yaml:"imbalance"`

	// AutoFixApplied reports whether closing braces were appended.
	AutoFixApplied bool `json:"auto_fix_applied" yaml:"auto_fix_applied"`

	// BracesInserted is the number of closers appended by auto-fix.
	BracesInserted int `json:"braces_inserted" yaml:"braces_inserted"`

	// Hotspots lists suspicious brace positions; populated only when the
	// positional scan ran.
	Hotspots []BraceHotspot `json:"hotspots,omitempty" yaml:"hotspots,omitempty"`

	// Converted reports whether the external converter ran successfully.
	Converted bool `json:"converted" yaml:"converted"`

	// Output is the DOCX path when conversion ran.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// FontScheme is the scheme used for the reference template.
	FontScheme string `json:"font_scheme,omitempty" yaml:"font_scheme,omitempty"`
}
