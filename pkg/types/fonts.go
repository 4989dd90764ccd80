// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FontScheme names the typefaces bound into a conversion reference template.
// Per prd005-fonts R1.1: a serif face for body and headings, a sans face for
// auxiliary styles, and a mono face for verbatim and source code.
type FontScheme struct {
	// Name is the scheme identifier used on the command line.
	Name string `json:"name" yaml:"name"`

	// Serif is the body and heading typeface.
	Serif string `json:"serif" yaml:"serif"`

	// Sans is the sans-serif typeface.
	Sans string `json:"sans" yaml:"sans"`

	// Mono is the monospace typeface for verbatim and code styles.
	Mono string `json:"mono" yaml:"mono"`
}

// DefaultBaseSize is the body size in points when no --base-size is given.
// Headings are derived from it; see prd005-fonts R2.2.
const DefaultBaseSize = 11.0

// HeadingBumps are the point increments over the base size for Heading 1-3.
var HeadingBumps = [3]float64{5, 3, 2}
