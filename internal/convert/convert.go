// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements LaTeX-to-DOCX conversion through an external
// pandoc process.
// Implements: prd004-conversion (R1, R2, R3);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-press/internal/toolrun"
	"github.com/pdiddy/resume-press/pkg/types"
)

// Converter transforms a LaTeX file into a DOCX document. The production
// implementation shells out to pandoc; tests substitute a fake.
type Converter interface {
	// Convert reads LaTeX at texPath and writes a DOCX document to outPath.
	// refPath, when non-empty, names a reference document carrying the
	// target styles.
	Convert(texPath, outPath, refPath string) error
}

// Args builds the pandoc argument vector for a single conversion.
func Args(texPath, outPath, refPath string) []string {
	args := []string{"-f", "latex", "-t", "docx", texPath, "-o", outPath}
	if refPath != "" {
		args = append(args, "--reference-doc", refPath)
	}
	return args
}

// PandocConverter converts through an external pandoc binary located by
// the toolrun package.
type PandocConverter struct {
	Runner toolrun.Runner
}

// NewPandocConverter wraps a detected runner.
func NewPandocConverter(r toolrun.Runner) *PandocConverter {
	return &PandocConverter{Runner: r}
}

// Convert runs pandoc on texPath. Tool failures surface as a
// ConversionError carrying the process exit code and captured stderr.
func (p *PandocConverter) Convert(texPath, outPath, refPath string) error {
	var stderr bytes.Buffer
	code, err := p.Runner.Run(Args(texPath, outPath, refPath), io.Discard, &stderr)
	if err != nil {
		return &types.ConversionError{
			Message:      fmt.Sprintf("converting %s with %s", filepath.Base(texPath), p.Runner.Name()),
			ToolExitCode: code,
			Stderr:       strings.TrimSpace(stderr.String()),
			Cause:        err,
		}
	}
	return nil
}
