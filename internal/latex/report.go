// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-press/pkg/types"
)

// FormatReport writes the pipeline report as human-readable lines to w.
func FormatReport(rep types.AuditReport, w io.Writer) {
	fmt.Fprintf(w, "normalization report for %s\n", rep.Input)

	fmt.Fprintf(w, "  guarded glyphtounicode inputs  %d\n", rep.Stats.GuardedInputs)
	fmt.Fprintf(w, "  stripped macro definitions     %d\n", rep.Stats.StrippedMacros)
	fmt.Fprintf(w, "  replaced macro invocations     %d\n", rep.Stats.ReplacedInvocations)
	fmt.Fprintf(w, "  inserted environment ends      %d\n", rep.Stats.InsertedEnvEnds)
	fmt.Fprintf(w, "  unmatched environment ends     %d\n", rep.Stats.UnmatchedEnvEnds)
	fmt.Fprintf(w, "  inserted list items            %d\n", rep.Stats.InsertedItems)
	fmt.Fprintf(w, "  brace imbalance                %+d\n", rep.Imbalance)

	if rep.AutoFixApplied {
		fmt.Fprintf(w, "  auto-fix appended              %d closing brace(s)\n", rep.BracesInserted)
	}
	if rep.NormalizedPath != "" {
		fmt.Fprintf(w, "normalized source: %s\n", rep.NormalizedPath)
	}

	if len(rep.Hotspots) > 0 {
		fmt.Fprintf(w, "brace hotspots (%d):\n", len(rep.Hotspots))
		for _, h := range rep.Hotspots {
			fmt.Fprintf(w, "  line %d, col %d [%s]  %s\n", h.Line, h.Column, h.Kind, truncateContext(h.Context))
		}
	}

	if rep.Converted {
		fmt.Fprintf(w, "converted: %s (scheme %s)\n", rep.Output, rep.FontScheme)
	}
}

// FormatReportJSON writes the report as indented JSON to w.
func FormatReportJSON(rep types.AuditReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteReportFile writes the report artifact to path. A .yaml or .yml
// extension selects YAML; anything else gets indented JSON.
func WriteReportFile(path string, rep types.AuditReport) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(rep)
	default:
		data, err = json.MarshalIndent(rep, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return &types.WriteError{Message: fmt.Sprintf("encoding report %s", path), Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.WriteError{Message: fmt.Sprintf("writing report %s", path), Cause: err}
	}
	return nil
}

// TailHotspots returns at most the last n hotspots, which sit closest to the
// end of the document and are usually the actionable ones.
func TailHotspots(hotspots []types.BraceHotspot, n int) []types.BraceHotspot {
	if len(hotspots) <= n {
		return hotspots
	}
	return hotspots[len(hotspots)-n:]
}

func truncateContext(s string) string {
	const max = 72
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
