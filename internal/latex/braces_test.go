// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strings"
	"testing"

	"github.com/pdiddy/resume-press/pkg/types"
)

func TestImbalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "balanced", text: `\textbf{hi} and \emph{there}`, want: 0},
		{name: "three opens", text: "{{{", want: 3},
		{name: "two strays", text: "}}", want: -2},
		{name: "mixed balanced", text: "{ab}{cd}", want: 0},
		{name: "unclosed across lines", text: "\\section{A}\n{\n{\n", want: 2},
		// Braces after % still count: the audit has no comment awareness.
		{name: "comment braces count", text: "a { b % {{\n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Imbalance(tt.text); got != tt.want {
				t.Errorf("Imbalance(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestHotspots(t *testing.T) {
	t.Run("balanced text has none", func(t *testing.T) {
		if got := Hotspots(`\textbf{ok}`); len(got) != 0 {
			t.Errorf("got %d hotspots, want 0", len(got))
		}
	})

	t.Run("unclosed open is located", func(t *testing.T) {
		got := Hotspots("\\textbf{Languages}{: Java\n")
		if len(got) != 1 {
			t.Fatalf("got %d hotspots, want 1", len(got))
		}
		h := got[0]
		if h.Line != 1 || h.Column != 19 {
			t.Errorf("position = %d:%d, want 1:19", h.Line, h.Column)
		}
		if h.Kind != types.HotspotUnclosed {
			t.Errorf("kind = %q, want %q", h.Kind, types.HotspotUnclosed)
		}
		if !strings.Contains(h.Context, "Languages") {
			t.Errorf("context %q should carry the source line", h.Context)
		}
	})

	t.Run("stray close then unclosed open", func(t *testing.T) {
		got := Hotspots("}\n{\n")
		if len(got) != 2 {
			t.Fatalf("got %d hotspots, want 2", len(got))
		}
		if got[0].Kind != types.HotspotStrayClose || got[0].Line != 1 {
			t.Errorf("first = %+v, want stray-close on line 1", got[0])
		}
		if got[1].Kind != types.HotspotUnclosed || got[1].Line != 2 {
			t.Errorf("second = %+v, want unclosed on line 2", got[1])
		}
	})

	t.Run("matched pair across lines is quiet", func(t *testing.T) {
		if got := Hotspots("{\n}\n"); len(got) != 0 {
			t.Errorf("got %d hotspots, want 0", len(got))
		}
	})
}

func TestAutoFix(t *testing.T) {
	t.Run("appends before end document", func(t *testing.T) {
		src := "\\begin{document}\nA {b {c\n\\end{document}\n"
		if d := Imbalance(src); d != 2 {
			t.Fatalf("precondition imbalance = %d, want 2", d)
		}

		fixed, inserted := AutoFix(src, 2)
		if inserted != 2 {
			t.Errorf("inserted = %d, want 2", inserted)
		}
		if d := Imbalance(fixed); d != 0 {
			t.Errorf("imbalance after fix = %d, want 0", d)
		}
		if !strings.Contains(fixed, "}\n}\n\\end{document}\n") {
			t.Errorf("closers should sit immediately before \\end{document}, got:\n%s", fixed)
		}
	})

	t.Run("appends at end without end document", func(t *testing.T) {
		fixed, inserted := AutoFix("x {\n", 1)
		if inserted != 1 {
			t.Errorf("inserted = %d, want 1", inserted)
		}
		if fixed != "x {\n}\n" {
			t.Errorf("fixed = %q", fixed)
		}
	})

	t.Run("identity on balanced input", func(t *testing.T) {
		src := "\\textbf{done}\n"
		fixed, inserted := AutoFix(src, 0)
		if inserted != 0 || fixed != src {
			t.Errorf("AutoFix changed balanced input: %q (inserted %d)", fixed, inserted)
		}
	})

	t.Run("refuses negative imbalance", func(t *testing.T) {
		src := "a}\n"
		fixed, inserted := AutoFix(src, -1)
		if inserted != 0 || fixed != src {
			t.Errorf("AutoFix must not touch negative imbalance: %q (inserted %d)", fixed, inserted)
		}
	})
}
