// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/resume-press/internal/toolrun"
	"github.com/pdiddy/resume-press/pkg/types"
)

// stubRunner stands in for pandoc. On success it writes the -o target the
// way the real tool would.
type stubRunner struct {
	calls   int
	gotArgs []string
	fail    bool
	stderr  string
}

func (s *stubRunner) Name() string { return "pandoc" }

func (s *stubRunner) Available() bool { return true }

func (s *stubRunner) Run(args []string, stdout, stderr io.Writer) (int, error) {
	s.calls++
	s.gotArgs = append([]string(nil), args...)
	if s.fail {
		if s.stderr != "" {
			_, _ = stderr.Write([]byte(s.stderr))
		}
		return 65, errors.New("exit status 65")
	}
	for i, a := range args {
		if a == "-o" && i+1 < len(args) {
			_ = os.WriteFile(args[i+1], []byte("docx"), 0o644)
		}
	}
	return 0, nil
}

// installRunner swaps the detection hook for the test and reports how often
// it was consulted.
func installRunner(t *testing.T, r toolrun.Runner, detectErr error) *int {
	t.Helper()
	calls := 0
	orig := detectRunner
	detectRunner = func(explicitPath string) (toolrun.Runner, error) {
		calls++
		if detectErr != nil {
			return nil, detectErr
		}
		return r, nil
	}
	t.Cleanup(func() { detectRunner = orig })
	return &calls
}

func writeTex(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const balancedTex = `\documentclass{article}
\begin{document}
\resumeItem{Shipped the tool}
\end{document}
`

const unclosedTex = `\documentclass{article}
\begin{document}
\textbf{Name
\end{document}
`

func TestPipelineAuditOnly(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", balancedTex)
	emit := filepath.Join(dir, "normalized.tex")

	opts := convertOptions{inPath: in, emitTex: emit}
	var stdout, stderr bytes.Buffer
	if err := runConvertPipeline(opts, &stdout, &stderr); err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	data, err := os.ReadFile(emit)
	if err != nil {
		t.Fatalf("normalized source not written: %v", err)
	}
	normalized := string(data)
	if !strings.Contains(normalized, `\item Shipped the tool`) {
		t.Errorf("macro invocation not rewritten:\n%s", normalized)
	}
	if !strings.Contains(normalized, `\end{itemize}`) {
		t.Errorf("opened list not closed:\n%s", normalized)
	}

	out := stdout.String()
	if !strings.Contains(out, "normalization report for "+in) {
		t.Errorf("report header missing:\n%s", out)
	}
	if !strings.Contains(out, "normalized source: "+emit) {
		t.Errorf("emit path missing from report:\n%s", out)
	}
	if !strings.Contains(out, "brace imbalance                +0") {
		t.Errorf("imbalance line missing:\n%s", out)
	}
}

func TestPipelineRefusesImbalance(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", unclosedTex)
	out := filepath.Join(dir, "out.docx")

	runner := &stubRunner{}
	detects := installRunner(t, runner, nil)

	opts := convertOptions{inPath: in, outPath: out, runPandoc: true}
	var stdout, stderr bytes.Buffer
	err := runConvertPipeline(opts, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected refusal, got nil")
	}

	var braceErr *types.BraceImbalanceError
	if !errors.As(err, &braceErr) {
		t.Fatalf("error type = %T, want *types.BraceImbalanceError", err)
	}
	if braceErr.Imbalance != 1 {
		t.Errorf("Imbalance = %d, want 1", braceErr.Imbalance)
	}
	if types.ExitCode(err) != types.ExitBraces {
		t.Errorf("exit code = %d, want %d", types.ExitCode(err), types.ExitBraces)
	}

	if *detects != 0 {
		t.Errorf("converter detection ran %d times; must not run on refusal", *detects)
	}
	if runner.calls != 0 {
		t.Errorf("converter invoked %d times; must not run on refusal", runner.calls)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("no output may be written on refusal")
	}

	if !strings.Contains(stdout.String(), "brace imbalance                +1") {
		t.Errorf("report should still show the imbalance:\n%s", stdout.String())
	}
}

func TestPipelineNegativeImbalance(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", "\\documentclass{article}\n\\begin{document}\nName}\n\\end{document}\n")
	out := filepath.Join(dir, "out.docx")

	runner := &stubRunner{}
	detects := installRunner(t, runner, nil)

	opts := convertOptions{
		ConvertConfig: types.ConvertConfig{AutoFixBraces: true},
		inPath:        in,
		outPath:       out,
		runPandoc:     true,
	}
	var stdout, stderr bytes.Buffer
	err := runConvertPipeline(opts, &stdout, &stderr)

	var braceErr *types.BraceImbalanceError
	if !errors.As(err, &braceErr) {
		t.Fatalf("error type = %T, want *types.BraceImbalanceError", err)
	}
	if braceErr.Imbalance != -1 {
		t.Errorf("Imbalance = %d, want -1", braceErr.Imbalance)
	}
	if !strings.Contains(err.Error(), "stray closing braces") {
		t.Errorf("refusal should point at the stray closers: %v", err)
	}
	if !strings.Contains(stderr.String(), "auto-fix cannot repair a negative imbalance") {
		t.Errorf("missing auto-fix warning: %q", stderr.String())
	}
	if *detects != 0 || runner.calls != 0 {
		t.Error("converter must not be consulted on refusal")
	}
	if strings.Contains(stdout.String(), "auto-fix appended") {
		t.Errorf("auto-fix must not run on negative imbalance:\n%s", stdout.String())
	}
}

func TestPipelineAutoFixThenConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", unclosedTex)
	out := filepath.Join(dir, "out.docx")

	runner := &stubRunner{}
	installRunner(t, runner, nil)

	opts := convertOptions{
		ConvertConfig: types.ConvertConfig{FontScheme: "cmu", BaseSize: 11, AutoFixBraces: true},
		inPath:        in,
		outPath:       out,
		runPandoc:     true,
		jsonOut:       true,
	}
	var stdout, stderr bytes.Buffer
	if err := runConvertPipeline(opts, &stdout, &stderr); err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	if runner.calls != 1 {
		t.Fatalf("converter invoked %d times, want 1", runner.calls)
	}
	args := runner.gotArgs
	if len(args) != 9 {
		t.Fatalf("args = %q, want 9 elements", args)
	}
	if args[0] != "-f" || args[1] != "latex" || args[2] != "-t" || args[3] != "docx" {
		t.Errorf("format args = %q", args[:4])
	}
	if !strings.HasSuffix(args[4], ".pandoc_ready.tex") {
		t.Errorf("tex arg = %q, want temporary .pandoc_ready.tex", args[4])
	}
	if args[6] != out {
		t.Errorf("output arg = %q, want %q", args[6], out)
	}
	if args[7] != "--reference-doc" {
		t.Errorf("args[7] = %q, want --reference-doc", args[7])
	}

	// Both temporaries are cleaned up after the run.
	if _, err := os.Stat(args[4]); err == nil {
		t.Error("temporary normalized source should be removed")
	}
	if _, err := os.Stat(args[8]); err == nil {
		t.Error("temporary reference document should be removed")
	}

	var rep types.AuditReport
	if err := json.Unmarshal(stdout.Bytes(), &rep); err != nil {
		t.Fatalf("stdout is not a JSON report: %v\n%s", err, stdout.String())
	}
	if !rep.AutoFixApplied || rep.BracesInserted != 1 {
		t.Errorf("auto-fix not recorded: %+v", rep)
	}
	if rep.Imbalance != 0 {
		t.Errorf("Imbalance = %d after auto-fix, want 0", rep.Imbalance)
	}
	if !rep.Converted || rep.Output != out {
		t.Errorf("conversion not recorded: %+v", rep)
	}
	if rep.FontScheme != "cmu" {
		t.Errorf("FontScheme = %q, want cmu", rep.FontScheme)
	}
}

func TestPipelineConverterFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", balancedTex)
	out := filepath.Join(dir, "out.docx")

	runner := &stubRunner{fail: true, stderr: "Error at in.tex line 3"}
	installRunner(t, runner, nil)

	opts := convertOptions{
		ConvertConfig: types.ConvertConfig{FontScheme: "cmu", BaseSize: 11},
		inPath:        in,
		outPath:       out,
		runPandoc:     true,
	}
	var stdout, stderr bytes.Buffer
	err := runConvertPipeline(opts, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected converter failure")
	}
	if types.ExitCode(err) != types.ExitConvert {
		t.Errorf("exit code = %d, want %d", types.ExitCode(err), types.ExitConvert)
	}
	if !strings.Contains(stderr.String(), "Error at in.tex line 3") {
		t.Errorf("tool stderr not surfaced: %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "normalization report for "+in) {
		t.Errorf("report should still print on failure:\n%s", stdout.String())
	}
}

func TestPipelineFlagAndFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing input file", func(t *testing.T) {
		opts := convertOptions{inPath: filepath.Join(dir, "nope.tex")}
		err := runConvertPipeline(opts, io.Discard, io.Discard)
		if types.ExitCode(err) != types.ExitFile {
			t.Errorf("exit code = %d, want %d", types.ExitCode(err), types.ExitFile)
		}
	})

	t.Run("run-pandoc without out", func(t *testing.T) {
		in := writeTex(t, dir, "in.tex", balancedTex)
		runner := &stubRunner{}
		installRunner(t, runner, nil)

		opts := convertOptions{inPath: in, runPandoc: true}
		err := runConvertPipeline(opts, io.Discard, io.Discard)
		if err == nil || !strings.Contains(err.Error(), "--out is required") {
			t.Fatalf("err = %v, want --out requirement", err)
		}
		if types.ExitCode(err) != types.ExitGeneric {
			t.Errorf("exit code = %d, want %d", types.ExitCode(err), types.ExitGeneric)
		}
		if runner.calls != 0 {
			t.Error("converter must not run without an output path")
		}
	})

	t.Run("unknown font scheme", func(t *testing.T) {
		in := writeTex(t, dir, "in2.tex", balancedTex)
		installRunner(t, &stubRunner{}, nil)

		opts := convertOptions{
			ConvertConfig: types.ConvertConfig{FontScheme: "nosuch"},
			inPath:        in,
			outPath:       filepath.Join(dir, "out.docx"),
			runPandoc:     true,
		}
		err := runConvertPipeline(opts, io.Discard, io.Discard)
		if err == nil || !strings.Contains(err.Error(), "unknown font scheme") {
			t.Fatalf("err = %v, want unknown scheme", err)
		}
	})

	t.Run("converter missing", func(t *testing.T) {
		in := writeTex(t, dir, "in3.tex", balancedTex)
		installRunner(t, nil, errors.New("converter pandoc not found or not operational"))

		opts := convertOptions{
			ConvertConfig: types.ConvertConfig{FontScheme: "cmu"},
			inPath:        in,
			outPath:       filepath.Join(dir, "out.docx"),
			runPandoc:     true,
		}
		err := runConvertPipeline(opts, io.Discard, io.Discard)
		if types.ExitCode(err) != types.ExitConvert {
			t.Errorf("exit code = %d, want %d", types.ExitCode(err), types.ExitConvert)
		}
	})
}

func TestPipelineReportArtifact(t *testing.T) {
	dir := t.TempDir()
	in := writeTex(t, dir, "in.tex", unclosedTex)
	reportPath := filepath.Join(dir, "report.json")

	opts := convertOptions{
		ConvertConfig: types.ConvertConfig{DebugBraces: true},
		inPath:        in,
		reportPath:    reportPath,
	}
	var stdout, stderr bytes.Buffer
	if err := runConvertPipeline(opts, &stdout, &stderr); err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report artifact not written: %v", err)
	}
	var rep types.AuditReport
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if rep.Imbalance != 1 {
		t.Errorf("Imbalance = %d, want 1", rep.Imbalance)
	}
	if len(rep.Hotspots) == 0 {
		t.Error("debug run should record hotspots")
	}

	if strings.Contains(stderr.String(), "schema validation") {
		t.Errorf("artifact should pass schema validation: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "brace hotspots") {
		t.Errorf("hotspot section missing from report:\n%s", stdout.String())
	}
}
