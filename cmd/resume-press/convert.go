package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-press/internal/convert"
	"github.com/pdiddy/resume-press/internal/fonts"
	"github.com/pdiddy/resume-press/internal/latex"
	"github.com/pdiddy/resume-press/internal/refdoc"
	"github.com/pdiddy/resume-press/internal/schemas"
	"github.com/pdiddy/resume-press/internal/toolrun"
	"github.com/pdiddy/resume-press/pkg/types"
)

// detectRunner locates the converter binary; swapped in tests.
var detectRunner = toolrun.Detect

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Normalize resume LaTeX and optionally convert it to DOCX",
	Long: `Convert rewrites resume-flavored LaTeX (resume macro wrappers, custom
item commands, unterminated list environments) into plain constructs Pandoc
understands, audits the result for brace imbalance, and optionally runs
Pandoc to produce a DOCX styled through a generated reference document.

Conversion is refused while the audit reports a nonzero imbalance; pass
--auto-fix-braces to append missing closers, or --debug-braces to locate
the unmatched positions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := convertOptionsFromFlags(cmd)
		return runConvertPipeline(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	convertCmd.Flags().String("in", "", "input .tex file")
	convertCmd.Flags().String("out", "", "output .docx path (required with --run-pandoc)")
	convertCmd.Flags().String("emit-tex", "", "write the normalized .tex here")
	convertCmd.Flags().Bool("run-pandoc", false, "run pandoc after normalizing")
	convertCmd.Flags().String("pandoc", "", "explicit path to the pandoc binary")
	convertCmd.Flags().String("font-scheme", fonts.DefaultScheme, "font scheme for the reference document")
	convertCmd.Flags().Float64("base-size", types.DefaultBaseSize, "body text size in points")
	convertCmd.Flags().String("schemes-dir", "", "directory of extra font scheme YAML files")
	convertCmd.Flags().Bool("debug-braces", false, "print unmatched brace hotspots after normalization")
	convertCmd.Flags().Bool("auto-fix-braces", false, "append missing closing braces when the imbalance is positive")
	convertCmd.Flags().Bool("json", false, "print the report as JSON instead of text")
	convertCmd.Flags().String("report", "", "write the report artifact to this path (.json or .yaml)")
	_ = convertCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(convertCmd)
}

// convertOptions carries everything one pipeline run needs.
type convertOptions struct {
	types.ConvertConfig
	inPath     string
	outPath    string
	emitTex    string
	runPandoc  bool
	jsonOut    bool
	reportPath string
}

// convertOptionsFromFlags merges config file values with flags. An explicit
// flag wins over the config file; the config file wins over built-in
// defaults.
func convertOptionsFromFlags(cmd *cobra.Command) convertOptions {
	flags := cmd.Flags()

	cfg := types.ConvertConfig{
		PandocPath:    viper.GetString("convert.pandoc_path"),
		FontScheme:    viper.GetString("convert.font_scheme"),
		BaseSize:      viper.GetFloat64("convert.base_size"),
		SchemesDir:    viper.GetString("convert.schemes_dir"),
		DebugBraces:   viper.GetBool("convert.debug_braces"),
		AutoFixBraces: viper.GetBool("convert.auto_fix_braces"),
	}
	if flags.Changed("pandoc") || cfg.PandocPath == "" {
		cfg.PandocPath, _ = flags.GetString("pandoc")
	}
	if flags.Changed("font-scheme") || cfg.FontScheme == "" {
		cfg.FontScheme, _ = flags.GetString("font-scheme")
	}
	if flags.Changed("base-size") || cfg.BaseSize == 0 {
		cfg.BaseSize, _ = flags.GetFloat64("base-size")
	}
	if flags.Changed("schemes-dir") || cfg.SchemesDir == "" {
		cfg.SchemesDir, _ = flags.GetString("schemes-dir")
	}
	if flags.Changed("debug-braces") {
		cfg.DebugBraces, _ = flags.GetBool("debug-braces")
	}
	if flags.Changed("auto-fix-braces") {
		cfg.AutoFixBraces, _ = flags.GetBool("auto-fix-braces")
	}

	opts := convertOptions{ConvertConfig: cfg}
	opts.inPath, _ = flags.GetString("in")
	opts.outPath, _ = flags.GetString("out")
	opts.emitTex, _ = flags.GetString("emit-tex")
	opts.runPandoc, _ = flags.GetBool("run-pandoc")
	opts.jsonOut, _ = flags.GetBool("json")
	opts.reportPath, _ = flags.GetString("report")
	return opts
}

// runConvertPipeline normalizes, audits, optionally converts, and emits the
// report. The report comes out even when conversion fails, so the stats and
// hotspots stay available for debugging.
func runConvertPipeline(opts convertOptions, stdout, stderr io.Writer) error {
	raw, err := os.ReadFile(opts.inPath)
	if err != nil {
		return &types.FileError{Message: fmt.Sprintf("reading %s", opts.inPath), Cause: err}
	}

	normalized, stats := latex.Normalize(string(raw))
	rep := types.AuditReport{Input: opts.inPath, Stats: stats}
	rep.Imbalance = latex.Imbalance(normalized)

	if opts.DebugBraces {
		rep.Hotspots = latex.TailHotspots(latex.Hotspots(normalized), latex.MaxReportedHotspots)
	}

	if opts.AutoFixBraces && rep.Imbalance > 0 {
		var inserted int
		normalized, inserted = latex.AutoFix(normalized, rep.Imbalance)
		rep.AutoFixApplied = true
		rep.BracesInserted = inserted
		rep.Imbalance = latex.Imbalance(normalized)
	} else if opts.AutoFixBraces && rep.Imbalance < 0 {
		fmt.Fprintf(stderr, "warning: auto-fix cannot repair a negative imbalance (%+d); remove the stray closing braces\n", rep.Imbalance)
	}

	texPath := opts.emitTex
	if texPath != "" {
		if err := os.WriteFile(texPath, []byte(normalized), 0o644); err != nil {
			return &types.WriteError{Message: fmt.Sprintf("writing normalized source %s", texPath), Cause: err}
		}
		rep.NormalizedPath = texPath
	} else if opts.runPandoc {
		tmp, err := writeTempTex(normalized)
		if err != nil {
			return err
		}
		texPath = tmp
		defer os.Remove(tmp)
	}

	var convErr error
	if opts.runPandoc {
		convErr = runConversion(opts, texPath, &rep, stderr)
	}

	if emitErr := emitReport(opts, rep, stdout, stderr); emitErr != nil {
		if convErr == nil {
			return emitErr
		}
		fmt.Fprintf(stderr, "warning: %v\n", emitErr)
	}
	return convErr
}

// runConversion holds the convert-side gate: no output path or a nonzero
// imbalance stops the run before the converter is ever invoked.
func runConversion(opts convertOptions, texPath string, rep *types.AuditReport, stderr io.Writer) error {
	if opts.outPath == "" {
		return errors.New("--out is required with --run-pandoc")
	}
	if rep.Imbalance != 0 {
		msg := "refusing to convert; fix the source or rerun with --auto-fix-braces"
		if rep.Imbalance < 0 {
			msg = "refusing to convert; remove the stray closing braces"
		}
		return &types.BraceImbalanceError{Imbalance: rep.Imbalance, Message: msg}
	}

	scheme, err := fonts.Resolve(opts.FontScheme, opts.SchemesDir)
	if err != nil {
		return err
	}
	rep.FontScheme = scheme.Name

	runner, err := detectRunner(opts.PandocPath)
	if err != nil {
		return &types.ConversionError{Message: "locating converter", Cause: err}
	}

	ref, err := refdoc.Generate(scheme, opts.BaseSize)
	if err != nil {
		return err
	}
	defer os.Remove(ref)

	if err := convert.NewPandocConverter(runner).Convert(texPath, opts.outPath, ref); err != nil {
		var convErr *types.ConversionError
		if errors.As(err, &convErr) && convErr.Stderr != "" {
			fmt.Fprintln(stderr, convErr.Stderr)
		}
		return err
	}

	rep.Converted = true
	rep.Output = opts.outPath
	return nil
}

// emitReport writes the report artifact when requested, then prints the
// report to stdout as text or JSON. Schema validation of the artifact is
// advisory only.
func emitReport(opts convertOptions, rep types.AuditReport, stdout, stderr io.Writer) error {
	if opts.reportPath != "" {
		if err := latex.WriteReportFile(opts.reportPath, rep); err != nil {
			return err
		}
		validateReportShape(rep, stderr)
	}
	if opts.jsonOut {
		return latex.FormatReportJSON(rep, stdout)
	}
	latex.FormatReport(rep, stdout)
	return nil
}

func validateReportShape(rep types.AuditReport, stderr io.Writer) {
	data, err := json.Marshal(rep)
	if err == nil {
		err = schemas.ValidateReport(data)
	}
	if err != nil {
		fmt.Fprintf(stderr, "warning: report failed schema validation: %v\n", err)
	}
}

func writeTempTex(content string) (string, error) {
	tmp, err := os.CreateTemp("", "*.pandoc_ready.tex")
	if err != nil {
		return "", &types.WriteError{Message: "creating temporary normalized source", Cause: err}
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", &types.WriteError{Message: "writing temporary normalized source", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", &types.WriteError{Message: "closing temporary normalized source", Cause: err}
	}
	return tmp.Name(), nil
}
