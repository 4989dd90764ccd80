// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-press CLI.
// Implements: prd001-reformat, prd002-normalization, prd003-braces,
//             prd004-conversion, prd005-fonts, prd006-reports (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-press/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the resume-press CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-press",
	Short: "Resume document conversion tools",
	Long: `resume-press converts resume documents between formats. The convert
subcommand rewrites resume-flavored LaTeX into plain constructs Pandoc can
handle and optionally runs the conversion to DOCX; the reformat subcommand
reads an existing DOCX resume and writes a cleanly styled copy.

Each failure kind has its own exit code: 2 for input file problems, 3 for
write failures, 4 for brace imbalance, 5 for converter failures, 1 for
everything else.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-press.yaml or ~/.config/resume-press/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-press")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-press"))
		}
	}

	viper.SetEnvPrefix("RESUME_PRESS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
