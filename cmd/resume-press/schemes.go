package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-press/internal/fonts"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List available font schemes",
	Long: `Schemes lists the font schemes the convert subcommand accepts: the two
builtin Computer Modern schemes plus any YAML schemes found in the schemes
directory. Directory entries shadow builtins of the same name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		dir := viper.GetString("convert.schemes_dir")
		if flags.Changed("schemes-dir") || dir == "" {
			dir, _ = flags.GetString("schemes-dir")
		}

		all := fonts.Builtin()
		if dir != "" {
			loaded, err := fonts.LoadDir(dir)
			if err != nil {
				return err
			}
			for name, scheme := range loaded {
				all[name] = scheme
			}
		}

		if jsonOut, _ := flags.GetBool("json"); jsonOut {
			return fonts.FormatJSON(all, cmd.OutOrStdout())
		}
		fonts.FormatTable(all, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	schemesCmd.Flags().String("schemes-dir", "", "directory of extra font scheme YAML files")
	schemesCmd.Flags().Bool("json", false, "output schemes as JSON")

	rootCmd.AddCommand(schemesCmd)
}
