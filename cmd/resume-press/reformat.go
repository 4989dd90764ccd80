package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-press/internal/resume"
	"github.com/pdiddy/resume-press/pkg/types"
)

var reformatCmd = &cobra.Command{
	Use:   "reformat",
	Short: "Rebuild a DOCX resume with clean formatting",
	Long: `Reformat reads a DOCX resume and writes a cleanly styled copy. Every
non-empty paragraph is classified: the first one becomes the centered name
line when it is six words or fewer; paragraphs with a Heading style, a known
section title (Experience, Skills, Education, ...), or short all-Title-Case
text become section headings; List Bullet / List Number styles, numbering
properties, and literal markers ("-", "*", bullet glyphs, "1.") become list
items with the marker stripped; everything else is body text.

Pass --template to append the rebuilt resume onto an existing document, for
example one carrying page-number fields in its footer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		cfg := types.ReformatConfig{
			TemplatePath:  viper.GetString("reformat.template_path"),
			MaxTitleWords: viper.GetInt("reformat.max_title_words"),
		}
		if flags.Changed("template") || cfg.TemplatePath == "" {
			cfg.TemplatePath, _ = flags.GetString("template")
		}
		if flags.Changed("max-title-words") || cfg.MaxTitleWords == 0 {
			cfg.MaxTitleWords, _ = flags.GetInt("max-title-words")
		}

		in, _ := flags.GetString("in")
		out, _ := flags.GetString("out")
		_, err := resume.Reformat(cfg, in, out, cmd.OutOrStdout())
		return err
	},
}

func init() {
	reformatCmd.Flags().String("in", "", "input .docx resume")
	reformatCmd.Flags().String("out", "", "path for the reformatted .docx")
	reformatCmd.Flags().String("template", "", "template .docx to append the rebuilt resume onto")
	reformatCmd.Flags().Int("max-title-words", 6, "word-count ceiling for treating the first paragraph as the name line")
	_ = reformatCmd.MarkFlagRequired("in")
	_ = reformatCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(reformatCmd)
}
