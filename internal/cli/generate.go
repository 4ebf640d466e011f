package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelime-lab/turkce"
)

var generateCmd = &cobra.Command{
	Use:   "generate <lemma> <pos> [morpheme...]",
	Short: "Build a word from a lemma and morpheme IDs",
	Long: `Builds the surface form of a lemma followed by morphemes, given by ID.
Morphemes without a surface must be listed too:

  turkce generate kitap Noun A3sg P3sg Dat     # kitabına
  turkce generate gitmek Verb Prog1 A1sg       # gidiyorum

See "turkce tags" for the IDs.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := loadMorphology(cfg.Analysis)
	if err != nil {
		return err
	}

	word, err := m.Generate(args[0], turkce.PrimaryPos(args[1]), args[2:]...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), word)
	return nil
}
