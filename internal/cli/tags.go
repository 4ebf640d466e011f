package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the morpheme tags",
	Long:  `Lists every morpheme tag with its short ID, the name used in tagger output and a description.`,
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, _ []string) error {
	m, err := loadMorphology(cfg.Analysis)
	if err != nil {
		return err
	}

	infos := m.Glossary()
	idWidth, nameWidth := 0, 0
	for _, t := range infos {
		idWidth = max(idWidth, lipgloss.Width(t.ID))
		nameWidth = max(nameWidth, lipgloss.Width(t.Name))
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	idCol := st.tag.Width(idWidth + 2)
	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)
	for _, t := range infos {
		fmt.Fprintln(out, idCol.Render(t.ID) + nameCol.Render(t.Name) + st.muted.Render(t.Description))
	}
	return nil
}
