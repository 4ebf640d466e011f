package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelime-lab/turkce/internal/tagger"
)

var (
	tagFile string
	tagJSON bool
)

var tagCmd = &cobra.Command{
	Use:   "tag [sentence]",
	Short: "Tag the morphemes of a sentence",
	Long: `Tags a sentence given as argument. With --file, or without argument
(reading standard input), the text is split into sentences first.

Each word is printed with its morphemes as surface/tag pairs; --json prints
one {"sentence","tokens","morphemes"} object per line: tokens as returned
by POST /tag, morphemes as the ordered surface/tag pairs of each word.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTag,
}

func init() {
	tagCmd.Flags().StringVarP(&tagFile, "file", "f", "", "read text from a file")
	tagCmd.Flags().BoolVar(&tagJSON, "json", false, "output as JSON lines")
	rootCmd.AddCommand(tagCmd)
}

// tagLine is one --json output line. Morphemes holds the unmerged
// (surface, tag) pairs of each word.
type tagLine struct {
	Sentence  string                 `json:"sentence"`
	Tokens    []tagger.TaggedWord    `json:"tokens"`
	Morphemes [][]tagger.MorphemeTag `json:"morphemes"`
}

func runTag(cmd *cobra.Command, args []string) error {
	if tagFile != "" && len(args) > 0 {
		return errors.New("give either a sentence or --file")
	}

	m, err := loadMorphology(cfg.Analysis)
	if err != nil {
		return err
	}
	t := tagger.NewFromMorphology(m)

	var sentences []string
	switch {
	case len(args) == 1:
		sentences = []string{args[0]}
	case tagFile != "":
		b, err := os.ReadFile(tagFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", tagFile, err)
		}
		sentences = t.Sentences(string(b))
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		sentences = t.Sentences(string(b))
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	for i, s := range sentences {
		words, err := t.Tag(s)
		if err != nil {
			return fmt.Errorf("tag %q: %w", s, err)
		}

		if tagJSON {
			line := tagLine{Sentence: s, Tokens: words, Morphemes: make([][]tagger.MorphemeTag, len(words))}
			for j, w := range words {
				line.Morphemes[j] = w.Morphemes
			}
			data, err := json.Marshal(line)
			if err != nil {
				return fmt.Errorf("failed to marshal tokens: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, w := range words {
			fmt.Fprintln(out, st.renderWord(w))
		}
	}
	return nil
}
