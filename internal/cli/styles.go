package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/kelime-lab/turkce/internal/tagger"
)

// styles renders tagged words; every style is empty when the output is
// not a terminal.
type styles struct {
	word    lipgloss.Style
	surface lipgloss.Style
	tag     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{word: plain, surface: plain, tag: plain, muted: plain}
	}
	return styles{
		word:    lipgloss.NewStyle().Bold(true),
		surface: lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderWord formats a word as "okula  okul/Noun -/ThirdPersonSingular
// -/NoPosession a/Dative", one pair per morpheme; an empty surface is
// shown as "-".
func (s styles) renderWord(w tagger.TaggedWord) string {
	var b strings.Builder
	b.WriteString(s.word.Render(w.Surface()))
	b.WriteString(" ")
	for _, e := range w.Morphemes {
		b.WriteString(" ")
		if e.Surface == "" {
			b.WriteString(s.muted.Render("-"))
		} else {
			b.WriteString(s.surface.Render(e.Surface))
		}
		b.WriteString(s.muted.Render("/"))
		b.WriteString(s.tag.Render(e.Tag))
	}
	return b.String()
}
