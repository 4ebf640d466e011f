package turkce

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer removes the apostrophes that separate proper nouns
// from their suffixes (Ankara'ya → Ankaraya).
var apostropheReplacer = strings.NewReplacer(
	"'", "",
	"`", "",
	"\u2019", "", // ’
	"\u2018", "", // ‘
	"\u02bc", "", // ʼ
	"\u00b4", "", // ´
)

// circumflexReplacer folds the optional circumflex forms found in
// informal text onto the spelling of the lexicon.
var circumflexReplacer = strings.NewReplacer(
	"\u00e2", "a", // â → a
	"\u00ee", "i", // î → i
	"\u00fb", "u", // û → u
)

// Normalizer turns raw user text into the form the analyzer expects.
type Normalizer struct {
	replacements map[string]string
}

// NewNormalizer returns a normalizer using the spelling table of m.
func NewNormalizer(m *Morphology) *Normalizer {
	return &Normalizer{replacements: m.replacements}
}

// Normalize lowercases text with Turkish rules (I → ı, İ → i), removes
// apostrophes, replaces every other punctuation mark or symbol with a
// space, expands informal spellings and collapses white space.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFC.String(text)
	// cases.Caser keeps state, one per call
	text = cases.Lower(language.Turkish).String(text)
	text = apostropheReplacer.Replace(text)
	text = circumflexReplacer.Replace(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)

	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if rep, ok := n.replacements[f]; ok {
			out = append(out, strings.Fields(rep)...)
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}
