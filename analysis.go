package turkce

import "strings"

// PrimaryPos represents the grammatical category of a dictionary item or
// of a derived inflectional group.
type PrimaryPos string

const (
	PosNoun         PrimaryPos = "Noun"
	PosAdjective    PrimaryPos = "Adj"
	PosAdverb       PrimaryPos = "Adv"
	PosConjunction  PrimaryPos = "Conj"
	PosDeterminer   PrimaryPos = "Det"
	PosPronoun      PrimaryPos = "Pron"
	PosPostPositive PrimaryPos = "Postp"
	PosNumeral      PrimaryPos = "Num"
	PosQuestion     PrimaryPos = "Ques"
	PosInterjection PrimaryPos = "Interj"
	PosVerb         PrimaryPos = "Verb"
	PosPunctuation  PrimaryPos = "Punc"
	PosUnknown      PrimaryPos = "Unk"
)

// MorphemeData is one morpheme realized inside a word.
type MorphemeData struct {
	// Surface is the substring of the word produced by the morpheme.
	// It is empty for morphemes without a phonological realization
	// (A3sg, Pnon, Nom, Zero ...).
	Surface string
	// Morpheme is the catalogue entry.
	Morpheme *Morpheme
}

// SingleAnalysis holds one segmentation of a word.
type SingleAnalysis struct {
	// Item is the dictionary item of the root. For unknown words and
	// numbers it is a synthetic item that is not part of the lexicon.
	Item *DictionaryItem
	// Morphemes lists the morphemes in surface order, root first.
	Morphemes []MorphemeData
}

// Surface returns the analysed word, i.e. the concatenation of all
// morpheme surfaces.
func (a SingleAnalysis) Surface() string {
	var b strings.Builder
	for _, md := range a.Morphemes {
		b.WriteString(md.Surface)
	}
	return b.String()
}

// Pos returns the category of the last inflectional group, which differs
// from the root category after a derivation ("okumak" is a Verb root
// nominalized into a Noun).
func (a SingleAnalysis) Pos() PrimaryPos {
	pos := PosUnknown
	for _, md := range a.Morphemes {
		if md.Morpheme.Pos != "" {
			pos = md.Morpheme.Pos
		}
	}
	return pos
}

// Last returns the final morpheme of the analysis.
func (a SingleAnalysis) Last() *Morpheme {
	if len(a.Morphemes) == 0 {
		return mUnknown
	}
	return a.Morphemes[len(a.Morphemes)-1].Morpheme
}

// String formats the analysis as "[lemma:Pos] surface:ID+ID|ID...",
// with derivational morphemes introduced by '|'.
func (a SingleAnalysis) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if a.Item != nil {
		b.WriteString(a.Item.Lemma)
		b.WriteByte(':')
		b.WriteString(string(a.Item.Pos))
	}
	b.WriteString("] ")
	for i, md := range a.Morphemes {
		if i > 0 {
			if md.Morpheme.Derivational {
				b.WriteByte('|')
			} else {
				b.WriteByte('+')
			}
		}
		if md.Surface != "" {
			b.WriteString(md.Surface)
			b.WriteByte(':')
		}
		b.WriteString(md.Morpheme.ID)
	}
	return b.String()
}

// WordAnalysis holds every candidate analysis of a single token.
type WordAnalysis struct {
	// Input is the token as it appeared in the sentence.
	Input string
	// Analyses are sorted by morpheme count, then lexically.
	Analyses []SingleAnalysis
}

// SentenceWordAnalysis pairs the candidates of a token with the analysis
// selected by the disambiguator.
type SentenceWordAnalysis struct {
	Word WordAnalysis
	Best SingleAnalysis
}

// SentenceAnalysis is the disambiguated result for a sentence.
type SentenceAnalysis struct {
	Sentence string
	Words    []SentenceWordAnalysis
}

// BestAnalysis returns the selected analysis of every word, in order.
func (s SentenceAnalysis) BestAnalysis() []SingleAnalysis {
	out := make([]SingleAnalysis, len(s.Words))
	for i, w := range s.Words {
		out[i] = w.Best
	}
	return out
}
