package tagger

import (
	"strings"

	"github.com/kelime-lab/turkce"
)

// stubNormalizer lowercases and collapses white space.
type stubNormalizer struct{}

func (stubNormalizer) Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// stubExtractor splits on periods.
type stubExtractor struct{}

func (stubExtractor) FromParagraph(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s+".")
		}
	}
	return out
}

func morpheme(id string) *turkce.Morpheme {
	m, ok := turkce.MorphemeByID(id)
	if !ok {
		panic("unknown morpheme " + id)
	}
	return m
}

// stubMorphology analyzes every word as a noun root followed by A3sg,
// Pnon and a one letter dative suffix. Words of one letter are a bare
// root.
type stubMorphology struct {
	analyzeErr      error
	disambiguateErr error
	analyzeCalls    int
	lastNormalized  string
}

func (s *stubMorphology) AnalyzeSentence(text string) ([]turkce.WordAnalysis, error) {
	s.analyzeCalls++
	s.lastNormalized = text
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	var out []turkce.WordAnalysis
	for _, w := range strings.Fields(text) {
		item := &turkce.DictionaryItem{Lemma: w, Root: w, Pos: turkce.PosNoun}
		a := turkce.SingleAnalysis{Item: item}
		if len(w) == 1 {
			a.Morphemes = []turkce.MorphemeData{{Surface: w, Morpheme: morpheme("Noun")}}
		} else {
			a.Morphemes = []turkce.MorphemeData{
				{Surface: w[:len(w)-1], Morpheme: morpheme("Noun")},
				{Surface: "", Morpheme: morpheme("A3sg")},
				{Surface: "", Morpheme: morpheme("Pnon")},
				{Surface: w[len(w)-1:], Morpheme: morpheme("Dat")},
			}
		}
		out = append(out, turkce.WordAnalysis{Input: w, Analyses: []turkce.SingleAnalysis{a}})
	}
	return out, nil
}

func (s *stubMorphology) Disambiguate(text string, words []turkce.WordAnalysis) (turkce.SentenceAnalysis, error) {
	if s.disambiguateErr != nil {
		return turkce.SentenceAnalysis{}, s.disambiguateErr
	}
	sa := turkce.SentenceAnalysis{Sentence: text}
	for _, w := range words {
		sa.Words = append(sa.Words, turkce.SentenceWordAnalysis{Word: w, Best: w.Analyses[0]})
	}
	return sa, nil
}

// funcTagger adapts a function to SentenceTagger.
type funcTagger func(string) ([]TaggedWord, error)

func (f funcTagger) Tag(sentence string) ([]TaggedWord, error) {
	return f(sentence)
}
