package tagger

import "github.com/kelime-lab/turkce"

// Normalizer turns raw text into the form the analyzer expects.
type Normalizer interface {
	Normalize(text string) string
}

// SentenceExtractor splits a paragraph into sentences.
type SentenceExtractor interface {
	FromParagraph(text string) []string
}

// Analyzer produces the candidate analyses of every word of a sentence.
type Analyzer interface {
	AnalyzeSentence(text string) ([]turkce.WordAnalysis, error)
}

// Disambiguator selects one analysis per word.
type Disambiguator interface {
	Disambiguate(text string, words []turkce.WordAnalysis) (turkce.SentenceAnalysis, error)
}

// Morphology is the analyzer and disambiguator of one engine.
type Morphology interface {
	Analyzer
	Disambiguator
}

// Ensure the engine satisfies the ports.
var (
	_ Morphology        = (*turkce.Morphology)(nil)
	_ Normalizer        = (*turkce.Normalizer)(nil)
	_ SentenceExtractor = (*turkce.SentenceExtractor)(nil)
)
