// Package tagger turns sentences into per-word morpheme tags by running
// a normalizer, a morphological analyzer and a disambiguator in turn.
package tagger

import (
	"fmt"

	"github.com/kelime-lab/turkce"
)

// Tagger sequences the collaborators of one tagging call. It holds no
// mutable state and is safe for concurrent use when its collaborators
// are.
type Tagger struct {
	morphology Morphology
	extractor  SentenceExtractor
	normalizer Normalizer
}

// New creates a Tagger from its collaborators.
func New(morphology Morphology, extractor SentenceExtractor, normalizer Normalizer) *Tagger {
	return &Tagger{
		morphology: morphology,
		extractor:  extractor,
		normalizer: normalizer,
	}
}

// NewFromMorphology creates a Tagger backed entirely by m.
func NewFromMorphology(m *turkce.Morphology) *Tagger {
	return New(m, turkce.NewSentenceExtractor(m), turkce.NewNormalizer(m))
}

// Tag normalizes sentence, analyzes and disambiguates it and returns one
// TaggedWord per word of the normalized sentence, in order.
func (t *Tagger) Tag(sentence string) ([]TaggedWord, error) {
	normalized := t.normalizer.Normalize(sentence)

	words, err := t.morphology.AnalyzeSentence(normalized)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	result, err := t.morphology.Disambiguate(normalized, words)
	if err != nil {
		return nil, fmt.Errorf("disambiguate: %w", err)
	}

	tagged := make([]TaggedWord, 0, len(result.Words))
	for _, w := range result.Words {
		tagged = append(tagged, reshape(w.Best))
	}
	return tagged, nil
}

// Sentences splits a paragraph with the sentence extractor.
func (t *Tagger) Sentences(text string) []string {
	return t.extractor.FromParagraph(text)
}

func reshape(a turkce.SingleAnalysis) TaggedWord {
	w := TaggedWord{Morphemes: make([]MorphemeTag, 0, len(a.Morphemes))}
	for _, md := range a.Morphemes {
		w.Morphemes = append(w.Morphemes, MorphemeTag{Surface: md.Surface, Tag: md.Morpheme.Name})
	}
	return w
}
