package turkce

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrWordCountMismatch is returned when the candidates do not line up
	// with the tokens of the sentence.
	ErrWordCountMismatch = errors.New("word count mismatch")
	// ErrNoCandidates is returned when a word has no analysis to choose.
	ErrNoCandidates = errors.New("word has no candidate analysis")
)

// Weights parameterizes the linear scorer of the disambiguator.
type Weights struct {
	// Frequency multiplies log(1 + root frequency).
	Frequency float64 `yaml:"frequency"`
	// MorphemeCount multiplies the number of morphemes of an analysis.
	MorphemeCount float64 `yaml:"morpheme_count"`
	// Features holds the weight of each named feature:
	//   morph:ID          analysis contains the morpheme
	//   pos:Pos           final category of the analysis
	//   end:Pos           final category of the last word
	//   nonfinal:Pos      final category of any other word
	//   bigram:ID>ID      last morpheme of the previous word, any morpheme
	//                     of the current word
	//   posbigram:Pos>Pos categories of the previous and current word
	Features map[string]float64 `yaml:"features"`
}

var featureKinds = []string{"morph", "pos", "end", "nonfinal", "bigram", "posbigram"}

func validFeature(name string) error {
	kind, value, ok := strings.Cut(name, ":")
	if !ok || value == "" {
		return fmt.Errorf("malformed feature %q", name)
	}
	for _, k := range featureKinds {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("unknown feature kind %q", kind)
}

func (w Weights) feature(kind, value string) float64 {
	return w.Features[kind+":"+value]
}

// unary scores an analysis on its own; last reports whether the word
// ends the sentence.
func (w Weights) unary(a SingleAnalysis, last bool) float64 {
	score := w.MorphemeCount * float64(len(a.Morphemes))
	if a.Item != nil && a.Item.Frequency > 0 {
		score += w.Frequency * math.Log1p(float64(a.Item.Frequency))
	}
	for _, md := range a.Morphemes {
		score += w.feature("morph", md.Morpheme.ID)
	}
	pos := string(a.Pos())
	score += w.feature("pos", pos)
	if last {
		score += w.feature("end", pos)
	} else {
		score += w.feature("nonfinal", pos)
	}
	return score
}

// pair scores two analyses of adjacent words.
func (w Weights) pair(prev, cur SingleAnalysis) float64 {
	score := w.feature("posbigram", string(prev.Pos())+">"+string(cur.Pos()))
	last := prev.Last().ID
	for _, md := range cur.Morphemes {
		score += w.feature("bigram", last+">"+md.Morpheme.ID)
	}
	return score
}

// Disambiguate selects one analysis per word, maximizing the sentence
// score with Viterbi decoding over the candidate lattice. On equal
// scores the earlier candidate wins, so the result is deterministic.
// words must be the output of AnalyzeSentence for sentence.
func (m *Morphology) Disambiguate(sentence string, words []WordAnalysis) (SentenceAnalysis, error) {
	if n := len(Tokenize(sentence)); n != len(words) {
		return SentenceAnalysis{}, fmt.Errorf("disambiguate: %d tokens, %d analyses: %w", n, len(words), ErrWordCountMismatch)
	}
	for i, wa := range words {
		if len(wa.Analyses) == 0 {
			return SentenceAnalysis{}, fmt.Errorf("disambiguate: word %d %q: %w", i+1, wa.Input, ErrNoCandidates)
		}
	}
	result := SentenceAnalysis{Sentence: sentence, Words: make([]SentenceWordAnalysis, len(words))}
	if len(words) == 0 {
		return result, nil
	}

	w := m.weights
	lastIdx := len(words) - 1
	score := make([][]float64, len(words))
	back := make([][]int, len(words))
	for i, wa := range words {
		score[i] = make([]float64, len(wa.Analyses))
		back[i] = make([]int, len(wa.Analyses))
		for j, a := range wa.Analyses {
			u := w.unary(a, i == lastIdx)
			if i == 0 {
				score[i][j] = u
				continue
			}
			best, arg := math.Inf(-1), 0
			for k, p := range words[i-1].Analyses {
				s := score[i-1][k] + w.pair(p, a)
				if s > best {
					best, arg = s, k
				}
			}
			score[i][j] = best + u
			back[i][j] = arg
		}
	}

	j := 0
	for k := range score[lastIdx] {
		if score[lastIdx][k] > score[lastIdx][j] {
			j = k
		}
	}
	for i := lastIdx; i >= 0; i-- {
		result.Words[i] = SentenceWordAnalysis{Word: words[i], Best: words[i].Analyses[j]}
		j = back[i][j]
	}
	return result, nil
}
