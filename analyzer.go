package turkce

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDepth bounds the number of suffixes attached to one stem.
const maxDepth = 24

// walk is a partial analysis travelling through the suffix graph.
type walk struct {
	item    *DictionaryItem
	data    []MorphemeData
	surface string
	// pending restricts the next morpheme with a non-empty surface.
	pending constraint
	// zeroOpen is set after a zero derivation until a suffix with a
	// surface is attached.
	zeroOpen    bool
	ableDerived bool
	// front is the inverse harmony of the root, active until the first
	// suffix vowel.
	front bool
}

func startWalk(s *stem) walk {
	return walk{
		item:    s.item,
		data:    []MorphemeData{{Surface: s.surface, Morpheme: rootMorphemes[s.item.Pos]}},
		surface: s.surface,
		pending: s.constraint,
		front:   s.item.Has(AttrInverseHarmony),
	}
}

// advance attaches morpheme t realized as r, or reports false when the
// pending constraints forbid it.
func (w walk) advance(t *transition, r realized) (walk, bool) {
	if t.zero && w.zeroOpen {
		return w, false
	}
	if t.condition != nil && !t.condition(&w) {
		return w, false
	}
	if !w.pending.allows(t.morpheme, r.surface) {
		return w, false
	}
	next := w
	next.data = make([]MorphemeData, len(w.data), len(w.data)+1)
	copy(next.data, w.data)
	next.data = append(next.data, MorphemeData{Surface: r.surface, Morpheme: t.morpheme})
	next.surface = w.surface + r.surface
	if r.surface == "" {
		next.pending = w.pending.merge(t.constraint).merge(r.constraint)
	} else {
		next.pending = t.constraint.merge(r.constraint)
		next.zeroOpen = false
		if vowelCount(r.surface) > 0 {
			next.front = false
		}
	}
	if t.zero {
		next.zeroOpen = true
	}
	if t.morpheme == mAble {
		next.ableDerived = true
	}
	return next, true
}

// complete reports whether the walk is a whole word at state s.
func (w walk) complete(s *state) bool {
	return s.terminal && !w.zeroOpen && w.pending.allowsEnd()
}

func (w walk) analysis() SingleAnalysis {
	return SingleAnalysis{Item: w.item, Morphemes: w.data}
}

// Analyze returns every analysis of a single word. The word is expected
// in normalized (lowercase) form. Words without any lexicon analysis get
// one Unknown analysis spanning the word.
func (m *Morphology) Analyze(word string) WordAnalysis {
	wa := WordAnalysis{Input: word}
	if word == "" {
		return wa
	}
	if isNumber(word) {
		wa.Analyses = []SingleAnalysis{syntheticAnalysis(word, PosNumeral, mNumeral)}
		return wa
	}
	if isPunctuation(word) {
		wa.Analyses = []SingleAnalysis{syntheticAnalysis(word, PosPunctuation, mPunctuation)}
		return wa
	}

	var results []SingleAnalysis
	for i := range word {
		if i > m.maxStem {
			break
		}
		m.analyzePrefix(word, word[:i], &results)
	}
	if len(word) <= m.maxStem {
		m.analyzePrefix(word, word, &results)
	}

	if len(results) == 0 {
		wa.Analyses = []SingleAnalysis{syntheticAnalysis(word, PosUnknown, mUnknown)}
		return wa
	}
	wa.Analyses = sortUnique(results)
	return wa
}

func (m *Morphology) analyzePrefix(word, prefix string, out *[]SingleAnalysis) {
	if prefix == "" {
		return
	}
	for _, s := range m.stems[prefix] {
		root := m.tactics.root(s.item.Pos)
		if root == nil {
			continue
		}
		extend(root, startWalk(s), word[len(prefix):], 0, out)
	}
}

// extend follows every transition of s that consumes a prefix of rest.
func extend(s *state, w walk, rest string, depth int, out *[]SingleAnalysis) {
	if rest == "" && w.complete(s) {
		*out = append(*out, w.analysis())
	}
	if depth >= maxDepth {
		return
	}
	for _, t := range s.transitions {
		for _, r := range realize(t.template, w.surface, w.front) {
			if !strings.HasPrefix(rest, r.surface) {
				continue
			}
			next, ok := w.advance(t, r)
			if !ok {
				continue
			}
			extend(t.to, next, rest[len(r.surface):], depth+1, out)
		}
	}
}

func sortUnique(in []SingleAnalysis) []SingleAnalysis {
	seen := make(map[string]bool, len(in))
	out := make([]SingleAnalysis, 0, len(in))
	for _, a := range in {
		key := a.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Morphemes) != len(out[j].Morphemes) {
			return len(out[i].Morphemes) < len(out[j].Morphemes)
		}
		return out[i].String() < out[j].String()
	})
	return out
}

func syntheticAnalysis(word string, pos PrimaryPos, root *Morpheme) SingleAnalysis {
	item := &DictionaryItem{Lemma: word, Root: word, Pos: pos}
	return SingleAnalysis{
		Item:      item,
		Morphemes: []MorphemeData{{Surface: word, Morpheme: root}},
	}
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isPunctuation(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return s != ""
}

// AnalyzeSentence splits text on white space, separates leading and
// trailing punctuation into their own tokens and analyzes every token.
func (m *Morphology) AnalyzeSentence(text string) ([]WordAnalysis, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("analyze sentence: invalid UTF-8")
	}
	tokens := Tokenize(text)
	out := make([]WordAnalysis, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, m.Analyze(tok))
	}
	return out, nil
}

// Tokenize splits text into words and punctuation marks.
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		start, end := 0, len(field)
		var lead, trail []string
		for start < end {
			r, size := utf8.DecodeRuneInString(field[start:end])
			if !unicode.IsPunct(r) {
				break
			}
			lead = append(lead, string(r))
			start += size
		}
		for end > start {
			r, size := utf8.DecodeLastRuneInString(field[start:end])
			if !unicode.IsPunct(r) {
				break
			}
			trail = append([]string{string(r)}, trail...)
			end -= size
		}
		tokens = append(tokens, lead...)
		if start < end {
			tokens = append(tokens, field[start:end])
		}
		tokens = append(tokens, trail...)
	}
	return tokens
}
