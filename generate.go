package turkce

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLemma is returned when no lexicon item matches the lemma
	// and category.
	ErrUnknownLemma = errors.New("unknown lemma")
	// ErrInvalidSequence is returned when the morphemes cannot follow the
	// root in the given order.
	ErrInvalidSequence = errors.New("invalid morpheme sequence")
)

// Generate builds the word made of lemma followed by the morphemes with
// the given IDs, e.g. Generate("kitap", PosNoun, "A3sg", "P3sg", "Dat")
// returns "kitabına". Morphemes without a surface must be listed too.
func (m *Morphology) Generate(lemma string, pos PrimaryPos, ids ...string) (string, error) {
	var items []*DictionaryItem
	for _, d := range m.lemmas[lemma] {
		if d.Pos == pos {
			items = append(items, d)
		}
	}
	if len(items) == 0 {
		return "", fmt.Errorf("generate %s:%s: %w", lemma, pos, ErrUnknownLemma)
	}

	seq := make([]*Morpheme, 0, len(ids))
	for _, id := range ids {
		mo, ok := MorphemeByID(id)
		if !ok {
			return "", fmt.Errorf("generate %s: morpheme %q: %w", lemma, id, ErrInvalidSequence)
		}
		seq = append(seq, mo)
	}

	for _, d := range items {
		for _, s := range d.stems {
			if word, ok := follow(m.tactics.root(d.Pos), startWalk(s), seq); ok {
				return word, nil
			}
		}
	}
	return "", fmt.Errorf("generate %s %v: %w", lemma, ids, ErrInvalidSequence)
}

// follow walks the graph along exactly the morphemes of seq and returns
// the first complete surface.
func follow(s *state, w walk, seq []*Morpheme) (string, bool) {
	if len(seq) == 0 {
		if w.complete(s) {
			return w.surface, true
		}
		return "", false
	}
	for _, t := range s.transitions {
		if t.morpheme != seq[0] {
			continue
		}
		for _, r := range realize(t.template, w.surface, w.front) {
			next, ok := w.advance(t, r)
			if !ok {
				continue
			}
			if word, ok := follow(t.to, next, seq[1:]); ok {
				return word, true
			}
		}
	}
	return "", false
}
