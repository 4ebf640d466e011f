package turkce

import (
	"fmt"
	"strings"
)

// Attribute is a morphophonemic property of a dictionary item.
type Attribute string

const (
	// AttrVoicing softens a final p, ç, t, k before vowels (git > gid).
	// Polysyllabic nouns and adjectives get it by default.
	AttrVoicing Attribute = "Voicing"
	// AttrNoVoicing disables the default voicing (saat > saati).
	AttrNoVoicing Attribute = "NoVoicing"
	// AttrLastVowelDrop drops the vowel of the final syllable before
	// vowels (ağız > ağzı).
	AttrLastVowelDrop Attribute = "LastVowelDrop"
	// AttrDoubling doubles the final consonant before vowels (hak > hakkı).
	AttrDoubling Attribute = "Doubling"
	// AttrInverseHarmony makes suffixes take front vowels after a back
	// vowel stem (saat > saatler).
	AttrInverseHarmony Attribute = "InverseHarmony"
	// AttrAoristI marks monosyllabic verbs taking -Ir in the aorist
	// (gel > gelir).
	AttrAoristI Attribute = "AoristI"
)

var knownAttributes = map[Attribute]bool{
	AttrVoicing:        true,
	AttrNoVoicing:      true,
	AttrLastVowelDrop:  true,
	AttrDoubling:       true,
	AttrInverseHarmony: true,
	AttrAoristI:        true,
}

// DictionaryItem is a lexicon entry.
type DictionaryItem struct {
	// Lemma is the dictionary form (verbs keep the -mAk ending).
	Lemma string
	// Root is the form suffixes attach to (gitmek > git).
	Root string
	// Pos is the primary category.
	Pos PrimaryPos
	// SecondaryPos refines the category (Prop, Pers, Demons, ...).
	SecondaryPos string
	// Agreement is the fixed person/number of pronouns.
	Agreement *Morpheme
	// Attributes lists morphophonemic properties.
	Attributes []Attribute
	// Frequency is a corpus count used by the disambiguator.
	Frequency int

	stems []*stem
}

// Has reports whether the item carries attribute a.
func (d *DictionaryItem) Has(a Attribute) bool {
	for _, x := range d.Attributes {
		if x == a {
			return true
		}
	}
	return false
}

func (d *DictionaryItem) String() string {
	return d.Lemma + ":" + string(d.Pos)
}

// stem is one surface a root can take, indexed by the analyzer.
// Mirrors the role of radicals in a paradigm-based lemmatizer.
type stem struct {
	surface    string
	item       *DictionaryItem
	constraint constraint
}

// explicitStem is a lexicon-provided irregular stem (ben > ban before Dat).
type explicitStem struct {
	surface    string
	onlyBefore []*Morpheme
}

// newDictionaryItem validates a lexicon entry and derives its root.
func newDictionaryItem(lemma string, pos PrimaryPos, secondary, agreement string, attrs []string, freq int) (*DictionaryItem, error) {
	lemma = strings.TrimSpace(lemma)
	if lemma == "" {
		return nil, fmt.Errorf("empty lemma")
	}
	if _, ok := rootMorphemes[pos]; !ok || pos == PosUnknown || pos == PosPunctuation {
		return nil, fmt.Errorf("item %q: unknown pos %q", lemma, pos)
	}
	d := &DictionaryItem{
		Lemma:        lemma,
		Root:         lemma,
		Pos:          pos,
		SecondaryPos: secondary,
		Frequency:    freq,
	}
	if pos == PosVerb {
		root, ok := verbRoot(lemma)
		if !ok {
			return nil, fmt.Errorf("item %q: verb lemma must end with -mek or -mak", lemma)
		}
		d.Root = root
	}
	if agreement != "" {
		m, ok := MorphemeByID(agreement)
		if !ok || !containsMorpheme([]*Morpheme{mA1sg, mA2sg, mA3sg, mA1pl, mA2pl, mA3pl}, m) {
			return nil, fmt.Errorf("item %q: invalid agreement %q", lemma, agreement)
		}
		d.Agreement = m
	} else if pos == PosPronoun {
		d.Agreement = mA3sg
	}
	for _, a := range attrs {
		attr := Attribute(a)
		if !knownAttributes[attr] {
			return nil, fmt.Errorf("item %q: unknown attribute %q", lemma, a)
		}
		d.Attributes = append(d.Attributes, attr)
	}
	return d, nil
}

func verbRoot(lemma string) (string, bool) {
	for _, suffix := range []string{"mek", "mak"} {
		if strings.HasSuffix(lemma, suffix) && len(lemma) > len(suffix) {
			return strings.TrimSuffix(lemma, suffix), true
		}
	}
	return "", false
}

// voices reports whether the root alternates its final stop.
func (d *DictionaryItem) voices() bool {
	if d.Has(AttrNoVoicing) {
		return false
	}
	if d.Has(AttrVoicing) {
		return true
	}
	switch d.Pos {
	case PosNoun, PosAdjective:
		if d.SecondaryPos == "Prop" || vowelCount(d.Root) < 2 {
			return false
		}
		return strings.ContainsRune("pçtk", lastRune(d.Root))
	}
	return false
}

// buildStems computes every surface the root can take. The plain root
// is restricted whenever an alternative form exists for some context.
func (d *DictionaryItem) buildStems(explicit []explicitStem) {
	base := &stem{surface: d.Root, item: d}
	d.stems = []*stem{base}

	var alternate string
	switch {
	case d.voices():
		alternate, _ = voiced(d.Root)
	case d.Has(AttrLastVowelDrop):
		alternate, _ = dropLastVowel(d.Root)
	case d.Has(AttrDoubling):
		alternate = d.Root + string(lastRune(d.Root))
	}
	if alternate != "" && alternate != d.Root {
		base.constraint.nextConsonant = true
		d.stems = append(d.stems, &stem{
			surface:    alternate,
			item:       d,
			constraint: constraint{nextVowel: true},
		})
	}

	if d.Pos == PosVerb {
		if prog, ok := progressiveStem(d.Root); ok {
			base.constraint.notBefore = append(base.constraint.notBefore, mProg1)
			d.stems = append(d.stems, &stem{
				surface:    prog,
				item:       d,
				constraint: constraint{onlyBefore: []*Morpheme{mProg1}},
			})
		}
	}

	for _, e := range explicit {
		base.constraint.notBefore = append(base.constraint.notBefore, e.onlyBefore...)
		d.stems = append(d.stems, &stem{
			surface:    e.surface,
			item:       d,
			constraint: constraint{onlyBefore: e.onlyBefore},
		})
	}
}
