// Package turkce provides Turkish morphological analysis, disambiguation
// and normalization from a compact lexicon and a morphotactic suffix
// graph, loaded once from YAML data files.
package turkce

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

//go:embed data/*.yaml
var defaultData embed.FS

// Morphology holds all loaded data and provides the public API. It is
// never modified after New returns and is safe for concurrent use.
type Morphology struct {
	// items lists every dictionary item in load order.
	items []*DictionaryItem

	// lemmas maps lemma → items (one lemma may have several categories,
	// e.g. "yemek" as a noun and as a verb).
	lemmas map[string][]*DictionaryItem

	// stems maps every surface a root can take → stems.
	stems map[string][]*stem
	// maxStem is the byte length of the longest stem surface.
	maxStem int

	// tactics is the suffix graph shared by all items.
	tactics *morphotactics

	// descriptions maps morpheme ID → human readable description.
	descriptions map[string]string

	// replacements maps informal spellings → standard text.
	replacements map[string]string

	// abbreviations holds lowercase abbreviations without the final dot.
	abbreviations map[string]bool

	// weights drives the disambiguator.
	weights Weights

	extraLexicons []string
}

// Option configures New.
type Option func(*Morphology)

// WithLexiconFile merges an additional lexicon file (same format as
// lexicon.yaml) read from the local file system.
func WithLexiconFile(path string) Option {
	return func(m *Morphology) {
		m.extraLexicons = append(m.extraLexicons, path)
	}
}

// New loads all data files from dataDir.
func New(dataDir string, opts ...Option) (*Morphology, error) {
	return load(os.DirFS(dataDir), opts...)
}

// NewWithDefaults loads the data files embedded in the package.
func NewWithDefaults(opts ...Option) (*Morphology, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return load(sub, opts...)
}

func load(fsys fs.FS, opts ...Option) (*Morphology, error) {
	m := &Morphology{
		lemmas:        make(map[string][]*DictionaryItem),
		stems:         make(map[string][]*stem),
		tactics:       newMorphotactics(),
		descriptions:  make(map[string]string),
		replacements:  make(map[string]string),
		abbreviations: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.loadMorphemes(fsys); err != nil {
		return nil, err
	}
	if err := m.loadLexicon(fsys, "lexicon.yaml"); err != nil {
		return nil, err
	}
	for _, path := range m.extraLexicons {
		if err := m.loadLexiconFile(path); err != nil {
			return nil, err
		}
	}
	if err := m.loadNormalization(fsys); err != nil {
		return nil, err
	}
	if err := m.loadWeights(fsys); err != nil {
		return nil, err
	}
	if len(m.items) == 0 {
		return nil, fmt.Errorf("lexicon is empty")
	}
	return m, nil
}

// Items returns the dictionary items of lemma, in load order.
func (m *Morphology) Items(lemma string) []*DictionaryItem {
	items := m.lemmas[lemma]
	out := make([]*DictionaryItem, len(items))
	copy(out, items)
	return out
}

// ItemCount returns the size of the lexicon.
func (m *Morphology) ItemCount() int {
	return len(m.items)
}

// Describe returns the description of the morpheme with the given ID,
// or "" when it has none.
func (m *Morphology) Describe(id string) string {
	return m.descriptions[id]
}

// TagInfo is one line of the morpheme glossary.
type TagInfo struct {
	ID          string
	Name        string
	Description string
}

// Glossary lists every morpheme with its description, sorted by ID.
func (m *Morphology) Glossary() []TagInfo {
	out := make([]TagInfo, 0, len(catalogue))
	for _, mo := range catalogue {
		out = append(out, TagInfo{ID: mo.ID, Name: mo.Name, Description: m.descriptions[mo.ID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// addItem registers an item and indexes its stems.
func (m *Morphology) addItem(d *DictionaryItem, explicit []explicitStem) {
	d.buildStems(explicit)
	m.items = append(m.items, d)
	m.lemmas[d.Lemma] = append(m.lemmas[d.Lemma], d)
	for _, s := range d.stems {
		m.stems[s.surface] = append(m.stems[s.surface], s)
		m.maxStem = max(m.maxStem, len(s.surface))
	}
}
