package turkce

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

type lexiconFile struct {
	Items []lexiconEntry `yaml:"items"`
}

type lexiconEntry struct {
	Lemma     string      `yaml:"lemma"`
	Pos       string      `yaml:"pos"`
	Secondary string      `yaml:"secondary"`
	Agreement string      `yaml:"agreement"`
	Attrs     []string    `yaml:"attrs"`
	Freq      int         `yaml:"freq"`
	Stems     []stemEntry `yaml:"stems"`
}

type stemEntry struct {
	Surface    string   `yaml:"surface"`
	OnlyBefore []string `yaml:"only_before"`
}

type morphemesFile struct {
	Descriptions map[string]string `yaml:"descriptions"`
}

type normalizationFile struct {
	Replacements  map[string]string `yaml:"replacements"`
	Abbreviations []string          `yaml:"abbreviations"`
}

func readYAML(fsys fs.FS, name string, out interface{}) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	if err := yaml.UnmarshalStrict(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// loadMorphemes reads morphemes.yaml. Every described ID must exist in
// the catalogue.
func (m *Morphology) loadMorphemes(fsys fs.FS) error {
	var f morphemesFile
	if err := readYAML(fsys, "morphemes.yaml", &f); err != nil {
		return err
	}
	for id, desc := range f.Descriptions {
		if _, ok := MorphemeByID(id); !ok {
			return fmt.Errorf("morphemes.yaml: unknown morpheme %q", id)
		}
		m.descriptions[id] = desc
	}
	return nil
}

// loadLexicon reads a lexicon file from fsys.
func (m *Morphology) loadLexicon(fsys fs.FS, name string) error {
	var f lexiconFile
	if err := readYAML(fsys, name, &f); err != nil {
		return err
	}
	return m.addEntries(name, f.Items)
}

// loadLexiconFile reads an extra lexicon from the local file system.
func (m *Morphology) loadLexiconFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open lexicon: %w", err)
	}
	var f lexiconFile
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return m.addEntries(path, f.Items)
}

func (m *Morphology) addEntries(source string, entries []lexiconEntry) error {
	for i, e := range entries {
		d, err := newDictionaryItem(strings.ToLower(e.Lemma), PrimaryPos(e.Pos), e.Secondary, e.Agreement, e.Attrs, e.Freq)
		if err != nil {
			return fmt.Errorf("%s: entry %d: %w", source, i+1, err)
		}
		explicit := make([]explicitStem, 0, len(e.Stems))
		for _, s := range e.Stems {
			if s.Surface == "" || len(s.OnlyBefore) == 0 {
				return fmt.Errorf("%s: entry %d: stem needs a surface and only_before", source, i+1)
			}
			es := explicitStem{surface: s.Surface}
			for _, id := range s.OnlyBefore {
				mo, ok := MorphemeByID(id)
				if !ok {
					return fmt.Errorf("%s: entry %d: unknown morpheme %q", source, i+1, id)
				}
				es.onlyBefore = append(es.onlyBefore, mo)
			}
			explicit = append(explicit, es)
		}
		m.addItem(d, explicit)
	}
	return nil
}

// loadNormalization reads the informal spelling table and the
// abbreviation list.
func (m *Morphology) loadNormalization(fsys fs.FS) error {
	var f normalizationFile
	if err := readYAML(fsys, "normalization.yaml", &f); err != nil {
		return err
	}
	for k, v := range f.Replacements {
		m.replacements[k] = v
	}
	for _, a := range f.Abbreviations {
		m.abbreviations[strings.TrimSuffix(strings.ToLower(a), ".")] = true
	}
	return nil
}

// loadWeights reads weights.yaml. Feature names are checked so that a
// typo does not silently disable a weight.
func (m *Morphology) loadWeights(fsys fs.FS) error {
	var w Weights
	if err := readYAML(fsys, "weights.yaml", &w); err != nil {
		return err
	}
	for name := range w.Features {
		if err := validFeature(name); err != nil {
			return fmt.Errorf("weights.yaml: %w", err)
		}
	}
	m.weights = w
	return nil
}
