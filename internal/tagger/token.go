package tagger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MorphemeTag is one morpheme of a word: its surface substring and the
// name of its tag.
type MorphemeTag struct {
	Surface string `json:"surface"`
	Tag     string `json:"tag"`
}

// TaggedWord holds the morphemes of one word in surface order. It
// serializes as a JSON object mapping surface to tag, keys in morpheme
// order.
type TaggedWord struct {
	Morphemes []MorphemeTag
}

// Entries returns the morphemes as unique keys whose concatenation is
// the word. A surface that repeats absorbs everything from its first
// occurrence up to the repeat: adjacent empty surfaces give
// "": "ThirdPersonSingular+NoPosession", and "gel·me·me·yi" gives
// "meme": "Negative+Infinitive2". Tags are joined with "+" in order.
func (w TaggedWord) Entries() []MorphemeTag {
	out := make([]MorphemeTag, 0, len(w.Morphemes))
	for _, m := range w.Morphemes {
		e := m
		for {
			i := indexOfSurface(out, e.Surface)
			if i < 0 {
				break
			}
			merged := out[i]
			for _, prev := range out[i+1:] {
				merged.Surface += prev.Surface
				merged.Tag += "+" + prev.Tag
			}
			merged.Surface += e.Surface
			merged.Tag += "+" + e.Tag
			out, e = out[:i], merged
		}
		out = append(out, e)
	}
	return out
}

func indexOfSurface(entries []MorphemeTag, surface string) int {
	for i, e := range entries {
		if e.Surface == surface {
			return i
		}
	}
	return -1
}

// Map returns the entries as a map.
func (w TaggedWord) Map() map[string]string {
	out := make(map[string]string, len(w.Morphemes))
	for _, e := range w.Entries() {
		out[e.Surface] = e.Tag
	}
	return out
}

// Surface returns the word, i.e. the concatenation of the morpheme
// surfaces.
func (w TaggedWord) Surface() string {
	var b strings.Builder
	for _, m := range w.Morphemes {
		b.WriteString(m.Surface)
	}
	return b.String()
}

// MarshalJSON writes the entries as an ordered JSON object.
func (w TaggedWord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range w.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Surface)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Tag)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object written by MarshalJSON, keeping the key
// order.
func (w *TaggedWord) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("tagged word: expected object, got %v", tok)
	}
	w.Morphemes = w.Morphemes[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("tagged word: expected key, got %v", tok)
		}
		var tag string
		if err := dec.Decode(&tag); err != nil {
			return fmt.Errorf("tagged word %q: %w", key, err)
		}
		w.Morphemes = append(w.Morphemes, MorphemeTag{Surface: key, Tag: tag})
	}
	_, err = dec.Token()
	return err
}
