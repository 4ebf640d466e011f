package turkce

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SentenceExtractor splits paragraphs into sentences.
type SentenceExtractor struct {
	abbreviations map[string]bool
}

// NewSentenceExtractor returns an extractor using the abbreviation list
// of m.
func NewSentenceExtractor(m *Morphology) *SentenceExtractor {
	return &SentenceExtractor{abbreviations: m.abbreviations}
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// FromParagraph returns the sentences of text, trimmed, in order. A
// period does not end a sentence after a known abbreviation ("Dr."), a
// single letter initial ("M."), a number ("3."), or when the next word
// starts with a lowercase letter.
func (e *SentenceExtractor) FromParagraph(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isSentenceEnd(r) {
			i += size
			continue
		}
		// swallow runs like "?!" or "..."
		end := i + size
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if !isSentenceEnd(next) && next != '"' && next != ')' && next != '”' {
				break
			}
			end += n
		}
		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsSpace(next) {
				i = end
				continue
			}
		}
		if r == '.' && end == i+size && !e.periodEnds(text[start:i], text[end:]) {
			i = end
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// periodEnds decides whether a single period between before and after
// closes a sentence.
func (e *SentenceExtractor) periodEnds(before, after string) bool {
	fields := strings.Fields(before)
	if len(fields) > 0 {
		last := strings.TrimLeftFunc(fields[len(fields)-1], unicode.IsPunct)
		if utf8.RuneCountInString(last) == 1 && unicode.IsLetter(firstRune(last)) {
			return false
		}
		if isNumber(last) {
			return false
		}
		if e.abbreviations[strings.ToLower(last)] {
			return false
		}
	}
	after = strings.TrimLeftFunc(after, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '“' || r == '('
	})
	if after != "" && unicode.IsLower(firstRune(after)) {
		return false
	}
	return true
}
