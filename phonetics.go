package turkce

import (
	"strings"
	"unicode/utf8"
)

const (
	vowels          = "aeıioöuüâîû"
	frontVowels     = "eiöüî"
	roundedVowels   = "oöuüû"
	voicelessLetter = "çfhkpsşt"
)

func isVowel(r rune) bool        { return strings.ContainsRune(vowels, r) }
func isFrontVowel(r rune) bool   { return strings.ContainsRune(frontVowels, r) }
func isRoundedVowel(r rune) bool { return strings.ContainsRune(roundedVowels, r) }
func isVoiceless(r rune) bool    { return strings.ContainsRune(voicelessLetter, r) }

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func endsWithVowel(s string) bool   { return s != "" && isVowel(lastRune(s)) }
func startsWithVowel(s string) bool { return s != "" && isVowel(firstRune(s)) }

// lastVowel returns the last vowel of s.
func lastVowel(s string) (rune, bool) {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if isVowel(r) {
			return r, true
		}
		s = s[:len(s)-size]
	}
	return 0, false
}

// vowelCount counts the syllables of s.
func vowelCount(s string) int {
	n := 0
	for _, r := range s {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// harmony describes the vowel a suffix has to agree with.
type harmony struct {
	front   bool
	rounded bool
}

// harmonyOf derives the harmony of the text preceding a suffix. Text
// without vowels behaves like a front unrounded stem ("d" + Iyor = "diyor").
func harmonyOf(prev string) harmony {
	v, ok := lastVowel(prev)
	if !ok {
		return harmony{front: true}
	}
	return harmony{front: isFrontVowel(v), rounded: isRoundedVowel(v)}
}

// twoWay resolves the archiphoneme A.
func (h harmony) twoWay() rune {
	if h.front {
		return 'e'
	}
	return 'a'
}

// fourWay resolves the archiphoneme I.
func (h harmony) fourWay() rune {
	switch {
	case h.front && h.rounded:
		return 'ü'
	case h.front:
		return 'i'
	case h.rounded:
		return 'u'
	default:
		return 'ı'
	}
}

// constraint restricts what may follow a realized surface. Constraints
// are checked against the next morpheme with a non-empty surface, empty
// morphemes carry them forward.
type constraint struct {
	nextVowel     bool
	nextConsonant bool
	onlyBefore    []*Morpheme
	notBefore     []*Morpheme
}

func containsMorpheme(list []*Morpheme, m *Morpheme) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}

// allows reports whether morpheme m realized as surface may follow.
func (c constraint) allows(m *Morpheme, surface string) bool {
	if surface == "" {
		return true
	}
	if len(c.onlyBefore) > 0 && !containsMorpheme(c.onlyBefore, m) {
		return false
	}
	if containsMorpheme(c.notBefore, m) {
		return false
	}
	if c.nextVowel && !startsWithVowel(surface) {
		return false
	}
	if c.nextConsonant && startsWithVowel(surface) {
		return false
	}
	return true
}

// allowsEnd reports whether the word may end here.
func (c constraint) allowsEnd() bool {
	return !c.nextVowel && len(c.onlyBefore) == 0
}

func (c constraint) merge(o constraint) constraint {
	return constraint{
		nextVowel:     c.nextVowel || o.nextVowel,
		nextConsonant: c.nextConsonant || o.nextConsonant,
		onlyBefore:    append(c.onlyBefore[:len(c.onlyBefore):len(c.onlyBefore)], o.onlyBefore...),
		notBefore:     append(c.notBefore[:len(c.notBefore):len(c.notBefore)], o.notBefore...),
	}
}

// realized is one surface a suffix template can take.
type realized struct {
	surface    string
	constraint constraint
}

// realize turns a suffix template into its surface after prev.
//
// Template letters: A = a/e, I = ı/i/u/ü, D = d/t, C = c/ç, K (final
// only) = k before consonants and word end, ğ before vowels. A
// parenthesized group is a buffer: kept when it starts with a consonant
// and prev ends with a vowel, or starts with a vowel and prev ends with
// a consonant. front forces front harmony until the first vowel is
// emitted (stems like "saat" or "kalp").
func realize(template, prev string, front bool) []realized {
	if template == "" {
		return []realized{{}}
	}
	var b strings.Builder
	acc := prev
	emit := func(r rune) {
		b.WriteRune(r)
		acc += string(r)
		if isVowel(r) {
			front = false
		}
	}
	h := func() harmony {
		if front {
			v, _ := lastVowel(acc)
			return harmony{front: true, rounded: isRoundedVowel(v)}
		}
		return harmonyOf(acc)
	}

	runes := []rune(template)
	softK := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '(' {
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			group := runes[i+1 : end]
			i = end
			if len(group) == 0 {
				continue
			}
			opensWithVowel := group[0] == 'A' || group[0] == 'I' || isVowel(group[0])
			if opensWithVowel == endsWithVowel(acc) {
				continue
			}
			for _, g := range group {
				emit(resolve(g, acc, h()))
			}
			continue
		}
		if r == 'K' && i == len(runes)-1 {
			softK = true
			continue
		}
		emit(resolve(r, acc, h()))
	}

	surface := b.String()
	if !softK {
		return []realized{{surface: surface}}
	}
	return []realized{
		{surface: surface + "k", constraint: constraint{nextConsonant: true}},
		{surface: surface + "ğ", constraint: constraint{nextVowel: true}},
	}
}

func resolve(r rune, acc string, h harmony) rune {
	switch r {
	case 'A':
		return h.twoWay()
	case 'I':
		return h.fourWay()
	case 'D':
		if acc != "" && isVoiceless(lastRune(acc)) {
			return 't'
		}
		return 'd'
	case 'C':
		if acc != "" && isVoiceless(lastRune(acc)) {
			return 'ç'
		}
		return 'c'
	case 'K':
		return 'k'
	default:
		return r
	}
}

// voiced returns the stem with its final voiceless stop softened
// (kitap > kitab, ağaç > ağac, git > gid, çocuk > çocuğ, renk > reng).
func voiced(stem string) (string, bool) {
	last := lastRune(stem)
	body := stem[:len(stem)-utf8.RuneLen(last)]
	switch last {
	case 'p':
		return body + "b", true
	case 'ç':
		return body + "c", true
	case 't':
		return body + "d", true
	case 'k':
		if strings.HasSuffix(body, "n") {
			return body + "g", true
		}
		return body + "ğ", true
	}
	return stem, false
}

// dropLastVowel removes the vowel of the final syllable
// (ağız > ağz, burun > burn, oğul > oğl).
func dropLastVowel(stem string) (string, bool) {
	runes := []rune(stem)
	if len(runes) < 3 || isVowel(runes[len(runes)-1]) {
		return stem, false
	}
	i := len(runes) - 2
	if !isVowel(runes[i]) {
		return stem, false
	}
	return string(runes[:i]) + string(runes[i+1:]), true
}

// progressiveStem replaces the final vowel of a verb stem by the high
// vowel required before -yor (ara > arı, bekle > bekli, söyle > söylü).
func progressiveStem(stem string) (string, bool) {
	if !endsWithVowel(stem) {
		return stem, false
	}
	last := lastRune(stem)
	body := stem[:len(stem)-utf8.RuneLen(last)]
	return body + string(harmonyOf(body).fourWay()), true
}
