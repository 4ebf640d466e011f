package turkce

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const dataDir = "data"

func newTestMorphology(t *testing.T) *Morphology {
	t.Helper()
	m, err := NewWithDefaults()
	if err != nil {
		t.Fatalf("NewWithDefaults: %v", err)
	}
	return m
}

func hasAnalysis(wa WordAnalysis, want string) bool {
	for _, a := range wa.Analyses {
		if a.String() == want {
			return true
		}
	}
	return false
}

func TestNew(t *testing.T) {
	m, err := New(dataDir)
	if err != nil {
		t.Fatalf("New(%q): %v", dataDir, err)
	}
	if m.ItemCount() < 200 {
		t.Errorf("ItemCount() = %d, want at least 200", m.ItemCount())
	}
	t.Logf("Loaded %d items, %d stem surfaces, %d descriptions",
		len(m.items), len(m.stems), len(m.descriptions))
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("New on a missing directory succeeded")
	}
}

func TestWithLexiconFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - {lemma: kelime, pos: Noun, freq: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := NewWithDefaults(WithLexiconFile(path))
	if err != nil {
		t.Fatalf("NewWithDefaults: %v", err)
	}
	wa := m.Analyze("kelimeler")
	want := "[kelime:Noun] kelime:Noun+ler:A3pl+Pnon+Nom"
	if !hasAnalysis(wa, want) {
		t.Errorf("Analyze(kelimeler) = %v, want %q", wa.Analyses, want)
	}
}

func TestWithLexiconFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - {lemma: kelime, pos: Thing}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewWithDefaults(WithLexiconFile(path))
	if err == nil || !strings.Contains(err.Error(), "unknown pos") {
		t.Fatalf("err = %v, want unknown pos", err)
	}
}

func TestDescribe(t *testing.T) {
	m := newTestMorphology(t)
	if m.Describe("Dat") == "" {
		t.Error(`Describe("Dat") is empty`)
	}
	if got := len(m.Glossary()); got != len(Morphemes()) {
		t.Errorf("len(Glossary()) = %d, want %d", got, len(Morphemes()))
	}
}

func TestAnalyze(t *testing.T) {
	m := newTestMorphology(t)
	tests := []struct {
		word string
		want string
	}{
		{"okula", "[okul:Noun] okul:Noun+A3sg+Pnon+a:Dat"},
		{"gidiyorum", "[gitmek:Verb] gid:Verb+iyor:Prog1+um:A1sg"},
		{"kitabı", "[kitap:Noun] kitab:Noun+A3sg+ı:P3sg+Nom"},
		{"kitabı", "[kitap:Noun] kitab:Noun+A3sg+Pnon+ı:Acc"},
		{"kitaplar", "[kitap:Noun] kitap:Noun+lar:A3pl+Pnon+Nom"},
		{"evlerimizde", "[ev:Noun] ev:Noun+ler:A3pl+imiz:P1pl+de:Loc"},
		{"evine", "[ev:Noun] ev:Noun+A3sg+i:P3sg+ne:Dat"},
		{"bana", "[ben:Pron] ban:Pron+A1sg+Pnon+a:Dat"},
		{"onu", "[o:Pron] on:Pron+A3sg+Pnon+u:Acc"},
		{"ağzı", "[ağız:Noun] ağz:Noun+A3sg+ı:P3sg+Nom"},
		{"saatler", "[saat:Noun] saat:Noun+ler:A3pl+Pnon+Nom"},
		{"okuyor", "[okumak:Verb] oku:Verb+yor:Prog1+A3sg"},
		{"arıyorum", "[aramak:Verb] arı:Verb+yor:Prog1+um:A1sg"},
		{"okumuyorum", "[okumak:Verb] oku:Verb+mu:Neg+yor:Prog1+um:A1sg"},
		{"gelir", "[gelmek:Verb] gel:Verb+ir:Aor+A3sg"},
		{"yapar", "[yapmak:Verb] yap:Verb+ar:Aor+A3sg"},
		{"gelmez", "[gelmek:Verb] gel:Verb+me:Neg+z:Aor+A3sg"},
		{"gittik", "[gitmek:Verb] git:Verb+ti:Past+k:A1pl"},
		{"gideceğim", "[gitmek:Verb] gid:Verb+eceğ:Fut+im:A1sg"},
		{"evdeyim", "[ev:Noun] ev:Noun+A3sg+Pnon+de:Loc|Zero+Verb+Pres+yim:A1sg"},
		{"misin", "[mi:Ques] mi:Ques+Pres+sin:A2sg"},
	}
	for _, tt := range tests {
		wa := m.Analyze(tt.word)
		if !hasAnalysis(wa, tt.want) {
			t.Errorf("Analyze(%q): missing %q; got:", tt.word, tt.want)
			for _, a := range wa.Analyses {
				t.Logf("  %s", a)
			}
		}
	}
}

func TestAnalyzeRejectsWrongAlternation(t *testing.T) {
	m := newTestMorphology(t)
	for _, word := range []string{"kitapı", "bene", "oyu", "gitiyorum", "okumayor"} {
		wa := m.Analyze(word)
		if len(wa.Analyses) != 1 || wa.Analyses[0].Pos() != PosUnknown {
			t.Errorf("Analyze(%q) = %v, want a single Unknown analysis", word, wa.Analyses)
		}
	}
}

func TestAnalyzeSurfaceRoundTrip(t *testing.T) {
	m := newTestMorphology(t)
	for _, word := range []string{"okula", "gidiyorum", "kitabına", "evlerimizde", "xyzq", "2024"} {
		wa := m.Analyze(word)
		if len(wa.Analyses) == 0 {
			t.Fatalf("Analyze(%q) returned no analysis", word)
		}
		for _, a := range wa.Analyses {
			if got := a.Surface(); got != word {
				t.Errorf("Analyze(%q): %s has surface %q", word, a, got)
			}
		}
	}
}

func TestAnalyzeSpecial(t *testing.T) {
	m := newTestMorphology(t)
	tests := []struct {
		word string
		pos  PrimaryPos
	}{
		{"xyzq", PosUnknown},
		{"2024", PosNumeral},
		{",", PosPunctuation},
		{"ve", PosConjunction},
	}
	for _, tt := range tests {
		wa := m.Analyze(tt.word)
		if len(wa.Analyses) == 0 || wa.Analyses[0].Pos() != tt.pos {
			t.Errorf("Analyze(%q) = %v, want first analysis with pos %s", tt.word, wa.Analyses, tt.pos)
		}
	}
	if wa := m.Analyze(""); len(wa.Analyses) != 0 {
		t.Errorf(`Analyze("") = %v, want none`, wa.Analyses)
	}
}

func TestAnalyzeLongToken(t *testing.T) {
	m := newTestMorphology(t)
	if m.maxStem == 0 || m.maxStem > 64 {
		t.Fatalf("maxStem = %d, want the longest stem surface", m.maxStem)
	}

	word := strings.Repeat("x", 1<<20)
	start := time.Now()
	wa := m.Analyze(word)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Analyze of a %d byte token took %s", len(word), elapsed)
	}
	if len(wa.Analyses) != 1 || wa.Analyses[0].Pos() != PosUnknown {
		t.Errorf("Analyze(long token) = %d analyses, want one Unknown", len(wa.Analyses))
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("merhaba, dünya! (evet)")
	want := []string{"merhaba", ",", "dünya", "!", "(", "evet", ")"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestAnalyzeSentence(t *testing.T) {
	m := newTestMorphology(t)
	words, err := m.AnalyzeSentence("okula gidiyorum")
	if err != nil {
		t.Fatalf("AnalyzeSentence: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("len = %d, want 2", len(words))
	}
	if words[0].Input != "okula" || words[1].Input != "gidiyorum" {
		t.Errorf("inputs = %q, %q", words[0].Input, words[1].Input)
	}
	if _, err := m.AnalyzeSentence("ok\xffula"); err == nil {
		t.Error("AnalyzeSentence accepted invalid UTF-8")
	}
}

func TestGenerate(t *testing.T) {
	m := newTestMorphology(t)
	tests := []struct {
		lemma string
		pos   PrimaryPos
		ids   []string
		want  string
	}{
		{"kitap", PosNoun, []string{"A3sg", "P3sg", "Dat"}, "kitabına"},
		{"gitmek", PosVerb, []string{"Prog1", "A1sg"}, "gidiyorum"},
		{"gelmek", PosVerb, []string{"Aor", "A3sg"}, "gelir"},
		{"yapmak", PosVerb, []string{"Aor", "A3sg"}, "yapar"},
		{"okumak", PosVerb, []string{"Prog1", "A3pl"}, "okuyorlar"},
		{"okumak", PosVerb, []string{"Neg", "Prog1", "A1sg"}, "okumuyorum"},
		{"aramak", PosVerb, []string{"Prog1", "A1sg"}, "arıyorum"},
		{"gelmek", PosVerb, []string{"Neg", "Aor", "A3sg"}, "gelmez"},
		{"gitmek", PosVerb, []string{"Fut", "A1sg"}, "gideceğim"},
		{"okumak", PosVerb, []string{"Inf1", "Noun", "A3sg", "Pnon", "Nom"}, "okumak"},
		{"ağız", PosNoun, []string{"A3sg", "P3sg", "Nom"}, "ağzı"},
		{"hak", PosNoun, []string{"A3sg", "Pnon", "Acc"}, "hakkı"},
		{"saat", PosNoun, []string{"A3pl", "Pnon", "Nom"}, "saatler"},
		{"ev", PosNoun, []string{"A3sg", "Pnon", "Loc", "Zero", "Verb", "Pres", "A1sg"}, "evdeyim"},
		{"kitap", PosNoun, []string{"A3sg", "Pnon", "Nom", "Zero", "Verb", "Pres", "A3sg", "Cop"}, "kitaptır"},
		{"ben", PosPronoun, []string{"A1sg", "Pnon", "Dat"}, "bana"},
		{"o", PosPronoun, []string{"A3sg", "Pnon", "Acc"}, "onu"},
	}
	for _, tt := range tests {
		got, err := m.Generate(tt.lemma, tt.pos, tt.ids...)
		if err != nil {
			t.Errorf("Generate(%s, %v): %v", tt.lemma, tt.ids, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Generate(%s, %v) = %q, want %q", tt.lemma, tt.ids, got, tt.want)
			continue
		}

		// the generated word analyzes back to the same lemma
		found := false
		for _, a := range m.Analyze(got).Analyses {
			if a.Item.Lemma == tt.lemma && a.Item.Pos == tt.pos {
				found = true
			}
		}
		if !found {
			t.Errorf("Analyze(%q) has no %s:%s analysis", got, tt.lemma, tt.pos)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	m := newTestMorphology(t)
	if _, err := m.Generate("yokyok", PosNoun, "A3sg"); !errors.Is(err, ErrUnknownLemma) {
		t.Errorf("unknown lemma: err = %v", err)
	}
	if _, err := m.Generate("ev", PosVerb, "Past"); !errors.Is(err, ErrUnknownLemma) {
		t.Errorf("wrong pos: err = %v", err)
	}
	if _, err := m.Generate("ev", PosNoun, "Prog1"); !errors.Is(err, ErrInvalidSequence) {
		t.Errorf("bad sequence: err = %v", err)
	}
	if _, err := m.Generate("ev", PosNoun, "Bogus"); !errors.Is(err, ErrInvalidSequence) {
		t.Errorf("bad id: err = %v", err)
	}
}

func TestDisambiguate(t *testing.T) {
	m := newTestMorphology(t)
	sentence := "okula gidiyorum"
	words, _ := m.AnalyzeSentence(sentence)
	sa, err := m.Disambiguate(sentence, words)
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	best := sa.BestAnalysis()
	if len(best) != 2 {
		t.Fatalf("len(best) = %d, want 2", len(best))
	}
	if best[0].Last() != mDat {
		t.Errorf("okula best = %s, want dative", best[0])
	}
	if best[1].Pos() != PosVerb {
		t.Errorf("gidiyorum best = %s, want verb", best[1])
	}

	again, _ := m.Disambiguate(sentence, words)
	for i := range best {
		if again.Words[i].Best.String() != best[i].String() {
			t.Errorf("word %d: %s then %s", i, best[i], again.Words[i].Best)
		}
	}
}

func TestDisambiguateDeterminer(t *testing.T) {
	m := newTestMorphology(t)
	sentence := "bu ev"
	words, _ := m.AnalyzeSentence(sentence)
	sa, err := m.Disambiguate(sentence, words)
	if err != nil {
		t.Fatalf("Disambiguate: %v", err)
	}
	if got := sa.Words[0].Best.Pos(); got != PosDeterminer {
		t.Errorf("bu = %s, want Det", sa.Words[0].Best)
	}
}

func TestDisambiguateErrors(t *testing.T) {
	m := newTestMorphology(t)
	words, _ := m.AnalyzeSentence("okula gidiyorum")

	if _, err := m.Disambiguate("okula gidiyorum", words[:1]); !errors.Is(err, ErrWordCountMismatch) {
		t.Errorf("mismatch: err = %v", err)
	}
	broken := []WordAnalysis{words[0], {Input: "gidiyorum"}}
	if _, err := m.Disambiguate("okula gidiyorum", broken); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("no candidates: err = %v", err)
	}
	sa, err := m.Disambiguate("", nil)
	if err != nil || len(sa.Words) != 0 {
		t.Errorf("empty sentence: %v, %v", sa, err)
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(newTestMorphology(t))
	tests := []struct {
		in, want string
	}{
		{"Okula GİDİYORUM.", "okula gidiyorum"},
		{"IŞIK", "ışık"},
		{"Ankara'ya gittim!", "ankaraya gittim"},
		{"Ankara’da", "ankarada"},
		{"slm, nbr?", "selam ne haber"},
		{"Bugün gidiyom", "bugün gidiyorum"},
		{"  çok   güzel\t\n", "çok güzel"},
		{"bişey yok", "bir şey yok"},
		{"kâr", "kar"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromParagraph(t *testing.T) {
	e := NewSentenceExtractor(newTestMorphology(t))
	tests := []struct {
		in   string
		want []string
	}{
		{"Merhaba. Nasılsın? İyiyim!", []string{"Merhaba.", "Nasılsın?", "İyiyim!"}},
		{"Dr. Ahmet geldi. Sonra gitti.", []string{"Dr. Ahmet geldi.", "Sonra gitti."}},
		{"1. madde burada. 2. madde orada.", []string{"1. madde burada.", "2. madde orada."}},
		{"Saat 3.15 oldu. Gel!", []string{"Saat 3.15 oldu.", "Gel!"}},
		{"M. Kemal geldi", []string{"M. Kemal geldi"}},
		{"Ne?! Gel.", []string{"Ne?!", "Gel."}},
	}
	for _, tt := range tests {
		got := e.FromParagraph(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("FromParagraph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := e.FromParagraph("   "); len(got) != 0 {
		t.Errorf("FromParagraph(blank) = %q, want none", got)
	}
}

func TestRealize(t *testing.T) {
	tests := []struct {
		template, prev string
		front          bool
		want           string
	}{
		{"lAr", "ev", false, "ler"},
		{"lAr", "okul", false, "lar"},
		{"DA", "kitap", false, "ta"},
		{"DA", "ev", false, "de"},
		{"(y)A", "araba", false, "ya"},
		{"(y)A", "okul", false, "a"},
		{"(s)I", "araba", false, "sı"},
		{"(s)I", "göz", false, "ü"},
		{"(n)In", "kapı", false, "nın"},
		{"(I)yor", "gel", false, "iyor"},
		{"lAr", "saat", true, "ler"},
		{"DA", "saat", true, "te"},
	}
	for _, tt := range tests {
		got := realize(tt.template, tt.prev, tt.front)
		if len(got) != 1 || got[0].surface != tt.want {
			t.Errorf("realize(%q, %q) = %v, want %q", tt.template, tt.prev, got, tt.want)
		}
	}

	got := realize("(y)AcAK", "gid", false)
	if len(got) != 2 || got[0].surface != "ecek" || got[1].surface != "eceğ" {
		t.Errorf("realize final K = %v", got)
	}
}
