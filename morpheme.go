package turkce

// Morpheme is an entry of the morpheme catalogue.
type Morpheme struct {
	// ID is the short tag used in analysis strings, e.g. "Dat".
	ID string
	// Name is the long tag reported to clients, e.g. "Dative".
	Name string
	// Pos is set for morphemes that open an inflectional group
	// (roots and the category marker after a derivation).
	Pos PrimaryPos
	// Derivational morphemes change the category of the word.
	Derivational bool
}

func (m *Morpheme) String() string { return m.ID }

var (
	// category markers
	mNoun         = &Morpheme{ID: "Noun", Name: "Noun", Pos: PosNoun}
	mAdjective    = &Morpheme{ID: "Adj", Name: "Adjective", Pos: PosAdjective}
	mAdverb       = &Morpheme{ID: "Adv", Name: "Adverb", Pos: PosAdverb}
	mConjunction  = &Morpheme{ID: "Conj", Name: "Conjunction", Pos: PosConjunction}
	mDeterminer   = &Morpheme{ID: "Det", Name: "Determiner", Pos: PosDeterminer}
	mPronoun      = &Morpheme{ID: "Pron", Name: "Pronoun", Pos: PosPronoun}
	mPostPositive = &Morpheme{ID: "Postp", Name: "PostPositive", Pos: PosPostPositive}
	mNumeral      = &Morpheme{ID: "Num", Name: "Numeral", Pos: PosNumeral}
	mQuestion     = &Morpheme{ID: "Ques", Name: "Question", Pos: PosQuestion}
	mInterjection = &Morpheme{ID: "Interj", Name: "Interjection", Pos: PosInterjection}
	mVerb         = &Morpheme{ID: "Verb", Name: "Verb", Pos: PosVerb}
	mPunctuation  = &Morpheme{ID: "Punc", Name: "Punctuation", Pos: PosPunctuation}
	mUnknown      = &Morpheme{ID: "Unk", Name: "Unknown", Pos: PosUnknown}

	// agreement
	mA1sg = &Morpheme{ID: "A1sg", Name: "FirstPersonSingular"}
	mA2sg = &Morpheme{ID: "A2sg", Name: "SecondPersonSingular"}
	mA3sg = &Morpheme{ID: "A3sg", Name: "ThirdPersonSingular"}
	mA1pl = &Morpheme{ID: "A1pl", Name: "FirstPersonPlural"}
	mA2pl = &Morpheme{ID: "A2pl", Name: "SecondPersonPlural"}
	mA3pl = &Morpheme{ID: "A3pl", Name: "ThirdPersonPlural"}

	// possession
	mPnon = &Morpheme{ID: "Pnon", Name: "NoPosession"}
	mP1sg = &Morpheme{ID: "P1sg", Name: "FirstPersonSingularPossessive"}
	mP2sg = &Morpheme{ID: "P2sg", Name: "SecondPersonSingularPossessive"}
	mP3sg = &Morpheme{ID: "P3sg", Name: "ThirdPersonSingularPossessive"}
	mP1pl = &Morpheme{ID: "P1pl", Name: "FirstPersonPluralPossessive"}
	mP2pl = &Morpheme{ID: "P2pl", Name: "SecondPersonPluralPossessive"}
	mP3pl = &Morpheme{ID: "P3pl", Name: "ThirdPersonPluralPossessive"}

	// case
	mNom = &Morpheme{ID: "Nom", Name: "Nominal"}
	mDat = &Morpheme{ID: "Dat", Name: "Dative"}
	mAcc = &Morpheme{ID: "Acc", Name: "Accusative"}
	mLoc = &Morpheme{ID: "Loc", Name: "Locative"}
	mAbl = &Morpheme{ID: "Abl", Name: "Ablative"}
	mGen = &Morpheme{ID: "Gen", Name: "Genitive"}
	mIns = &Morpheme{ID: "Ins", Name: "Instrumental"}

	// derivation
	mZero     = &Morpheme{ID: "Zero", Name: "Zero", Derivational: true}
	mAble     = &Morpheme{ID: "Able", Name: "Ability", Derivational: true}
	mInf1     = &Morpheme{ID: "Inf1", Name: "Infinitive1", Derivational: true}
	mInf2     = &Morpheme{ID: "Inf2", Name: "Infinitive2", Derivational: true}
	mPastPart = &Morpheme{ID: "PastPart", Name: "PastParticiple", Derivational: true}

	// polarity, tense, aspect, mood
	mNeg   = &Morpheme{ID: "Neg", Name: "Negative"}
	mPres  = &Morpheme{ID: "Pres", Name: "PresentTense"}
	mPast  = &Morpheme{ID: "Past", Name: "PastTense"}
	mNarr  = &Morpheme{ID: "Narr", Name: "NarrativeTense"}
	mCond  = &Morpheme{ID: "Cond", Name: "Condition"}
	mCop   = &Morpheme{ID: "Cop", Name: "Copula"}
	mProg1 = &Morpheme{ID: "Prog1", Name: "Progressive1"}
	mProg2 = &Morpheme{ID: "Prog2", Name: "Progressive2"}
	mFut   = &Morpheme{ID: "Fut", Name: "Future"}
	mAor   = &Morpheme{ID: "Aor", Name: "Aorist"}
	mImp   = &Morpheme{ID: "Imp", Name: "Imparative"}
	mOpt   = &Morpheme{ID: "Opt", Name: "Optative"}
	mNeces = &Morpheme{ID: "Neces", Name: "Necessity"}
)

// catalogue keeps the declaration order for listings.
var catalogue = []*Morpheme{
	mNoun, mAdjective, mAdverb, mConjunction, mDeterminer, mPronoun, mPostPositive,
	mNumeral, mQuestion, mInterjection, mVerb, mPunctuation, mUnknown,
	mA1sg, mA2sg, mA3sg, mA1pl, mA2pl, mA3pl,
	mPnon, mP1sg, mP2sg, mP3sg, mP1pl, mP2pl, mP3pl,
	mNom, mDat, mAcc, mLoc, mAbl, mGen, mIns,
	mZero, mAble, mInf1, mInf2, mPastPart,
	mNeg, mPres, mPast, mNarr, mCond, mCop, mProg1, mProg2, mFut, mAor, mImp, mOpt, mNeces,
}

var morphemeIndex = func() map[string]*Morpheme {
	idx := make(map[string]*Morpheme, len(catalogue))
	for _, m := range catalogue {
		idx[m.ID] = m
	}
	return idx
}()

// rootMorphemes maps a dictionary category to the morpheme that opens
// its first inflectional group.
var rootMorphemes = map[PrimaryPos]*Morpheme{
	PosNoun:         mNoun,
	PosAdjective:    mAdjective,
	PosAdverb:       mAdverb,
	PosConjunction:  mConjunction,
	PosDeterminer:   mDeterminer,
	PosPronoun:      mPronoun,
	PosPostPositive: mPostPositive,
	PosNumeral:      mNumeral,
	PosQuestion:     mQuestion,
	PosInterjection: mInterjection,
	PosVerb:         mVerb,
	PosPunctuation:  mPunctuation,
	PosUnknown:      mUnknown,
}

// MorphemeByID looks up a catalogue entry by its short tag.
func MorphemeByID(id string) (*Morpheme, bool) {
	m, ok := morphemeIndex[id]
	return m, ok
}

// Morphemes returns the whole catalogue in declaration order.
func Morphemes() []*Morpheme {
	out := make([]*Morpheme, len(catalogue))
	copy(out, catalogue)
	return out
}
