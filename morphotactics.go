package turkce

// state is a node of the morphotactic graph.
type state struct {
	name        string
	terminal    bool
	transitions []*transition
}

// transition attaches a morpheme realized from a suffix template.
type transition struct {
	morpheme   *Morpheme
	template   string
	to         *state
	constraint constraint
	condition  func(w *walk) bool
	zero       bool
}

func newState(name string, terminal bool) *state {
	return &state{name: name, terminal: terminal}
}

func (s *state) add(m *Morpheme, template string, to *state) *transition {
	t := &transition{morpheme: m, template: template, to: to}
	s.transitions = append(s.transitions, t)
	return t
}

func (t *transition) onlyBefore(ms ...*Morpheme) *transition {
	t.constraint.onlyBefore = append(t.constraint.onlyBefore, ms...)
	return t
}

func (t *transition) notBefore(ms ...*Morpheme) *transition {
	t.constraint.notBefore = append(t.constraint.notBefore, ms...)
	return t
}

func (t *transition) when(cond func(w *walk) bool) *transition {
	t.condition = cond
	return t
}

// asZero marks an empty derivation; the word must realize at least one
// more non-empty suffix after it.
func (t *transition) asZero() *transition {
	t.zero = true
	return t
}

// morphotactics is the suffix graph of nominal and verbal inflection.
type morphotactics struct {
	roots map[PrimaryPos]*state
}

func (mt *morphotactics) root(pos PrimaryPos) *state {
	return mt.roots[pos]
}

func newMorphotactics() *morphotactics {
	end := newState("end", true)

	// nominal inflection: number, possession, case
	nounRoot := newState("noun_root", false)
	nounA3sg := newState("noun_a3sg", false)
	nounA3pl := newState("noun_a3pl", false)
	nounPoss := newState("noun_poss", false)
	nounP3 := newState("noun_p3", false)
	nounCase := newState("noun_case", true)

	nounRoot.add(mA3sg, "", nounA3sg)
	nounRoot.add(mA3pl, "lAr", nounA3pl)
	addPossessives(nounA3sg, nounPoss, nounP3, "lArI")
	addPossessives(nounA3pl, nounPoss, nounP3, "I")
	addCases(nounPoss, nounCase, false)
	addCases(nounP3, nounCase, true)

	// nominal predicates: ev+de+yim, öğrenci+ydi, kitap+tır
	nomZero := newState("nom_zero", false)
	nomVerb := newState("nom_verb", false)
	copPres := newState("cop_pres", false)
	copA3sg := newState("cop_a3sg", false)
	copPast := newState("cop_past", false)
	copNarr := newState("cop_narr", false)

	nounCase.add(mZero, "", nomZero).asZero()
	nomZero.add(mVerb, "", nomVerb)
	nomVerb.add(mPres, "", copPres)
	nomVerb.add(mPast, "(y)DI", copPast)
	nomVerb.add(mNarr, "(y)mIş", copNarr)
	nomVerb.add(mCond, "(y)sA", copPast)
	addPersonsP1(copPres, end, false)
	copPres.add(mA3sg, "", copA3sg)
	copA3sg.add(mCop, "DIr", end)
	addPersonsP2(copPast, end)
	addPersonsP1(copNarr, end, true)

	// adjectives and numerals act as nouns or predicates through a
	// zero derivation
	zeroNoun := newState("zero_noun", false)
	zeroNoun.add(mNoun, "", nounRoot)
	adjRoot := newState("adj_root", true)
	adjRoot.add(mZero, "", zeroNoun).asZero()
	adjRoot.add(mZero, "", nomVerb).asZero()
	numRoot := newState("num_root", true)
	numRoot.add(mZero, "", zeroNoun).asZero()
	numRoot.add(mZero, "", nomVerb).asZero()

	// pronouns carry a fixed agreement
	pronRoot := newState("pron_root", false)
	pronAgr := newState("pron_agr", false)
	pronPoss := newState("pron_poss", false)
	for _, a := range []*Morpheme{mA1sg, mA2sg, mA3sg, mA1pl, mA2pl, mA3pl} {
		pronRoot.add(a, "", pronAgr).when(agreementIs(a))
	}
	pronAgr.add(mPnon, "", pronPoss)
	addCases(pronPoss, nounCase, false)

	// question particle: mi, misin, miydi
	quesRoot := newState("ques_root", true)
	quesPres := newState("ques_pres", false)
	quesRoot.add(mPres, "", quesPres)
	addPersonsP1(quesPres, end, false)
	quesRoot.add(mPast, "(y)DI", copPast)

	// verbal inflection
	verbRoot := newState("verb_root", false)
	verbNeg := newState("verb_neg", false)
	ableDeriv := newState("able_deriv", false)
	verbAble := newState("verb_able", false)
	verbalNoun := newState("verbal_noun", false)
	verbalNoun.add(mNoun, "", nounRoot)

	tenses := newTenseStates(end, copPast)

	verbRoot.add(mNeg, "mA", verbNeg).notBefore(mProg1)
	verbRoot.add(mNeg, "mI", verbNeg).onlyBefore(mProg1)
	verbRoot.add(mAble, "(y)Abil", ableDeriv)
	ableDeriv.add(mVerb, "", verbAble)
	verbAble.add(mNeg, "mA", verbNeg).notBefore(mProg1)
	verbAble.add(mNeg, "mI", verbNeg).onlyBefore(mProg1)

	for _, s := range []*state{verbRoot, verbNeg, verbAble} {
		tenses.attach(s, s == verbNeg)
		s.add(mInf1, "mAK", verbalNoun)
		s.add(mInf2, "mA", verbalNoun)
		s.add(mPastPart, "DIK", verbalNoun)
	}

	closed := newState("closed", true)
	return &morphotactics{
		roots: map[PrimaryPos]*state{
			PosNoun:         nounRoot,
			PosAdjective:    adjRoot,
			PosNumeral:      numRoot,
			PosPronoun:      pronRoot,
			PosQuestion:     quesRoot,
			PosVerb:         verbRoot,
			PosAdverb:       closed,
			PosConjunction:  closed,
			PosDeterminer:   closed,
			PosPostPositive: closed,
			PosInterjection: closed,
			PosPunctuation:  closed,
			PosUnknown:      closed,
		},
	}
}

func addPossessives(from, poss, p3 *state, p3pl string) {
	from.add(mPnon, "", poss)
	from.add(mP1sg, "(I)m", poss)
	from.add(mP2sg, "(I)n", poss)
	from.add(mP3sg, "(s)I", p3)
	from.add(mP1pl, "(I)mIz", poss)
	from.add(mP2pl, "(I)nIz", poss)
	from.add(mP3pl, p3pl, p3)
}

// addCases adds the case suffixes. After a third person possessive the
// oblique cases take the pronominal n (evi+ne, evi+nde).
func addCases(from, to *state, pronominalN bool) {
	from.add(mNom, "", to)
	if pronominalN {
		from.add(mDat, "nA", to)
		from.add(mAcc, "nI", to)
		from.add(mLoc, "ndA", to)
		from.add(mAbl, "ndAn", to)
	} else {
		from.add(mDat, "(y)A", to)
		from.add(mAcc, "(y)I", to)
		from.add(mLoc, "DA", to)
		from.add(mAbl, "DAn", to)
	}
	from.add(mGen, "(n)In", to)
	from.add(mIns, "(y)lA", to)
}

// addPersonsP1 adds the agreement set of the progressive, narrative,
// future, aorist and nominal present (gidiyor+um, öğrenci+yim).
func addPersonsP1(from, to *state, withA3sg bool) {
	from.add(mA1sg, "(y)Im", to)
	from.add(mA2sg, "sIn", to)
	if withA3sg {
		from.add(mA3sg, "", to)
	}
	from.add(mA1pl, "(y)Iz", to)
	from.add(mA2pl, "sInIz", to)
	from.add(mA3pl, "lAr", to)
}

// addPersonsP2 adds the agreement set of the past and conditional
// (gitti+m, gelse+k).
func addPersonsP2(from, to *state) {
	from.add(mA1sg, "m", to)
	from.add(mA2sg, "n", to)
	from.add(mA3sg, "", to)
	from.add(mA1pl, "k", to)
	from.add(mA2pl, "nIz", to)
	from.add(mA3pl, "lAr", to)
}

// tenseStates are shared by the positive, negative and ability stems.
type tenseStates struct {
	prog, prog2, past, narr, fut, aor, cond, neces, opt, imp *state
}

func newTenseStates(end, copPast *state) *tenseStates {
	ts := &tenseStates{
		prog:  newState("prog1", false),
		prog2: newState("prog2", false),
		past:  newState("past", false),
		narr:  newState("narr", false),
		fut:   newState("fut", false),
		aor:   newState("aor", false),
		cond:  newState("cond", false),
		neces: newState("neces", false),
		opt:   newState("opt", false),
		imp:   newState("imp", false),
	}
	for _, s := range []*state{ts.prog, ts.prog2, ts.narr, ts.fut, ts.aor, ts.neces} {
		addPersonsP1(s, end, true)
		s.add(mPast, "(y)DI", copPast)
		s.add(mCond, "(y)sA", copPast)
	}
	addPersonsP2(ts.past, end)
	addPersonsP2(ts.cond, end)

	ts.opt.add(mA1sg, "(y)Im", end)
	ts.opt.add(mA1pl, "lIm", end)

	ts.imp.add(mA2sg, "", end)
	ts.imp.add(mA3sg, "sIn", end)
	ts.imp.add(mA2pl, "(y)In", end)
	ts.imp.add(mA2pl, "(y)InIz", end)
	ts.imp.add(mA3pl, "sInlAr", end)
	return ts
}

func (ts *tenseStates) attach(s *state, negative bool) {
	s.add(mProg1, "(I)yor", ts.prog)
	s.add(mProg2, "mAktA", ts.prog2)
	s.add(mPast, "DI", ts.past)
	s.add(mNarr, "mIş", ts.narr)
	s.add(mFut, "(y)AcAK", ts.fut)
	s.add(mCond, "sA", ts.cond)
	s.add(mNeces, "mAlI", ts.neces)
	s.add(mOpt, "(y)A", ts.opt)
	s.add(mImp, "", ts.imp)
	if negative {
		s.add(mAor, "z", ts.aor)
		return
	}
	s.add(mAor, "r", ts.aor).when(stemEndsWithVowel)
	s.add(mAor, "Ar", ts.aor).when(aoristA)
	s.add(mAor, "Ir", ts.aor).when(aoristI)
}

func agreementIs(a *Morpheme) func(w *walk) bool {
	return func(w *walk) bool { return w.item.Agreement == a }
}

func stemEndsWithVowel(w *walk) bool {
	return endsWithVowel(w.surface)
}

// aoristA selects -Ar for monosyllabic consonant stems (yap+ar, git+er).
func aoristA(w *walk) bool {
	return !endsWithVowel(w.surface) && !w.ableDerived &&
		vowelCount(w.item.Root) == 1 && !w.item.Has(AttrAoristI)
}

// aoristI selects -Ir for polysyllabic stems, derived stems and the
// monosyllabic exceptions (gel+ir, gelebil+ir).
func aoristI(w *walk) bool {
	return !endsWithVowel(w.surface) &&
		(w.ableDerived || vowelCount(w.item.Root) > 1 || w.item.Has(AttrAoristI))
}
