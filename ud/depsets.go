package ud

// Closed dependency-label and lemma groupings shared by the span and oie
// packages. These are fixed by the Portuguese UD tagset this extractor
// targets, not configuration.
var (
	SubjectDeps = depSet(DepNsubj, DepNsubjPass, DepCsubj, DepCsubjPass)

	RelationVerbDeps     = depSet(DepAux, DepAuxPass, DepXcomp)
	RelationModifierDeps = depSet(DepExplPv)

	ComplementHeadDeps     = depSet(DepObj, DepIobj, DepXcomp, DepObl, DepAdvmod, DepNmod, DepRoot)
	ComplementIgnoreDeps   = depSet(DepNsubj, DepNsubjPass, DepCsubj, DepCsubjPass)
	ComplementBoundaryDeps = depSet(DepMark)

	NominalDFSDeps = depSet(DepNummod, DepAdvmod, DepNmod, DepAmod, DepDep, DepDet,
		DepCase, DepFlat, DepFlatName, DepPunct, DepConj, DepCc, DepAppos)

	SubordinateClauseDeps = depSet(DepCcomp, DepAdvcl)
)

// RelationAdverbsLemmas are adverb lemmas the relation builder admits as
// part of the verbal nucleus (negation, aspectual/focus adverbs).
var RelationAdverbsLemmas = map[string]bool{
	"não":    true,
	"já":     true,
	"ainda":  true,
	"também": true,
	"nunca":  true,
}

// ExistentialVerbsLemmas are verb lemmas treated as existential
// constructions by the subject finder's passive/existential fallback.
var ExistentialVerbsLemmas = map[string]bool{
	"haver":   true,
	"ocorrer": true,
	"existir": true,
}

func depSet(deps ...Dep) map[Dep]bool {
	m := make(map[Dep]bool, len(deps))
	for _, d := range deps {
		m[d] = true
	}
	return m
}
