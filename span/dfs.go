package span

import "github.com/oiextractor/core/ud"

// NominalOpts configures the nominal phrase DFS builder.
type NominalOpts struct {
	// IgnoreConjunctions drops conj and cc children when true.
	IgnoreConjunctions bool
	// IgnoreAppos drops appos children when true.
	IgnoreAppos bool
	// IsSubject, when true, excludes a leading case (ADP) child from the
	// span — structural noise at the subject boundary.
	IsSubject bool
}

// Nominal walks the subtree rooted at start, collecting a nominal-like span:
// a child is appended iff its dependency is in NOMINAL_DFS_DEPS. Traversal
// is pre-order over children in sentence order; a visited set guards
// against malformed cyclic input.
func Nominal(s *ud.Sentence, start ud.Token, opts NominalOpts) *Element {
	e := NewElement(start)
	visited := map[int]bool{start.Index: true}

	var walk func(t ud.Token)
	walk = func(t ud.Token) {
		for _, c := range s.Children(t.Index) {
			if visited[c.Index] {
				continue
			}
			if opts.IgnoreConjunctions && (c.Dep == ud.DepConj || c.Dep == ud.DepCc) {
				continue
			}
			if opts.IgnoreAppos && c.Dep == ud.DepAppos {
				continue
			}
			if !ud.NominalDFSDeps[c.Dep] {
				continue
			}
			visited[c.Index] = true
			e.Add(c)
			walk(c)
		}
	}
	walk(start)

	if opts.IsSubject {
		trimLeadingCase(e)
	}

	return e
}

// trimLeadingCase drops the span's leftmost member when it is a structural
// preposition (ADP, dep=case) at the subject boundary.
func trimLeadingCase(e *Element) {
	tokens := e.Tokens()
	if len(tokens) == 0 {
		return
	}
	leftmost := tokens[0]
	if leftmost.Dep == ud.DepCase && leftmost.Pos == ud.ADP {
		delete(e.members, leftmost.Index)
	}
}

// Complement walks the subtree rooted at start, collecting a broader span:
// a child is appended iff its dependency is NOT in COMPLEMENT_IGNORE_DEPS
// and NOT in COMPLEMENT_BOUNDARY_DEPS. A boundary child terminates descent
// along that branch without being included. An ignored child's subtree is
// not entered at all.
func Complement(s *ud.Sentence, start ud.Token) *Element {
	e := NewElement(start)
	visited := map[int]bool{start.Index: true}

	var walk func(t ud.Token)
	walk = func(t ud.Token) {
		for _, c := range s.Children(t.Index) {
			if visited[c.Index] {
				continue
			}
			if ud.ComplementIgnoreDeps[c.Dep] {
				continue
			}
			if ud.ComplementBoundaryDeps[c.Dep] {
				continue
			}
			visited[c.Index] = true
			e.Add(c)
			walk(c)
		}
	}
	walk(start)
	return e
}
