package wordcross

import "fmt"

// applyEmptyCap enforces the empty-cell bound: if Options.Empty is set,
// allocate an empty[r,c] witness per cell and cap the count of empty
// cells at *Empty.
func (e *Encoder) applyEmptyCap() error {
	if e.opts.Empty == nil {
		return nil
	}
	rows, cols := e.opts.Rows, e.opts.Cols
	emptyVars := make([]Var, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := e.cell(r, c)
			v, err := emptyCellWitness(e.sink, e.alloc, e.hvar[cell], e.vvar[cell])
			if err != nil {
				return err
			}
			emptyVars = append(emptyVars, v)
		}
	}
	return AtMostNTrue(e.sink, e.alloc, emptyVars, *e.opts.Empty)
}

// emptyCellWitness allocates a variable equivalent to ¬h ∧ ¬v: one clause
// (h ∨ v ∨ empty) and two clauses (¬empty ∨ ¬h), (¬empty ∨ ¬v). Unlike
// ConjunctionWitness/DisjunctionWitness, both inputs here are negated, so
// it's written out directly rather than reused from witness.go.
func emptyCellWitness(sink *ClauseSink, alloc *VarAllocator, h, v Var) (Var, error) {
	empty := alloc.New()
	if err := sink.WriteClause(Clause{h.Pos(), v.Pos(), empty.Pos()}); err != nil {
		return 0, err
	}
	if err := sink.WriteClause(Clause{empty.Neg(), h.Neg()}); err != nil {
		return 0, err
	}
	if err := sink.WriteClause(Clause{empty.Neg(), v.Neg()}); err != nil {
		return 0, err
	}
	return empty, nil
}

// applyForces emits, for each forced word, a single clause listing all
// placement variables within the configured jitter window. A clause that
// ends up empty (nothing in the window exists) correctly encodes
// unsatisfiability and is written as-is.
func (e *Encoder) applyForces() error {
	for _, f := range e.opts.Forces {
		anchors, ok := e.placement[f.Word]
		if !ok {
			return InputFormatError{Source: "force file", Line: f.Word, Reason: "unknown word"}
		}
		var clause Clause
		for rj := -e.opts.Jitter; rj <= e.opts.Jitter; rj++ {
			for cj := -e.opts.Jitter; cj <= e.opts.Jitter; cj++ {
				cand := Anchor{Orientation: f.Anchor.Orientation, Row: f.Anchor.Row + rj, Col: f.Anchor.Col + cj}
				if v, ok := anchors[cand]; ok {
					clause = append(clause, v.Pos())
				}
			}
		}
		if err := e.sink.WriteClause(clause); err != nil {
			return err
		}
	}
	return nil
}

// relOffset computes the partner anchor for a relative force: w1 crosses
// w2 at the p1-th letter of w1 and the p2-th letter of w2.
func relOffset(a Anchor, p1, p2 int) Anchor {
	if a.Orientation == Horizontal {
		return Anchor{Orientation: Vertical, Row: a.Row - p2, Col: a.Col + p1}
	}
	return Anchor{Orientation: Horizontal, Row: a.Row + p1, Col: a.Col - p2}
}

// applyRelForces ties each placement of w1 to the one placement of w2 it
// is compatible with (or forbids it outright if none exists), for every
// configured relative force.
func (e *Encoder) applyRelForces() error {
	for _, rf := range e.opts.RelForces {
		if _, ok := e.placement[rf.W1]; !ok {
			return InputFormatError{Source: "relative-force file", Line: rf.W1, Reason: "unknown word"}
		}
		anchors2, ok := e.placement[rf.W2]
		if !ok {
			return InputFormatError{Source: "relative-force file", Line: rf.W2, Reason: "unknown word"}
		}
		for _, entry := range e.placementOrder[rf.W1] {
			a1, v1 := entry.anchor, entry.v
			a2 := relOffset(a1, rf.P1, rf.P2)
			v2, ok := anchors2[a2]
			if !ok {
				e.sink.AddComment(fmt.Sprintf("force: %s can't be at %s", rf.W1, a1))
				if err := e.sink.WriteClause(unitClause(v1.Neg())); err != nil {
					return err
				}
				continue
			}
			e.sink.AddComment(fmt.Sprintf("force: %s at %s <=> %s at %s", rf.W1, a1, rf.W2, a2))
			if err := e.sink.WriteClause(Clause{v1.Neg(), v2.Pos()}); err != nil {
				return err
			}
			if err := e.sink.WriteClause(Clause{v2.Neg(), v1.Pos()}); err != nil {
				return err
			}
		}
	}
	return nil
}
