package wordcross

import (
	"fmt"
	"sort"
)

// placementEntry pairs an Anchor with its placement variable, kept in
// insertion order so that downstream iteration (connectivity, forces) is
// deterministic run to run.
type placementEntry struct {
	anchor Anchor
	v      Var
}

// buildGrid allocates pos, hvar, vvar, and stop for every cell and emits
// the invariant clauses that don't depend on any particular word
// (at-most-one-letter-per-cell, stop/occupancy exclusion,
// horizontal/vertical adjacency).
func (e *Encoder) buildGrid() error {
	rows, cols := e.opts.Rows, e.opts.Cols

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			vs := make([]Var, 0, len(e.alphabet))
			for _, ch := range e.alphabet {
				v := e.alloc.New()
				e.pos[posKey{ch: ch, cell: e.cell(r, c)}] = v
				vs = append(vs, v)
			}
			if err := AtMostOneTrue(e.sink, vs); err != nil {
				return err
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e.hvar[e.cell(r, c)] = e.alloc.New()
			e.vvar[e.cell(r, c)] = e.alloc.New()
			e.stop[e.cell(r, c)] = e.alloc.New()
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := e.cell(r, c)
			if err := e.sink.WriteClause(Clause{e.hvar[cell].Neg(), e.stop[cell].Neg()}); err != nil {
				return err
			}
			if err := e.sink.WriteClause(Clause{e.vvar[cell].Neg(), e.stop[cell].Neg()}); err != nil {
				return err
			}
		}
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			top, bot := e.hvar[e.cell(r, c)], e.hvar[e.cell(r+1, c)]
			if err := e.sink.WriteClause(Clause{top.Neg(), bot.Neg(), e.vvar[e.cell(r, c)].Pos()}); err != nil {
				return err
			}
			if err := e.sink.WriteClause(Clause{top.Neg(), bot.Neg(), e.vvar[e.cell(r+1, c)].Pos()}); err != nil {
				return err
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			left, right := e.vvar[e.cell(r, c)], e.vvar[e.cell(r, c+1)]
			if err := e.sink.WriteClause(Clause{left.Neg(), right.Neg(), e.hvar[e.cell(r, c)].Pos()}); err != nil {
				return err
			}
			if err := e.sink.WriteClause(Clause{left.Neg(), right.Neg(), e.hvar[e.cell(r, c+1)].Pos()}); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildPlacements allocates a placement variable for every legal
// horizontal and vertical anchor of each word, ties each to the
// pos/hvar/vvar/stop variables it implies, enforces single-use per word,
// and derives its used[w] witness.
func (e *Encoder) buildPlacements() error {
	rows, cols := e.opts.Rows, e.opts.Cols
	square := rows == cols

	for wi, word := range e.words {
		var entries []placementEntry
		byAnchor := make(map[Anchor]Var)

		// Horizontal anchors.
		for r := 0; r < rows; r++ {
			for c := 0; c <= cols-len(word); c++ {
				v := e.alloc.New()
				e.sink.AddComment(fmt.Sprintf("var %d == %s at H(%d,%d)", v, word, r, c))
				if c > 0 {
					gap := e.stop[e.cell(r, c-1)]
					if err := e.sink.WriteClause(Clause{v.Neg(), gap.Pos()}); err != nil {
						return err
					}
					e.stopWitness[gap] = append(e.stopWitness[gap], v)
				}
				for i := 0; i < len(word); i++ {
					ch := word[i]
					p := e.pos[posKey{ch: ch, cell: e.cell(r, c+i)}]
					if err := e.sink.WriteClause(Clause{v.Neg(), p.Pos()}); err != nil {
						return err
					}
					e.posWitness[p] = append(e.posWitness[p], v)

					h := e.hvar[e.cell(r, c+i)]
					if err := e.sink.WriteClause(Clause{v.Neg(), h.Pos()}); err != nil {
						return err
					}
					e.hvarWitness[h] = append(e.hvarWitness[h], v)
				}
				if c+len(word) < cols {
					gap := e.stop[e.cell(r, c+len(word))]
					if err := e.sink.WriteClause(Clause{v.Neg(), gap.Pos()}); err != nil {
						return err
					}
					e.stopWitness[gap] = append(e.stopWitness[gap], v)
				}
				a := Anchor{Orientation: Horizontal, Row: r, Col: c}
				entries = append(entries, placementEntry{anchor: a, v: v})
				byAnchor[a] = v
			}
		}

		// Vertical anchors, with the square-grid symmetry break: the
		// first word in input order is restricted to horizontal anchors
		// only when rows == cols.
		if !square || wi != 0 {
			for r := 0; r <= rows-len(word); r++ {
				for c := 0; c < cols; c++ {
					v := e.alloc.New()
					e.sink.AddComment(fmt.Sprintf("var %d == %s at V(%d,%d)", v, word, r, c))
					if r > 0 {
						gap := e.stop[e.cell(r-1, c)]
						if err := e.sink.WriteClause(Clause{v.Neg(), gap.Pos()}); err != nil {
							return err
						}
						e.stopWitness[gap] = append(e.stopWitness[gap], v)
					}
					for i := 0; i < len(word); i++ {
						ch := word[i]
						p := e.pos[posKey{ch: ch, cell: e.cell(r+i, c)}]
						if err := e.sink.WriteClause(Clause{v.Neg(), p.Pos()}); err != nil {
							return err
						}
						e.posWitness[p] = append(e.posWitness[p], v)

						vv := e.vvar[e.cell(r+i, c)]
						if err := e.sink.WriteClause(Clause{v.Neg(), vv.Pos()}); err != nil {
							return err
						}
						e.vvarWitness[vv] = append(e.vvarWitness[vv], v)
					}
					if r+len(word) < rows {
						gap := e.stop[e.cell(r+len(word), c)]
						if err := e.sink.WriteClause(Clause{v.Neg(), gap.Pos()}); err != nil {
							return err
						}
						e.stopWitness[gap] = append(e.stopWitness[gap], v)
					}
					a := Anchor{Orientation: Vertical, Row: r, Col: c}
					entries = append(entries, placementEntry{anchor: a, v: v})
					byAnchor[a] = v
				}
			}
		}

		if len(entries) == 0 {
			return BoundsError{Reason: fmt.Sprintf("word %q has no legal placement in a %dx%d grid", word, rows, cols)}
		}

		vs := make([]Var, len(entries))
		for i, en := range entries {
			vs[i] = en.v
		}
		if err := AtMostOneTrue(e.sink, vs); err != nil {
			return err
		}
		used, err := DisjunctionWitness(e.sink, e.alloc, vs, 0)
		if err != nil {
			return err
		}

		e.placementEntries(word, entries, byAnchor)
		e.used[word] = used
	}

	return e.applyWordCountBound()
}

// placementEntries records a word's placement table.
func (e *Encoder) placementEntries(word string, entries []placementEntry, byAnchor map[Anchor]Var) {
	if e.placement == nil {
		e.placement = make(map[string]map[Anchor]Var)
	}
	e.placement[word] = byAnchor
	if e.placementOrder == nil {
		e.placementOrder = make(map[string][]placementEntry)
	}
	e.placementOrder[word] = entries
}

// applyWordCountBound enforces the lower bound on words used: if one is
// configured, emit an at-least-n-true constraint over the used[]
// variables; otherwise every word is mandatory.
func (e *Encoder) applyWordCountBound() error {
	usedVars := make([]Var, len(e.words))
	for i, w := range e.words {
		usedVars[i] = e.used[w]
	}
	if e.opts.LowerBound == nil {
		for _, v := range usedVars {
			if err := e.sink.WriteClause(unitClause(v.Pos())); err != nil {
				return err
			}
		}
		return nil
	}
	return AtLeastNTrue(e.sink, e.alloc, usedVars, *e.opts.LowerBound)
}

// emitWitnessGuards ensures hvar/vvar may not be true without a
// placement variable that justifies it, preventing the solver from
// choosing an unjustified tight packing. The analogous guards for
// stop/pos are gated behind Options.Extra.
func (e *Encoder) emitWitnessGuards() error {
	if err := emitGuardSet(e.sink, e.hvarWitness); err != nil {
		return err
	}
	if err := emitGuardSet(e.sink, e.vvarWitness); err != nil {
		return err
	}
	if e.opts.Extra {
		if err := emitGuardSet(e.sink, e.stopWitness); err != nil {
			return err
		}
		if err := emitGuardSet(e.sink, e.posWitness); err != nil {
			return err
		}
	}
	return nil
}

func emitGuardSet(sink *ClauseSink, witnesses map[Var][]Var) error {
	xs := make([]Var, 0, len(witnesses))
	for x := range witnesses {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	for _, x := range xs {
		ws := witnesses[x]
		clause := make(Clause, 0, len(ws)+1)
		clause = append(clause, x.Neg())
		for _, w := range ws {
			clause = append(clause, w.Pos())
		}
		if err := sink.WriteClause(clause); err != nil {
			return err
		}
	}
	return nil
}
