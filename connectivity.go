package wordcross

// This file computes pairwise intersection detection between placement
// variables, the intersect[w1,w2] witnesses, and the iterated
// reachability layering that asserts the word-intersection graph is
// connected over used words.

// wordIntersection reports the cell at which placements a1 (of w1) and
// a2 (of w2) would intersect, if they are compatible (cross-orientation,
// overlapping spans, agreeing letter at the crossing) — this is plain
// geometry, computed directly rather than encoded as clauses.
func wordIntersection(w1 string, a1 Anchor, w2 string, a2 Anchor) (Cell, bool) {
	if a1.Orientation == Vertical {
		w1, a1, w2, a2 = w2, a2, w1, a1
	}
	if a1.Orientation != Horizontal || a2.Orientation != Vertical {
		return Cell{}, false
	}
	// a1 is horizontal (row a1.Row, cols [a1.Col, a1.Col+len(w1))),
	// a2 is vertical (col a2.Col, rows [a2.Row, a2.Row+len(w2))).
	if !(a1.Col <= a2.Col && a2.Col <= a1.Col+len(w1)-1) {
		return Cell{}, false
	}
	if !(a2.Row <= a1.Row && a1.Row <= a2.Row+len(w2)-1) {
		return Cell{}, false
	}
	di := a2.Col - a1.Col
	dj := a1.Row - a2.Row
	if di < 0 || di >= len(w1) || dj < 0 || dj >= len(w2) {
		return Cell{}, false
	}
	if w1[di] != w2[dj] {
		return Cell{}, false
	}
	return Cell{Row: a1.Row, Col: a2.Col}, true
}

// buildConnectivity builds intersection witnesses, the W-1 levels of
// reachability, and the connectedness assertion over every pair of used
// words.
func (e *Encoder) buildConnectivity() error {
	if err := e.buildIntersections(); err != nil {
		return err
	}
	reach, err := e.buildReachability()
	if err != nil {
		return err
	}
	return e.assertConnected(reach)
}

func (e *Encoder) buildIntersections() error {
	disjunctions := make(map[wordPair][]Var)

	for i := 0; i < len(e.words); i++ {
		for j := i + 1; j < len(e.words); j++ {
			w1, w2 := e.words[i], e.words[j]
			pair := makeWordPair(w1, w2)
			for _, e1 := range e.placementOrder[w1] {
				for _, e2 := range e.placementOrder[w2] {
					if _, ok := wordIntersection(w1, e1.anchor, w2, e2.anchor); !ok {
						continue
					}
					cij, err := ConjunctionWitness(e.sink, e.alloc, []Var{e1.v, e2.v}, 0)
					if err != nil {
						return err
					}
					disjunctions[pair] = append(disjunctions[pair], cij)
				}
			}
		}
	}

	for i := 0; i < len(e.words); i++ {
		for j := i + 1; j < len(e.words); j++ {
			pair := makeWordPair(e.words[i], e.words[j])
			d, ok := disjunctions[pair]
			if !ok {
				continue
			}
			v, err := DisjunctionWitness(e.sink, e.alloc, d, 0)
			if err != nil {
				return err
			}
			e.intersect[pair] = v
		}
	}
	return nil
}

// forcedFalse allocates a variable and asserts it false via a unit
// clause, used for reachability slots with no supporting intersection.
func (e *Encoder) forcedFalse() (Var, error) {
	v := e.alloc.New()
	if err := e.sink.WriteClause(unitClause(v.Neg())); err != nil {
		return 0, err
	}
	return v, nil
}

// buildReachability constructs the W-1 levels of reach[i][w1,w2]: level 0
// is direct intersection, and each further level ORs in paths through one
// more intermediate word.
func (e *Encoder) buildReachability() ([]map[wordPair]Var, error) {
	w := len(e.words)
	levels := make([]map[wordPair]Var, w-1)
	if w-1 == 0 {
		return levels, nil
	}

	levels[0] = make(map[wordPair]Var)
	for i := 0; i < w; i++ {
		for j := i + 1; j < w; j++ {
			pair := makeWordPair(e.words[i], e.words[j])
			if v, ok := e.intersect[pair]; ok {
				levels[0][pair] = v
				continue
			}
			v, err := e.forcedFalse()
			if err != nil {
				return nil, err
			}
			levels[0][pair] = v
		}
	}

	for lvl := 1; lvl < len(levels); lvl++ {
		levels[lvl] = make(map[wordPair]Var)
		for i := 0; i < w; i++ {
			for j := i + 1; j < w; j++ {
				w1, w2 := e.words[i], e.words[j]
				pair := makeWordPair(w1, w2)
				var dis []Var
				for k := 0; k < w; k++ {
					wk := e.words[k]
					if wk == w1 || wk == w2 {
						continue
					}
					wa := makeWordPair(w1, wk)
					iwa, ok := e.intersect[wa]
					if !ok {
						continue
					}
					wb := makeWordPair(wk, w2)
					rb := levels[lvl-1][wb]
					ciw, err := ConjunctionWitness(e.sink, e.alloc, []Var{iwa, rb}, 0)
					if err != nil {
						return nil, err
					}
					dis = append(dis, ciw)
				}
				if len(dis) == 0 {
					v, err := e.forcedFalse()
					if err != nil {
						return nil, err
					}
					levels[lvl][pair] = v
					continue
				}
				v, err := DisjunctionWitness(e.sink, e.alloc, dis, 0)
				if err != nil {
					return nil, err
				}
				levels[lvl][pair] = v
			}
		}
	}
	return levels, nil
}

// assertConnected emits, for every pair of words, "both used implies
// reachable."
func (e *Encoder) assertConnected(levels []map[wordPair]Var) error {
	w := len(e.words)
	for i := 0; i < w; i++ {
		for j := i + 1; j < w; j++ {
			w1, w2 := e.words[i], e.words[j]
			pair := makeWordPair(w1, w2)

			reaches := make([]Var, len(levels))
			for lvl := range levels {
				reaches[lvl] = levels[lvl][pair]
			}
			anyReach, err := DisjunctionWitness(e.sink, e.alloc, reaches, 0)
			if err != nil {
				return err
			}
			bothUsed, err := ConjunctionWitness(e.sink, e.alloc, []Var{e.used[w1], e.used[w2]}, 0)
			if err != nil {
				return err
			}
			if err := e.sink.WriteClause(Clause{bothUsed.Neg(), anyReach.Pos()}); err != nil {
				return err
			}
		}
	}
	return nil
}
