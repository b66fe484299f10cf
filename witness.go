package wordcross

// DisjunctionWitness emits clauses making v (or, if v is 0, a freshly
// allocated variable) logically equivalent to the disjunction of d:
// one clause (¬v ∨ d1 ∨ ... ∨ dn) and one two-literal clause (v ∨ ¬di)
// per di.
func DisjunctionWitness(sink *ClauseSink, alloc *VarAllocator, d []Var, v Var) (Var, error) {
	if v == 0 {
		v = alloc.New()
	}
	clause := make(Clause, 0, len(d)+1)
	for _, dv := range d {
		clause = append(clause, dv.Pos())
	}
	clause = append(clause, v.Neg())
	if err := sink.WriteClause(clause); err != nil {
		return 0, err
	}
	for _, dv := range d {
		if err := sink.WriteClause(Clause{v.Pos(), dv.Neg()}); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// ConjunctionWitness emits clauses making v (or, if v is 0, a freshly
// allocated variable) logically equivalent to the conjunction of c:
// one clause (¬c1 ∨ ... ∨ ¬cn ∨ v) and one two-literal clause (¬v ∨ ci)
// per ci.
func ConjunctionWitness(sink *ClauseSink, alloc *VarAllocator, c []Var, v Var) (Var, error) {
	if v == 0 {
		v = alloc.New()
	}
	clause := make(Clause, 0, len(c)+1)
	for _, cv := range c {
		clause = append(clause, cv.Neg())
	}
	clause = append(clause, v.Pos())
	if err := sink.WriteClause(clause); err != nil {
		return 0, err
	}
	for _, cv := range c {
		if err := sink.WriteClause(Clause{v.Neg(), cv.Pos()}); err != nil {
			return 0, err
		}
	}
	return v, nil
}
