package wordcross

// This file builds a pairwise (Batcher-style) sorting network used for
// "exactly n", "at most n", and "at least n true" constraints over an
// arbitrary variable sequence, plus the simpler pairwise-clause
// primitives for "at most one".
//
// The sorting-network code is a direct transliteration of
// original_source/generate-sat.py's comparator/apply_comparator/
// pairwise_sorting_network/filter_network/n_true; the comparator index
// arithmetic is data-oblivious (depends only on slice length, not variable
// identity) so it is ported index-for-index rather than re-derived.

// comparatorClauses returns the six clauses asserting maxout = a∨b and
// minout = a∧b (both being boolean values, "max" is logical-or and "min"
// is logical-and).
func comparatorClauses(a, b, minout, maxout Var) [6]Clause {
	return [6]Clause{
		{maxout.Neg(), a.Pos(), b.Pos()},
		{a.Neg(), maxout.Pos()},
		{b.Neg(), maxout.Pos()},
		{minout.Pos(), a.Neg(), b.Neg()},
		{a.Pos(), minout.Neg()},
		{b.Pos(), minout.Neg()},
	}
}

// applyComparator allocates fresh min/max variables for the comparator
// over vin[i] and vin[j], emits its defining clauses, and overwrites
// vin[i], vin[j] with (max, min) — the network sorts descending by
// convention.
func applyComparator(sink *ClauseSink, alloc *VarAllocator, vin []Var, i, j int) error {
	newMin, newMax := alloc.New(), alloc.New()
	for _, c := range comparatorClauses(vin[i], vin[j], newMin, newMax) {
		if err := sink.WriteClause(c); err != nil {
			return err
		}
	}
	vin[i], vin[j] = newMax, newMin
	return nil
}

// pairwiseSortingNetwork sorts vin[begin:end] descending in place (by
// variable substitution), following Batcher's pairwise sorting schedule:
// descending power-of-two phases for the initial merge, then an
// interleaved descending/ascending cleanup pass. The comparator sequence
// depends only on n = end-begin.
func pairwiseSortingNetwork(sink *ClauseSink, alloc *VarAllocator, vin []Var, begin, end int) error {
	n, a := end-begin, 1
	for a < n {
		b, c := a, 0
		for b < n {
			if err := applyComparator(sink, alloc, vin, begin+b-a, begin+b); err != nil {
				return err
			}
			b, c = b+1, (c+1)%a
			if c == 0 {
				b += a
			}
		}
		a *= 2
	}

	a /= 4
	e := 1
	for a > 0 {
		d := e
		for d > 0 {
			b := (d + 1) * a
			c := 0
			for b < n {
				if err := applyComparator(sink, alloc, vin, begin+b-d*a, begin+b); err != nil {
					return err
				}
				b, c = b+1, (c+1)%a
				if c == 0 {
					b += a
				}
			}
			d /= 2
		}
		a /= 2
		e = e*2 + 1
	}
	return nil
}

// filterNetwork merges the sorted window vin[i:i+n) with vin[j:j+n) by
// pairing vin[i+k] with vin[j+n-1-k] for k = 0..n-1 (a reversed-zip
// comparator layer).
func filterNetwork(sink *ClauseSink, alloc *VarAllocator, vin []Var, i, j, n int) error {
	for x := 0; x < n; x++ {
		if err := applyComparator(sink, alloc, vin, i+x, j+n-1-x); err != nil {
			return err
		}
	}
	return nil
}

// pairwiseCombos calls f for every unordered pair of distinct indices into
// vs.
func pairwiseCombos(vs []Var, f func(x, y Var) error) error {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if err := f(vs[i], vs[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// AtMostOneTrue emits pairwise clauses asserting at most one of vs is
// true.
func AtMostOneTrue(sink *ClauseSink, vs []Var) error {
	return pairwiseCombos(vs, func(x, y Var) error {
		return sink.WriteClause(Clause{x.Neg(), y.Neg()})
	})
}

// atMostOneFalse emits pairwise clauses asserting at most one of vs is
// false (equivalently, at least len(vs)-1 of vs are true).
func atMostOneFalse(sink *ClauseSink, vs []Var) error {
	return pairwiseCombos(vs, func(x, y Var) error {
		return sink.WriteClause(Clause{x.Pos(), y.Pos()})
	})
}

// nTrue is the shared implementation behind AtLeastNTrue/AtMostNTrue, for
// the regime 0 < n < len(v) (callers special-case the boundary cases
// before calling this; see the "n_true degenerate range fix" entry in
// DESIGN.md).
//
// Strategy: process v in consecutive batches of size n+1; after each
// batch, pairwise-sort the first n+1 slots and filter-merge them with the
// next batch, retaining the top n+1 by comparator exchanges. After all
// batches, the first n+1 slots hold the descending-sorted top n+1 values.
func nTrue(sink *ClauseSink, alloc *VarAllocator, v []Var, n int, atMostN, atLeastN bool) error {
	window := n + 1
	total := len(v)
	batches := total / window
	for b := 1; b < batches; b++ {
		if err := pairwiseSortingNetwork(sink, alloc, v, 0, window); err != nil {
			return err
		}
		if err := pairwiseSortingNetwork(sink, alloc, v, b*window, (b+1)*window); err != nil {
			return err
		}
		if err := filterNetwork(sink, alloc, v, 0, b*window, window); err != nil {
			return err
		}
	}
	rem := total - batches*window
	if rem > 0 {
		if err := pairwiseSortingNetwork(sink, alloc, v, 0, window); err != nil {
			return err
		}
		if err := pairwiseSortingNetwork(sink, alloc, v, batches*window, total); err != nil {
			return err
		}
		if err := filterNetwork(sink, alloc, v, window-rem, batches*window, rem); err != nil {
			return err
		}
	}

	top := v[:window]
	if atLeastN {
		if err := atMostOneFalse(sink, top); err != nil {
			return err
		}
	}
	if atMostN {
		clause := make(Clause, window)
		for i, x := range top {
			clause[i] = x.Neg()
		}
		if err := sink.WriteClause(clause); err != nil {
			return err
		}
	}
	return nil
}

// AtLeastNTrue emits clauses asserting that at least n of v are true.
func AtLeastNTrue(sink *ClauseSink, alloc *VarAllocator, v []Var, n int) error {
	if n <= 0 {
		return nil
	}
	if n > len(v) {
		// More than exist: unsatisfiable, encoded as an empty clause.
		return sink.WriteClause(Clause{})
	}
	if n == len(v) {
		// "At least all of them": force every variable.
		for _, x := range v {
			if err := sink.WriteClause(unitClause(x.Pos())); err != nil {
				return err
			}
		}
		return nil
	}
	vv := append([]Var(nil), v...)
	return nTrue(sink, alloc, vv, n, false, true)
}

// AtMostNTrue emits clauses asserting that at most n of v are true.
func AtMostNTrue(sink *ClauseSink, alloc *VarAllocator, v []Var, n int) error {
	if n == 0 {
		for _, x := range v {
			if err := sink.WriteClause(unitClause(x.Neg())); err != nil {
				return err
			}
		}
		return nil
	}
	if n >= len(v) {
		return nil // vacuous: cardinality can't exceed len(v)
	}
	vv := append([]Var(nil), v...)
	return nTrue(sink, alloc, vv, n, true, false)
}

// ExactlyNTrue emits clauses asserting that exactly n of v are true.
func ExactlyNTrue(sink *ClauseSink, alloc *VarAllocator, v []Var, n int) error {
	if n == 0 {
		return AtMostNTrue(sink, alloc, v, 0)
	}
	if n >= len(v) {
		return AtLeastNTrue(sink, alloc, v, n)
	}
	vv := append([]Var(nil), v...)
	return nTrue(sink, alloc, vv, n, true, true)
}
