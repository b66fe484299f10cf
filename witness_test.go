package wordcross

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisjunctionWitness(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		n := n
		t.Run("", func(t *testing.T) {
			got := solveAll(t, n, func(sink *ClauseSink, alloc *VarAllocator, vars []Var) error {
				v, err := DisjunctionWitness(sink, alloc, vars, 0)
				if err != nil {
					return err
				}
				// Force v true so we can read off which assignments of
				// the underlying vars are compatible.
				return sink.WriteClause(unitClause(v.Pos()))
			})
			for assn := 0; assn < 1<<n; assn++ {
				wantSat := assn != 0 // at least one input true
				if n == 0 {
					wantSat = false // disjunction of nothing is false
				}
				if got[assn] != wantSat {
					t.Fatalf("n=%d assn=%b: got satisfiable=%v, want %v", n, assn, got[assn], wantSat)
				}
			}
		})
	}
}

func TestConjunctionWitness(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		n := n
		t.Run("", func(t *testing.T) {
			got := solveAll(t, n, func(sink *ClauseSink, alloc *VarAllocator, vars []Var) error {
				v, err := ConjunctionWitness(sink, alloc, vars, 0)
				if err != nil {
					return err
				}
				return sink.WriteClause(unitClause(v.Pos()))
			})
			full := (1 << n) - 1
			for assn := 0; assn < 1<<n; assn++ {
				wantSat := assn == full // all inputs true
				if got[assn] != wantSat {
					t.Fatalf("n=%d assn=%b: got satisfiable=%v, want %v", n, assn, got[assn], wantSat)
				}
			}
		})
	}
}

func TestDisjunctionWitnessReusesGivenVar(t *testing.T) {
	alloc := NewVarAllocator()
	sink, err := NewClauseSink(alloc)
	if err != nil {
		t.Fatal(err)
	}
	defer sink.Cleanup()

	x, y := alloc.New(), alloc.New()
	v := alloc.New()
	got, err := DisjunctionWitness(sink, alloc, []Var{x, y}, v)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("DisjunctionWitness with explicit v: got %d, want %d", got, v)
	}

	var buf bytes.Buffer
	if err := sink.Emit(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "p cnf 3 3") {
		t.Fatalf("expected no extra variable to be allocated; got:\n%s", buf.String())
	}
}
