package wordcross

// solveCNF is a small backtracking satisfiability checker used only by
// this package's tests, to give an Encoder's output an actual sat/unsat
// verdict. It operates directly on Clause/Lit/Var rather than DIMACS
// integers, and favors a simple, obviously-correct implementation over
// a fast one: test fixtures are small puzzles, not production-scale
// instances, so there's no watched-literal scheme or conflict-driven
// backjumping here, just unit propagation plus chronological
// backtracking over the lowest-numbered unassigned variable.
func solveCNF(clauses []Clause) (map[Var]bool, bool) {
	s := &cnfSearch{clauses: clauses, assign: make(map[Var]bool), numVars: maxVar(clauses)}
	if s.search() {
		return s.assign, true
	}
	return nil, false
}

func maxVar(clauses []Clause) int {
	max := 0
	for _, c := range clauses {
		for _, l := range c {
			if v := int(l.Var()); v > max {
				max = v
			}
		}
	}
	return max
}

type cnfSearch struct {
	clauses []Clause
	assign  map[Var]bool
	numVars int
}

func (s *cnfSearch) search() bool {
	trail, ok := s.propagate()
	if !ok {
		s.undo(trail)
		return false
	}
	v := s.firstUnassigned()
	if v == 0 {
		return true
	}
	for _, val := range [2]bool{true, false} {
		s.assign[v] = val
		if s.search() {
			return true
		}
		delete(s.assign, v)
	}
	s.undo(trail)
	return false
}

// propagate repeatedly assigns any clause's sole remaining unassigned
// literal until no such unit clause remains, or a clause is found with
// every literal false (a conflict). It returns the variables it assigned
// so the caller can undo them on backtrack.
func (s *cnfSearch) propagate() ([]Var, bool) {
	var trail []Var
	for {
		changed := false
		for _, c := range s.clauses {
			status, unit := s.clauseStatus(c)
			switch status {
			case clauseFalse:
				return trail, false
			case clauseUnit:
				v := unit.Var()
				s.assign[v] = unit > 0
				trail = append(trail, v)
				changed = true
			}
		}
		if !changed {
			return trail, true
		}
	}
}

type clauseState int

const (
	clauseTrue clauseState = iota
	clauseFalse
	clauseUnit
	clauseUnresolved
)

// clauseStatus reports whether c is already satisfied, already falsified,
// down to its last unassigned literal (returned as unit), or still has
// two or more unassigned literals.
func (s *cnfSearch) clauseStatus(c Clause) (clauseState, Lit) {
	var pending Lit
	nPending := 0
	for _, l := range c {
		val, ok := s.assign[l.Var()]
		if !ok {
			nPending++
			pending = l
			continue
		}
		if val == (l > 0) {
			return clauseTrue, 0
		}
	}
	switch nPending {
	case 0:
		return clauseFalse, 0
	case 1:
		return clauseUnit, pending
	default:
		return clauseUnresolved, 0
	}
}

func (s *cnfSearch) firstUnassigned() Var {
	for v := 1; v <= s.numVars; v++ {
		if _, ok := s.assign[Var(v)]; !ok {
			return Var(v)
		}
	}
	return 0
}

func (s *cnfSearch) undo(trail []Var) {
	for _, v := range trail {
		delete(s.assign, v)
	}
}
