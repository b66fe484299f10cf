package wordcross

import "fmt"

// Var is a propositional variable identifier. Valid variables are
// strictly positive; the zero value is never allocated and is used as a
// sentinel for "no variable".
type Var int

// Lit is a literal: a Var (true if positive, its negation if negative).
type Lit int

// Pos returns the positive literal for v.
func (v Var) Pos() Lit { return Lit(v) }

// Neg returns the negative literal for v.
func (v Var) Neg() Lit { return Lit(-v) }

// Not returns the negation of l.
func (l Lit) Not() Lit { return -l }

// Var returns the variable that l refers to, discarding sign.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

func (l Lit) String() string { return fmt.Sprintf("%d", int(l)) }

// VarAllocator hands out fresh, strictly increasing Var ids starting at 1.
// It is single-threaded: callers must confine use of a given allocator to
// one goroutine.
type VarAllocator struct {
	next Var
}

// NewVarAllocator returns an allocator whose first New() call yields 1.
func NewVarAllocator() *VarAllocator {
	return &VarAllocator{}
}

// New returns a fresh variable id.
func (a *VarAllocator) New() Var {
	a.next++
	return a.next
}

// Len returns the number of variables allocated so far (equivalently, the
// highest variable id handed out).
func (a *VarAllocator) Len() int {
	return int(a.next)
}
