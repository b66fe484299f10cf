// Package wordcross encodes a wordcross puzzle — a set of words that must
// all be placed into a grid, crossing at shared letters, connected into one
// component — as a boolean formula in conjunctive normal form. The
// resulting formula, written out in DIMACS CNF format, is satisfiable iff
// a valid placement exists; finding that placement is left to an external
// SAT solver.
package wordcross

import (
	"fmt"
	"io"
)

// Force is an absolute placement forced on a word: it must be placed at
// Anchor, or (if Jitter > 0 in Options) at one within Jitter cells of it
// in both row and column.
type Force struct {
	Word   string
	Anchor Anchor
}

// RelForce is a relative force between two words: w1 crosses w2 at the
// p1-th letter of w1 and the p2-th letter of w2.
type RelForce struct {
	W1, W2 string
	P1, P2 int
}

// Options configures Encode. Rows and Cols are required; everything else
// is optional and has the zero-value meaning "not set" as noted per
// field.
type Options struct {
	Rows, Cols int

	// Extra, if true, also emits witness guards for stop and pos
	// variables: redundant clauses that can help a solver but aren't
	// required for correctness.
	Extra bool

	// Jitter is the +/- window applied to absolute Forces: a forced
	// word may land anywhere within Jitter cells of its target anchor in
	// both row and column, not just exactly on it.
	Jitter int

	// LowerBound, if non-nil, requires at least *LowerBound words to be
	// used; if nil, every word is required.
	LowerBound *int

	// Empty, if non-nil, caps the number of cells with neither an hvar
	// nor a vvar at *Empty.
	Empty *int

	Forces    []Force
	RelForces []RelForce
}

// Encoder holds all state for one run of the SAT encoding, localizing
// what was global mutable state in the original Python source into a
// single context value. An Encoder is single-use: construct with
// NewEncoder, call Encode once, then Emit.
type Encoder struct {
	opts  Options
	words []string

	alloc *VarAllocator
	sink  *ClauseSink

	alphabet []byte

	pos  map[posKey]Var
	hvar map[Cell]Var
	vvar map[Cell]Var
	stop map[Cell]Var

	placement      map[string]map[Anchor]Var
	placementOrder map[string][]placementEntry
	used           map[string]Var

	hvarWitness map[Var][]Var
	vvarWitness map[Var][]Var
	stopWitness map[Var][]Var
	posWitness  map[Var][]Var

	intersect map[wordPair]Var

	invariants internalInvariantViolation
}

type posKey struct {
	ch   byte
	cell Cell
}

// NewEncoder validates opts and words and returns an Encoder ready for
// Encode. Word order is significant: it fixes the square-grid symmetry
// break and must match the caller's word-file order.
func NewEncoder(words []string, opts Options) (*Encoder, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, BoundsError{Reason: fmt.Sprintf("rows and cols must be positive, got %dx%d", opts.Rows, opts.Cols)}
	}
	if len(words) == 0 {
		return nil, BoundsError{Reason: "word list must not be empty"}
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" {
			return nil, InputFormatError{Source: "word list", Line: w, Reason: "empty word"}
		}
		if seen[w] {
			return nil, InputFormatError{Source: "word list", Line: w, Reason: "duplicate word"}
		}
		seen[w] = true
	}
	if opts.LowerBound != nil {
		if *opts.LowerBound < 0 || *opts.LowerBound > len(words) {
			return nil, BoundsError{Reason: fmt.Sprintf("lower bound %d outside [0, word count %d]", *opts.LowerBound, len(words))}
		}
	}
	if opts.Empty != nil && *opts.Empty < 0 {
		return nil, BoundsError{Reason: fmt.Sprintf("empty cap %d is negative", *opts.Empty)}
	}

	alloc := NewVarAllocator()
	sink, err := NewClauseSink(alloc)
	if err != nil {
		return nil, err
	}

	letters := make(map[byte]bool)
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			letters[w[i]] = true
		}
	}
	alphabet := make([]byte, 0, len(letters))
	for ch := range letters {
		alphabet = append(alphabet, ch)
	}
	// Deterministic order keeps clause output (and therefore variable
	// numbering) stable across runs for the same input.
	for i := 1; i < len(alphabet); i++ {
		for j := i; j > 0 && alphabet[j-1] > alphabet[j]; j-- {
			alphabet[j-1], alphabet[j] = alphabet[j], alphabet[j-1]
		}
	}

	return &Encoder{
		opts:        opts,
		words:       words,
		alloc:       alloc,
		sink:        sink,
		alphabet:    alphabet,
		pos:            make(map[posKey]Var),
		hvar:           make(map[Cell]Var),
		vvar:           make(map[Cell]Var),
		stop:           make(map[Cell]Var),
		placement:      make(map[string]map[Anchor]Var, len(words)),
		placementOrder: make(map[string][]placementEntry, len(words)),
		used:           make(map[string]Var, len(words)),
		hvarWitness:    make(map[Var][]Var),
		vvarWitness:    make(map[Var][]Var),
		stopWitness:    make(map[Var][]Var),
		posWitness:     make(map[Var][]Var),
		intersect:      make(map[wordPair]Var),
	}, nil
}

// Encode runs the full encoding pipeline: placement lattice, intersection
// & connectivity, force & option integration. It must be called exactly
// once.
func (e *Encoder) Encode() error {
	if err := e.buildGrid(); err != nil {
		return err
	}
	if err := e.buildPlacements(); err != nil {
		return err
	}
	if err := e.buildConnectivity(); err != nil {
		return err
	}
	if err := e.applyEmptyCap(); err != nil {
		return err
	}
	if err := e.emitWitnessGuards(); err != nil {
		return err
	}
	if err := e.applyForces(); err != nil {
		return err
	}
	if err := e.applyRelForces(); err != nil {
		return err
	}
	if len(e.invariants) > 0 {
		panic(e.invariants.Error())
	}
	return nil
}

// Emit serializes the encoded formula to w in DIMACS format. Call after
// Encode.
func (e *Encoder) Emit(w io.Writer) error {
	return e.sink.Emit(w)
}

func (e *Encoder) cell(r, c int) Cell { return Cell{Row: r, Col: c} }

func (e *Encoder) inBounds(r, c int) bool {
	return r >= 0 && r < e.opts.Rows && c >= 0 && c < e.opts.Cols
}
