package wordcross

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Clause is a non-empty-or-empty ordered collection of literals,
// interpreted as their disjunction. An empty Clause denotes
// unsatisfiability and is legal: ClauseSink must not silently drop it.
type Clause []Lit

// ClauseSink is an append-only writer for CNF clauses. It tracks the
// running variable and clause counts and accumulates free-form comments
// that map variables back to their semantic meaning for downstream
// decoding.
//
// Clauses are written immediately to a disk-backed scratch file with
// sequential-append semantics, matching the original's use of
// tempfile.TemporaryFile: the final DIMACS output streams the comment
// block and the "p cnf V C" header ahead of a single read-back pass over
// the clause body, so peak memory stays proportional to the in-memory
// variable tables rather than the clause stream.
type ClauseSink struct {
	alloc    *VarAllocator
	scratch  *os.File
	w        *bufio.Writer
	comments []string
	nClauses int
	litBuf   []byte
}

// NewClauseSink creates a ClauseSink backed by a new temporary file and
// bound to alloc for variable-count reporting. Emit closes the scratch
// file itself; Close is only for finishing without calling Emit.
func NewClauseSink(alloc *VarAllocator) (*ClauseSink, error) {
	f, err := os.CreateTemp("", "wordcross-cnf-*.scratch")
	if err != nil {
		return nil, fmt.Errorf("creating clause scratch file: %w", err)
	}
	return &ClauseSink{
		alloc:   alloc,
		scratch: f,
		w:       bufio.NewWriter(f),
	}, nil
}

// WriteClause appends a clause to the scratch buffer. An empty clause is
// permitted and is written as a bare "0" line, denoting unsatisfiability.
func (s *ClauseSink) WriteClause(c Clause) error {
	s.litBuf = s.litBuf[:0]
	for _, l := range c {
		s.litBuf = strconv.AppendInt(s.litBuf, int64(l), 10)
		s.litBuf = append(s.litBuf, ' ')
	}
	s.litBuf = append(s.litBuf, '0', '\n')
	if _, err := s.w.Write(s.litBuf); err != nil {
		return fmt.Errorf("writing clause: %w", err)
	}
	s.nClauses++
	return nil
}

// AddComment appends a free-form comment line to be emitted ahead of the
// problem line.
func (s *ClauseSink) AddComment(text string) {
	s.comments = append(s.comments, text)
}

// NumVars returns the number of variables allocated through the
// ClauseSink's bound VarAllocator so far.
func (s *ClauseSink) NumVars() int {
	return s.alloc.Len()
}

// NumClauses returns the number of clauses written so far.
func (s *ClauseSink) NumClauses() int {
	return s.nClauses
}

// Close flushes and closes the scratch file. It does not remove it; call
// Emit (which removes it) or Cleanup directly.
func (s *ClauseSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.scratch.Close()
		return fmt.Errorf("flushing clause scratch file: %w", err)
	}
	return s.scratch.Close()
}

// Cleanup removes the scratch file from disk. Safe to call after Close or
// Emit; safe to call more than once.
func (s *ClauseSink) Cleanup() {
	if s.scratch != nil {
		os.Remove(s.scratch.Name())
	}
}

// Emit writes the final DIMACS output to w: the accumulated comments (one
// "c <text>" line each), the "p cnf V C" problem line, the clause body
// (read back from the scratch file in one sequential pass), and a
// trailing newline.
//
// Emit closes and removes the scratch file; the ClauseSink must not be
// used to write further clauses afterward.
func (s *ClauseSink) Emit(w io.Writer) error {
	if err := s.Close(); err != nil {
		return err
	}
	defer s.Cleanup()

	bw := bufio.NewWriter(w)
	for _, c := range s.comments {
		if _, err := fmt.Fprintf(bw, "c %s\n", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", s.NumVars(), s.NumClauses()); err != nil {
		return err
	}

	f, err := os.Open(s.scratch.Name())
	if err != nil {
		return fmt.Errorf("reopening clause scratch file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(bw, f); err != nil {
		return fmt.Errorf("copying clause body: %w", err)
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// unitClause is a convenience for the common case of a single-literal
// clause.
func unitClause(l Lit) Clause { return Clause{l} }
