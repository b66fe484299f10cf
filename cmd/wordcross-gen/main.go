// Command wordcross-gen encodes a wordcross puzzle (a set of words that
// must all be placed, crossing, into a grid of the given size) as a DIMACS
// CNF formula, satisfiable iff such a placement exists.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/wordcross"
)

func main() {
	log.SetFlags(0)

	extra := flag.Bool("extra", false, "add redundant clauses that may help a solver")
	forcefile := flag.String("forcefile", "", "file containing forced absolute placements")
	jitter := flag.Int("jitter", 0, "jitter to apply to forced placements")
	relforcefile := flag.String("relforcefile", "", "file containing forced relative placements")
	lowerbound := flag.Int("lowerbound", -1, "require at least this many words to be placed (default: all)")
	empty := flag.Int("empty", -1, "force at most this many empty cells")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `wordcross-gen: encode a wordcross puzzle as DIMACS CNF.

Usage:

  wordcross-gen [flags] wordfile rows cols

wordfile is a newline-separated list of words. The formula written to
stdout is satisfiable iff all the listed words can be placed, crossing,
into a rows x cols grid.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	wordfile := flag.Arg(0)
	rows, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("invalid rows %q: %s", flag.Arg(1), err)
	}
	cols, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("invalid cols %q: %s", flag.Arg(2), err)
	}

	words, err := readWords(wordfile)
	if err != nil {
		log.Fatal(err)
	}

	opts := wordcross.Options{
		Rows:   rows,
		Cols:   cols,
		Extra:  *extra,
		Jitter: *jitter,
	}
	if *lowerbound >= 0 {
		opts.LowerBound = lowerbound
	}
	if *empty >= 0 {
		opts.Empty = empty
	}

	if *forcefile != "" {
		forces, err := readForces(*forcefile)
		if err != nil {
			log.Fatal(err)
		}
		opts.Forces = forces
	}
	if *relforcefile != "" {
		relforces, err := readRelForces(*relforcefile)
		if err != nil {
			log.Fatal(err)
		}
		opts.RelForces = relforces
	}

	enc, err := wordcross.NewEncoder(words, opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := enc.Encode(); err != nil {
		log.Fatal(err)
	}
	w := bufio.NewWriter(os.Stdout)
	if err := enc.Emit(w); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

func readWords(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading word file: %w", err)
	}
	defer f.Close()
	var words []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		w := strings.TrimSpace(s.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading word file: %w", err)
	}
	return words, nil
}

var forceLineRE = regexp.MustCompile(`^([HV])\((\d+),(\d+)\)$`)

// readForces parses a force file: one "word:H(row,col)" or
// "word:V(row,col)" line per force, "//"-prefixed and blank lines ignored.
func readForces(filename string) ([]wordcross.Force, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading force file: %w", err)
	}
	defer f.Close()
	var forces []wordcross.Force
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		word, posStr, ok := strings.Cut(line, ":")
		if !ok {
			return nil, wordcross.InputFormatError{Source: "force file", Line: line, Reason: "expected word:O(r,c)"}
		}
		m := forceLineRE.FindStringSubmatch(posStr)
		if m == nil {
			return nil, wordcross.InputFormatError{Source: "force file", Line: line, Reason: "expected O(row,col)"}
		}
		row, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		orientation := wordcross.Horizontal
		if m[1] == "V" {
			orientation = wordcross.Vertical
		}
		forces = append(forces, wordcross.Force{
			Word:   word,
			Anchor: wordcross.Anchor{Orientation: orientation, Row: row, Col: col},
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading force file: %w", err)
	}
	return forces, nil
}

// readRelForces parses a relative-force file: one "w1:p1:w2:p2" line per
// force, "//"-prefixed and blank lines ignored.
func readRelForces(filename string) ([]wordcross.RelForce, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading relative-force file: %w", err)
	}
	defer f.Close()
	var relforces []wordcross.RelForce
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) != 4 {
			return nil, wordcross.InputFormatError{Source: "relative-force file", Line: line, Reason: "expected w1:p1:w2:p2"}
		}
		p1, err1 := strconv.Atoi(parts[1])
		p2, err2 := strconv.Atoi(parts[3])
		if err1 != nil || err2 != nil {
			return nil, wordcross.InputFormatError{Source: "relative-force file", Line: line, Reason: "offsets must be integers"}
		}
		relforces = append(relforces, wordcross.RelForce{W1: parts[0], P1: p1, W2: parts[2], P2: p2})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading relative-force file: %w", err)
	}
	return relforces, nil
}
