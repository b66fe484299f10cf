// Command wordcross-block reads a wordcross-gen CNF file and a solver's
// solution for it, and emits a single DIMACS clause that blocks that exact
// solution (negating every placement variable the solution set true),
// useful for asking a solver to find a different valid layout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/cespare/wordcross"
)

var commentRE = regexp.MustCompile(`^c var (\d+) == \w+ at [HV]\(\d+,\d+\)$`)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `wordcross-block: emit a clause blocking a solver's solution.

Usage:

  wordcross-block cnf-file solver-output-file
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cnfFile, solnFile := flag.Arg(0), flag.Arg(1)

	placementVars, err := extractPlacementVars(cnfFile)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Open(solnFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	solution, err := wordcross.ParseSolverOutput(f)
	if err != nil {
		log.Fatal(err)
	}

	var blocked []wordcross.Var
	for v := range placementVars {
		if solution[v] {
			blocked = append(blocked, v)
		}
	}
	sort.Slice(blocked, func(i, j int) bool { return blocked[i] < blocked[j] })

	w := bufio.NewWriter(os.Stdout)
	for _, v := range blocked {
		fmt.Fprintf(w, "%d ", -int(v))
	}
	fmt.Fprintln(w, "0")
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// extractPlacementVars collects the set of placement-variable ids named by
// "c var <id> == WORD at O(r,c)" comments in a CNF file's preamble.
func extractPlacementVars(filename string) (map[wordcross.Var]bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading CNF file: %w", err)
	}
	defer f.Close()

	result := make(map[wordcross.Var]bool)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == 'p' {
			continue
		}
		if line[0] != 'c' {
			break
		}
		m := commentRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id, _ := strconv.Atoi(m[1])
		result[wordcross.Var(id)] = true
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading CNF file: %w", err)
	}
	return result, nil
}
