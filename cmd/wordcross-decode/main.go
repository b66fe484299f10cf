// Command wordcross-decode renders a SAT solver's solution to a
// wordcross-gen formula back into a human-readable form: the solved grid,
// the set of placements chosen, or the relative intersections between
// placed words.
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

type cell struct {
	row, col int
	ch       byte
}

type placement struct {
	word        string
	orientation wordcross.Orientation
	row, col    int
	cells       []cell
}

var commentRE = regexp.MustCompile(`^c var (\d+) == (\w+) at ([HV])\((\d+),(\d+)\)$`)

func main() {
	log.SetFlags(0)

	format := flag.String("format", "ascii", "output format: ascii, forces, or relative")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `wordcross-decode: render a wordcross-gen solution.

Usage:

  wordcross-decode [-format ascii|forces|relative] cnf-file solver-output-file rows cols
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(2)
	}
	if *format != "ascii" && *format != "forces" && *format != "relative" {
		log.Fatalf("invalid -format %q", *format)
	}
	cnfFile, solnFile := flag.Arg(0), flag.Arg(1)
	rows, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("invalid rows %q: %s", flag.Arg(2), err)
	}
	cols, err := strconv.Atoi(flag.Arg(3))
	if err != nil {
		log.Fatalf("invalid cols %q: %s", flag.Arg(3), err)
	}

	placements, err := extractPlacements(cnfFile)
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

	var ids []int
	for v := range solution {
		if _, ok := placements[int(v)]; ok {
			ids = append(ids, int(v))
		}
	}
	sort.Ints(ids)
	chosen := make([]placement, len(ids))
	for i, id := range ids {
		chosen[i] = placements[id]
	}

	switch *format {
	case "ascii":
		printBoard(chosen, rows, cols)
	case "forces":
		for _, p := range chosen {
			fmt.Printf("%s:%s(%d,%d)\n", p.word, p.orientation, p.row, p.col)
		}
	case "relative":
		printRelativeIntersections(chosen)
	}
}

// extractPlacements parses "c var <id> == <WORD> at <O>(<r>,<c>)" comments
// out of a CNF file's preamble, stopping at the first non-comment,
// non-problem line (matching original_source/decode-solution.py).
func extractPlacements(filename string) (map[int]placement, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading CNF file: %w", err)
	}
	defer f.Close()

	result := make(map[int]placement)
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
		word := m[2]
		orientation := wordcross.Horizontal
		if m[3] == "V" {
			orientation = wordcross.Vertical
		}
		row, _ := strconv.Atoi(m[4])
		col, _ := strconv.Atoi(m[5])

		p := placement{word: word, orientation: orientation, row: row, col: col}
		for i := 0; i < len(word); i++ {
			if orientation == wordcross.Horizontal {
				p.cells = append(p.cells, cell{row: row, col: col + i, ch: word[i]})
			} else {
				p.cells = append(p.cells, cell{row: row + i, col: col, ch: word[i]})
			}
		}
		result[id] = p
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading CNF file: %w", err)
	}
	return result, nil
}

func printBoard(chosen []placement, rows, cols int) {
	board := make([][]byte, rows)
	for r := range board {
		board[r] = make([]byte, cols)
		for c := range board[r] {
			board[r][c] = ' '
		}
	}
	for _, p := range chosen {
		for _, c := range p.cells {
			board[c.row][c.col] = c.ch
		}
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, row := range board {
		w.Write(row)
		w.WriteByte('\n')
	}
}

// printRelativeIntersections emits, for every pair of chosen placements
// that share a cell, a "w1:offset1:w2:offset2" line giving the 0-based
// letter offset into each word where they cross.
func printRelativeIntersections(chosen []placement) {
	for i := 0; i < len(chosen); i++ {
		for j := i + 1; j < len(chosen); j++ {
			p1, p2 := chosen[i], chosen[j]
			isect, ok := sharedCell(p1, p2)
			if !ok {
				continue
			}
			off1 := (isect.row - p1.row) + (isect.col - p1.col)
			off2 := (isect.row - p2.row) + (isect.col - p2.col)
			fmt.Printf("%s:%d:%s:%d\n", p1.word, off1, p2.word, off2)
		}
	}
}

func sharedCell(p1, p2 placement) (cell, bool) {
	for _, c1 := range p1.cells {
		for _, c2 := range p2.cells {
			if c1.row == c2.row && c1.col == c2.col {
				return c1, true
			}
		}
	}
	return cell{}, false
}
