package wordcross

import (
	"bytes"
	"testing"

	"github.com/kr/pretty"
)

// encodeAndSolve runs NewEncoder/Encode/Emit, parses the resulting DIMACS
// text back, and hands it to solveCNF to get an actual satisfiability
// verdict.
func encodeAndSolve(t *testing.T, words []string, opts Options) bool {
	t.Helper()
	enc, err := NewEncoder(words, opts)
	if err != nil {
		t.Fatalf("NewEncoder: %s", err)
	}
	if err := enc.Encode(); err != nil {
		t.Fatalf("Encode: %s", err)
	}
	var buf bytes.Buffer
	if err := enc.Emit(&buf); err != nil {
		t.Fatalf("Emit: %s", err)
	}
	clauses, err := ParseDIMACS(&buf)
	if err != nil {
		t.Fatalf("ParseDIMACS of own output: %s", err)
	}
	_, sat := solveCNF(clauses)
	return sat
}

func TestEncoderScenarios(t *testing.T) {
	for _, tt := range []struct {
		name  string
		words []string
		opts  Options
		sat   bool
	}{
		{
			name:  "single word fits a 1x3 row",
			words: []string{"CAT"},
			opts:  Options{Rows: 1, Cols: 3},
			sat:   true,
		},
		{
			name:  "disjoint words can't connect",
			words: []string{"CAT", "DOG"},
			opts:  Options{Rows: 3, Cols: 3},
			sat:   false,
		},
		{
			name:  "crossing words don't fit in one row",
			words: []string{"CAT", "CAR"},
			opts:  Options{Rows: 1, Cols: 5},
			sat:   false,
		},
		{
			name:  "crossing words fit a 3x3 grid",
			words: []string{"CAT", "CAR"},
			opts:  Options{Rows: 3, Cols: 3},
			sat:   true,
		},
		{
			name:  "lower bound allows a partial cycle",
			words: []string{"AB", "BC", "CA"},
			opts:  Options{Rows: 3, Cols: 3, LowerBound: intPtr(2)},
			sat:   true,
		},
		{
			name:  "shared letter crosses a 5x5 grid",
			words: []string{"HELLO", "WORLD"},
			opts:  Options{Rows: 5, Cols: 5},
			sat:   true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeAndSolve(t, tt.words, tt.opts)
			if got != tt.sat {
				t.Fatalf("words=%v opts=%# v: got satisfiable=%v, want %v", tt.words, pretty.Formatter(tt.opts), got, tt.sat)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestNewEncoderValidation(t *testing.T) {
	for _, tt := range []struct {
		name  string
		words []string
		opts  Options
	}{
		{"zero rows", []string{"CAT"}, Options{Rows: 0, Cols: 3}},
		{"zero cols", []string{"CAT"}, Options{Rows: 3, Cols: 0}},
		{"empty word list", nil, Options{Rows: 3, Cols: 3}},
		{"empty word", []string{""}, Options{Rows: 3, Cols: 3}},
		{"duplicate word", []string{"CAT", "CAT"}, Options{Rows: 3, Cols: 3}},
		{"lower bound too high", []string{"CAT"}, Options{Rows: 3, Cols: 3, LowerBound: intPtr(2)}},
		{"negative lower bound", []string{"CAT"}, Options{Rows: 3, Cols: 3, LowerBound: intPtr(-1)}},
		{"negative empty cap", []string{"CAT"}, Options{Rows: 3, Cols: 3, Empty: intPtr(-1)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEncoder(tt.words, tt.opts); err == nil {
				t.Fatalf("NewEncoder(%v, %+v): got nil error, want error", tt.words, tt.opts)
			}
		})
	}
}

func TestEncodeWordTooLong(t *testing.T) {
	enc, err := NewEncoder([]string{"ELEPHANT"}, Options{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("NewEncoder: %s", err)
	}
	err = enc.Encode()
	if err == nil {
		t.Fatal("Encode: got nil error for a word that can't fit, want error")
	}
	if _, ok := err.(BoundsError); !ok {
		t.Fatalf("Encode: got error of type %T, want BoundsError", err)
	}
}
