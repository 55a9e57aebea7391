package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/heartmarshall/spellingbee/internal/domain"
	"github.com/heartmarshall/spellingbee/internal/solver"
)

func sampleSolution() *solver.Solution {
	return &solver.Solution{Results: []domain.WordResult{
		{Word: "slattern", Length: 8, Score: 15, IsPangram: true, Zipf: 3.2},
		{Word: "lantern", Length: 7, Score: 7, Zipf: 4.2},
		{Word: "rental", Length: 6, Score: 6, Zipf: 4.0},
		{Word: "rent", Length: 4, Score: 1, Zipf: 4.6},
	}}
}

func TestResults_FullReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Results(&buf, sampleSolution(), Options{TopN: 50, Hints: true}); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Words found: 4",
		"Total points available: 29",
		"Pangrams: 1",
		"By length: {4: 1, 6: 1, 7: 1, 8: 1}",
		"Average word frequency (Zipf): 4.00",
		"=== Hints (Word Counts) ===",
		"By first letter: L=1 R=2 S=1",
		"LA: 1 words",
		"=== Top 4 Words ===",
		"SLATTERN              len=8   score=15 (PANGRAM)  zipf=3.2",
		"RENT                  len=4   score=1   zipf=4.6",
		"=== All Pangrams ===",
		"SLATTERN              score=15  zipf=3.2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestResults_TopNLimitsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Results(&buf, sampleSolution(), Options{TopN: 2}); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "=== Top 2 Words ===") {
		t.Errorf("output missing top-2 header:\n%s", out)
	}
	if strings.Contains(out, "RENT  ") {
		t.Errorf("table should stop after 2 words:\n%s", out)
	}
	// The pangram section is independent of the table cutoff.
	if !strings.Contains(out, "=== All Pangrams ===") {
		t.Errorf("output missing pangram section:\n%s", out)
	}
}

func TestResults_NoZipfOmitsFrequency(t *testing.T) {
	sol := &solver.Solution{Results: []domain.WordResult{
		{Word: "rental", Length: 6, Score: 6},
		{Word: "rent", Length: 4, Score: 1},
	}}

	var buf bytes.Buffer
	if err := Results(&buf, sol, Options{TopN: 50}); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "zipf=") {
		t.Errorf("degraded mode output should not mention zipf:\n%s", out)
	}
	if strings.Contains(out, "Average word frequency") {
		t.Errorf("degraded mode output should not include average frequency:\n%s", out)
	}
}

func TestResults_EmptySolution(t *testing.T) {
	var buf bytes.Buffer
	if err := Results(&buf, &solver.Solution{}, Options{TopN: 50}); err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Words found: 0") {
		t.Errorf("output missing zero summary:\n%s", out)
	}
	if strings.Contains(out, "=== All Pangrams ===") {
		t.Errorf("empty solution should not print a pangram section:\n%s", out)
	}
}

func TestHints_View(t *testing.T) {
	sol := sampleSolution()

	var buf bytes.Buffer
	if err := Hints(&buf, sol.Hints(10)); err != nil {
		t.Fatalf("Hints returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Most common 2-letter starts:") {
		t.Errorf("hints output missing starts header:\n%s", out)
	}
	for _, word := range []string{"SLATTERN", "LANTERN", "RENTAL", "RENT"} {
		if strings.Contains(out, word) {
			t.Errorf("hints output must not reveal words, found %q:\n%s", word, out)
		}
	}
}
