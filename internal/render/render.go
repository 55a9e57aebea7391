// Package render formats solver output as plain text. Every view writes to
// an io.Writer so the commands can point them at stdout and tests at buffers.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/heartmarshall/spellingbee/internal/solver"
)

const rule = "============================================================"

// Options selects which views Results emits.
type Options struct {
	// TopN bounds the word table; 0 or negative shows everything.
	TopN int

	// Hints prepends the spoiler-free hint view.
	Hints bool
}

// Results writes the full report: summary, optional hints, the top-N word
// table, and an all-pangrams section when any pangram was found.
func Results(w io.Writer, sol *solver.Solution, opts Options) error {
	var b strings.Builder

	writeSummary(&b, sol)
	if opts.Hints {
		writeHints(&b, sol.Hints(10))
	}
	writeTopWords(&b, sol, opts.TopN)
	writePangrams(&b, sol)

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary writes only the summary block.
func Summary(w io.Writer, sol *solver.Solution) error {
	var b strings.Builder
	writeSummary(&b, sol)
	_, err := io.WriteString(w, b.String())
	return err
}

// Hints writes only the spoiler-free hint view.
func Hints(w io.Writer, hints solver.HintStats) error {
	var b strings.Builder
	writeHints(&b, hints)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, sol *solver.Solution) {
	byLen := make(map[int]int)
	var zipfSum float64
	var zipfKnown bool
	for _, r := range sol.Results {
		byLen[r.Length]++
		zipfSum += r.Zipf
		if r.Zipf > 0 {
			zipfKnown = true
		}
	}

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, "=== Summary ===")
	fmt.Fprintf(b, "Words found: %d\n", len(sol.Results))
	fmt.Fprintf(b, "Total points available: %d\n", sol.TotalPoints())
	fmt.Fprintf(b, "Pangrams: %d\n", len(sol.Pangrams()))

	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	parts := make([]string, 0, len(lengths))
	for _, l := range lengths {
		parts = append(parts, fmt.Sprintf("%d: %d", l, byLen[l]))
	}
	fmt.Fprintf(b, "By length: {%s}\n", strings.Join(parts, ", "))

	if zipfKnown && len(sol.Results) > 0 {
		fmt.Fprintf(b, "Average word frequency (Zipf): %.2f\n", zipfSum/float64(len(sol.Results)))
	}
	fmt.Fprintln(b)
}

func writeHints(b *strings.Builder, hints solver.HintStats) {
	fmt.Fprintln(b, "=== Hints (Word Counts) ===")
	fmt.Fprint(b, "By first letter:")
	for _, pc := range hints.ByFirstLetter {
		fmt.Fprintf(b, " %s=%d", pc.Prefix, pc.Count)
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, "Most common 2-letter starts:")
	for _, pc := range hints.TwoLetterStarts {
		fmt.Fprintf(b, "  %s: %d words\n", pc.Prefix, pc.Count)
	}
	fmt.Fprintln(b)
}

func writeTopWords(b *strings.Builder, sol *solver.Solution, topN int) {
	n := len(sol.Results)
	if topN > 0 && topN < n {
		n = topN
	}

	fmt.Fprintf(b, "=== Top %d Words ===\n", n)
	for _, r := range sol.Results[:n] {
		tag := ""
		if r.IsPangram {
			tag = " (PANGRAM)"
		}
		zipf := ""
		if r.Zipf > 0 {
			zipf = fmt.Sprintf("  zipf=%.1f", r.Zipf)
		}
		fmt.Fprintf(b, "%-20s  len=%-2d  score=%-2d%s%s\n", strings.ToUpper(r.Word), r.Length, r.Score, tag, zipf)
	}
	fmt.Fprintln(b)
}

func writePangrams(b *strings.Builder, sol *solver.Solution) {
	pangrams := sol.Pangrams()
	if len(pangrams) == 0 {
		return
	}

	fmt.Fprintln(b, "=== All Pangrams ===")
	for _, r := range pangrams {
		zipf := ""
		if r.Zipf > 0 {
			zipf = fmt.Sprintf("  zipf=%.1f", r.Zipf)
		}
		fmt.Fprintf(b, "%-20s  score=%d%s\n", strings.ToUpper(r.Word), r.Score, zipf)
	}
	fmt.Fprintln(b)
}
