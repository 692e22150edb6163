// annotdump prints the annotation lattices of the funpi syntax core and
// can re-verify their laws, for eyeballing changes to the relevance or
// hiding algebra during development.
package main

import (
	"flag"
	"fmt"
	"github.com/funvibe/funpi/internal/syntax"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"text/tabwriter"
)

var (
	tableFlag = flag.String("table", "all", "table to print: all, hiding, order, compose, residual")
	checkFlag = flag.Bool("check", false, "verify the algebra laws and exit non-zero on violation")
	colorFlag = flag.String("color", "auto", "colorize verdicts: auto, always, never")
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

func main() {
	flag.Parse()

	if *checkFlag {
		if !runChecks(os.Stdout) {
			os.Exit(1)
		}
		return
	}

	switch *tableFlag {
	case "all":
		printHidingTable(os.Stdout)
		fmt.Fprintln(os.Stdout)
		printOrderTable(os.Stdout)
		fmt.Fprintln(os.Stdout)
		printComposeTable(os.Stdout)
		fmt.Fprintln(os.Stdout)
		printResidualTable(os.Stdout)
	case "hiding":
		printHidingTable(os.Stdout)
	case "order":
		printOrderTable(os.Stdout)
	case "compose":
		printComposeTable(os.Stdout)
	case "residual":
		printResidualTable(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown table %q\n", *tableFlag)
		os.Exit(2)
	}
}

func colorEnabled() bool {
	switch *colorFlag {
	case "always":
		return true
	case "never":
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func paint(s, code string) string {
	if !colorEnabled() {
		return s
	}
	return code + s + ansiReset
}

// combinable reports whether CombineHiding is defined on the pair.
func combinable(h1, h2 syntax.Hiding) bool {
	return h1 == h2 || h1 == syntax.NotHidden || h2 == syntax.NotHidden
}

func printHidingTable(w io.Writer) {
	fmt.Fprintln(w, "combineHiding (- marks the forbidden pair)")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	hs := syntax.Hidings()
	for _, h := range hs {
		fmt.Fprintf(tw, "\t%v", h)
	}
	fmt.Fprintln(tw)
	for _, h1 := range hs {
		fmt.Fprintf(tw, "%v", h1)
		for _, h2 := range hs {
			if combinable(h1, h2) {
				fmt.Fprintf(tw, "\t%v", syntax.CombineHiding(h1, h2))
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printOrderTable(w io.Writer) {
	fmt.Fprintln(w, "moreRelevant (row ≤ column)")
	rs := syntax.Relevances()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, q := range rs {
		fmt.Fprintf(tw, "\t%v", q)
	}
	fmt.Fprintln(tw)
	for _, r := range rs {
		fmt.Fprintf(tw, "%v", r)
		for _, q := range rs {
			if syntax.MoreRelevant(r, q) {
				fmt.Fprint(tw, "\tyes")
			} else {
				fmt.Fprint(tw, "\t.")
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printComposeTable(w io.Writer) {
	fmt.Fprintln(w, "composeRelevance")
	printRelevanceTable(w, syntax.ComposeRelevance)
}

func printResidualTable(w io.Writer) {
	fmt.Fprintln(w, "inverseComposeRelevance")
	printRelevanceTable(w, syntax.InverseComposeRelevance)
}

func printRelevanceTable(w io.Writer, op func(syntax.Relevance, syntax.Relevance) syntax.Relevance) {
	rs := syntax.Relevances()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, q := range rs {
		fmt.Fprintf(tw, "\t%v", q)
	}
	fmt.Fprintln(tw)
	for _, r := range rs {
		fmt.Fprintf(tw, "%v", r)
		for _, q := range rs {
			fmt.Fprintf(tw, "\t%v", op(r, q))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func runChecks(w io.Writer) bool {
	checks := []struct {
		name string
		run  func() error
	}{
		{"hiding combine identity", checkHidingIdentity},
		{"hiding combine commutative and idempotent", checkHidingCommutative},
		{"relevance order total", checkOrderTotal},
		{"relevance order transitive", checkOrderTransitive},
		{"compose identity", checkComposeIdentity},
		{"compose commutative", checkComposeCommutative},
		{"compose associative", checkComposeAssociative},
		{"irrelevant absorbs", checkIrrelevantAbsorbs},
		{"galois law", checkGalois},
		{"ignore-forced idempotent", checkIgnoreForced},
	}
	ok := true
	for _, c := range checks {
		if err := c.run(); err != nil {
			ok = false
			fmt.Fprintf(w, "%s %s: %v\n", paint("FAIL", ansiRed), c.name, err)
			continue
		}
		fmt.Fprintf(w, "%s   %s\n", paint("ok", ansiGreen), c.name)
	}
	return ok
}

func checkHidingIdentity() error {
	for _, h := range syntax.Hidings() {
		if syntax.CombineHiding(syntax.NotHidden, h) != h {
			return fmt.Errorf("visible + %v != %v", h, h)
		}
		if syntax.CombineHiding(h, syntax.NotHidden) != h {
			return fmt.Errorf("%v + visible != %v", h, h)
		}
	}
	return nil
}

func checkHidingCombinable(h1, h2 syntax.Hiding) (syntax.Hiding, bool) {
	if !combinable(h1, h2) {
		return syntax.NotHidden, false
	}
	return syntax.CombineHiding(h1, h2), true
}

func checkHidingCommutative() error {
	for _, h1 := range syntax.Hidings() {
		for _, h2 := range syntax.Hidings() {
			a, okA := checkHidingCombinable(h1, h2)
			b, okB := checkHidingCombinable(h2, h1)
			if okA != okB {
				return fmt.Errorf("definedness of %v + %v depends on order", h1, h2)
			}
			if okA && a != b {
				return fmt.Errorf("%v + %v = %v but %v + %v = %v", h1, h2, a, h2, h1, b)
			}
		}
		if syntax.CombineHiding(h1, h1) != h1 {
			return fmt.Errorf("%v + %v is not %v", h1, h1, h1)
		}
	}
	return nil
}

func checkOrderTotal() error {
	for _, r := range syntax.Relevances() {
		for _, q := range syntax.Relevances() {
			if !syntax.MoreRelevant(r, q) && !syntax.MoreRelevant(q, r) {
				return fmt.Errorf("%v and %v are incomparable", r, q)
			}
		}
	}
	return nil
}

func checkOrderTransitive() error {
	rs := syntax.Relevances()
	for _, a := range rs {
		for _, b := range rs {
			for _, c := range rs {
				if syntax.MoreRelevant(a, b) && syntax.MoreRelevant(b, c) && !syntax.MoreRelevant(a, c) {
					return fmt.Errorf("%v ≤ %v ≤ %v but not %v ≤ %v", a, b, c, a, c)
				}
			}
		}
	}
	return nil
}

func checkComposeIdentity() error {
	for _, r := range syntax.Relevances() {
		if got := syntax.ComposeRelevance(syntax.Relevant, r); got != r {
			return fmt.Errorf("relevant * %v = %v", r, got)
		}
		if got := syntax.ComposeRelevance(r, syntax.Relevant); got != r {
			return fmt.Errorf("%v * relevant = %v", r, got)
		}
	}
	return nil
}

func checkComposeCommutative() error {
	for _, r := range syntax.Relevances() {
		for _, q := range syntax.Relevances() {
			if syntax.ComposeRelevance(r, q) != syntax.ComposeRelevance(q, r) {
				return fmt.Errorf("%v * %v depends on order", r, q)
			}
		}
	}
	return nil
}

func checkComposeAssociative() error {
	rs := syntax.Relevances()
	for _, a := range rs {
		for _, b := range rs {
			for _, c := range rs {
				left := syntax.ComposeRelevance(syntax.ComposeRelevance(a, b), c)
				right := syntax.ComposeRelevance(a, syntax.ComposeRelevance(b, c))
				if left != right {
					return fmt.Errorf("(%v * %v) * %v = %v but %v * (%v * %v) = %v", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
	return nil
}

func checkIrrelevantAbsorbs() error {
	for _, r := range syntax.Relevances() {
		if got := syntax.ComposeRelevance(syntax.Irrelevant, r); got != syntax.Irrelevant {
			return fmt.Errorf("irrelevant * %v = %v", r, got)
		}
		if got := syntax.ComposeRelevance(r, syntax.Irrelevant); got != syntax.Irrelevant {
			return fmt.Errorf("%v * irrelevant = %v", r, got)
		}
	}
	return nil
}

func checkGalois() error {
	rs := syntax.Relevances()
	for _, r := range rs {
		for _, x := range rs {
			for _, y := range rs {
				direct := syntax.MoreRelevant(x, syntax.ComposeRelevance(r, y))
				residual := syntax.MoreRelevant(syntax.InverseComposeRelevance(r, x), y)
				if direct != residual {
					return fmt.Errorf("r=%v x=%v y=%v: direct=%t residual=%t", r, x, y, direct, residual)
				}
			}
		}
	}
	return nil
}

func checkIgnoreForced() error {
	for _, r := range syntax.Relevances() {
		once := r.IgnoreForced()
		if once != once.IgnoreForced() {
			return fmt.Errorf("ignoreForced not idempotent on %v", r)
		}
		switch r {
		case syntax.NonStrict, syntax.Irrelevant:
			if once != r {
				return fmt.Errorf("ignoreForced moved %v to %v", r, once)
			}
		default:
			if once != syntax.Relevant {
				return fmt.Errorf("ignoreForced(%v) = %v, want relevant", r, once)
			}
		}
	}
	return nil
}
