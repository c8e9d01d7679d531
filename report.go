package tokencheck

import (
	"fmt"
	"io"
	"strings"
)

// A Colorizer holds the ANSI codes used when reporting conformance results.
// A nil *Colorizer disables coloring.
type Colorizer struct {
	PassCode  []byte
	FailCode  []byte
	SkipCode  []byte
	ResetCode []byte
}

func (c *Colorizer) write(w io.Writer, code []byte, s string) {
	if c != nil {
		w.Write(code)
	}
	io.WriteString(w, s)
	if c != nil {
		w.Write(c.ResetCode)
	}
}

// A Reporter writes per-case conformance results to Out and keeps counts
// for the final summary.  When Verbose is false only failures and the
// summary are written.
type Reporter struct {
	Out     io.Writer
	Colors  *Colorizer
	Verbose bool

	passed  int
	failed  int
	skipped int
}

// Pass records a passing case.
func (r *Reporter) Pass(name string) {
	r.passed++
	if r.Verbose {
		r.Colors.write(r.Out, r.Colors.passCode(), "PASS")
		fmt.Fprintf(r.Out, " %s\n", name)
	}
}

// Fail records a failing case; detail is written indented under the case
// name (typically a diff of expected vs actual tokens).
func (r *Reporter) Fail(name, detail string) {
	r.failed++
	r.Colors.write(r.Out, r.Colors.failCode(), "FAIL")
	fmt.Fprintf(r.Out, " %s\n", name)
	if detail != "" {
		fmt.Fprintln(r.Out, indent(detail, "    "))
	}
}

// Skip records a case the runner cannot execute.
func (r *Reporter) Skip(name, reason string) {
	r.skipped++
	if r.Verbose {
		r.Colors.write(r.Out, r.Colors.skipCode(), "SKIP")
		fmt.Fprintf(r.Out, " %s (%s)\n", name, reason)
	}
}

// Summary writes the totals.
func (r *Reporter) Summary() {
	fmt.Fprintf(r.Out, "%d passed, %d failed, %d skipped\n", r.passed, r.failed, r.skipped)
}

// Failed reports whether any case failed.
func (r *Reporter) Failed() bool {
	return r.failed > 0
}

func (c *Colorizer) passCode() []byte {
	if c == nil {
		return nil
	}
	return c.PassCode
}

func (c *Colorizer) failCode() []byte {
	if c == nil {
		return nil
	}
	return c.FailCode
}

func (c *Colorizer) skipCode() []byte {
	if c == nil {
		return nil
	}
	return c.SkipCode
}

func indent(s, prefix string) string {
	s = strings.TrimRight(s, "\n")
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
