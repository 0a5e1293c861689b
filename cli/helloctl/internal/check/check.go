package check

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Expected is the value every producer is compared against.
const Expected = "Hello World"

// Report lines shared by the self-test and the external producer check.
const (
	StartLine = "Running Hello World Test..."
	PassLine  = "✓ Test passed: Output matches expected value"
	FailLine  = "✗ Test failed: Output does not match expected value"
)

var (
	passMark = color.New(color.FgGreen)
	failMark = color.New(color.FgRed)
)

// Result holds one comparison between an expected and a produced value.
// The comparison is byte for byte: no trimming, no case folding.
type Result struct {
	Expected string
	Actual   string
}

// Passed reports whether the produced value matched.
func (r Result) Passed() bool { return r.Actual == r.Expected }

// ExitCode maps the comparison onto the process exit code: 0 on a match,
// 1 on a mismatch. Nothing else is ever returned.
func (r Result) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Announce writes the start line that precedes a report.
func Announce(w io.Writer) {
	fmt.Fprintln(w, StartLine)
}

// Report writes the verdict line followed by the quoted expected/got detail
// lines. The verdict keeps its color only when color output is enabled.
func Report(w io.Writer, r Result) {
	if r.Passed() {
		passMark.Fprintln(w, PassLine)
	} else {
		failMark.Fprintln(w, FailLine)
	}
	fmt.Fprintf(w, "  Expected: '%s'\n", r.Expected)
	fmt.Fprintf(w, "  Got:      '%s'\n", r.Actual)
}
