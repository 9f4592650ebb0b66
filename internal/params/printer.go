package params

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kballard/go-shellquote"
)

// Line text. These strings are the report's observable output; do not reword.
const (
	HeaderLine = "Listing parameters…"
	DoneLine   = "Finishing execution…"
)

// InvocationLine renders the whole list as received, each element quoted.
func InvocationLine(params []string) string {
	return fmt.Sprintf("Params: %q", params)
}

func CountLine(params []string) string {
	return "Total params: " + strconv.Itoa(len(params))
}

// Entry formats the line for the parameter at 0-based index i. The value is
// written verbatim.
func Entry(i int, value string) string {
	return "\t- Param #" + strconv.Itoa(i) + ": " + value
}

// Lines returns the full report without line terminators.
func Lines(params []string) []string {
	lines := make([]string, 0, len(params)+4)
	lines = append(lines, InvocationLine(params), CountLine(params), HeaderLine)
	for i, p := range params {
		lines = append(lines, Entry(i, p))
	}
	return append(lines, DoneLine)
}

// Print writes the report to w, one line per write. The first write error
// stops output.
func Print(w io.Writer, params []string) error {
	for _, line := range Lines(params) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// CommandLine renders params as a shell command that reproduces the same
// argument vector. It is meant for diagnostics, not for the report.
func CommandLine(params []string) string {
	return shellquote.Join(params...)
}
