package cli

import (
	"errors"
	"io"

	"argprint/internal/params"
)

type CLIResult struct {
	ExitCode int
	// Lines is the number of report lines written before returning.
	Lines int
}

// Run is the CLI entrypoint, suitable for black-box tests.
// It accepts the full argument vector (argv[0] included) and writes the
// report to stdout. No argument is interpreted.
func Run(args []string, stdout io.Writer) (CLIResult, error) {
	if stdout == nil {
		err := errors.New("nil stdout")
		return CLIResult{ExitCode: ExitCode(err)}, err
	}

	cw := &countingWriter{w: stdout}
	if err := params.Print(cw, args); err != nil {
		err = &OutputError{CommandLine: params.CommandLine(args), Err: err}
		return CLIResult{ExitCode: ExitCode(err), Lines: cw.lines}, err
	}
	return CLIResult{ExitCode: ExitSuccess, Lines: cw.lines}, nil
}

// countingWriter counts completed writes; params.Print issues one per line.
type countingWriter struct {
	w     io.Writer
	lines int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err == nil {
		c.lines++
	}
	return n, err
}
