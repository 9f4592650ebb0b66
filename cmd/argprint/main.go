package main

import (
	"fmt"
	"os"

	"argprint/internal/cli"
)

// main hands the untouched argument vector to the CLI layer; no argument is
// treated as a flag.
func main() {
	result, err := cli.Run(os.Args, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(result.ExitCode)
	}
}
