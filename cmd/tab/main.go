package main

import (
	"fmt"
	"os"

	"tab/internal/clierr"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(clierr.ExitCode(err))
	}
}
