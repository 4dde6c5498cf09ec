// jlint checks Java source trees against configurable style rules.
package main

import (
	"fmt"
	"os"

	"github.com/corey/jlint/cmd/jlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
