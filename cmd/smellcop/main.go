// Command smellcop examines a classified syntax tree for code smells.
package main

import (
	"fmt"
	"os"

	"github.com/hatchan/smellcop/cmd/smellcop/cmd"
)

func main() {
	os.Exit(run())
}

// run is factored out of main so the testscript-based CLI tests can invoke
// this binary's entry point in-process via testscript.RunMain.
func run() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
