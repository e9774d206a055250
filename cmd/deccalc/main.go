// deccalc evaluates decimal expressions from its arguments or standard input.
package main

import (
	"os"

	"github.com/decimalnumbers/decimal/cmd/deccalc/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
