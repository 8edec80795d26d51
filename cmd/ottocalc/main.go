// Command ottocalc is a terminal calculator.
//
// Usage:
//
//	ottocalc [--sound] [--verbose]      interactive keypad
//	ottocalc eval "2+3*4"               evaluate and print
//	ottocalc keys 5 0 percent           replay key presses
//	ottocalc batch exprs.txt            evaluate one expression per line
package main

import (
	"os"

	"github.com/hammamikhairi/ottocalc/cmd/ottocalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
