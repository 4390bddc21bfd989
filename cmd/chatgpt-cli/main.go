// Command chatgpt-cli forwards user text to OpenAI's chat completions
// API and prints the reply. It runs a single turn from an argument or
// stdin, or an interactive loop with -i.
package main

import (
	"fmt"
	"os"
)

// main is the program entry point.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
