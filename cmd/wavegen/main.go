// Command wavegen learns adjacency rules from a small example grid and
// generates a larger tile map with the Wave Function Collapse solver,
// printing the colored result to stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wavegen:", err)
		os.Exit(1)
	}
}
