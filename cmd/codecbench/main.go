// Command codecbench measures write and read throughput of a generated CSV
// time series through several stream compression codecs.
package main

import (
	"fmt"
	"os"
)

var exit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
