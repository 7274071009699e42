// Command predictctl runs predictions and dataset queries from the terminal, either
// in-process against local artifacts or against a running API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
