// Package main provides the patterns CLI: runnable demonstrations of the
// Abstract Document and Abstract Factory patterns.
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0" // This could be set at build time

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
