// Package main provides the corpustok command, which counts the tokens in
// sentinel-delimited newspaper article archives.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
