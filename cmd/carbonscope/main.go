package main

import (
	"fmt"
	"os"

	"github.com/carbonscope/carbonscope/internal/cli"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
