// Package main provides the metalcalc command-line calculator.
package main

import (
	"os"

	"github.com/leapstack-labs/metalcalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
