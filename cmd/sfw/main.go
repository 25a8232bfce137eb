// Package main provides the SFW command-line entry point.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("SFW %s\n", version)
		return
	}

	fmt.Println("SFW - Stochastic Frank-Wolfe optimizers for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/sparsereg for a runnable training experiment.")
}
