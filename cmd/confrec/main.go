package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/confrec/pkg/output"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
