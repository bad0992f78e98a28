package main

import (
	"fmt"
	"os"

	"github.com/quant-tools/return-atlas/pkg/models/domain"
	"github.com/quant-tools/return-atlas/pkg/runtime/terminal"
	"github.com/quant-tools/return-atlas/pkg/services/engine"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Engine: engine.NewEngine(domain.DefaultLimits()),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
