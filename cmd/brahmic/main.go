package main

import (
	"os"

	"github.com/brahmic-lang/brahmic/cmd/brahmic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
