package main

import (
	"os"

	"github.com/trialforge/whereclause/cmd/wherec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
