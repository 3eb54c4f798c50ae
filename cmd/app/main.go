package main

import (
	"os"

	"github.com/bagdasarian/project-team-rules/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
