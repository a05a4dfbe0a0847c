package main

import (
	"os"

	"github.com/etudelab/etude/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
