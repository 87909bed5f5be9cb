package main

import (
	"os"

	"github.com/abhisek/mathdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
