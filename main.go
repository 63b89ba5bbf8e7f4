package main

import (
	"os"

	"github.com/learnsphere/learnsphere-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
