package main

import (
	"os"

	"subwise/cmd/cli/cmd"
	"subwise/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
