package main

import (
	"os"

	"jobfluence/api/cmd/jobfluence/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
