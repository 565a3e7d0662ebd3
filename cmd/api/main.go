package main

import (
	"fmt"
	"os"

	"github.com/ecotrack/ecotrack-backend/internal/cli"
)

func main() {
	flags := cli.ParseServeFlags()

	if err := cli.RunServe(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
