package main

import (
	"os"

	"github.com/rustyeddy/settle/cmd/settle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
