package main

import (
	"os"

	"github.com/jon4hz/feedback/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
