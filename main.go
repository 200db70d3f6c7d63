package main

import (
	"os"

	"github.com/rkreutz/swift-bridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
