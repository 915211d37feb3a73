package main

import (
	"os"

	"github.com/aussiebroadwan/simapi/internal/simctl"
)

func main() {
	// cobra has already printed the error
	if err := simctl.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
