package main

import (
	"os"

	"github.com/bonomali/sandman/cmd"
	"github.com/bonomali/sandman/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
