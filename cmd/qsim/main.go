package main

import (
	"os"

	"github.com/theapemachine/errnie"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errnie.Warn("qsim: %v", err)
		os.Exit(1)
	}
}
