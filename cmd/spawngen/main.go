package main

import (
	"os"

	"spawn-scheduler/internal/platform/config"
)

func main() {
	_ = config.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
