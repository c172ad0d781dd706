package main

import (
	"os"

	"github.com/alexisbeaulieu97/ansikit/pkg/console"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_ = console.Error(err.Error())
		os.Exit(1)
	}
}
