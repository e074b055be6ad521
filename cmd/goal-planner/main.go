package main

import (
	"os"

	"github.com/iwvelando/goal-planner/cmd/goal-planner/cmd"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
