package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/boolgrid/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := cli.NewRootCommand(version, commit, date)
	if err := cmd.Execute(); err != nil {
		logrus.Errorf("boolgrid-%s: %v", version, err)
		os.Exit(1)
	}
}
