package main

import (
	"os"

	"github.com/coachdesk/dashboard/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
