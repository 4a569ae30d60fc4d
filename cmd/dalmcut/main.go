package main

import (
	"fmt"
	"os"

	"github.com/dalmcut/dalmcut/internal/cli"
)

// version, commit, and date are injected at build time via ldflags, e.g.:
//
//	go build -ldflags "-X main.version=v1.2.3 -X main.commit=abc123 -X main.date=2025-12-20T14:32:01Z"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
