package main

import (
	"fmt"
	"os"

	"github.com/openkraft/plugval/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "plugval:", err)
		os.Exit(1)
	}
}
