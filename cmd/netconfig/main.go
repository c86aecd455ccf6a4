package main

import (
	"fmt"
	"os"

	"github.com/TeneoProtocolAI/teneo-contracts/cmd/netconfig/cmd"
	"github.com/TeneoProtocolAI/teneo-contracts/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	s, err := settings.Load()
	if err != nil {
		return err
	}

	return cmd.NewRootCommand(s).Execute()
}
