package main

import (
	"os"

	"github.com/qntx/clink/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
