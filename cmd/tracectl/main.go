package main

import (
	"os"

	"github.com/jhoicas/Trazabilidad-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
