package main

import (
	"os"

	"github.com/idilsaglam/variants/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
