package main

import (
	"os"

	"github.com/idilsaglam/travelcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
