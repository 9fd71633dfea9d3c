package main

import (
	"os"

	"cinematch/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
