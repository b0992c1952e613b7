package main

import (
	"os"

	"github.com/danieljhkim/namexif/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute())
}
