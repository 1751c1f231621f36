package main

import (
	"os"

	"github.com/jakenesler/mailschema/cli"
)

func main() {
	os.Exit(cli.Execute())
}
