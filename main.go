package main

import (
	"os"

	"github.com/gopak/minigrep/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
